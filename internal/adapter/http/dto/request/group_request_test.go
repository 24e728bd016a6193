package request

import (
	"errors"
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"
)

func TestCreateGroupRequest_ToEntity(t *testing.T) {
	effective := "2025-01-01"
	req := CreateGroupRequest{
		Name:             "Acme",
		GroupType:        "employer",
		ContractType:     "full_risk",
		State:            "TX",
		MemberCount:      120,
		EffectiveDate:    &effective,
		HistoricalClaims: &HistoricalClaimsRequest{TotalClaims: 540000, MemberMonths: 1200},
	}

	g, err := req.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.GroupType != entities.GroupTypeEmployer || g.ContractType != entities.ContractFullRisk {
		t.Fatalf("unexpected enums: %+v", g)
	}
	if g.EffectiveDate == nil || !g.EffectiveDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected effective date: %v", g.EffectiveDate)
	}
	if g.RenewalDate != nil {
		t.Fatalf("expected nil renewal date")
	}
	if g.HistoricalClaims == nil || g.HistoricalClaims.MemberMonths != 1200 {
		t.Fatalf("unexpected claims data: %+v", g.HistoricalClaims)
	}
}

func TestCreateGroupRequest_InvalidDate(t *testing.T) {
	bad := "01/02/2025"
	_, err := CreateGroupRequest{Name: "Acme", RenewalDate: &bad}.ToEntity()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdateGroupRequest_ToPatch(t *testing.T) {
	name := "Renamed"
	gt := "aco"
	renewal := "2026-01-01T00:00:00Z"

	patch, err := UpdateGroupRequest{Name: &name, GroupType: &gt, RenewalDate: &renewal}.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Name == nil || *patch.Name != "Renamed" {
		t.Fatalf("unexpected name: %v", patch.Name)
	}
	if patch.GroupType == nil || *patch.GroupType != entities.GroupTypeACO {
		t.Fatalf("unexpected group type: %v", patch.GroupType)
	}
	if patch.ContractType != nil || patch.MemberCount != nil {
		t.Fatalf("expected untouched fields to stay nil: %+v", patch)
	}
	if patch.RenewalDate == nil || patch.RenewalDate.Year() != 2026 {
		t.Fatalf("unexpected renewal date: %v", patch.RenewalDate)
	}
}
