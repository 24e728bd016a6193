package request

import (
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"
)

func TestGenerateQuoteRequest_ToParams(t *testing.T) {
	sap := 175000.0
	req := GenerateQuoteRequest{
		GroupID:                 " g-1 ",
		CoverageType:            "Both",
		EffectiveDate:           "2025-01-01",
		SpecificAttachmentPoint: &sap,
		ContractPeriodMonths:    6,
	}

	if req.ResolveGroupID() != "g-1" {
		t.Fatalf("unexpected group id: %q", req.ResolveGroupID())
	}
	p, err := req.ToParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CoverageType != entities.CoverageBoth {
		t.Fatalf("unexpected coverage type: %s", p.CoverageType)
	}
	if !p.EffectiveDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected effective date: %v", p.EffectiveDate)
	}
	if p.ExpirationDate != nil {
		t.Fatalf("expected nil expiration date")
	}
	if p.SpecificAttachmentPoint == nil || *p.SpecificAttachmentPoint != 175000 || p.ContractPeriodMonths != 6 {
		t.Fatalf("unexpected overrides: %+v", p)
	}
}

func TestGenerateQuoteRequest_InvalidDate(t *testing.T) {
	if _, err := (GenerateQuoteRequest{CoverageType: "specific", EffectiveDate: "tomorrow"}).ToParams(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestUpdateQuoteStatusRequest_ResolveStatus(t *testing.T) {
	if got := (UpdateQuoteStatusRequest{Status: " Expired "}).ResolveStatus(); got != entities.QuoteStatusExpired {
		t.Fatalf("unexpected status: %s", got)
	}
}
