package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"stoploss_quoting/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScore(t *testing.T) {
	input := `{
		"group": {"name": "Acme", "group_type": "employer", "contract_type": "full_risk", "state": "TX", "member_count": 2},
		"members": [
			{"member_id_external": "A", "date_of_birth": "1985-01-01", "gender": "M"},
			{"member_id_external": "B", "date_of_birth": "1990-06-15", "gender": "F", "large_claimant_flag": true}
		]
	}`
	now := func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	var out bytes.Buffer
	require.NoError(t, runScore(strings.NewReader(input), &out, now))

	var got entities.RiskAssessment
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 1, got.LargeClaimantCount)
	assert.True(t, got.Tier.Rank() >= 0)
	assert.Greater(t, got.ExpectedClaimsCost, 0.0)
}

func TestRunScore_BadInput(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runScore(strings.NewReader("{"), &out, nil))

	bad := `{"group": {"name": "Acme"}, "members": [{"member_id_external": "A", "date_of_birth": "not-a-date", "gender": "M"}]}`
	err := runScore(strings.NewReader(bad), &out, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member 0")
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["tables"])
	assert.True(t, names["score"])
}
