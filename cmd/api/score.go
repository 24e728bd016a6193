package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	request "stoploss_quoting/internal/adapter/http/dto/request"
	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/riskscoring"
)

type scoreInput struct {
	Group   request.CreateGroupRequest    `json:"group"`
	Members []request.CreateMemberRequest `json:"members"`
}

// runScore reads a group with its members and writes the engine's
// assessment as indented JSON. now may be nil.
func runScore(in io.Reader, out io.Writer, now func() time.Time) error {
	var payload scoreInput
	if err := json.NewDecoder(in).Decode(&payload); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	group, err := payload.Group.ToEntity()
	if err != nil {
		return fmt.Errorf("group: %w", err)
	}
	members := make([]entities.Member, 0, len(payload.Members))
	for i, mr := range payload.Members {
		m, err := mr.ToEntity()
		if err != nil {
			return fmt.Errorf("member %d: %w", i, err)
		}
		members = append(members, m)
	}

	var opts []riskscoring.Option
	if now != nil {
		opts = append(opts, riskscoring.WithClock(now))
	}
	assessment := riskscoring.NewEngine(opts...).Assess(group, members)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(assessment)
}
