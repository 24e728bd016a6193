package usecase

import (
	"fmt"

	"stoploss_quoting/internal/domain/errs"
)

var (
	ErrInvalidTenant = fmt.Errorf("invalid tenant: %w", errs.ErrValidation)

	ErrGroupNotFound       = fmt.Errorf("group %w", errs.ErrNotFound)
	ErrInvalidGroupID      = fmt.Errorf("invalid group id: %w", errs.ErrValidation)
	ErrInvalidGroupName    = fmt.Errorf("invalid group name: %w", errs.ErrValidation)
	ErrInvalidGroupType    = fmt.Errorf("invalid group type: %w", errs.ErrValidation)
	ErrInvalidContractType = fmt.Errorf("invalid contract type: %w", errs.ErrValidation)
	ErrInvalidMemberCount  = fmt.Errorf("invalid member count: %w", errs.ErrValidation)
	ErrInvalidState        = fmt.Errorf("invalid state code: %w", errs.ErrValidation)
	ErrInvalidClaimsData   = fmt.Errorf("invalid historical claims data: %w", errs.ErrValidation)

	ErrMemberNotFound        = fmt.Errorf("member %w", errs.ErrNotFound)
	ErrInvalidMemberID       = fmt.Errorf("invalid member id: %w", errs.ErrValidation)
	ErrInvalidExternalID     = fmt.Errorf("invalid member external id: %w", errs.ErrValidation)
	ErrInvalidDateOfBirth    = fmt.Errorf("invalid date of birth: %w", errs.ErrValidation)
	ErrInvalidGender         = fmt.Errorf("invalid gender: %w", errs.ErrValidation)
	ErrInvalidClaimsAmount   = fmt.Errorf("invalid historical claims amount: %w", errs.ErrValidation)
	ErrEmptyMemberBatch      = fmt.Errorf("empty member batch: %w", errs.ErrValidation)
	ErrMemberBatchGroupMixed = fmt.Errorf("member batch spans several groups: %w", errs.ErrValidation)

	ErrQuoteNotFound      = fmt.Errorf("quote %w", errs.ErrNotFound)
	ErrInvalidQuoteID     = fmt.Errorf("invalid quote id: %w", errs.ErrValidation)
	ErrInvalidQuoteStatus = fmt.Errorf("invalid quote status: %w", errs.ErrValidation)
	ErrQuoteBound         = fmt.Errorf("quote is bound: %w", errs.ErrStateConflict)
	ErrManualBind         = fmt.Errorf("quotes are bound through policy binding: %w", errs.ErrStateConflict)
	ErrQuoteNotReviewable = fmt.Errorf("quote cannot be submitted for review: %w", errs.ErrStateConflict)
	ErrQuoteNotApproved   = fmt.Errorf("quote is not approved: %w", errs.ErrStateConflict)
	ErrQuoteLapsed        = fmt.Errorf("quote validity has lapsed: %w", errs.ErrStateConflict)

	ErrReviewNotFound  = fmt.Errorf("review %w", errs.ErrNotFound)
	ErrInvalidDecision = fmt.Errorf("invalid underwriting decision: %w", errs.ErrValidation)

	ErrPolicyNotFound      = fmt.Errorf("policy %w", errs.ErrNotFound)
	ErrInvalidPolicyID     = fmt.Errorf("invalid policy id: %w", errs.ErrValidation)
	ErrInvalidPolicyStatus = fmt.Errorf("invalid policy status: %w", errs.ErrValidation)
	ErrPolicyAlreadyExists = fmt.Errorf("policy already exists for quote: %w", errs.ErrStateConflict)

	ErrInvalidNarrativeRequest = fmt.Errorf("invalid narrative request: %w", errs.ErrValidation)
)
