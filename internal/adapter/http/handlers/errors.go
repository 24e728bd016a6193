package handlers

import (
	"errors"
	"net/http"

	"stoploss_quoting/internal/domain/errs"
	"stoploss_quoting/internal/usecase"
	"stoploss_quoting/pkg"

	"github.com/gin-gonic/gin"
)

type errorCode struct {
	err     error
	code    string
	message string
	status  int
}

// specificErrors are matched before the generic kinds so clients get a
// stable code for the conditions they commonly branch on.
var specificErrors = []errorCode{
	{usecase.ErrGroupNotFound, "GROUP_NOT_FOUND", "Group not found", http.StatusNotFound},
	{usecase.ErrMemberNotFound, "MEMBER_NOT_FOUND", "Member not found", http.StatusNotFound},
	{usecase.ErrQuoteNotFound, "QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound},
	{usecase.ErrReviewNotFound, "REVIEW_NOT_FOUND", "Underwriting review not found", http.StatusNotFound},
	{usecase.ErrPolicyNotFound, "POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound},
	{usecase.ErrQuoteBound, "QUOTE_BOUND", "Quote is already bound", http.StatusConflict},
	{usecase.ErrManualBind, "MANUAL_BIND_NOT_ALLOWED", "Quotes are bound through policy binding", http.StatusConflict},
	{usecase.ErrQuoteNotReviewable, "QUOTE_NOT_REVIEWABLE", "Quote cannot be submitted for review", http.StatusConflict},
	{usecase.ErrQuoteNotApproved, "QUOTE_NOT_APPROVED", "Quote is not approved", http.StatusConflict},
	{usecase.ErrQuoteLapsed, "QUOTE_EXPIRED", "Quote validity has lapsed", http.StatusConflict},
	{usecase.ErrPolicyAlreadyExists, "POLICY_ALREADY_EXISTS", "Policy already exists for this quote", http.StatusConflict},
}

func mapError(err error) *pkg.AppError {
	for _, e := range specificErrors {
		if errors.Is(err, e.err) {
			return pkg.NewDomainError(e.code, e.message, err, e.status)
		}
	}

	switch {
	case errors.Is(err, errs.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, errs.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, errs.ErrStateConflict):
		return pkg.NewDomainError("STATE_CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, errs.ErrExternalService):
		return pkg.NewDomainError("EXTERNAL_SERVICE_ERROR", "An upstream service failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortWithAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
