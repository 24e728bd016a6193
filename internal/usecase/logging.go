package usecase

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logger is resolved per call so it picks up the process logger configured at
// start-up.
func logger(component string) *zerolog.Logger {
	l := log.With().Str("component", component).Logger()
	return &l
}

func requireTenant(tenantID string) (string, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return "", ErrInvalidTenant
	}
	return tenantID, nil
}
