// Package handler holds one operation handler per instructor route. Every
// handler validates its required parameters before touching persistence and
// maps classified service failures onto response envelopes.
package handler

import (
	"app/internal/api/v1/dispatch"

	"github.com/rs/zerolog"
)

// internalError logs the failure server-side and reports the generic 500
// body. The error itself never reaches the caller.
func internalError(logger zerolog.Logger, err error) dispatch.Response {
	logger.Error().Err(err).Msg("Internal server error")
	return dispatch.Error(500, "Internal server error")
}
