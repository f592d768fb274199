package handler

import (
	"context"

	"app/internal/api/v1/dispatch"
	"app/internal/service"

	"github.com/rs/zerolog"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           zerolog.Logger
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger.With().Str("handler", "AnalyticsHandler").Logger(),
	}
}

func (h *AnalyticsHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.RouteGroupAnalytics, h.GroupAnalytics)
}

func (h *AnalyticsHandler) GroupAnalytics(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	groupID := req.Query["simulation_group_id"]
	if groupID == "" {
		return dispatch.Error(400, "simulation_group_id is required"), nil
	}

	rows, err := h.analyticsService.GetGroupAnalytics(ctx, groupID)
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, rows), nil
}
