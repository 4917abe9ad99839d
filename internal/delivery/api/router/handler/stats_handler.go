package handler

import (
	"net/http"

	"labgas/internal/delivery/api/response"
	"labgas/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves /api/stats.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(statsUC usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

func (h *StatsHandler) Counts(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	counts, err := h.statsUC.Counts(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, counts)
}
