package handler

import (
	"log/slog"
	"net/http"

	"labgas/internal/delivery/api/response"
	"labgas/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FlameTimeHandlerParams holds dependencies for FlameTimeHandler, injected by Fx.
type FlameTimeHandlerParams struct {
	fx.In

	FlameTimeUC usecase.FlameTimeUsecase
	Logger      *slog.Logger
}

// FlameTimeHandler serves /api/tempo-chama.
type FlameTimeHandler struct {
	flameTimeUC usecase.FlameTimeUsecase
	logger      *slog.Logger
}

// NewFlameTimeHandler is the constructor for FlameTimeHandler.
func NewFlameTimeHandler(params FlameTimeHandlerParams) *FlameTimeHandler {
	return &FlameTimeHandler{
		flameTimeUC: params.FlameTimeUC,
		logger:      params.Logger,
	}
}

// CreateFlameTimeRequest is the body of POST /api/tempo-chama.
type CreateFlameTimeRequest struct {
	Hours      *int   `json:"hours" validate:"required,gte=0"`
	Minutes    *int   `json:"minutes" validate:"required,gte=0"`
	Seconds    *int   `json:"seconds" validate:"required,gte=0"`
	CylinderID *int64 `json:"cylinder_id" validate:"omitempty,gt=0"`
	ElementID  *int64 `json:"element_id" validate:"omitempty,gt=0"`
}

func (h *FlameTimeHandler) ListFlameTimes(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	records, err := h.flameTimeUC.ListFlameTimes(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records)
}

func (h *FlameTimeHandler) GetFlameTime(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	record, err := h.flameTimeUC.GetFlameTime(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, record)
}

func (h *FlameTimeHandler) CreateFlameTime(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	var req CreateFlameTimeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	record, err := h.flameTimeUC.CreateFlameTime(c.Request().Context(), userID, &usecase.CreateFlameTimeInput{
		Hours:      req.Hours,
		Minutes:    req.Minutes,
		Seconds:    req.Seconds,
		CylinderID: req.CylinderID,
		ElementID:  req.ElementID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, record)
}

func (h *FlameTimeHandler) DeleteFlameTime(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.flameTimeUC.DeleteFlameTime(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Registro removido")
}

// Summary returns the consumption totals of the caller.
func (h *FlameTimeHandler) Summary(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	summary, err := h.flameTimeUC.Summary(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary)
}
