package handler

import (
	"log/slog"
	"net/http"

	"labgas/internal/delivery/api/response"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SampleHandlerParams holds dependencies for SampleHandler, injected by Fx.
type SampleHandlerParams struct {
	fx.In

	SampleUC usecase.SampleUsecase
	Logger   *slog.Logger
}

// SampleHandler serves /api/amostras.
type SampleHandler struct {
	sampleUC usecase.SampleUsecase
	logger   *slog.Logger
}

// NewSampleHandler is the constructor for SampleHandler.
func NewSampleHandler(params SampleHandlerParams) *SampleHandler {
	return &SampleHandler{
		sampleUC: params.SampleUC,
		logger:   params.Logger,
	}
}

// CreateSampleRequest is the body of POST /api/amostras.
type CreateSampleRequest struct {
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string `json:"time" validate:"required"`
	CylinderID       *int64 `json:"cylinder_id" validate:"omitempty,gt=0"`
	ElementID        *int64 `json:"element_id" validate:"omitempty,gt=0"`
	FlameTimeSeconds *int   `json:"flame_time_seconds" validate:"omitempty,gte=0"`
	Quantity         *int   `json:"quantity" validate:"omitempty,gte=0"`
}

// UpdateSampleRequest is the merge-patch body of PUT /api/amostras/:id. An
// explicit null cylinder_id or element_id unlinks the reference.
type UpdateSampleRequest struct {
	Date             *string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time             *string    `json:"time" validate:"omitempty,min=1"`
	CylinderID       NullableID `json:"cylinder_id"`
	ElementID        NullableID `json:"element_id"`
	FlameTimeSeconds *int       `json:"flame_time_seconds" validate:"omitempty,gte=0"`
	Quantity         *int       `json:"quantity" validate:"omitempty,gte=0"`
}

// ListSamples returns the caller's samples with cylinder code and element name.
func (h *SampleHandler) ListSamples(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	samples, err := h.sampleUC.ListSamples(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, samples)
}

func (h *SampleHandler) GetSample(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	sample, err := h.sampleUC.GetSample(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, sample)
}

func (h *SampleHandler) CreateSample(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	var req CreateSampleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("date inválida")
	}

	sample, err := h.sampleUC.CreateSample(c.Request().Context(), userID, &usecase.CreateSampleInput{
		Date:             date,
		Time:             req.Time,
		CylinderID:       req.CylinderID,
		ElementID:        req.ElementID,
		FlameTimeSeconds: req.FlameTimeSeconds,
		Quantity:         req.Quantity,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, sample)
}

func (h *SampleHandler) UpdateSample(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateSampleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return err
	}

	cylinderID, clearCylinder, err := req.CylinderID.patch("cylinder_id")
	if err != nil {
		return err
	}

	elementID, clearElement, err := req.ElementID.patch("element_id")
	if err != nil {
		return err
	}

	sample, err := h.sampleUC.UpdateSample(c.Request().Context(), userID, id, &usecase.UpdateSampleInput{
		Date:             date,
		Time:             req.Time,
		CylinderID:       cylinderID,
		ElementID:        elementID,
		ClearCylinder:    clearCylinder,
		ClearElement:     clearElement,
		FlameTimeSeconds: req.FlameTimeSeconds,
		Quantity:         req.Quantity,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, sample)
}

func (h *SampleHandler) DeleteSample(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.sampleUC.DeleteSample(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Amostra removida")
}
