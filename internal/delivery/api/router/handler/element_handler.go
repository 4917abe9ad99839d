package handler

import (
	"log/slog"
	"net/http"

	"labgas/internal/delivery/api/response"
	"labgas/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ElementHandlerParams holds dependencies for ElementHandler, injected by Fx.
type ElementHandlerParams struct {
	fx.In

	ElementUC usecase.ElementUsecase
	Logger    *slog.Logger
}

// ElementHandler serves /api/elementos.
type ElementHandler struct {
	elementUC usecase.ElementUsecase
	logger    *slog.Logger
}

// NewElementHandler is the constructor for ElementHandler.
func NewElementHandler(params ElementHandlerParams) *ElementHandler {
	return &ElementHandler{
		elementUC: params.ElementUC,
		logger:    params.Logger,
	}
}

// CreateElementRequest is the body of POST /api/elementos.
type CreateElementRequest struct {
	Name           string   `json:"name" validate:"required"`
	ConsumptionLPM *float64 `json:"consumption_lpm" validate:"omitempty,gte=0"`
}

// UpdateElementRequest is the merge-patch body of PUT /api/elementos/:id.
type UpdateElementRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=1"`
	ConsumptionLPM *float64 `json:"consumption_lpm" validate:"omitempty,gte=0"`
}

// ListElements returns the caller's elements, seeding the catalog on first use.
func (h *ElementHandler) ListElements(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	elements, err := h.elementUC.ListElements(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, elements)
}

func (h *ElementHandler) GetElement(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	element, err := h.elementUC.GetElement(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, element)
}

func (h *ElementHandler) CreateElement(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	var req CreateElementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	element, err := h.elementUC.CreateElement(c.Request().Context(), userID, &usecase.CreateElementInput{
		Name:           req.Name,
		ConsumptionLPM: req.ConsumptionLPM,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, element)
}

func (h *ElementHandler) UpdateElement(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateElementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	element, err := h.elementUC.UpdateElement(c.Request().Context(), userID, id, &usecase.UpdateElementInput{
		Name:           req.Name,
		ConsumptionLPM: req.ConsumptionLPM,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, element)
}

func (h *ElementHandler) DeleteElement(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.elementUC.DeleteElement(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Elemento removido")
}
