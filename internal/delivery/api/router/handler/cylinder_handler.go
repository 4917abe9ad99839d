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

// CylinderHandlerParams holds dependencies for CylinderHandler, injected by Fx.
type CylinderHandlerParams struct {
	fx.In

	CylinderUC usecase.CylinderUsecase
	Logger     *slog.Logger
}

// CylinderHandler serves /api/cilindros.
type CylinderHandler struct {
	cylinderUC usecase.CylinderUsecase
	logger     *slog.Logger
}

// NewCylinderHandler is the constructor for CylinderHandler.
func NewCylinderHandler(params CylinderHandlerParams) *CylinderHandler {
	return &CylinderHandler{
		cylinderUC: params.CylinderUC,
		logger:     params.Logger,
	}
}

// CreateCylinderRequest is the body of POST /api/cilindros.
type CreateCylinderRequest struct {
	Code         string   `json:"code" validate:"required"`
	PurchaseDate string   `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	GasKg        *float64 `json:"gas_kg" validate:"omitempty,gte=0"`
	Cost         *float64 `json:"cost" validate:"omitempty,gte=0"`
	Status       *string  `json:"status" validate:"omitempty,oneof=active in_use depleted inactive"`
}

// UpdateCylinderRequest is the merge-patch body of PUT /api/cilindros/:id.
type UpdateCylinderRequest struct {
	Code         *string  `json:"code" validate:"omitempty,min=1"`
	PurchaseDate *string  `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	GasKg        *float64 `json:"gas_kg" validate:"omitempty,gte=0"`
	Cost         *float64 `json:"cost" validate:"omitempty,gte=0"`
	Status       *string  `json:"status" validate:"omitempty,oneof=active in_use depleted inactive"`
}

func statusPtr(value *string) *entity.CylinderStatus {
	if value == nil {
		return nil
	}

	status := entity.CylinderStatus(*value)

	return &status
}

// ListCylinders returns the caller's cylinders, narrowed by ?status= when given.
func (h *CylinderHandler) ListCylinders(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	var filter usecase.CylinderFilter
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.CylinderStatus(raw)
		if !status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("status inválido: " + raw)
		}
		filter.Status = &status
	}

	cylinders, err := h.cylinderUC.ListCylinders(c.Request().Context(), userID, filter)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, cylinders)
}

// GetCylinder returns one cylinder.
func (h *CylinderHandler) GetCylinder(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	cylinder, err := h.cylinderUC.GetCylinder(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, cylinder)
}

// CreateCylinder registers a purchased cylinder.
func (h *CylinderHandler) CreateCylinder(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	var req CreateCylinderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	purchaseDate, err := entity.ParseDate(req.PurchaseDate)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("purchase_date inválida")
	}

	cylinder, err := h.cylinderUC.CreateCylinder(c.Request().Context(), userID, &usecase.CreateCylinderInput{
		Code:         req.Code,
		PurchaseDate: purchaseDate,
		GasKg:        req.GasKg,
		Cost:         req.Cost,
		Status:       statusPtr(req.Status),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, cylinder)
}

// UpdateCylinder applies a merge patch.
func (h *CylinderHandler) UpdateCylinder(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateCylinderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	purchaseDate, err := parseOptionalDate(req.PurchaseDate)
	if err != nil {
		return err
	}

	cylinder, err := h.cylinderUC.UpdateCylinder(c.Request().Context(), userID, id, &usecase.UpdateCylinderInput{
		Code:         req.Code,
		PurchaseDate: purchaseDate,
		GasKg:        req.GasKg,
		Cost:         req.Cost,
		Status:       statusPtr(req.Status),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, cylinder)
}

// DeleteCylinder removes a cylinder nothing references.
func (h *CylinderHandler) DeleteCylinder(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.cylinderUC.DeleteCylinder(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Cilindro removido")
}

// CylinderLabel streams the QR label as PNG.
func (h *CylinderHandler) CylinderLabel(c echo.Context) error {
	userID, err := owner(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	png, err := h.cylinderUC.CylinderLabel(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
