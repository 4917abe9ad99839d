// Package handler contains the HTTP handlers of the REST API.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"labgas/internal/delivery/api/middleware"
	"labgas/internal/delivery/api/response"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// owner returns the authenticated user every resource route is scoped to.
func owner(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrMissingToken
	}

	return userID, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id inválido")
	}

	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("corpo da requisição inválido")
	}

	return c.Validate(req)
}

func parseOptionalDate(value *string) (*entity.Date, error) {
	if value == nil {
		return nil, nil
	}

	date, err := entity.ParseDate(*value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("data inválida, use AAAA-MM-DD")
	}

	return &date, nil
}

// NullableID tells an absent id field apart from an explicit null, which
// unlinks the reference in a merge patch.
type NullableID struct {
	Set   bool
	Value *int64
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil

		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id

	return nil
}

// patch returns the id to store, or clear for an explicit null.
func (n NullableID) patch(field string) (id *int64, clear bool, err error) {
	switch {
	case !n.Set:
		return nil, false, nil
	case n.Value == nil:
		return nil, true, nil
	case *n.Value <= 0:
		return nil, false, domainerrors.ErrValidationFailed.WithDetails(field + " inválido")
	}

	return n.Value, false, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
