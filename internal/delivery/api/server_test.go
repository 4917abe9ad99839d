package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"labgas/config"
	apimiddleware "labgas/internal/delivery/api/middleware"
	"labgas/internal/delivery/api/router"
	"labgas/internal/delivery/api/router/handler"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/infra/metrics"
	mockservice "labgas/internal/mocks/service"
	mockusecase "labgas/internal/mocks/usecase"
	"labgas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "good-token"

type apiFixture struct {
	e         *echo.Echo
	tokens    *mockservice.MockTokenService
	auth      *mockusecase.MockAuthUsecase
	cylinders *mockusecase.MockCylinderUsecase
	elements  *mockusecase.MockElementUsecase
	samples   *mockusecase.MockSampleUsecase
	flames    *mockusecase.MockFlameTimeUsecase
	stats     *mockusecase.MockStatsUsecase
	userID    uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	fx := &apiFixture{
		tokens:    mockservice.NewMockTokenService(t),
		auth:      mockusecase.NewMockAuthUsecase(t),
		cylinders: mockusecase.NewMockCylinderUsecase(t),
		elements:  mockusecase.NewMockElementUsecase(t),
		samples:   mockusecase.NewMockSampleUsecase(t),
		flames:    mockusecase.NewMockFlameTimeUsecase(t),
		stats:     mockusecase.NewMockStatsUsecase(t),
		userID:    uuid.New(),
	}

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.Env.AppName = "LabGas Manager"
	logger := slog.New(slog.DiscardHandler)
	m := metrics.New()

	fx.e = NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.auth, Logger: logger}),
			CylinderHandler:  handler.NewCylinderHandler(handler.CylinderHandlerParams{CylinderUC: fx.cylinders, Logger: logger}),
			ElementHandler:   handler.NewElementHandler(handler.ElementHandlerParams{ElementUC: fx.elements, Logger: logger}),
			SampleHandler:    handler.NewSampleHandler(handler.SampleHandlerParams{SampleUC: fx.samples, Logger: logger}),
			FlameTimeHandler: handler.NewFlameTimeHandler(handler.FlameTimeHandlerParams{FlameTimeUC: fx.flames, Logger: logger}),
			StatsHandler:     handler.NewStatsHandler(fx.stats),
			AuthMiddleware:   apimiddleware.NewAuthMiddleware(fx.tokens),
			Metrics:          m,
			Config:           cfg,
		},
	})

	return fx
}

func (fx *apiFixture) authorize() {
	fx.tokens.EXPECT().Verify(testToken).Return(&entity.Identity{UserID: fx.userID, Email: "lab@example.com"}, nil)
}

func (fx *apiFixture) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorized {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_RejectsMissingAuthorization(t *testing.T) {
	fx := newAPIFixture(t)

	for _, path := range []string{"/api/cilindros", "/api/elementos", "/api/amostras", "/api/tempo-chama", "/api/stats", "/api/auth/me"} {
		rec := fx.do(http.MethodGet, path, "", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
	}
}

func TestAPI_RejectsInvalidToken(t *testing.T) {
	fx := newAPIFixture(t)
	fx.tokens.EXPECT().Verify(testToken).Return(nil, domainerrors.ErrInvalidCredential)

	rec := fx.do(http.MethodGet, "/api/cilindros", "", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decode(t, rec).Error.Code)
}

func TestAPI_RejectsNonBearerScheme(t *testing.T) {
	fx := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic Zm9vOmJhcg==")
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_CreateCylinder(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.cylinders.EXPECT().
		CreateCylinder(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.CreateCylinderInput) bool {
			return in.Code == "CIL-001" && in.PurchaseDate.String() == "2024-03-01" && in.GasKg == nil &&
				in.Status != nil && *in.Status == entity.CylinderStatusInUse
		})).
		Return(&entity.Cylinder{ID: 1, Code: "CIL-001", GasKg: 1, LitersEquivalent: 956, Status: entity.CylinderStatusInUse}, nil)

	rec := fx.do(http.MethodPost, "/api/cilindros", `{"code":"CIL-001","purchase_date":"2024-03-01","status":"in_use"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	var cylinder entity.Cylinder
	require.NoError(t, json.Unmarshal(env.Data, &cylinder))
	assert.Equal(t, "CIL-001", cylinder.Code)
	assert.InDelta(t, 956.0, cylinder.LitersEquivalent, 1e-9)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)
}

func TestAPI_CreateCylinder_ValidationFailed(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()

	rec := fx.do(http.MethodPost, "/api/cilindros", `{"purchase_date":"01/03/2024","status":"lost"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "code é obrigatório")
}

func TestAPI_CreateCylinder_Duplicate(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.cylinders.EXPECT().CreateCylinder(mock.Anything, fx.userID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrDuplicateCylinderCode, "failed to create cylinder"))

	rec := fx.do(http.MethodPost, "/api/cilindros", `{"code":"CIL-001","purchase_date":"2024-03-01"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DUPLICATE_KEY", decode(t, rec).Error.Code)
}

func TestAPI_DeleteCylinder_HasDependents(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.cylinders.EXPECT().DeleteCylinder(mock.Anything, fx.userID, int64(5)).
		Return(errors.Wrap(domainerrors.ErrHasDependents.WithDetails("1 amostra(s)"), "failed to delete cylinder"))

	rec := fx.do(http.MethodDelete, "/api/cilindros/5", "", true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "HAS_DEPENDENTS", env.Error.Code)
	assert.Equal(t, "1 amostra(s)", env.Error.Details)
}

func TestAPI_InvalidPathID(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()

	rec := fx.do(http.MethodGet, "/api/cilindros/abc", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_CylinderLabel(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.cylinders.EXPECT().CylinderLabel(mock.Anything, fx.userID, int64(3)).Return([]byte("\x89PNG"), nil)

	rec := fx.do(http.MethodGet, "/api/cilindros/3/label", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestAPI_GetSample_NotFound(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.samples.EXPECT().GetSample(mock.Anything, fx.userID, int64(7)).Return(nil, domainerrors.ErrSampleNotFound)

	rec := fx.do(http.MethodGet, "/api/amostras/7", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SAMPLE_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestAPI_FlameTimeSummaryRoute(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.flames.EXPECT().Summary(mock.Anything, fx.userID).Return(&entity.ConsumptionSummary{
		TotalSeconds:    3600,
		TotalLiters:     90,
		LitersByElement: map[string]float64{"Cobre": 90},
		RecordCount:     1,
	}, nil)

	rec := fx.do(http.MethodGet, "/api/tempo-chama/summary", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary entity.ConsumptionSummary
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &summary))
	assert.InDelta(t, 90.0, summary.TotalLiters, 1e-9)
}

func TestAPI_CreateFlameTime_RequiresAllParts(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()

	rec := fx.do(http.MethodPost, "/api/tempo-chama", `{"hours":0,"seconds":10}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "minutes")
}

func TestAPI_CreateFlameTime_AcceptsZeroParts(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.flames.EXPECT().
		CreateFlameTime(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.CreateFlameTimeInput) bool {
			return *in.Hours == 0 && *in.Minutes == 0 && *in.Seconds == 30 && in.ElementID != nil && *in.ElementID == 2
		})).
		Return(&entity.FlameTimeView{FlameTimeRecord: &entity.FlameTimeRecord{ID: 4, Seconds: 30}, TotalSeconds: 30}, nil)

	rec := fx.do(http.MethodPost, "/api/tempo-chama", `{"hours":0,"minutes":0,"seconds":30,"element_id":2}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAPI_Login(t *testing.T) {
	fx := newAPIFixture(t)
	fx.auth.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "lab@example.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{Token: "tkn", User: &entity.User{ID: fx.userID, Email: "lab@example.com", Role: entity.RoleViewer}}, nil)

	rec := fx.do(http.MethodPost, "/api/auth/login", `{"email":"lab@example.com","password":"secret1"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Token string       `json:"token"`
		User  *entity.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "tkn", data.Token)
	assert.Equal(t, fx.userID, data.User.ID)
}

func TestAPI_Login_UpstreamMessage(t *testing.T) {
	fx := newAPIFixture(t)
	fx.auth.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.NewUpstreamError(nil, http.StatusUnauthorized, "Invalid login credentials"), "sign in"))

	rec := fx.do(http.MethodPost, "/api/auth/login", `{"email":"lab@example.com","password":"wrong"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "UPSTREAM_ERROR", env.Error.Code)
	assert.Equal(t, "Invalid login credentials", env.Error.Message)
}

func TestAPI_Register(t *testing.T) {
	fx := newAPIFixture(t)
	fx.auth.EXPECT().Register(mock.Anything, usecase.RegisterInput{Email: "new@example.com", Password: "secret1", Role: "admin"}).
		Return(&entity.User{ID: fx.userID}, nil)

	rec := fx.do(http.MethodPost, "/api/auth/register", `{"email":"new@example.com","password":"secret1","role":"admin"}`, false)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"user_id":"`+fx.userID.String()+`"}`, string(decode(t, rec).Data))
}

func TestAPI_Me(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()

	rec := fx.do(http.MethodGet, "/api/auth/me", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"`+fx.userID.String()+`","email":"lab@example.com"}`, string(decode(t, rec).Data))
}

func TestAPI_Stats(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.stats.EXPECT().Counts(mock.Anything, fx.userID).Return(&entity.RecordCounts{
		Cylinders: 2,
		Elements:  20,
		StatusCounts: map[entity.CylinderStatus]int64{
			entity.CylinderStatusActive:   1,
			entity.CylinderStatusInUse:    1,
			entity.CylinderStatusDepleted: 0,
			entity.CylinderStatusInactive: 0,
		},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/stats", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"cylinders":2,"elements":20,"samples":0,"flame_times":0,
		"status_counts":{"active":1,"in_use":1,"depleted":0,"inactive":0}
	}`, string(decode(t, rec).Data))
}

func TestAPI_ListCylinders_StatusFilter(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.cylinders.EXPECT().
		ListCylinders(mock.Anything, fx.userID, usecase.CylinderFilter{Status: ptr(entity.CylinderStatusDepleted)}).
		Return([]*entity.Cylinder{{ID: 3, Code: "CIL-003", Status: entity.CylinderStatusDepleted}}, nil)

	rec := fx.do(http.MethodGet, "/api/cilindros?status=depleted", "", true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var cylinders []entity.Cylinder
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &cylinders))
	require.Len(t, cylinders, 1)
	assert.Equal(t, "CIL-003", cylinders[0].Code)
}

func TestAPI_ListCylinders_NoFilter(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.cylinders.EXPECT().
		ListCylinders(mock.Anything, fx.userID, usecase.CylinderFilter{}).
		Return([]*entity.Cylinder{}, nil)

	rec := fx.do(http.MethodGet, "/api/cilindros", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_ListCylinders_UnknownStatus(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()

	rec := fx.do(http.MethodGet, "/api/cilindros?status=full", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "status inválido: full")
}

func TestAPI_PublicRoutes(t *testing.T) {
	fx := newAPIFixture(t)

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/health", "", false).Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/", "", false).Code)

	rec := fx.do(http.MethodGet, "/metrics", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "labgas_http_requests_total")
}

func TestAPI_UpdateSample_NullUnlinksReference(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.samples.EXPECT().
		UpdateSample(mock.Anything, fx.userID, int64(5), mock.MatchedBy(func(in *usecase.UpdateSampleInput) bool {
			return in.ClearCylinder && in.CylinderID == nil &&
				!in.ClearElement && in.ElementID != nil && *in.ElementID == 9 &&
				in.Quantity == nil
		})).
		Return(&entity.Sample{ID: 5, ElementID: ptr(int64(9))}, nil)

	rec := fx.do(http.MethodPut, "/api/amostras/5", `{"cylinder_id":null,"element_id":9}`, true)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAPI_UpdateSample_AbsentReferenceIsKept(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()
	fx.samples.EXPECT().
		UpdateSample(mock.Anything, fx.userID, int64(5), mock.MatchedBy(func(in *usecase.UpdateSampleInput) bool {
			return !in.ClearCylinder && !in.ClearElement && in.CylinderID == nil && in.ElementID == nil &&
				in.Quantity != nil && *in.Quantity == 3
		})).
		Return(&entity.Sample{ID: 5, Quantity: 3}, nil)

	rec := fx.do(http.MethodPut, "/api/amostras/5", `{"quantity":3}`, true)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAPI_UpdateSample_RejectsNonPositiveReference(t *testing.T) {
	fx := newAPIFixture(t)
	fx.authorize()

	rec := fx.do(http.MethodPut, "/api/amostras/5", `{"element_id":0}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "element_id")
}

func ptr[T any](v T) *T {
	return &v
}

func TestAPI_DeleteMissingRecord(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(fx *apiFixture)
		code   string
	}{
		{
			name:   "cylinder",
			path:   "/api/cilindros/404",
			expect: func(fx *apiFixture) { fx.cylinders.EXPECT().DeleteCylinder(mock.Anything, fx.userID, int64(404)).Return(domainerrors.ErrCylinderNotFound) },
			code:   "CYLINDER_NOT_FOUND",
		},
		{
			name:   "element",
			path:   "/api/elementos/404",
			expect: func(fx *apiFixture) { fx.elements.EXPECT().DeleteElement(mock.Anything, fx.userID, int64(404)).Return(domainerrors.ErrElementNotFound) },
			code:   "ELEMENT_NOT_FOUND",
		},
		{
			name:   "sample",
			path:   "/api/amostras/404",
			expect: func(fx *apiFixture) { fx.samples.EXPECT().DeleteSample(mock.Anything, fx.userID, int64(404)).Return(domainerrors.ErrSampleNotFound) },
			code:   "SAMPLE_NOT_FOUND",
		},
		{
			name:   "flame time",
			path:   "/api/tempo-chama/404",
			expect: func(fx *apiFixture) { fx.flames.EXPECT().DeleteFlameTime(mock.Anything, fx.userID, int64(404)).Return(domainerrors.ErrFlameTimeNotFound) },
			code:   "FLAME_TIME_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixture(t)
			fx.authorize()
			tt.expect(fx)

			rec := fx.do(http.MethodDelete, tt.path, "", true)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec).Error.Code)
		})
	}
}
