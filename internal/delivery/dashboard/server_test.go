package dashboard

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"labgas/config"
	"labgas/internal/delivery/dashboard/client"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "labgas_session"

// newDashboard serves the dashboard against a fake API built from routes.
func newDashboard(t *testing.T, routes map[string]http.HandlerFunc) *echo.Echo {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	apiServer := httptest.NewServer(mux)
	t.Cleanup(apiServer.Close)

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{Dashboard: &config.DashboardConfig{CookieName: cookieName}}
	cfg.Env.AppName = "LabGas Manager"

	e, err := NewEcho(cfg, logger, client.NewWithHTTPClient(apiServer.URL+"/api", apiServer.Client(), logger))
	require.NoError(t, err)

	return e
}

func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func serve(e *echo.Echo, method, target string, form url.Values, session bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if session {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "tkn"})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestDashboard_RedirectsWithoutSession(t *testing.T) {
	e := newDashboard(t, nil)

	for _, path := range []string{"/", "/cilindros", "/elementos", "/amostras", "/tempo-chama", "/perfil"} {
		rec := serve(e, http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), path)
	}
}

func TestDashboard_LoginPage(t *testing.T) {
	e := newDashboard(t, nil)

	rec := serve(e, http.MethodGet, "/login?ok=Conta+criada", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "LabGas Manager")
	assert.Contains(t, rec.Body.String(), `action="/login"`)
	assert.Contains(t, rec.Body.String(), "Conta criada")
	assert.NotContains(t, rec.Body.String(), `href="/cilindros"`)
}

func TestDashboard_LoginStoresToken(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": jsonReply(http.StatusOK, `{"data":{"token":"abc","user":{"email":"lab@example.com","role":"viewer"}},"meta":{}}`),
	})

	rec := serve(e, http.MethodPost, "/login", url.Values{"email": {"lab@example.com"}, "password": {"secret1"}}, false)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestDashboard_LoginShowsProviderMessage(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": jsonReply(http.StatusUnauthorized, `{"error":{"code":"INVALID_CREDENTIALS","message":"Credenciais inválidas"},"meta":{}}`),
	})

	rec := serve(e, http.MethodPost, "/login", url.Values{"email": {"lab@example.com"}, "password": {"bad"}}, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Credenciais inválidas")
	assert.Empty(t, rec.Result().Cookies())
}

func TestDashboard_ListsCylinders(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"GET /api/cilindros": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
			jsonReply(http.StatusOK, `{"data":[{"id":4,"code":"CIL-001","purchase_date":"2024-03-01","gas_kg":1,"liters_equivalent":956,"cost":290,"status":"in_use"}],"meta":{}}`)(w, r)
		},
	})

	rec := serve(e, http.MethodGet, "/cilindros", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "CIL-001")
	assert.Contains(t, body, "2024-03-01")
	assert.Contains(t, body, "R$ 290,00")
	assert.Contains(t, body, `<option value="in_use" selected>Em uso</option>`)
	assert.Contains(t, body, `href="/cilindros/4/etiqueta"`)
}

func TestDashboard_FiltersCylindersByStatus(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"GET /api/cilindros": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "depleted", r.URL.Query().Get("status"))
			jsonReply(http.StatusOK, `{"data":[],"meta":{}}`)(w, r)
		},
	})

	rec := serve(e, http.MethodGet, "/cilindros?status=depleted", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="depleted" selected>Esgotado</option>`)
	assert.Contains(t, body, "Nenhum cilindro com status Esgotado.")
}

func TestDashboard_RejectsUnknownStatusFilter(t *testing.T) {
	e := newDashboard(t, nil)

	rec := serve(e, http.MethodGet, "/cilindros?status=full", nil, true)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cilindros?err=Status+inv%C3%A1lido", rec.Header().Get(echo.HeaderLocation))
}

func TestDashboard_Overview(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"GET /api/stats": jsonReply(http.StatusOK, `{"data":{"cylinders":4,"elements":19,"samples":6,"flame_times":2,"status_counts":{"active":3,"in_use":0,"depleted":1,"inactive":0}},"meta":{}}`),
	})

	rec := serve(e, http.MethodGet, "/", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Visão geral")
	assert.Contains(t, body, "Ativos <strong>3</strong>")
	assert.Contains(t, body, "Total <strong>4</strong>")
	assert.Contains(t, body, `<a href="/cilindros?status=depleted">Esgotado</a>`)
	assert.Contains(t, body, "75,0%")
	assert.Contains(t, body, "25,0%")
	assert.Less(t, strings.Index(body, ">Ativo<"), strings.Index(body, ">Em uso<"))
}

func TestDashboard_DeleteCylinderConflictFlashesDetails(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"DELETE /api/cilindros/4": jsonReply(http.StatusConflict, `{"error":{"code":"HAS_DEPENDENTS","message":"Registro possui vínculos","details":"2 amostra(s)"},"meta":{}}`),
	})

	rec := serve(e, http.MethodPost, "/cilindros/4/excluir", url.Values{}, true)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/cilindros", location.Path)
	assert.Equal(t, "Registro possui vínculos: 2 amostra(s)", location.Query().Get("err"))
}

func TestDashboard_ExpiredSessionClearsCookie(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"GET /api/elementos": jsonReply(http.StatusUnauthorized, `{"error":{"code":"TOKEN_EXPIRED","message":"Token expirado"},"meta":{}}`),
	})

	rec := serve(e, http.MethodGet, "/elementos", nil, true)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderLocation), "/login?"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestDashboard_CreateFlameTimeSendsParts(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"POST /api/tempo-chama": func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, `{"hours":0,"minutes":2,"seconds":30,"cylinder_id":null,"element_id":7}`, string(raw))
			jsonReply(http.StatusCreated, `{"data":{"id":1},"meta":{}}`)(w, r)
		},
	})

	rec := serve(e, http.MethodPost, "/tempo-chama", url.Values{
		"hours": {"0"}, "minutes": {"2"}, "seconds": {"30"}, "cylinder_id": {""}, "element_id": {"7"},
	}, true)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "Tempo registrado", location.Query().Get("ok"))
}

func TestDashboard_CreateSampleRejectsBadNumber(t *testing.T) {
	e := newDashboard(t, nil)

	rec := serve(e, http.MethodPost, "/amostras", url.Values{"date": {"2024-03-01"}, "time": {"10:00"}, "quantity": {"dez"}}, true)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "quantity inválido", location.Query().Get("err"))
}

func TestDashboard_FlameTimeSummary(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"GET /api/tempo-chama": jsonReply(http.StatusOK, `{"data":[{"id":1,"hours":0,"minutes":2,"seconds":0,"element_id":7,"total_seconds":120,"consumption_liters":3,"element_name":"Cobre","created_at":"2024-03-01T10:00:00Z"}],"meta":{}}`),
		"GET /api/tempo-chama/summary": jsonReply(http.StatusOK, `{"data":{"total_seconds":180,"total_liters":4,"total_kilograms":0.004,"liters_by_element":{"Cobre":3,"Sem elemento":1},"liters_by_cylinder":{"Sem cilindro":4},"record_count":2},"meta":{}}`),
		"GET /api/cilindros": jsonReply(http.StatusOK, `{"data":[],"meta":{}}`),
		"GET /api/elementos": jsonReply(http.StatusOK, `{"data":[{"id":7,"name":"Cobre","consumption_lpm":1.5}],"meta":{}}`),
	})

	rec := serve(e, http.MethodGet, "/tempo-chama", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "00:03:00")
	assert.Contains(t, body, "4,00")
	assert.Contains(t, body, "75,0%")
	assert.Contains(t, body, "Sem cilindro")
	assert.Less(t, strings.Index(body, "<td>Cobre</td>"), strings.Index(body, "<td>Sem elemento</td>"))
}

func TestDashboard_Profile(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"GET /api/auth/me": jsonReply(http.StatusOK, `{"data":{"user_id":"6f1c1d5e-8a57-4c8e-9d47-52c3a1f0b3aa","email":"lab@example.com"},"meta":{}}`),
		"GET /api/stats":   jsonReply(http.StatusOK, `{"data":{"cylinders":2,"elements":11,"samples":5,"flame_times":3},"meta":{}}`),
	})

	rec := serve(e, http.MethodGet, "/perfil", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lab@example.com")
	assert.Contains(t, rec.Body.String(), "<strong>11</strong>")
}

func TestDashboard_Logout(t *testing.T) {
	e := newDashboard(t, map[string]http.HandlerFunc{
		"POST /api/auth/logout": jsonReply(http.StatusOK, `{"data":{"message":"ok"},"meta":{}}`),
	})

	rec := serve(e, http.MethodPost, "/logout", url.Values{}, true)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Negative(t, rec.Result().Cookies()[0].MaxAge)
}

func TestDashboard_Healthz(t *testing.T) {
	e := newDashboard(t, nil)

	rec := serve(e, http.MethodGet, "/healthz", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
