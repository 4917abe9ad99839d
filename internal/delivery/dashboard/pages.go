package dashboard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"labgas/internal/delivery/api/router/handler"
	"labgas/internal/delivery/dashboard/client"
	"labgas/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// API is the part of the REST API the dashboard drives.
type API interface {
	Login(ctx context.Context, email, password string) (*client.Session, error)
	Register(ctx context.Context, req handler.RegisterRequest) error
	ResetPassword(ctx context.Context, email string) error
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*entity.Identity, error)
	Stats(ctx context.Context, token string) (*entity.RecordCounts, error)

	Cylinders(ctx context.Context, token string, status entity.CylinderStatus) ([]*entity.Cylinder, error)
	CreateCylinder(ctx context.Context, token string, req handler.CreateCylinderRequest) (*entity.Cylinder, error)
	UpdateCylinder(ctx context.Context, token string, id int64, req handler.UpdateCylinderRequest) error
	DeleteCylinder(ctx context.Context, token string, id int64) error
	CylinderLabel(ctx context.Context, token string, id int64) ([]byte, error)

	Elements(ctx context.Context, token string) ([]*entity.Element, error)
	CreateElement(ctx context.Context, token string, req handler.CreateElementRequest) error
	UpdateElement(ctx context.Context, token string, id int64, req handler.UpdateElementRequest) error
	DeleteElement(ctx context.Context, token string, id int64) error

	Samples(ctx context.Context, token string) ([]*entity.SampleView, error)
	CreateSample(ctx context.Context, token string, req handler.CreateSampleRequest) error
	DeleteSample(ctx context.Context, token string, id int64) error

	FlameTimes(ctx context.Context, token string) ([]*entity.FlameTimeView, error)
	CreateFlameTime(ctx context.Context, token string, req handler.CreateFlameTimeRequest) error
	DeleteFlameTime(ctx context.Context, token string, id int64) error
	FlameTimeSummary(ctx context.Context, token string) (*entity.ConsumptionSummary, error)
}

// page is the data every template receives.
type page struct {
	Title   string
	Active  string
	AppName string
	Notice  string
	Error   string
	Data    any
}

type pages struct {
	api      API
	sessions *sessions
	appName  string
}

func (p *pages) render(c echo.Context, status int, name, title string, data any) error {
	return c.Render(status, name, page{
		Title:   title,
		Active:  name,
		AppName: p.appName,
		Notice:  c.QueryParam("ok"),
		Error:   c.QueryParam("err"),
		Data:    data,
	})
}

func (p *pages) renderError(c echo.Context, name, title, message string) error {
	return c.Render(http.StatusOK, name, page{
		Title:   title,
		Active:  name,
		AppName: p.appName,
		Error:   message,
	})
}

// redirect sends the browser to target with a notice or error in the query.
func redirect(c echo.Context, target, key, message string) error {
	if message != "" {
		target += "?" + url.Values{key: {message}}.Encode()
	}

	return c.Redirect(http.StatusSeeOther, target)
}

// fail maps an API failure to a redirect. An expired session goes back to login.
func (p *pages) fail(c echo.Context, err error, target string) error {
	if client.IsUnauthorized(err) {
		p.sessions.clear(c)

		return redirect(c, "/login", "err", "Sessão expirada, entre novamente")
	}

	return redirect(c, target, "err", describe(err))
}

func describe(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Details != "" {
			return apiErr.Message + ": " + apiErr.Details
		}

		return apiErr.Message
	}

	return "Não foi possível contatar a API"
}

// --- form helpers ---

func formFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return nil, errors.Errorf("%s inválido", name)
	}

	return &v, nil
}

func formInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Errorf("%s inválido", name)
	}

	return &v, nil
}

func formID(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.Errorf("%s inválido", name)
	}

	return &v, nil
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	return id, err == nil && id > 0
}

// --- auth pages ---

func (p *pages) loginPage(c echo.Context) error {
	return p.render(c, http.StatusOK, "login", "Entrar", nil)
}

func (p *pages) login(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return p.renderError(c, "login", "Entrar", "Email e senha são obrigatórios")
	}

	session, err := p.api.Login(c.Request().Context(), email, password)
	if err != nil {
		return p.renderError(c, "login", "Entrar", describe(err))
	}

	p.sessions.set(c, session.Token)

	return c.Redirect(http.StatusSeeOther, "/")
}

func (p *pages) registerPage(c echo.Context) error {
	return p.render(c, http.StatusOK, "register", "Criar conta", nil)
}

func (p *pages) register(c echo.Context) error {
	req := handler.RegisterRequest{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
		Name:     strings.TrimSpace(c.FormValue("name")),
		Role:     c.FormValue("role"),
	}

	if req.Password != c.FormValue("confirm") {
		return p.renderError(c, "register", "Criar conta", "As senhas não conferem")
	}

	if err := p.api.Register(c.Request().Context(), req); err != nil {
		return p.renderError(c, "register", "Criar conta", describe(err))
	}

	return redirect(c, "/login", "ok", "Conta criada, faça login")
}

func (p *pages) resetPassword(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	if email == "" {
		return redirect(c, "/login", "err", "Informe o email")
	}

	if err := p.api.ResetPassword(c.Request().Context(), email); err != nil {
		return redirect(c, "/login", "err", describe(err))
	}

	return redirect(c, "/login", "ok", "Enviamos um email de recuperação")
}

func (p *pages) logout(c echo.Context) error {
	_ = p.api.Logout(c.Request().Context(), token(c))
	p.sessions.clear(c)

	return c.Redirect(http.StatusSeeOther, "/login")
}

// --- overview ---

// statusCount is one row of the cylinder status breakdown.
type statusCount struct {
	Status  entity.CylinderStatus
	Count   int64
	Percent float64
}

func (p *pages) overview(c echo.Context) error {
	stats, err := p.api.Stats(c.Request().Context(), token(c))
	if err != nil {
		return p.fail(c, err, "/login")
	}

	breakdown := make([]statusCount, 0, len(entity.CylinderStatuses))
	for _, status := range entity.CylinderStatuses {
		n := stats.StatusCounts[status]
		breakdown = append(breakdown, statusCount{
			Status:  status,
			Count:   n,
			Percent: entity.Percentage(float64(n), float64(stats.Cylinders)),
		})
	}

	return p.render(c, http.StatusOK, "overview", "Visão geral", map[string]any{
		"Stats":           stats,
		"ActiveCylinders": stats.StatusCounts[entity.CylinderStatusActive],
		"Breakdown":       breakdown,
	})
}

// --- cylinders ---

func (p *pages) cylinders(c echo.Context) error {
	status := entity.CylinderStatus(c.QueryParam("status"))
	if status != "" && !status.IsValid() {
		return redirect(c, "/cilindros", "err", "Status inválido")
	}

	cylinders, err := p.api.Cylinders(c.Request().Context(), token(c), status)
	if err != nil {
		return p.fail(c, err, "/perfil")
	}

	return p.render(c, http.StatusOK, "cylinders", "Cilindros", map[string]any{
		"Cylinders": cylinders,
		"Filter":    status,
	})
}

func (p *pages) createCylinder(c echo.Context) error {
	gasKg, err := formFloat(c, "gas_kg")
	if err != nil {
		return redirect(c, "/cilindros", "err", err.Error())
	}
	cost, err := formFloat(c, "cost")
	if err != nil {
		return redirect(c, "/cilindros", "err", err.Error())
	}

	req := handler.CreateCylinderRequest{
		Code:         strings.TrimSpace(c.FormValue("code")),
		PurchaseDate: c.FormValue("purchase_date"),
		GasKg:        gasKg,
		Cost:         cost,
	}
	if status := c.FormValue("status"); status != "" {
		req.Status = &status
	}

	if _, err := p.api.CreateCylinder(c.Request().Context(), token(c), req); err != nil {
		return p.fail(c, err, "/cilindros")
	}

	return redirect(c, "/cilindros", "ok", "Cilindro cadastrado")
}

func (p *pages) updateCylinder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return redirect(c, "/cilindros", "err", "Cilindro inválido")
	}

	gasKg, err := formFloat(c, "gas_kg")
	if err != nil {
		return redirect(c, "/cilindros", "err", err.Error())
	}

	req := handler.UpdateCylinderRequest{GasKg: gasKg}
	if status := c.FormValue("status"); status != "" {
		req.Status = &status
	}

	if err := p.api.UpdateCylinder(c.Request().Context(), token(c), id, req); err != nil {
		return p.fail(c, err, "/cilindros")
	}

	return redirect(c, "/cilindros", "ok", "Cilindro atualizado")
}

func (p *pages) deleteCylinder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return redirect(c, "/cilindros", "err", "Cilindro inválido")
	}

	if err := p.api.DeleteCylinder(c.Request().Context(), token(c), id); err != nil {
		return p.fail(c, err, "/cilindros")
	}

	return redirect(c, "/cilindros", "ok", "Cilindro removido")
}

func (p *pages) cylinderLabel(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	png, err := p.api.CylinderLabel(c.Request().Context(), token(c), id)
	if err != nil {
		return p.fail(c, err, "/cilindros")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// --- elements ---

func (p *pages) elements(c echo.Context) error {
	elements, err := p.api.Elements(c.Request().Context(), token(c))
	if err != nil {
		return p.fail(c, err, "/perfil")
	}

	return p.render(c, http.StatusOK, "elements", "Elementos", map[string]any{
		"Elements": elements,
	})
}

func (p *pages) createElement(c echo.Context) error {
	rate, err := formFloat(c, "consumption_lpm")
	if err != nil {
		return redirect(c, "/elementos", "err", err.Error())
	}

	req := handler.CreateElementRequest{
		Name:           strings.TrimSpace(c.FormValue("name")),
		ConsumptionLPM: rate,
	}

	if err := p.api.CreateElement(c.Request().Context(), token(c), req); err != nil {
		return p.fail(c, err, "/elementos")
	}

	return redirect(c, "/elementos", "ok", "Elemento cadastrado")
}

func (p *pages) updateElement(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return redirect(c, "/elementos", "err", "Elemento inválido")
	}

	rate, err := formFloat(c, "consumption_lpm")
	if err != nil {
		return redirect(c, "/elementos", "err", err.Error())
	}

	if err := p.api.UpdateElement(c.Request().Context(), token(c), id, handler.UpdateElementRequest{ConsumptionLPM: rate}); err != nil {
		return p.fail(c, err, "/elementos")
	}

	return redirect(c, "/elementos", "ok", "Elemento atualizado")
}

func (p *pages) deleteElement(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return redirect(c, "/elementos", "err", "Elemento inválido")
	}

	if err := p.api.DeleteElement(c.Request().Context(), token(c), id); err != nil {
		return p.fail(c, err, "/elementos")
	}

	return redirect(c, "/elementos", "ok", "Elemento removido")
}

// --- samples ---

// references loads the cylinder and element choices of the entry forms.
func (p *pages) references(c echo.Context) ([]*entity.Cylinder, []*entity.Element, error) {
	cylinders, err := p.api.Cylinders(c.Request().Context(), token(c), "")
	if err != nil {
		return nil, nil, err
	}

	elements, err := p.api.Elements(c.Request().Context(), token(c))
	if err != nil {
		return nil, nil, err
	}

	return cylinders, elements, nil
}

func (p *pages) samples(c echo.Context) error {
	samples, err := p.api.Samples(c.Request().Context(), token(c))
	if err != nil {
		return p.fail(c, err, "/perfil")
	}

	cylinders, elements, err := p.references(c)
	if err != nil {
		return p.fail(c, err, "/perfil")
	}

	return p.render(c, http.StatusOK, "samples", "Amostras", map[string]any{
		"Samples":   samples,
		"Cylinders": cylinders,
		"Elements":  elements,
	})
}

func (p *pages) createSample(c echo.Context) error {
	req := handler.CreateSampleRequest{
		Date: c.FormValue("date"),
		Time: c.FormValue("time"),
	}

	var err error
	if req.CylinderID, err = formID(c, "cylinder_id"); err != nil {
		return redirect(c, "/amostras", "err", err.Error())
	}
	if req.ElementID, err = formID(c, "element_id"); err != nil {
		return redirect(c, "/amostras", "err", err.Error())
	}
	if req.FlameTimeSeconds, err = formInt(c, "flame_time_seconds"); err != nil {
		return redirect(c, "/amostras", "err", err.Error())
	}
	if req.Quantity, err = formInt(c, "quantity"); err != nil {
		return redirect(c, "/amostras", "err", err.Error())
	}

	if err := p.api.CreateSample(c.Request().Context(), token(c), req); err != nil {
		return p.fail(c, err, "/amostras")
	}

	return redirect(c, "/amostras", "ok", "Amostra registrada")
}

func (p *pages) deleteSample(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return redirect(c, "/amostras", "err", "Amostra inválida")
	}

	if err := p.api.DeleteSample(c.Request().Context(), token(c), id); err != nil {
		return p.fail(c, err, "/amostras")
	}

	return redirect(c, "/amostras", "ok", "Amostra removida")
}

// --- flame times ---

func (p *pages) flameTimes(c echo.Context) error {
	records, err := p.api.FlameTimes(c.Request().Context(), token(c))
	if err != nil {
		return p.fail(c, err, "/perfil")
	}

	summary, err := p.api.FlameTimeSummary(c.Request().Context(), token(c))
	if err != nil {
		return p.fail(c, err, "/perfil")
	}

	cylinders, elements, err := p.references(c)
	if err != nil {
		return p.fail(c, err, "/perfil")
	}

	return p.render(c, http.StatusOK, "flame_times", "Tempo de chama", map[string]any{
		"Records":   records,
		"Summary":   summary,
		"Cylinders": cylinders,
		"Elements":  elements,
	})
}

func (p *pages) createFlameTime(c echo.Context) error {
	var (
		req handler.CreateFlameTimeRequest
		err error
	)

	if req.Hours, err = formInt(c, "hours"); err != nil {
		return redirect(c, "/tempo-chama", "err", err.Error())
	}
	if req.Minutes, err = formInt(c, "minutes"); err != nil {
		return redirect(c, "/tempo-chama", "err", err.Error())
	}
	if req.Seconds, err = formInt(c, "seconds"); err != nil {
		return redirect(c, "/tempo-chama", "err", err.Error())
	}
	if req.CylinderID, err = formID(c, "cylinder_id"); err != nil {
		return redirect(c, "/tempo-chama", "err", err.Error())
	}
	if req.ElementID, err = formID(c, "element_id"); err != nil {
		return redirect(c, "/tempo-chama", "err", err.Error())
	}

	if err := p.api.CreateFlameTime(c.Request().Context(), token(c), req); err != nil {
		return p.fail(c, err, "/tempo-chama")
	}

	return redirect(c, "/tempo-chama", "ok", "Tempo registrado")
}

func (p *pages) deleteFlameTime(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return redirect(c, "/tempo-chama", "err", "Registro inválido")
	}

	if err := p.api.DeleteFlameTime(c.Request().Context(), token(c), id); err != nil {
		return p.fail(c, err, "/tempo-chama")
	}

	return redirect(c, "/tempo-chama", "ok", "Registro removido")
}

// --- profile ---

func (p *pages) profile(c echo.Context) error {
	me, err := p.api.Me(c.Request().Context(), token(c))
	if err != nil {
		return p.fail(c, err, "/login")
	}

	stats, err := p.api.Stats(c.Request().Context(), token(c))
	if err != nil {
		return p.fail(c, err, "/login")
	}

	return p.render(c, http.StatusOK, "profile", "Perfil", map[string]any{
		"Me":    me,
		"Stats": stats,
	})
}
