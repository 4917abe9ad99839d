package dashboard

import (
	"net/http"
	"time"

	"labgas/config"

	"github.com/labstack/echo/v4"
)

const sessionTokenKey = "dashboard_token"

// sessions keeps the API token in an HttpOnly cookie.
type sessions struct {
	name   string
	secure bool
	maxAge time.Duration
}

func newSessions(cfg *config.Config) *sessions {
	s := &sessions{name: "labgas_session", maxAge: cfg.SecretKey.TTL}
	if cfg.Dashboard != nil {
		if cfg.Dashboard.CookieName != "" {
			s.name = cfg.Dashboard.CookieName
		}
		s.secure = cfg.Dashboard.SecureCookie
	}

	return s
}

func (s *sessions) set(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.maxAge > 0 {
		cookie.MaxAge = int(s.maxAge.Seconds())
	}

	c.SetCookie(cookie)
}

func (s *sessions) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// require redirects to the login page unless the request carries a session.
func (s *sessions) require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(s.name)
		if err != nil || cookie.Value == "" {
			return c.Redirect(http.StatusSeeOther, "/login")
		}

		c.Set(sessionTokenKey, cookie.Value)

		return next(c)
	}
}

func token(c echo.Context) string {
	t, _ := c.Get(sessionTokenKey).(string)

	return t
}
