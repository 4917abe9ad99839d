package dashboard

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"labgas/internal/domain/entity"
	"labgas/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// share is one labelled slice of a consumption breakdown.
type share struct {
	Label   string
	Liters  float64
	Percent float64
}

var funcs = template.FuncMap{
	"clock":    util.FormatClock,
	"decimal":  util.FormatDecimal,
	"currency": util.FormatCurrency,
	"kg":       entity.KilogramsForLiters,
	"shares":   shares,
	"statuses": func() []entity.CylinderStatus { return entity.CylinderStatuses },
	"statusLabel": func(s entity.CylinderStatus) string {
		return statusLabels[s]
	},
}

var statusLabels = map[entity.CylinderStatus]string{
	entity.CylinderStatusActive:   "Ativo",
	entity.CylinderStatusInUse:    "Em uso",
	entity.CylinderStatusDepleted: "Esgotado",
	entity.CylinderStatusInactive: "Inativo",
}

// shares orders a breakdown by volume, largest first.
func shares(byLabel map[string]float64, total float64) []share {
	out := make([]share, 0, len(byLabel))
	for label, liters := range byLabel {
		out = append(out, share{Label: label, Liters: liters, Percent: entity.Percentage(liters, total)})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Liters == out[j].Liters {
			return out[i].Label < out[j].Label
		}

		return out[i].Liters > out[j].Liters
	})

	return out
}

// renderer holds one template set per page, each joined with the layout.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	r := &renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}

		tmpl, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", file)
		}

		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = tmpl
	}

	return r, nil
}

// Render implements echo.Renderer. name is the page file name without extension.
func (r *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	return tmpl.ExecuteTemplate(w, path.Base(layoutFile), data)
}
