// Package view renders the server-side HTML pages. Templates are embedded at
// build time and parsed once at startup; every page shares the layout chrome
// (header, nav, footer) and fills its own content block.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/stackledger/stackledger/internal/inventory/authn"
	"github.com/stackledger/stackledger/internal/inventory/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages known to the renderer.
const (
	PageHome         = "home"
	PageAssets       = "assets"
	PageAssetDetail  = "asset_detail"
	PageApplications = "applications"
	PageUsers        = "users"
	PageReports      = "reports"
	PageError        = "error"
)

var pageFiles = []string{
	PageHome, PageAssets, PageAssetDetail, PageApplications,
	PageUsers, PageReports, PageError,
}

// Layout is the chrome every page receives. Handlers embed it in their page
// data; Fill populates the identity-dependent fields from the request context.
type Layout struct {
	Title       string
	Version     string
	AuthEnabled bool
	Identity    *authn.Identity
	CanEdit     bool
}

// Fill resolves the per-request fields. The struct is passed by value so a
// handler's static Layout (title, version, flag) is untouched.
func (l Layout) Fill(r *http.Request) Layout {
	l.Identity = authn.IdentityFromContext(r.Context())
	l.CanEdit = authn.CanEditAssets(l.Identity)
	return l
}

// Renderer holds the parsed template set. Construct once with New and share
// across handlers; it is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates. Each page is parsed together with the
// layout so its content block can be resolved.
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes a full page. An unknown page name is a programming error and
// returns an error rather than panicking.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return t.ExecuteTemplate(w, "layout.html", data)
}

// RenderTo executes a page into an arbitrary writer. Tests use it to assert
// on markup without a ResponseWriter.
func (r *Renderer) RenderTo(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

var funcs = template.FuncMap{
	"statusBadge": statusBadge,
}

// statusBadge maps a domain status to a CSS class suffix.
func statusBadge(status string) string {
	switch status {
	case domain.AssetStatusActive, domain.ReportStatusAvailable:
		return "ok"
	case domain.AssetStatusMaintenance, domain.ReportStatusComingSoon:
		return "warn"
	case domain.AssetStatusRetired:
		return "muted"
	}
	return "muted"
}
