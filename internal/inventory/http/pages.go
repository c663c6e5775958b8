package http

import (
	"errors"
	"net/http"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/internal/inventory/view"
	"github.com/stackledger/stackledger/pkg/slogx"
)

// PagesHandler serves the HTML pages. Every page shares the layout chrome;
// the identity middleware has already resolved who is looking.
type PagesHandler struct {
	Renderer           *view.Renderer
	AssetService       *service.AssetService
	UserService        *service.UserService
	ApplicationService *service.ApplicationService
	ControllerService  *service.ControllerService
	ReportService      *service.ReportService

	Version     string
	AuthEnabled bool
}

func (h *PagesHandler) layout(title string, r *http.Request) view.Layout {
	return view.Layout{
		Title:       title,
		Version:     h.Version,
		AuthEnabled: h.AuthEnabled,
	}.Fill(r)
}

// render panics on template failure so the recover boundary produces the
// error page with its retry and go-home actions.
func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	if err := h.Renderer.Render(w, http.StatusOK, page, data); err != nil {
		panic(err)
	}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.ReportService.StatusCounts(ctx)
	if err != nil {
		panic(err)
	}
	recent, err := h.ReportService.RecentChanges(ctx, 10)
	if err != nil {
		panic(err)
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	h.render(w, r, view.PageHome, struct {
		Layout        view.Layout
		TotalAssets   int
		StatusCounts  map[string]int
		RecentChanges []domain.AuditEntry
	}{
		Layout:        h.layout("Overview", r),
		TotalAssets:   total,
		StatusCounts:  counts,
		RecentChanges: recent,
	})
}

func (h *PagesHandler) Assets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.AssetFilter{
		Search: q.Get("q"),
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Offset: queryInt(q.Get("offset")),
	}

	assets, total, err := h.AssetService.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			// A hand-edited query string; show the unfiltered list.
			assets, total, err = h.AssetService.List(r.Context(), store.AssetFilter{})
			filter = store.AssetFilter{}
		}
		if err != nil {
			panic(err)
		}
	}

	h.render(w, r, view.PageAssets, struct {
		Layout         view.Layout
		Assets         []domain.Asset
		Total          int
		Query          string
		SelectedStatus string
		SelectedType   string
		Statuses       []string
		Types          []string
	}{
		Layout:         h.layout("Assets", r),
		Assets:         assets,
		Total:          total,
		Query:          filter.Search,
		SelectedStatus: filter.Status,
		SelectedType:   filter.Type,
		Statuses: []string{
			domain.AssetStatusActive,
			domain.AssetStatusMaintenance,
			domain.AssetStatusRetired,
		},
		Types: []string{
			domain.AssetTypeServer,
			domain.AssetTypeWorkstation,
			domain.AssetTypeNetwork,
			domain.AssetTypeStorage,
		},
	})
}

func (h *PagesHandler) AssetDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	asset, err := h.AssetService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		panic(err)
	}

	controllers, err := h.ControllerService.ListForAsset(ctx, id)
	if err != nil {
		panic(err)
	}

	var owner *domain.User
	if asset.OwnerID != "" {
		u, err := h.UserService.Get(ctx, asset.OwnerID)
		switch {
		case err == nil:
			owner = &u
		case errors.Is(err, store.ErrNotFound):
			// Stale reference; render without an owner.
		default:
			slogx.FromContext(ctx).Warn("loading asset owner failed",
				"asset_id", id, "owner_id", asset.OwnerID, "err", err)
		}
	}

	h.render(w, r, view.PageAssetDetail, struct {
		Layout      view.Layout
		Asset       domain.Asset
		Owner       *domain.User
		Controllers []domain.ManagementController
	}{
		Layout:      h.layout(asset.Hostname, r),
		Asset:       asset,
		Owner:       owner,
		Controllers: controllers,
	})
}

func (h *PagesHandler) Applications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.ApplicationService.List(r.Context())
	if err != nil {
		panic(err)
	}

	h.render(w, r, view.PageApplications, struct {
		Layout       view.Layout
		Applications []domain.Application
	}{
		Layout:       h.layout("Applications", r),
		Applications: apps,
	})
}

func (h *PagesHandler) Users(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")

	users, total, err := h.UserService.List(r.Context(), store.UserFilter{Search: search})
	if err != nil {
		panic(err)
	}

	h.render(w, r, view.PageUsers, struct {
		Layout view.Layout
		Users  []domain.User
		Total  int
		Query  string
	}{
		Layout: h.layout("People", r),
		Users:  users,
		Total:  total,
		Query:  search,
	})
}

func (h *PagesHandler) Reports(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageReports, struct {
		Layout  view.Layout
		Reports []domain.ReportDescriptor
	}{
		Layout:  h.layout("Reports", r),
		Reports: h.ReportService.Catalogue(),
	})
}
