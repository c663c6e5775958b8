package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/authn"
	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/internal/inventory/view"
	"github.com/stackledger/stackledger/pkg/httpx"
	"github.com/stackledger/stackledger/pkg/slogx"

	_ "github.com/stackledger/stackledger/api/web" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	provider     authn.ProviderConfig
	renderer     *view.Renderer
	env          string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	AssetService       *service.AssetService
	UserService        *service.UserService
	ApplicationService *service.ApplicationService
	ControllerService  *service.ControllerService
	APIKeyService      *service.APIKeyService
	ReportService      *service.ReportService
}

func NewRouter(
	provider authn.ProviderConfig,
	renderer *view.Renderer,
	env, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		provider:     provider,
		renderer:     renderer,
		env:          env,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain. The recover boundary sits inside the
	// logging middleware so a panic log carries the request ID.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		RecoverMiddleware(r.renderer, r.env, view.Layout{
			Version:     r.buildVersion,
			AuthEnabled: r.provider.Enabled(),
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerAssets()
	r.registerDirectory()
	r.registerAPIKeys()
	r.registerAudit()
	r.registerSystem()

	r.Mux.Handle("GET /static/", view.StaticHandler())
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			StackLedger Inventory API
//	@version		0.1.0
//	@description	Computer inventory tracking: assets, asset owners, applications,
//	@description	out-of-band management controllers and a change audit trail.
//	@description
//	@description	Mutating endpoints authenticate with an API key in the X-API-Key header.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	APIKeyAuth
//	@in							header
//	@name						X-API-Key
//	@description				API key minted by the service operator.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// identity returns the page authentication middleware: bearer verification
// when the provider is configured, the demo authenticator otherwise.
func (r *Router) identity() httpx.Middleware {
	return authn.Middleware(r.provider, &authn.DemoAuthenticator{
		Delay: 10 * time.Millisecond,
	})
}

func (r *Router) registerPages() {
	h := &PagesHandler{
		Renderer:           r.renderer,
		AssetService:       r.AssetService,
		UserService:        r.UserService,
		ApplicationService: r.ApplicationService,
		ControllerService:  r.ControllerService,
		ReportService:      r.ReportService,
		Version:            r.buildVersion,
		AuthEnabled:        r.provider.Enabled(),
	}

	page := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.identity(),
			httpx.RateLimitByIP(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /{$}", page(h.Home))
	r.Mux.Handle("GET /assets", page(h.Assets))
	r.Mux.Handle("GET /assets/{id}", page(h.AssetDetail))
	r.Mux.Handle("GET /applications", page(h.Applications))
	r.Mux.Handle("GET /users", page(h.Users))
	r.Mux.Handle("GET /reports", page(h.Reports))
}

func (r *Router) registerAssets() {
	h := &AssetsHandler{
		AssetService:      r.AssetService,
		ControllerService: r.ControllerService,
	}
	keyed := APIKeyMiddleware(r.APIKeyService)

	// Reads are open; writes require an API key and a stricter limit.
	r.Mux.Handle("GET /api/v1/assets",
		httpx.Chain(http.HandlerFunc(h.List),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/assets/{id}",
		httpx.Chain(http.HandlerFunc(h.Get),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/assets",
		httpx.Chain(http.HandlerFunc(h.Upsert),
			keyed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /api/v1/assets/{id}",
		httpx.Chain(http.HandlerFunc(h.Update),
			keyed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/assets/{id}",
		httpx.Chain(http.HandlerFunc(h.Delete),
			keyed,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /api/v1/assets/{id}/controllers",
		httpx.Chain(http.HandlerFunc(h.ListControllers),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/assets/{id}/controllers",
		httpx.Chain(http.HandlerFunc(h.AttachController),
			keyed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/controllers/{id}",
		httpx.Chain(http.HandlerFunc(h.DetachController),
			keyed,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerDirectory() {
	h := &DirectoryHandler{
		UserService:        r.UserService,
		ApplicationService: r.ApplicationService,
	}
	keyed := APIKeyMiddleware(r.APIKeyService)

	r.Mux.Handle("GET /api/v1/users",
		httpx.Chain(http.HandlerFunc(h.ListUsers),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.GetUser),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/users",
		httpx.Chain(http.HandlerFunc(h.CreateUser),
			keyed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /api/v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.UpdateUser),
			keyed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.DeactivateUser),
			keyed,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /api/v1/applications",
		httpx.Chain(http.HandlerFunc(h.ListApplications),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/applications/{id}",
		httpx.Chain(http.HandlerFunc(h.GetApplication),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/applications",
		httpx.Chain(http.HandlerFunc(h.CreateApplication),
			keyed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /api/v1/applications/{id}",
		httpx.Chain(http.HandlerFunc(h.UpdateApplication),
			keyed,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/applications/{id}",
		httpx.Chain(http.HandlerFunc(h.DeleteApplication),
			keyed,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAPIKeys() {
	h := &APIKeysHandler{APIKeyService: r.APIKeyService}
	keyed := APIKeyMiddleware(r.APIKeyService)

	r.Mux.Handle("POST /api/v1/apikeys",
		httpx.Chain(http.HandlerFunc(h.Mint),
			keyed,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/apikeys/{id}",
		httpx.Chain(http.HandlerFunc(h.Revoke),
			keyed,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAudit() {
	h := &AuditHandler{ReportService: r.ReportService}

	r.Mux.Handle("GET /api/v1/audit",
		httpx.Chain(http.HandlerFunc(h.ListEntries),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/reports",
		httpx.Chain(http.HandlerFunc(h.ListReports),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.store, r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /version",
		httpx.Chain(VersionHandler(r.buildVersion, r.env, r.provider.Enabled()),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
