package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/stackledger/stackledger/internal/inventory/view"
	"github.com/stackledger/stackledger/pkg/httpx"
	"github.com/stackledger/stackledger/pkg/invsdk"
	"github.com/stackledger/stackledger/pkg/slogx"
)

// errorPageData feeds the error template. Digest is the request ID so a user
// report can be matched to the single diagnostic log line.
type errorPageData struct {
	Layout     view.Layout
	RetryPath  string
	Digest     string
	Detail     string
	ShowDetail bool
}

// RecoverMiddleware converts a handler panic into a rendered error page with
// retry and go-home actions. API routes get a JSON 500 instead. Each panic
// produces exactly one log entry.
func RecoverMiddleware(renderer *view.Renderer, env string, base view.Layout) httpx.Middleware {
	showDetail := env == "dev"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				digest := slogx.RequestIDFromContext(ctx)
				slogx.FromContext(ctx).Error("handler panic",
					"digest", digest,
					"panic", rec,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				if strings.HasPrefix(r.URL.Path, "/api/") {
					invsdk.ErrServerError.WriteError(w)
					return
				}

				layout := base
				layout.Title = "Error"
				data := errorPageData{
					Layout:     layout.Fill(r),
					RetryPath:  r.URL.RequestURI(),
					Digest:     digest,
					Detail:     fmt.Sprintf("%v", rec),
					ShowDetail: showDetail,
				}
				if err := renderer.Render(w, http.StatusInternalServerError, view.PageError, data); err != nil {
					// Headers may already be out; a plain fallback is all
					// that is left.
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
