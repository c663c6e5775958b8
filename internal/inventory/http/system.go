package http

import (
	"net/http"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/httpx"
	"github.com/stackledger/stackledger/pkg/invsdk"
	"github.com/stackledger/stackledger/pkg/slogx"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	invsdk.HealthResponse
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, invsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns 200 only when the database answers a ping.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	invsdk.HealthResponse
//	@Failure		503	{object}	invsdk.HealthResponse
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store, startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := invsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness ping failed", "err", err)
			resp.Status = "degraded"
			httpx.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

// VersionHandler godoc
//
//	@Summary	Build and configuration summary
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	invsdk.VersionResponse
//	@Router		/version [get].
func VersionHandler(version, env string, authEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, invsdk.VersionResponse{
			Version:     version,
			Env:         env,
			AuthEnabled: authEnabled,
		})
	}
}
