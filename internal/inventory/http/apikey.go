package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/pkg/httpx"
	"github.com/stackledger/stackledger/pkg/invsdk"
	"github.com/stackledger/stackledger/pkg/slogx"
)

// APIKeyMiddleware authenticates mutating API requests with the X-API-Key
// header. The verified key id becomes the caller identity for audit records
// and per-user rate limiting.
func APIKeyMiddleware(keys *service.APIKeyService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			keyID, err := keys.Verify(ctx, r.Header.Get("X-API-Key"))
			if err != nil {
				if errors.Is(err, service.ErrInvalidAPIKey) {
					invsdk.ErrUnauthorized.WriteError(w)
					return
				}
				slogx.FromContext(ctx).Error("api key verification failed", "err", err)
				invsdk.ErrServerError.WriteError(w)
				return
			}

			if keyID == service.OpenAccessKeyID {
				slogx.FromContext(ctx).Warn("no API keys provisioned; write access is open")
			}

			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, keyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// callerKeyID returns the verified API key id for audit attribution.
func callerKeyID(ctx context.Context) string {
	return httpx.UserIDFromContext(ctx)
}

// APIKeysHandler manages the keys themselves. Minting is how a fresh install
// leaves open-access mode.
type APIKeysHandler struct {
	APIKeyService *service.APIKeyService
}

// Mint godoc
//
//	@Summary	Mint a new API key
//	@Description	Returns the plaintext key exactly once; only the hash is stored.
//	@Tags		APIKeys
//	@Security	APIKeyAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		invsdk.APIKeyRequest	true	"Key name"
//	@Success	201		{object}	invsdk.APIKeyResponse
//	@Failure	400		{object}	invsdk.APIError
//	@Router		/api/v1/apikeys [post].
func (h *APIKeysHandler) Mint(w http.ResponseWriter, r *http.Request) {
	var req invsdk.APIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	k, plaintext, err := h.APIKeyService.Mint(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, invsdk.APIKeyResponse{
		ID:        k.ID,
		Name:      k.Name,
		Key:       plaintext,
		Active:    k.Active,
		CreatedAt: k.CreatedAt,
	})
}

// Revoke godoc
//
//	@Summary	Revoke an API key
//	@Tags		APIKeys
//	@Security	APIKeyAuth
//	@Param		id	path	string	true	"Key ID"
//	@Success	204
//	@Router		/api/v1/apikeys/{id} [delete].
func (h *APIKeysHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	if err := h.APIKeyService.Revoke(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
