package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/httpx"
	"github.com/stackledger/stackledger/pkg/invsdk"
)

type AssetsHandler struct {
	AssetService      *service.AssetService
	ControllerService *service.ControllerService
}

// Upsert godoc
//
//	@Summary		Create or update an asset by natural key
//	@Description	Matches an existing asset by FQDN, then serial number plus vendor, then hostname.
//	@Description	A match updates the asset in place; no match creates it. The response reports which happened.
//	@Tags			Assets
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			asset	body		invsdk.AssetRequest	true	"Asset fields"
//	@Success		200		{object}	invsdk.UpsertAssetResponse	"Updated existing asset"
//	@Success		201		{object}	invsdk.UpsertAssetResponse	"Created new asset"
//	@Failure		400		{object}	invsdk.APIError
//	@Failure		401		{object}	invsdk.APIError
//	@Router			/api/v1/assets [post].
func (h *AssetsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req invsdk.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	asset, created, err := h.AssetService.Upsert(r.Context(), assetInput(req), callerKeyID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.WriteJSON(w, status, invsdk.UpsertAssetResponse{
		Asset:   assetResponse(asset),
		Created: created,
	})
}

// List godoc
//
//	@Summary	List assets
//	@Tags		Assets
//	@Produce	json
//	@Param		q		query		string	false	"Search hostname, fqdn, serial, vendor or model"
//	@Param		status	query		string	false	"Filter by status"
//	@Param		type	query		string	false	"Filter by type"
//	@Param		vendor	query		string	false	"Filter by vendor (partial match)"
//	@Param		sort	query		string	false	"Sort column (hostname, created_at, updated_at)"
//	@Param		desc	query		bool	false	"Sort descending"
//	@Param		offset	query		int		false	"Page offset"
//	@Param		limit	query		int		false	"Page size (default 20)"
//	@Success	200		{object}	invsdk.AssetListResponse
//	@Failure	400		{object}	invsdk.APIError
//	@Router		/api/v1/assets [get].
func (h *AssetsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.AssetFilter{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		Type:     q.Get("type"),
		Vendor:   q.Get("vendor"),
		SortBy:   q.Get("sort"),
		SortDesc: q.Get("desc") == "true",
		Offset:   queryInt(q.Get("offset")),
		Limit:    queryInt(q.Get("limit")),
	}

	assets, total, err := h.AssetService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := invsdk.AssetListResponse{
		Assets: make([]invsdk.AssetResponse, 0, len(assets)),
		Total:  total,
	}
	for _, a := range assets {
		resp.Assets = append(resp.Assets, assetResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Fetch a single asset
//	@Tags		Assets
//	@Produce	json
//	@Param		id	path		string	true	"Asset ID"
//	@Success	200	{object}	invsdk.AssetResponse
//	@Failure	404	{object}	invsdk.APIError
//	@Router		/api/v1/assets/{id} [get].
func (h *AssetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	asset, err := h.AssetService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, assetResponse(asset))
}

// Update godoc
//
//	@Summary	Replace an asset's fields
//	@Tags		Assets
//	@Security	APIKeyAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Asset ID"
//	@Param		asset	body		invsdk.AssetRequest	true	"Asset fields"
//	@Success	200		{object}	invsdk.AssetResponse
//	@Failure	400		{object}	invsdk.APIError
//	@Failure	404		{object}	invsdk.APIError
//	@Router		/api/v1/assets/{id} [put].
func (h *AssetsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req invsdk.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	asset, err := h.AssetService.Update(r.Context(), r.PathValue("id"), assetInput(req), callerKeyID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, assetResponse(asset))
}

// Delete godoc
//
//	@Summary	Delete an asset
//	@Description	Attached management controllers are removed with it.
//	@Tags		Assets
//	@Security	APIKeyAuth
//	@Param		id	path	string	true	"Asset ID"
//	@Success	204
//	@Failure	404	{object}	invsdk.APIError
//	@Router		/api/v1/assets/{id} [delete].
func (h *AssetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.AssetService.Delete(r.Context(), r.PathValue("id"), callerKeyID(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListControllers godoc
//
//	@Summary	List an asset's management controllers
//	@Tags		Controllers
//	@Produce	json
//	@Param		id	path		string	true	"Asset ID"
//	@Success	200	{array}		invsdk.ControllerResponse
//	@Failure	404	{object}	invsdk.APIError
//	@Router		/api/v1/assets/{id}/controllers [get].
func (h *AssetsHandler) ListControllers(w http.ResponseWriter, r *http.Request) {
	controllers, err := h.ControllerService.ListForAsset(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]invsdk.ControllerResponse, 0, len(controllers))
	for _, c := range controllers {
		resp = append(resp, controllerResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// AttachController godoc
//
//	@Summary	Attach a management controller to an asset
//	@Tags		Controllers
//	@Security	APIKeyAuth
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"Asset ID"
//	@Param		controller	body		invsdk.ControllerRequest	true	"Controller fields"
//	@Success	201			{object}	invsdk.ControllerResponse
//	@Failure	400			{object}	invsdk.APIError
//	@Failure	404			{object}	invsdk.APIError
//	@Router		/api/v1/assets/{id}/controllers [post].
func (h *AssetsHandler) AttachController(w http.ResponseWriter, r *http.Request) {
	var req invsdk.ControllerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	c, err := h.ControllerService.Attach(r.Context(), r.PathValue("id"), service.ControllerInput{
		Type:          req.Type,
		Address:       req.Address,
		Port:          req.Port,
		UIURL:         req.UIURL,
		CredentialRef: req.CredentialRef,
	}, callerKeyID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, controllerResponse(c))
}

// DetachController godoc
//
//	@Summary	Detach a management controller
//	@Tags		Controllers
//	@Security	APIKeyAuth
//	@Param		id	path	string	true	"Controller ID"
//	@Success	204
//	@Failure	404	{object}	invsdk.APIError
//	@Router		/api/v1/controllers/{id} [delete].
func (h *AssetsHandler) DetachController(w http.ResponseWriter, r *http.Request) {
	if err := h.ControllerService.Detach(r.Context(), r.PathValue("id"), callerKeyID(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses a non-negative integer query value; anything else is zero.
func queryInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
