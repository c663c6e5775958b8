package http

import (
	"encoding/json"
	"net/http"

	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/httpx"
	"github.com/stackledger/stackledger/pkg/invsdk"
)

// DirectoryHandler serves the people and application endpoints.
type DirectoryHandler struct {
	UserService        *service.UserService
	ApplicationService *service.ApplicationService
}

// ListUsers godoc
//
//	@Summary	List people
//	@Tags		People
//	@Produce	json
//	@Param		q		query		string	false	"Search username, name, email or department"
//	@Param		active	query		bool	false	"Only active people"
//	@Param		offset	query		int		false	"Page offset"
//	@Param		limit	query		int		false	"Page size (default 100)"
//	@Success	200		{object}	invsdk.UserListResponse
//	@Router		/api/v1/users [get].
func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, total, err := h.UserService.List(r.Context(), store.UserFilter{
		Search:     q.Get("q"),
		ActiveOnly: q.Get("active") == "true",
		Offset:     queryInt(q.Get("offset")),
		Limit:      queryInt(q.Get("limit")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := invsdk.UserListResponse{
		Users: make([]invsdk.UserResponse, 0, len(users)),
		Total: total,
	}
	for _, u := range users {
		resp.Users = append(resp.Users, userResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// GetUser godoc
//
//	@Summary	Fetch a person
//	@Tags		People
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	invsdk.UserResponse
//	@Failure	404	{object}	invsdk.APIError
//	@Router		/api/v1/users/{id} [get].
func (h *DirectoryHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResponse(u))
}

// CreateUser godoc
//
//	@Summary	Register a person
//	@Tags		People
//	@Security	APIKeyAuth
//	@Accept		json
//	@Produce	json
//	@Param		user	body		invsdk.UserRequest	true	"Person fields"
//	@Success	201		{object}	invsdk.UserResponse
//	@Failure	400		{object}	invsdk.APIError
//	@Failure	409		{object}	invsdk.APIError	"Username already taken"
//	@Router		/api/v1/users [post].
func (h *DirectoryHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req invsdk.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	u, err := h.UserService.Create(r.Context(), userInput(req), callerKeyID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, userResponse(u))
}

// UpdateUser godoc
//
//	@Summary	Update a person
//	@Tags		People
//	@Security	APIKeyAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"User ID"
//	@Param		user	body		invsdk.UserRequest	true	"Person fields"
//	@Success	200		{object}	invsdk.UserResponse
//	@Failure	404		{object}	invsdk.APIError
//	@Router		/api/v1/users/{id} [put].
func (h *DirectoryHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req invsdk.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	u, err := h.UserService.Update(r.Context(), r.PathValue("id"), userInput(req), callerKeyID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResponse(u))
}

// DeactivateUser godoc
//
//	@Summary		Deactivate a person
//	@Description	Owned assets keep their owner reference; the person stops appearing in active listings.
//	@Tags			People
//	@Security		APIKeyAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204
//	@Failure		404	{object}	invsdk.APIError
//	@Router			/api/v1/users/{id} [delete].
func (h *DirectoryHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Deactivate(r.Context(), r.PathValue("id"), callerKeyID(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListApplications godoc
//
//	@Summary	List applications
//	@Tags		Applications
//	@Produce	json
//	@Success	200	{array}	invsdk.ApplicationResponse
//	@Router		/api/v1/applications [get].
func (h *DirectoryHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.ApplicationService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]invsdk.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		resp = append(resp, applicationResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// GetApplication godoc
//
//	@Summary	Fetch an application
//	@Tags		Applications
//	@Produce	json
//	@Param		id	path		string	true	"Application ID"
//	@Success	200	{object}	invsdk.ApplicationResponse
//	@Failure	404	{object}	invsdk.APIError
//	@Router		/api/v1/applications/{id} [get].
func (h *DirectoryHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	a, err := h.ApplicationService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, applicationResponse(a))
}

// CreateApplication godoc
//
//	@Summary		Register an application
//	@Description	Referenced assets must exist; linking a missing one fails the whole request.
//	@Tags			Applications
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			application	body		invsdk.ApplicationRequest	true	"Application fields"
//	@Success		201			{object}	invsdk.ApplicationResponse
//	@Failure		400			{object}	invsdk.APIError
//	@Router			/api/v1/applications [post].
func (h *DirectoryHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req invsdk.ApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	a, err := h.ApplicationService.Create(r.Context(), applicationInput(req), callerKeyID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, applicationResponse(a))
}

// UpdateApplication godoc
//
//	@Summary		Update an application
//	@Description	Asset links are reconciled against the request's asset_ids.
//	@Tags			Applications
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Application ID"
//	@Param			application	body		invsdk.ApplicationRequest	true	"Application fields"
//	@Success		200			{object}	invsdk.ApplicationResponse
//	@Failure		404			{object}	invsdk.APIError
//	@Router			/api/v1/applications/{id} [put].
func (h *DirectoryHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	var req invsdk.ApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	a, err := h.ApplicationService.Update(r.Context(), r.PathValue("id"), applicationInput(req), callerKeyID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, applicationResponse(a))
}

// DeleteApplication godoc
//
//	@Summary	Delete an application
//	@Tags		Applications
//	@Security	APIKeyAuth
//	@Param		id	path	string	true	"Application ID"
//	@Success	204
//	@Failure	404	{object}	invsdk.APIError
//	@Router		/api/v1/applications/{id} [delete].
func (h *DirectoryHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	if err := h.ApplicationService.Delete(r.Context(), r.PathValue("id"), callerKeyID(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
