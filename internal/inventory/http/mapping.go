package http

import (
	"errors"
	"net/http"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/invsdk"
	"github.com/stackledger/stackledger/pkg/slogx"
)

// writeServiceError maps service and store errors onto the JSON error
// envelope. Unknown errors are logged once and surfaced as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		invsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		invsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, store.ErrAlreadyExists):
		invsdk.ErrConflict.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			"path", r.URL.Path, "err", err)
		invsdk.ErrServerError.WriteError(w)
	}
}

func assetResponse(a domain.Asset) invsdk.AssetResponse {
	return invsdk.AssetResponse{
		ID:           a.ID,
		Hostname:     a.Hostname,
		FQDN:         a.FQDN,
		SerialNumber: a.SerialNumber,
		Vendor:       a.Vendor,
		Model:        a.Model,
		Type:         a.Type,
		Status:       a.Status,
		Location:     a.Location,
		Specs:        a.Specs,
		OwnerID:      a.OwnerID,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func assetInput(req invsdk.AssetRequest) service.AssetInput {
	return service.AssetInput{
		Hostname:     req.Hostname,
		FQDN:         req.FQDN,
		SerialNumber: req.SerialNumber,
		Vendor:       req.Vendor,
		Model:        req.Model,
		Type:         req.Type,
		Status:       req.Status,
		Location:     req.Location,
		Specs:        req.Specs,
		OwnerID:      req.OwnerID,
		Notes:        req.Notes,
	}
}

func userResponse(u domain.User) invsdk.UserResponse {
	return invsdk.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Email:      u.Email,
		Department: u.Department,
		Title:      u.Title,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func userInput(req invsdk.UserRequest) service.UserInput {
	return service.UserInput{
		Username:   req.Username,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
		Title:      req.Title,
		Active:     req.Active,
	}
}

func applicationResponse(a domain.Application) invsdk.ApplicationResponse {
	return invsdk.ApplicationResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		AccessURL:   a.AccessURL,
		Environment: a.Environment,
		Version:     a.Version,
		Port:        a.Port,
		Status:      a.Status,
		ContactID:   a.ContactID,
		Criticality: a.Criticality,
		Notes:       a.Notes,
		AssetIDs:    a.AssetIDs,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func applicationInput(req invsdk.ApplicationRequest) service.ApplicationInput {
	return service.ApplicationInput{
		Name:        req.Name,
		Description: req.Description,
		AccessURL:   req.AccessURL,
		Environment: req.Environment,
		Version:     req.Version,
		Port:        req.Port,
		Status:      req.Status,
		ContactID:   req.ContactID,
		Criticality: req.Criticality,
		Notes:       req.Notes,
		AssetIDs:    req.AssetIDs,
	}
}

func controllerResponse(c domain.ManagementController) invsdk.ControllerResponse {
	return invsdk.ControllerResponse{
		ID:            c.ID,
		AssetID:       c.AssetID,
		Type:          c.Type,
		Address:       c.Address,
		Port:          c.Port,
		UIURL:         c.UIURL,
		CredentialRef: c.CredentialRef,
		CreatedAt:     c.CreatedAt,
	}
}

func auditResponse(e domain.AuditEntry) invsdk.AuditEntryResponse {
	return invsdk.AuditEntryResponse{
		ID:           e.ID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Changes:      e.Changes,
		APIKeyID:     e.APIKeyID,
		CreatedAt:    e.CreatedAt,
	}
}
