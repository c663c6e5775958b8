package service

import (
	"context"
	"fmt"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/idx"
)

// ApplicationInput carries the writable fields of an application record.
type ApplicationInput struct {
	Name        string
	Description string
	AccessURL   string
	Environment string
	Version     string
	Port        int
	Status      string
	ContactID   string
	Criticality string
	Notes       string
	AssetIDs    []string
}

func (in *ApplicationInput) normalize() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Environment == "" {
		in.Environment = domain.AppEnvProduction
	}
	if !domain.ValidAppEnvironment(in.Environment) {
		return fmt.Errorf("%w: unknown environment %q", ErrValidation, in.Environment)
	}
	if in.Criticality == "" {
		in.Criticality = domain.AppCriticalityMedium
	}
	if !domain.ValidAppCriticality(in.Criticality) {
		return fmt.Errorf("%w: unknown criticality %q", ErrValidation, in.Criticality)
	}
	if in.Status == "" {
		in.Status = "active"
	}
	if in.Port < 0 || in.Port > 65535 {
		return fmt.Errorf("%w: port out of range", ErrValidation)
	}
	return nil
}

type ApplicationService struct {
	Store store.Store
}

func (s *ApplicationService) Get(ctx context.Context, id string) (domain.Application, error) {
	return s.Store.Applications().GetApplicationByID(ctx, id)
}

func (s *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	return s.Store.Applications().ListApplications(ctx)
}

// Create registers an application and links it to any referenced assets. Every
// linked asset must exist; a missing one aborts the whole operation.
func (s *ApplicationService) Create(
	ctx context.Context,
	in ApplicationInput,
	apiKeyID string,
) (domain.Application, error) {
	if err := in.normalize(); err != nil {
		return domain.Application{}, err
	}

	a := domain.Application{
		ID:          idx.New().String(),
		Name:        in.Name,
		Description: in.Description,
		AccessURL:   in.AccessURL,
		Environment: in.Environment,
		Version:     in.Version,
		Port:        in.Port,
		Status:      in.Status,
		ContactID:   in.ContactID,
		Criticality: in.Criticality,
		Notes:       in.Notes,
		AssetIDs:    in.AssetIDs,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Applications().CreateApplication(ctx, a); err != nil {
			return err
		}
		for _, assetID := range in.AssetIDs {
			if _, err := tx.Assets().GetAssetByID(ctx, assetID); err != nil {
				return fmt.Errorf("link asset %s: %w", assetID, err)
			}
			if err := tx.Applications().LinkAsset(ctx, a.ID, assetID); err != nil {
				return err
			}
		}
		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionCreate,
			ResourceType: "application",
			ResourceID:   a.ID,
			Changes: map[string]any{
				"name":        a.Name,
				"environment": a.Environment,
				"criticality": a.Criticality,
				"asset_ids":   a.AssetIDs,
			},
			APIKeyID: apiKeyID,
		})
	})
	if err != nil {
		return domain.Application{}, err
	}
	return a, nil
}

// Update replaces the mutable fields of an application. Asset links are
// reconciled against in.AssetIDs: missing links are added, stale ones removed.
func (s *ApplicationService) Update(
	ctx context.Context,
	id string,
	in ApplicationInput,
	apiKeyID string,
) (domain.Application, error) {
	if err := in.normalize(); err != nil {
		return domain.Application{}, err
	}

	var result domain.Application
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Applications().GetApplicationByID(ctx, id)
		if err != nil {
			return err
		}

		a.Name = in.Name
		a.Description = in.Description
		a.AccessURL = in.AccessURL
		a.Environment = in.Environment
		a.Version = in.Version
		a.Port = in.Port
		a.Status = in.Status
		a.ContactID = in.ContactID
		a.Criticality = in.Criticality
		a.Notes = in.Notes

		if err := tx.Applications().UpdateApplication(ctx, a); err != nil {
			return err
		}

		keep := make(map[string]bool, len(in.AssetIDs))
		for _, assetID := range in.AssetIDs {
			keep[assetID] = true
			if _, err := tx.Assets().GetAssetByID(ctx, assetID); err != nil {
				return fmt.Errorf("link asset %s: %w", assetID, err)
			}
			if err := tx.Applications().LinkAsset(ctx, a.ID, assetID); err != nil {
				return err
			}
		}
		for _, assetID := range a.AssetIDs {
			if keep[assetID] {
				continue
			}
			if err := tx.Applications().UnlinkAsset(ctx, a.ID, assetID); err != nil {
				return err
			}
		}
		a.AssetIDs = in.AssetIDs
		result = a

		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionUpdate,
			ResourceType: "application",
			ResourceID:   a.ID,
			Changes: map[string]any{
				"name":        a.Name,
				"environment": a.Environment,
				"criticality": a.Criticality,
				"status":      a.Status,
				"asset_ids":   a.AssetIDs,
			},
			APIKeyID: apiKeyID,
		})
	})
	if err != nil {
		return domain.Application{}, err
	}
	return result, nil
}

// Delete removes an application. Asset links are removed by the schema cascade.
func (s *ApplicationService) Delete(ctx context.Context, id string, apiKeyID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Applications().GetApplicationByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Applications().DeleteApplication(ctx, id); err != nil {
			return err
		}
		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionDelete,
			ResourceType: "application",
			ResourceID:   id,
			Changes:      map[string]any{"name": a.Name},
			APIKeyID:     apiKeyID,
		})
	})
}
