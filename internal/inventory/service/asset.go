package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/idx"
)

// ErrValidation reports input that fails domain validation. Handlers map it
// to a 400 response.
var ErrValidation = errors.New("service: validation failed")

// AssetInput carries the writable fields of an asset. Zero-value optional
// fields are stored as empty.
type AssetInput struct {
	Hostname     string
	FQDN         string
	SerialNumber string
	Vendor       string
	Model        string
	Type         string
	Status       string
	Location     string
	Specs        map[string]any
	OwnerID      string
	Notes        string
}

func (in *AssetInput) normalize() error {
	if in.Hostname == "" {
		return fmt.Errorf("%w: hostname is required", ErrValidation)
	}
	if in.Type == "" {
		in.Type = domain.AssetTypeServer
	}
	if !domain.ValidAssetType(in.Type) {
		return fmt.Errorf("%w: unknown asset type %q", ErrValidation, in.Type)
	}
	if in.Status == "" {
		in.Status = domain.AssetStatusActive
	}
	if !domain.ValidAssetStatus(in.Status) {
		return fmt.Errorf("%w: unknown asset status %q", ErrValidation, in.Status)
	}
	return nil
}

func (in *AssetInput) apply(a *domain.Asset) {
	a.Hostname = in.Hostname
	a.FQDN = in.FQDN
	a.SerialNumber = in.SerialNumber
	a.Vendor = in.Vendor
	a.Model = in.Model
	a.Type = in.Type
	a.Status = in.Status
	a.Location = in.Location
	a.Specs = in.Specs
	a.OwnerID = in.OwnerID
	a.Notes = in.Notes
}

// changes flattens the input for the audit record.
func (in *AssetInput) changes() map[string]any {
	return map[string]any{
		"hostname":      in.Hostname,
		"fqdn":          in.FQDN,
		"serial_number": in.SerialNumber,
		"vendor":        in.Vendor,
		"model":         in.Model,
		"type":          in.Type,
		"status":        in.Status,
		"location":      in.Location,
		"specs":         in.Specs,
		"owner_id":      in.OwnerID,
		"notes":         in.Notes,
	}
}

type AssetService struct {
	Store store.Store
}

// Upsert creates or updates an asset using natural key matching, in priority
// order: FQDN, then serial number + vendor, then hostname. The write and its
// audit record commit atomically. Returns the stored asset and whether it was
// created.
func (s *AssetService) Upsert(
	ctx context.Context,
	in AssetInput,
	apiKeyID string,
) (domain.Asset, bool, error) {
	if err := in.normalize(); err != nil {
		return domain.Asset{}, false, err
	}

	var (
		result  domain.Asset
		created bool
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := matchAsset(ctx, tx.Assets(), in)
		switch {
		case err == nil:
			in.apply(&existing)
			if err := tx.Assets().UpdateAsset(ctx, existing); err != nil {
				return err
			}
			result, created = existing, false

		case errors.Is(err, store.ErrNotFound):
			a := domain.Asset{ID: idx.New().String()}
			in.apply(&a)
			if err := tx.Assets().CreateAsset(ctx, a); err != nil {
				return err
			}
			result, created = a, true

		default:
			return err
		}

		action := domain.AuditActionUpdate
		if created {
			action = domain.AuditActionCreate
		}
		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       action,
			ResourceType: "asset",
			ResourceID:   result.ID,
			Changes:      in.changes(),
			APIKeyID:     apiKeyID,
		})
	})
	if err != nil {
		return domain.Asset{}, false, err
	}
	return result, created, nil
}

// matchAsset resolves the natural key of the input against existing assets.
func matchAsset(ctx context.Context, assets store.Assets, in AssetInput) (domain.Asset, error) {
	if in.FQDN != "" {
		a, err := assets.FindAssetByFQDN(ctx, in.FQDN)
		if err == nil || !errors.Is(err, store.ErrNotFound) {
			return a, err
		}
	}
	if in.SerialNumber != "" && in.Vendor != "" {
		a, err := assets.FindAssetBySerialVendor(ctx, in.SerialNumber, in.Vendor)
		if err == nil || !errors.Is(err, store.ErrNotFound) {
			return a, err
		}
	}
	return assets.FindAssetByHostname(ctx, in.Hostname)
}

// Get fetches an asset by id.
func (s *AssetService) Get(ctx context.Context, id string) (domain.Asset, error) {
	return s.Store.Assets().GetAssetByID(ctx, id)
}

// List returns a filtered page of assets and the total match count.
func (s *AssetService) List(
	ctx context.Context,
	f store.AssetFilter,
) ([]domain.Asset, int, error) {
	if f.Status != "" && !domain.ValidAssetStatus(f.Status) {
		return nil, 0, fmt.Errorf("%w: unknown asset status %q", ErrValidation, f.Status)
	}
	if f.Type != "" && !domain.ValidAssetType(f.Type) {
		return nil, 0, fmt.Errorf("%w: unknown asset type %q", ErrValidation, f.Type)
	}
	return s.Store.Assets().ListAssets(ctx, f)
}

// Update replaces the mutable fields of an existing asset and records the change.
func (s *AssetService) Update(
	ctx context.Context,
	id string,
	in AssetInput,
	apiKeyID string,
) (domain.Asset, error) {
	if err := in.normalize(); err != nil {
		return domain.Asset{}, err
	}

	var result domain.Asset
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Assets().GetAssetByID(ctx, id)
		if err != nil {
			return err
		}

		in.apply(&a)
		if err := tx.Assets().UpdateAsset(ctx, a); err != nil {
			return err
		}
		result = a

		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionUpdate,
			ResourceType: "asset",
			ResourceID:   a.ID,
			Changes:      in.changes(),
			APIKeyID:     apiKeyID,
		})
	})
	if err != nil {
		return domain.Asset{}, err
	}
	return result, nil
}

// Delete removes an asset and its controllers and records the deletion.
func (s *AssetService) Delete(ctx context.Context, id string, apiKeyID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Assets().DeleteAsset(ctx, id); err != nil {
			return err
		}
		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionDelete,
			ResourceType: "asset",
			ResourceID:   id,
			APIKeyID:     apiKeyID,
		})
	})
}

// StatusCounts returns asset counts keyed by status, for the dashboard.
func (s *AssetService) StatusCounts(ctx context.Context) (map[string]int, error) {
	return s.Store.Assets().CountAssetsByStatus(ctx)
}
