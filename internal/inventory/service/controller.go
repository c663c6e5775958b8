package service

import (
	"context"
	"fmt"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/idx"
)

// ControllerInput carries the writable fields of a management controller.
type ControllerInput struct {
	Type          string
	Address       string
	Port          int
	UIURL         string
	CredentialRef string
}

type ControllerService struct {
	Store store.Store
}

// ListForAsset returns the controllers attached to an asset. The asset must exist.
func (s *ControllerService) ListForAsset(
	ctx context.Context,
	assetID string,
) ([]domain.ManagementController, error) {
	if _, err := s.Store.Assets().GetAssetByID(ctx, assetID); err != nil {
		return nil, err
	}
	return s.Store.Controllers().ListControllersByAsset(ctx, assetID)
}

// Attach adds an out-of-band controller to an asset and records the change.
func (s *ControllerService) Attach(
	ctx context.Context,
	assetID string,
	in ControllerInput,
	apiKeyID string,
) (domain.ManagementController, error) {
	if !domain.ValidControllerType(in.Type) {
		return domain.ManagementController{},
			fmt.Errorf("%w: unknown controller type %q", ErrValidation, in.Type)
	}
	if in.Address == "" {
		return domain.ManagementController{},
			fmt.Errorf("%w: address is required", ErrValidation)
	}
	if in.Port == 0 {
		in.Port = 443
	}

	c := domain.ManagementController{
		ID:            idx.New().String(),
		AssetID:       assetID,
		Type:          in.Type,
		Address:       in.Address,
		Port:          in.Port,
		UIURL:         in.UIURL,
		CredentialRef: in.CredentialRef,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Assets().GetAssetByID(ctx, assetID); err != nil {
			return err
		}
		if err := tx.Controllers().CreateController(ctx, c); err != nil {
			return err
		}
		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionCreate,
			ResourceType: "controller",
			ResourceID:   c.ID,
			Changes: map[string]any{
				"asset_id": assetID,
				"type":     c.Type,
				"address":  c.Address,
				"port":     c.Port,
			},
			APIKeyID: apiKeyID,
		})
	})
	if err != nil {
		return domain.ManagementController{}, err
	}
	return c, nil
}

// Detach removes a controller and records the deletion.
func (s *ControllerService) Detach(ctx context.Context, id string, apiKeyID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Controllers().DeleteController(ctx, id); err != nil {
			return err
		}
		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionDelete,
			ResourceType: "controller",
			ResourceID:   id,
			APIKeyID:     apiKeyID,
		})
	})
}
