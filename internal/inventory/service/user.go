package service

import (
	"context"
	"fmt"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/pkg/idx"
)

// UserInput carries the writable fields of an asset owner record.
type UserInput struct {
	Username   string
	FullName   string
	Email      string
	Department string
	Title      string
	Active     *bool // nil leaves the current value alone on update
}

type UserService struct {
	Store store.Store
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, f store.UserFilter) ([]domain.User, int, error) {
	return s.Store.Users().ListUsers(ctx, f)
}

// Create registers a new asset owner and records the change.
func (s *UserService) Create(
	ctx context.Context,
	in UserInput,
	apiKeyID string,
) (domain.User, error) {
	if in.Username == "" {
		return domain.User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if in.FullName == "" {
		return domain.User{}, fmt.Errorf("%w: full name is required", ErrValidation)
	}

	u := domain.User{
		ID:         idx.New().String(),
		Username:   in.Username,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
		Title:      in.Title,
		Active:     true,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionCreate,
			ResourceType: "user",
			ResourceID:   u.ID,
			Changes: map[string]any{
				"username":   u.Username,
				"full_name":  u.FullName,
				"email":      u.Email,
				"department": u.Department,
			},
			APIKeyID: apiKeyID,
		})
	})
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Update modifies an existing owner record and records the change.
func (s *UserService) Update(
	ctx context.Context,
	id string,
	in UserInput,
	apiKeyID string,
) (domain.User, error) {
	var result domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Username != "" {
			u.Username = in.Username
		}
		if in.FullName != "" {
			u.FullName = in.FullName
		}
		u.Email = in.Email
		u.Department = in.Department
		u.Title = in.Title
		if in.Active != nil {
			u.Active = *in.Active
		}

		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		result = u

		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionUpdate,
			ResourceType: "user",
			ResourceID:   u.ID,
			Changes: map[string]any{
				"username":   u.Username,
				"full_name":  u.FullName,
				"email":      u.Email,
				"department": u.Department,
				"active":     u.Active,
			},
			APIKeyID: apiKeyID,
		})
	})
	if err != nil {
		return domain.User{}, err
	}
	return result, nil
}

// Deactivate retires an owner record. Owned assets keep their reference.
func (s *UserService) Deactivate(ctx context.Context, id string, apiKeyID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().DeactivateUser(ctx, id); err != nil {
			return err
		}
		return tx.Audit().RecordChange(ctx, domain.AuditEntry{
			ID:           idx.New().String(),
			Action:       domain.AuditActionUpdate,
			ResourceType: "user",
			ResourceID:   id,
			Changes:      map[string]any{"active": false},
			APIKeyID:     apiKeyID,
		})
	})
}
