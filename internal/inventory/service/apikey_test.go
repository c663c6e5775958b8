package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIKeyMintAndVerify(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &APIKeyService{Store: st}

	k, plaintext, err := svc.Mint(ctx, "provisioning-agent")
	require.NoError(t, err)
	require.NotEmpty(t, plaintext)
	require.NotEqual(t, plaintext, k.KeyHash)

	backup, backupPlaintext, err := svc.Mint(ctx, "backup-agent")
	require.NoError(t, err)

	t.Run("plaintext verifies to the key id", func(t *testing.T) {
		id, err := svc.Verify(ctx, plaintext)
		require.NoError(t, err)
		require.Equal(t, k.ID, id)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		_, err := svc.Verify(ctx, "not-the-key")
		require.ErrorIs(t, err, ErrInvalidAPIKey)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		_, err := svc.Verify(ctx, "")
		require.ErrorIs(t, err, ErrInvalidAPIKey)
	})

	t.Run("revoked key stops verifying", func(t *testing.T) {
		require.NoError(t, svc.Revoke(ctx, k.ID))

		_, err := svc.Verify(ctx, plaintext)
		require.ErrorIs(t, err, ErrInvalidAPIKey)

		id, err := svc.Verify(ctx, backupPlaintext)
		require.NoError(t, err)
		require.Equal(t, backup.ID, id)
	})
}

func TestAPIKeyOpenAccessBeforeProvisioning(t *testing.T) {
	ctx := context.Background()
	svc := &APIKeyService{Store: newTestStore(t)}

	// Until a first key exists every caller is let through.
	id, err := svc.Verify(ctx, "")
	require.NoError(t, err)
	require.Equal(t, OpenAccessKeyID, id)

	_, _, err = svc.Mint(ctx, "first-key")
	require.NoError(t, err)

	_, err = svc.Verify(ctx, "")
	require.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestAPIKeyDevKeyBypass(t *testing.T) {
	ctx := context.Background()
	svc := &APIKeyService{Store: newTestStore(t), DevKey: "local-dev-key"}

	id, err := svc.Verify(ctx, "local-dev-key")
	require.NoError(t, err)
	require.Equal(t, "dev", id)

	_, err = svc.Verify(ctx, "something-else")
	require.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestAPIKeyMintRequiresName(t *testing.T) {
	svc := &APIKeyService{Store: newTestStore(t)}

	_, _, err := svc.Mint(context.Background(), "")
	require.ErrorIs(t, err, ErrValidation)
}
