package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestSealService_SealAndOpen(t *testing.T) {
	ctx := context.Background()
	sealService := NewSealService()
	keyURI := generateLocalSecretsURI(t)

	ciphertext, err := sealService.Seal(ctx, keyURI, []byte("Ab3!ab12"))
	require.NoError(t, err)
	assert.NotEqual(t, []byte("Ab3!ab12"), ciphertext)

	plaintext, err := sealService.Open(ctx, keyURI, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("Ab3!ab12"), plaintext)
}

func TestSealService_Errors(t *testing.T) {
	ctx := context.Background()
	sealService := NewSealService()

	t.Run("Error_EmptyURI", func(t *testing.T) {
		ciphertext, err := sealService.Seal(ctx, "", []byte("secret"))
		assert.Nil(t, ciphertext)
		assert.True(t, errors.Is(err, ErrEmptyKeyURI))
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		ciphertext, err := sealService.Seal(ctx, "invalid://uri", []byte("secret"))
		assert.Nil(t, ciphertext)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})

	t.Run("Error_OpenWithDifferentKey", func(t *testing.T) {
		ciphertext, err := sealService.Seal(ctx, generateLocalSecretsURI(t), []byte("secret"))
		require.NoError(t, err)

		plaintext, err := sealService.Open(ctx, generateLocalSecretsURI(t), ciphertext)
		assert.Nil(t, plaintext)
		assert.Contains(t, err.Error(), "failed to open sealed password")
	})
}
