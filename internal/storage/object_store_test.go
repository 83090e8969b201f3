package storage

import (
	"testing"

	"injai_channel/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/uploads/a.png", PublicURL("https://cdn.example/uploads/", "/a.png"))
	assert.Equal(t, "https://cdn.example/a.png", PublicURL("https://cdn.example", "a.png"))
}

func TestNewObjectStore_DerivesPublicURL(t *testing.T) {
	store, err := NewObjectStore(config.StorageConfig{
		Endpoint:  "https://minio.example:9000",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "injai-uploads",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://minio.example:9000/injai-uploads", store.cfg.PublicURL)
}
