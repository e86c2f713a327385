package remote

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/remote-hub/remotehub/services"
)

func TestPresetStore(t *testing.T) {
	store := services.NewMockStore()
	presets := NewPresetStore(store)

	_, err := presets.Get("tv.living", "power")
	assert.True(t, errors.Is(err, ErrCodeNotFound))

	assert.NoError(t, presets.Set("tv.living", "power", "JgAYAQ=="))
	code, err := presets.Get("tv.living", "power")
	assert.NoError(t, err)
	assert.Equal(t, "JgAYAQ==", code)

	// stored under a per-slot key
	value, err := store.Get("remotehub/presets/tv.living/power")
	assert.NoError(t, err)
	assert.Equal(t, "JgAYAQ==", value)
}

func TestPresetStoreButtons(t *testing.T) {
	presets := NewPresetStore(services.NewMockStore())
	assert.NoError(t, presets.Set("tv.living", "power", "AQ=="))
	assert.NoError(t, presets.Set("tv.living", "volume_up", "Ag=="))
	assert.NoError(t, presets.Set("amp.living", "power", "Aw=="))

	buttons, err := presets.Buttons("tv.living")
	assert.NoError(t, err)
	assert.Equal(t, []string{"power", "volume_up"}, buttons)

	buttons, err = presets.Buttons("unknown")
	assert.NoError(t, err)
	assert.Empty(t, buttons)
}

// downStore fails every operation, like a store behind an unreachable
// redis.
type downStore struct{}

func (downStore) Set(key string, value string) error {
	return errors.New("connection refused")
}

func (downStore) SetWithTTL(key string, value string, ttl uint64) error {
	return errors.New("connection refused")
}

func (downStore) Get(key string) (string, error) {
	return "", errors.New("connection refused")
}

func (downStore) GetRecursive(prefix string) ([]services.Node, error) {
	return nil, errors.New("connection refused")
}

func TestPresetStoreFailureNotMissingCode(t *testing.T) {
	presets := NewPresetStore(downStore{})

	// a store failure must not read as "no code stored"
	_, err := presets.Get("tv.living", "power")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrCodeNotFound))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCodec(t *testing.T) {
	raw := []byte{0x26, 0x00, 0x18, 0x01, 0x9c}
	encoded := EncodeCode(raw)
	decoded, err := DecodeCode(encoded)
	assert.NoError(t, err)
	assert.Equal(t, raw, decoded)

	_, err = DecodeCode("not!base64!")
	assert.Error(t, err)
}
