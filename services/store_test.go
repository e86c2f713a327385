package services

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMockStore(t *testing.T) {
	store := NewMockStore()

	_, err := store.Get("missing")
	assert.True(t, errors.Is(err, ErrKeyNotFound))

	assert.NoError(t, store.Set("remotehub/presets/tv/power", "AQ=="))
	value, err := store.Get("remotehub/presets/tv/power")
	assert.NoError(t, err)
	assert.Equal(t, "AQ==", value)

	assert.NoError(t, store.Set("remotehub/presets/tv/mute", "Ag=="))
	assert.NoError(t, store.Set("remotehub/presets/amp/power", "Aw=="))
	nodes, err := store.GetRecursive("remotehub/presets/tv/")
	assert.NoError(t, err)
	if assert.Len(t, nodes, 2) {
		assert.Equal(t, "remotehub/presets/tv/mute", nodes[0].Key)
		assert.Equal(t, "remotehub/presets/tv/power", nodes[1].Key)
	}
}

func TestTextHandler(t *testing.T) {
	handler := TextHandler(func(q Question) string {
		return "hello " + q.Args
	})
	assert.Equal(t, Answer{Text: "hello world"}, handler(Question{Args: "world"}))
}

func TestStaticHandler(t *testing.T) {
	handler := StaticHandler("help text")
	assert.Equal(t, Answer{Text: "help text"}, handler(Question{}))
}
