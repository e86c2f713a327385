package remote

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/remote-hub/remotehub/services"
)

// PresetStore holds learned codes, keyed by preset and button name.
// Codes are kept in their text-safe encoded form.
type PresetStore interface {
	Get(preset, button string) (string, error)
	Set(preset, button, code string) error
	Buttons(preset string) ([]string, error)
}

const presetKeyPrefix = "remotehub/presets/"

func presetKey(preset, button string) string {
	return fmt.Sprintf("%s%s/%s", presetKeyPrefix, preset, button)
}

// presetStore keeps codes in the runtime key/value store, one key per
// preset/button slot.
type presetStore struct {
	store services.Store
}

func NewPresetStore(store services.Store) PresetStore {
	return &presetStore{store: store}
}

func (p *presetStore) Get(preset, button string) (string, error) {
	value, err := p.store.Get(presetKey(preset, button))
	switch {
	case errors.Is(err, services.ErrKeyNotFound):
		return "", errors.Wrapf(ErrCodeNotFound, "%s/%s", preset, button)
	case err != nil:
		// store failure, not an absent code
		return "", errors.Wrapf(err, "reading code for %s/%s", preset, button)
	}
	return value, nil
}

func (p *presetStore) Set(preset, button, code string) error {
	return p.store.Set(presetKey(preset, button), code)
}

func (p *presetStore) Buttons(preset string) ([]string, error) {
	prefix := presetKeyPrefix + preset + "/"
	nodes, err := p.store.GetRecursive(prefix)
	if err != nil {
		return nil, err
	}
	buttons := make([]string, len(nodes))
	for i, node := range nodes {
		buttons[i] = strings.TrimPrefix(node.Key, prefix)
	}
	return buttons, nil
}

// EncodeCode converts a raw command code to its text-safe stored form.
func EncodeCode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeCode converts a stored code back to the raw bytes to transmit.
func DecodeCode(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}
