package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordArgs(t *testing.T) {
	assert.Equal(t, map[string]string{}, KeywordArgs([]string{}))
	assert.Equal(t, map[string]string{"": "learn"}, KeywordArgs([]string{"learn"}))
	assert.Equal(t,
		map[string]string{"": "learn", "preset": "tv", "button": "power"},
		KeywordArgs([]string{"learn", "preset=tv", "button=power"}))
}

func TestParseArgs(t *testing.T) {
	command, fields := ParseArgs([]string{"send", "repeat=2", "button=volume_up"})
	assert.Equal(t, "send", command)
	assert.Equal(t, map[string]interface{}{"repeat": 2.0, "button": "volume_up"}, fields)
}
