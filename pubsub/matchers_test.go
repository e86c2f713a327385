package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	topic := Prefix("command")
	assert.True(t, topic.Match("command"))
	assert.True(t, topic.Match("command/tv.living"))
	assert.False(t, topic.Match("commander"))
	assert.False(t, topic.Match("ack"))
}

func TestExact(t *testing.T) {
	topic := Exact("config")
	assert.True(t, topic.Match("config"))
	assert.False(t, topic.Match("config/extra"))
}

func TestAll(t *testing.T) {
	assert.True(t, All().Match("anything"))
}
