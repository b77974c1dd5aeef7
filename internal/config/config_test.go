package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
log_level: debug
device: /dev/input/event3
labels:
  key.enter: Return
  key.numpad: KP
ws_listen: localhost:7397
dbus: true
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/dev/input/event3", cfg.Device)
	assert.Equal(t, "Return", cfg.Labels["key.enter"])
	assert.Equal(t, "KP", cfg.Labels["key.numpad"])
	assert.Equal(t, "localhost:7397", cfg.WSListen)
	assert.True(t, cfg.DBus)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse([]byte{})
	require.NoError(t, err)
	assert.Empty(t, cfg.LogLevel)
	assert.Nil(t, cfg.Labels)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("log_level: [not: closed"))
	assert.Error(t, err)
}
