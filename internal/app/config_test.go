package app

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	c := NewConfig()
	fs := pflag.NewFlagSet("ca", pflag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--size=5", "--seed", "7"}))

	assert.Equal(t, "kempe", c.Sim)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, map[string]string{"size": "5"}, c.SimConfig())
}
