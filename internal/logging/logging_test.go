package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	fs := Flags(1)
	defer Flush()

	v := fs.Lookup("v")
	require.NotNil(t, v)
	assert.Equal(t, "1", v.Value.String())

	stderr := fs.Lookup("logtostderr")
	require.NotNil(t, stderr)
	assert.Equal(t, "true", stderr.Value.String())
}
