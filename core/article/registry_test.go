package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{Direct, Proxy, Readability, Reader}, Names())
}

func TestNames_EveryNameBuilds(t *testing.T) {
	strategies, err := BuildStrategies(Names(), testSettings(t))

	require.NoError(t, err)
	require.Len(t, strategies, len(Names()))
	for i, name := range Names() {
		assert.Equal(t, name, strategies[i].Name())
	}
}
