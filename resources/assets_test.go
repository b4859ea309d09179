package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_Embedded(t *testing.T) {
	for _, name := range []string{IconApp, IconPaused, IconBreak} {
		resource, err := Icon(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, resource.Name())
		assert.Contains(t, string(resource.Content()), "<svg")
	}
}

func TestIcon_Cached(t *testing.T) {
	assert.Same(t, MustIcon(IconApp), MustIcon(IconApp))
}

func TestIcon_Missing(t *testing.T) {
	_, err := Icon("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("missing.svg") })
}

func TestSound_Embedded(t *testing.T) {
	data, err := Sound(SoundComplete)

	require.NoError(t, err)
	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))

	_, err = Sound("missing.wav")
	assert.Error(t, err)
	assert.Panics(t, func() { MustSound("missing.wav") })
}
