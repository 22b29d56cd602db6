package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NotEmpty(t, StyleRegistry, "init must populate the registry")

	for _, name := range []string{"Header", "Success", "Error", "Warning", "Muted", "Tool"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s must be defined in styles.yaml", name)
	}
}

func TestGetStyleUnknownName(t *testing.T) {
	// unknown names render unstyled rather than crashing
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromDataRejectsGarbage(t *testing.T) {
	err := LoadStylesFromData([]byte("{not yaml"))
	assert.Error(t, err)

	// restore the embedded registry for other tests
	require.NoError(t, LoadStylesFromData(embeddedStyles))
}
