package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_CoversEveryCategory(t *testing.T) {
	registry := DefaultRegistry()

	for _, category := range []string{"general", "technology", "science", "business", "health", "entertainment", "sports"} {
		assert.NotEmpty(t, registry[category], "category %q has no feeds", category)
	}
}

func TestLoadRegistry(t *testing.T) {
	yaml := `
General:
  - https://example.com/a.xml
  - "  "
Technology:
  - https://example.com/b.xml
Empty: []
`
	registry, err := LoadRegistry(strings.NewReader(yaml))
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/a.xml"}, registry["general"])
	assert.Equal(t, []string{"https://example.com/b.xml"}, registry["technology"])
	_, ok := registry["empty"]
	assert.False(t, ok, "categories with no usable URLs are dropped")
}

func TestLoadRegistry_Invalid(t *testing.T) {
	_, err := LoadRegistry(strings.NewReader("- just\n- a\n- list"))
	assert.Error(t, err)

	_, err = LoadRegistry(strings.NewReader("{}"))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	registry := FeedRegistry{
		"general":    {"g1", "g2"},
		"technology": {"t1", "t2", "t3", "t4"},
	}

	assert.Equal(t, []string{"t1", "t2", "t3"}, registry.Select("technology"), "capped at three feeds")
	assert.Equal(t, []string{"t1", "t2", "t3"}, registry.Select("  Technology "))
	assert.Equal(t, []string{"g1", "g2"}, registry.Select("astrology"), "unknown category falls back to general")
	assert.Equal(t, []string{"g1", "g2"}, registry.Select(""))
}

func TestURLs_Dedupes(t *testing.T) {
	registry := FeedRegistry{
		"general":  {"shared", "a"},
		"business": {"shared", "b"},
	}

	urls := registry.URLs()
	assert.Len(t, urls, 3)
	assert.ElementsMatch(t, []string{"shared", "a", "b"}, urls)
}
