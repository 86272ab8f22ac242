package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bleau-backend/internal/styles"
)

func TestCatalog_Find(t *testing.T) {
	option, ok := styles.Classic.Find("pixar")
	assert.True(t, ok)
	assert.Equal(t, "pixar", option.Value)
	assert.NotEmpty(t, option.Prompt)

	_, ok = styles.Classic.Find("rainbow-bridge")
	assert.False(t, ok, "memorial styles are not valid for the classic workflow")

	_, ok = styles.Memorial.Find("rainbow-bridge")
	assert.True(t, ok)

	_, ok = styles.Classic.Find("")
	assert.False(t, ok)
}

func TestCatalogs_Complete(t *testing.T) {
	for _, catalog := range []styles.Catalog{styles.Classic, styles.Memorial, styles.MultiPet, styles.Together} {
		assert.Len(t, catalog, 6)
		for _, option := range catalog {
			assert.NotEmpty(t, option.Value)
			assert.NotEmpty(t, option.Label)
			assert.NotEmpty(t, option.Prompt)
		}
	}
}
