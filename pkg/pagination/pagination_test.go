package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRequestValidate(t *testing.T) {
	r := &OffsetRequest{Page: 0, Size: 0}
	assert.NoError(t, r.Validate())
	assert.Equal(t, 1, r.Page)
	assert.Equal(t, PageDefaultSize, r.Size)

	r = &OffsetRequest{Page: 2, Size: 9999}
	assert.NoError(t, r.Validate())
	assert.Equal(t, 2, r.Page)
	assert.Equal(t, PageMaxSize, r.Size)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Slice(items, 1, 2))
	assert.Equal(t, []int{3, 4}, Slice(items, 2, 2))
	assert.Equal(t, []int{5}, Slice(items, 3, 2))
	assert.Empty(t, Slice(items, 4, 2), "page past the end is empty, not an error")
	assert.Equal(t, []int{1, 2}, Slice(items, 0, 2), "page below one treated as first page")
	assert.Empty(t, Slice([]int{}, 1, 10))
}
