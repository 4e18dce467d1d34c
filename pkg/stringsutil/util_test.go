package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"a", "", "b", ""}))
	assert.Nil(t, RemoveEmptyStrings([]string{"", ""}))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"long string cut with ellipsis", "hello world", 8, "hello wo..."},
		{"whitespace collapsed", "a  b\n\tc", 20, "a b c"},
		{"trailing space trimmed before ellipsis", "hello world", 6, "hello..."},
		{"empty input", "", 10, ""},
		{"multibyte runes respected", "héllo wörld", 7, "héllo w..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}
