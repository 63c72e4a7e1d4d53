package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kellyos/kellyos-api/internal/application/analytics"
)

// ParseRange tolera cualquier input del query string: vacío o basura caen al
// default y los rangos absurdos se recortan al máximo.
func TestParseRange(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"vacío usa el default", "", 30},
		{"no numérico usa el default", "abc", 30},
		{"cero usa el default", "0", 30},
		{"negativo usa el default", "-7", 30},
		{"valor válido se respeta", "90", 90},
		{"máximo exacto se respeta", "365", 365},
		{"por encima del máximo se recorta", "5000", 365},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analytics.ParseRange(tc.raw))
		})
	}
}
