package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	want := []byte{0xE2, 0x00, 0x00, 0x17}
	for _, in := range []string{"E2000017", "e2000017", "E2 00 00 17", "E2:00:00:17", "0xE2000017", " e2-00-00-17 "} {
		got, err := ParseHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"E2F", "ZZ", "E2 0"} {
		_, err := ParseHex(in)
		assert.Error(t, err, in)
	}
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "", FormatHex(nil))
	assert.Equal(t, "0A", FormatHex([]byte{0x0A}))
	assert.Equal(t, "E2 00 FF", FormatHex([]byte{0xE2, 0x00, 0xFF}))
}
