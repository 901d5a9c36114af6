package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonesnap/internal/domain"
)

func TestDesktopIDFromGUIDSwapsMixedEndianFields(t *testing.T) {
	t.Parallel()

	raw := []byte{
		0x33, 0x22, 0x11, 0x00,
		0x55, 0x44,
		0x77, 0x66,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}

	id, err := desktopIDFromGUID(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.DesktopID("{00112233-4455-6677-8899-AABBCCDDEEFF}"), id)
}

func TestDesktopIDFromGUIDRoundTripsNilGUID(t *testing.T) {
	t.Parallel()

	id, err := desktopIDFromGUID(make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, domain.DesktopID("{00000000-0000-0000-0000-000000000000}"), id)
}

func TestDesktopIDFromGUIDRejectsWrongLength(t *testing.T) {
	t.Parallel()

	_, err := desktopIDFromGUID([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)

	_, err = desktopIDFromGUID(make([]byte, 17))
	require.Error(t, err)
}
