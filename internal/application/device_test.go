package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueDeviceIDFirstOccurrenceUntouched(t *testing.T) {
	t.Parallel()

	counts := deviceCounts{}
	assert.Equal(t, "DISPLAY1", uniqueDeviceID(`\\.\DISPLAY1`, counts))
}

func TestUniqueDeviceIDSuffixesDuplicates(t *testing.T) {
	t.Parallel()

	counts := deviceCounts{}
	first := uniqueDeviceID(`\\.\DISPLAY1`, counts)
	second := uniqueDeviceID(`\\.\DISPLAY1`, counts)
	third := uniqueDeviceID(`\\.\DISPLAY1`, counts)

	assert.Equal(t, "DISPLAY1", first)
	assert.Equal(t, "DISPLAY1_1", second)
	assert.Equal(t, "DISPLAY1_2", third)
	assert.NotEqual(t, first, second)
}

func TestUniqueDeviceIDTracksBasesIndependently(t *testing.T) {
	t.Parallel()

	counts := deviceCounts{}
	assert.Equal(t, "DISPLAY1", uniqueDeviceID(`\\.\DISPLAY1`, counts))
	assert.Equal(t, "DISPLAY2", uniqueDeviceID(`\\.\DISPLAY2`, counts))
	assert.Equal(t, "DISPLAY1_1", uniqueDeviceID(`\\.\DISPLAY1`, counts))
}

func TestUniqueDeviceIDCountsAreScopedPerSnapshot(t *testing.T) {
	t.Parallel()

	first := uniqueDeviceID(`\\.\DISPLAY1`, deviceCounts{})
	second := uniqueDeviceID(`\\.\DISPLAY1`, deviceCounts{})
	assert.Equal(t, first, second)
}

func TestTrimDeviceID(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		`\\.\DISPLAY1`: "DISPLAY1",
		`\\?\DISPLAY#GSM5B08#5&a1b2c3&0&UID4352#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}`: "DISPLAY#GSM5B08#5&a1b2c3&0&UID4352",
		"FallbackDevice": "FallbackDevice",
	}

	for raw, want := range cases {
		assert.Equal(t, want, trimDeviceID(raw), "raw: %s", raw)
	}
}
