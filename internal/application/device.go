package application

import (
	"fmt"
	"strings"
)

// deviceCounts tracks how often each raw device id has been seen within a
// single snapshot. Display adapters can drive several monitors under the
// same device id, so occurrences past the first get an index suffix.
type deviceCounts map[string]int

// uniqueDeviceID returns a device id unique within the snapshot tracked by
// counts. The first occurrence of an id is kept as is; later occurrences
// carry a "_<n>" suffix. The result is trimmed of the device-namespace
// decoration the OS prepends.
func uniqueDeviceID(raw string, counts deviceCounts) string {
	n := counts[raw]
	counts[raw] = n + 1

	id := raw
	if n > 0 {
		id = fmt.Sprintf("%s_%d", raw, n)
	}

	return trimDeviceID(id)
}

// trimDeviceID strips the `\\.\` / `\\?\` prefix and any trailing
// `#{container-guid}` segment from a display device id, leaving the stable
// middle part, e.g. `\\.\DISPLAY1` -> `DISPLAY1`.
func trimDeviceID(id string) string {
	id = strings.TrimPrefix(id, `\\?\`)
	id = strings.TrimPrefix(id, `\\.\`)
	if i := strings.LastIndex(id, "#{"); i >= 0 {
		id = id[:i]
	}
	return id
}
