package desktop

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"zonesnap/internal/domain"
)

// desktopIDFromGUID converts a raw 16-byte GUID, as stored by the OS, into
// the brace-wrapped uppercase form the layout editor expects. The registry
// keeps GUIDs in Windows mixed-endian layout, so the first three fields
// are byte-swapped into RFC 4122 order before parsing.
func desktopIDFromGUID(raw []byte) (domain.DesktopID, error) {
	if len(raw) != 16 {
		return "", fmt.Errorf("virtual desktop guid is %d bytes, want 16", len(raw))
	}

	rfc := make([]byte, 16)
	copy(rfc, raw)
	rfc[0], rfc[1], rfc[2], rfc[3] = raw[3], raw[2], raw[1], raw[0]
	rfc[4], rfc[5] = raw[5], raw[4]
	rfc[6], rfc[7] = raw[7], raw[6]

	id, err := uuid.FromBytes(rfc)
	if err != nil {
		return "", fmt.Errorf("parse virtual desktop guid: %w", err)
	}

	return domain.DesktopID("{" + strings.ToUpper(id.String()) + "}"), nil
}
