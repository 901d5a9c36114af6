package domain

// DesktopID is the stable identifier of a virtual desktop, formatted as a
// brace-wrapped uppercase GUID, e.g.
// {A1B2C3D4-E5F6-4711-8122-334455667788}. Zone layouts are scoped per
// virtual desktop, so every monitor record carries it.
type DesktopID string
