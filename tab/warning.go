package tab

import "fmt"

type WarningKind string

const (
	UnknownMarker   WarningKind = "unknown-marker"
	SpliceMismatch  WarningKind = "splice-mismatch"
	BadChord        WarningKind = "bad-chord"
	MissingContent  WarningKind = "missing-content"
	MissingMetadata WarningKind = "missing-metadata"
	MissingPayload  WarningKind = "missing-payload"
)

// Warning is a non-fatal anomaly in third-party tab data. Line is 1-based,
// 0 when the warning is not tied to a line.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Line   int         `json:"line,omitempty"`
	Detail string      `json:"detail"`
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Kind, w.Line, w.Detail)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Detail)
}
