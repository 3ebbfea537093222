package content

import "github.com/darasa-app/darasa/internal/domain/access"

// RedactionMarker replaces redactable text in preview payloads. The
// structural shape stays intact so clients can still render the layout.
const RedactionMarker = "[PREVIEW]"

// previewItemLimit caps how many items a preview payload may carry.
const previewItemLimit = 3

// Shape applies an access mode to a payload and returns a new payload.
//
// Full mode is the identity transform on a deep copy: the result compares
// deep-equal to the input and the input is never mutated.
//
// Preview mode, on the copy:
//   - truncates Items to the first three entries,
//   - replaces each retained item's non-empty Content and Prompt with the
//     redaction marker, leaving SID, kind, title and position intact,
//   - empties Assessment.Items when an assessment is present (graded
//     questions are never shown in preview, independent of the item cap),
//   - sets Metadata["preview"] = true, preserving other metadata keys.
//
// Shape is total over well-formed payloads: absent optional fields are
// skipped, never an error. Re-shaping an already shaped preview payload is a
// no-op beyond the redaction already applied.
func Shape(p *Payload, mode access.Mode) *Payload {
	if p == nil {
		return nil
	}

	out := p.Clone()
	if mode != access.ModePreview {
		return out
	}

	if len(out.Items) > previewItemLimit {
		out.Items = out.Items[:previewItemLimit]
	}
	for i := range out.Items {
		if out.Items[i].Content != "" {
			out.Items[i].Content = RedactionMarker
		}
		if out.Items[i].Prompt != "" {
			out.Items[i].Prompt = RedactionMarker
		}
	}

	if out.Assessment != nil {
		out.Assessment.Items = []AssessmentItem{}
	}

	if out.Metadata == nil {
		out.Metadata = make(map[string]any, 1)
	}
	out.Metadata["preview"] = true

	return out
}
