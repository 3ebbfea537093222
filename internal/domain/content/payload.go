// Package content defines the generic content payload served through the
// access gate and the preview shaping applied to it.
package content

// Type identifies which content surface a payload belongs to.
type Type string

const (
	TypeLesson    Type = "lesson"
	TypeQuiz      Type = "quiz"
	TypeFlashcard Type = "flashcard"
	TypeExam      Type = "exam"
	TypeProgress  Type = "progress"
)

// IsValid checks if the content type is a known type.
func (t Type) IsValid() bool {
	switch t {
	case TypeLesson, TypeQuiz, TypeFlashcard, TypeExam, TypeProgress:
		return true
	default:
		return false
	}
}

// String returns the string representation of the content type.
func (t Type) String() string {
	return string(t)
}

// Payload is the structural shape shared by every content type. Lesson slots,
// quiz items, flashcards and exam sections all map onto Items; graded
// question banks map onto Assessment. Fields are optional: shaping probes
// what is present instead of requiring a per-type schema, so new content
// types can be added without touching the shaper.
type Payload struct {
	Items      []Item         `json:"items,omitempty"`
	Assessment *Assessment    `json:"assessment,omitempty"`
	Metadata   map[string]any `json:"metadata"`
}

// Item is one renderable unit: a lesson slot, a practice question, a
// flashcard, an exam section. ID, kind and position are structural and
// survive preview shaping; content and prompt are redactable text.
type Item struct {
	SID      string `json:"sid"`
	Kind     string `json:"kind"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Position int    `json:"position"`
}

// Assessment is a graded question bank attached to a payload. Its items are
// never shown in preview mode.
type Assessment struct {
	SID   string           `json:"sid"`
	Items []AssessmentItem `json:"items"`
}

// AssessmentItem is one graded question.
type AssessmentItem struct {
	SID     string   `json:"sid"`
	Kind    string   `json:"kind"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices,omitempty"`
}

// Clone returns a deep copy of the payload. Shaping always works on a clone
// so callers holding the original (e.g. a shared cached payload) never
// observe mutation.
func (p *Payload) Clone() *Payload {
	if p == nil {
		return nil
	}

	out := &Payload{}

	if p.Items != nil {
		out.Items = make([]Item, len(p.Items))
		copy(out.Items, p.Items)
	}

	if p.Assessment != nil {
		assessment := &Assessment{SID: p.Assessment.SID}
		if p.Assessment.Items != nil {
			assessment.Items = make([]AssessmentItem, len(p.Assessment.Items))
			copy(assessment.Items, p.Assessment.Items)
			for i := range assessment.Items {
				if p.Assessment.Items[i].Choices != nil {
					assessment.Items[i].Choices = make([]string, len(p.Assessment.Items[i].Choices))
					copy(assessment.Items[i].Choices, p.Assessment.Items[i].Choices)
				}
			}
		}
		out.Assessment = assessment
	}

	if p.Metadata != nil {
		out.Metadata = make(map[string]any, len(p.Metadata))
		for k, v := range p.Metadata {
			out.Metadata[k] = v
		}
	}

	return out
}
