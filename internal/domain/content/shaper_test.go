package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasa-app/darasa/internal/domain/access"
)

func fiveSlotPayload() *Payload {
	return &Payload{
		Items: []Item{
			{SID: "slt_1", Kind: "text", Title: "Intro", Content: "X", Position: 0},
			{SID: "slt_2", Kind: "text", Content: "X", Position: 1},
			{SID: "slt_3", Kind: "video", Content: "X", Position: 2},
			{SID: "slt_4", Kind: "text", Content: "X", Position: 3},
			{SID: "slt_5", Kind: "question", Prompt: "X", Position: 4},
		},
		Assessment: &Assessment{
			SID: "qz_1",
			Items: []AssessmentItem{
				{SID: "qst_1", Kind: "choice", Prompt: "2+2?", Choices: []string{"3", "4"}},
			},
		},
		Metadata: map[string]any{"lesson_sid": "les_a", "slot_count": 5},
	}
}

func TestShapeFullIsDeepEqualCopy(t *testing.T) {
	original := fiveSlotPayload()

	shaped := Shape(original, access.ModeFull)

	assert.Equal(t, original, shaped)
	assert.NotSame(t, original, shaped)

	// Mutating the result must not touch the original.
	shaped.Items[0].Content = "mutated"
	shaped.Metadata["extra"] = true
	assert.Equal(t, "X", original.Items[0].Content)
	assert.NotContains(t, original.Metadata, "extra")
}

func TestShapePreviewTruncatesAndRedacts(t *testing.T) {
	original := fiveSlotPayload()

	shaped := Shape(original, access.ModePreview)

	require.Len(t, shaped.Items, 3)
	for _, item := range shaped.Items {
		if item.Content != "" {
			assert.Equal(t, RedactionMarker, item.Content)
		}
		if item.Prompt != "" {
			assert.Equal(t, RedactionMarker, item.Prompt)
		}
	}

	// Structural fields survive.
	assert.Equal(t, "slt_1", shaped.Items[0].SID)
	assert.Equal(t, "text", shaped.Items[0].Kind)
	assert.Equal(t, "Intro", shaped.Items[0].Title)

	// Assessment questions are never shown in preview.
	require.NotNil(t, shaped.Assessment)
	assert.Empty(t, shaped.Assessment.Items)

	// Metadata flag set, other keys preserved.
	assert.Equal(t, true, shaped.Metadata["preview"])
	assert.Equal(t, "les_a", shaped.Metadata["lesson_sid"])

	// Original untouched.
	assert.Len(t, original.Items, 5)
	assert.Equal(t, "X", original.Items[0].Content)
	assert.Len(t, original.Assessment.Items, 1)
	assert.NotContains(t, original.Metadata, "preview")
}

func TestShapePreviewEmptyItemsLeftAlone(t *testing.T) {
	shaped := Shape(&Payload{
		Items: []Item{
			{SID: "slt_1", Kind: "text", Content: "", Position: 0},
		},
	}, access.ModePreview)

	// Empty text stays empty instead of gaining a marker.
	assert.Equal(t, "", shaped.Items[0].Content)
	assert.Equal(t, true, shaped.Metadata["preview"])
}

func TestShapePreviewFewerThanThreeItems(t *testing.T) {
	shaped := Shape(&Payload{
		Items:    []Item{{SID: "slt_1", Content: "X"}},
		Metadata: map[string]any{},
	}, access.ModePreview)

	require.Len(t, shaped.Items, 1)
	assert.Equal(t, RedactionMarker, shaped.Items[0].Content)
}

func TestShapePreviewMissingOptionalFields(t *testing.T) {
	// No items, no assessment, no metadata: shaping still succeeds.
	shaped := Shape(&Payload{}, access.ModePreview)

	assert.Empty(t, shaped.Items)
	assert.Nil(t, shaped.Assessment)
	assert.Equal(t, true, shaped.Metadata["preview"])
}

func TestShapePreviewIdempotent(t *testing.T) {
	once := Shape(fiveSlotPayload(), access.ModePreview)
	twice := Shape(once, access.ModePreview)

	assert.Equal(t, once, twice)
}

func TestShapeNilPayload(t *testing.T) {
	assert.Nil(t, Shape(nil, access.ModeFull))
	assert.Nil(t, Shape(nil, access.ModePreview))
}

func TestCloneDeepCopiesAssessmentChoices(t *testing.T) {
	original := fiveSlotPayload()

	clone := original.Clone()
	clone.Assessment.Items[0].Choices[0] = "mutated"

	assert.Equal(t, "3", original.Assessment.Items[0].Choices[0])
}

func TestTypeIsValid(t *testing.T) {
	for _, ct := range []Type{TypeLesson, TypeQuiz, TypeFlashcard, TypeExam, TypeProgress} {
		assert.True(t, ct.IsValid(), ct)
	}
	assert.False(t, Type("worksheet").IsValid())
}
