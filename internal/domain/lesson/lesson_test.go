package lesson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLesson(t *testing.T) {
	l, err := NewLesson("Fractions 101", "Intro to fractions", 50, true)
	require.NoError(t, err)

	assert.NotEmpty(t, l.SID())
	assert.Equal(t, "Fractions 101", l.Title())
	assert.Equal(t, uint(50), l.PriceCoins())
	assert.False(t, l.IsPublished(), "new lessons start as drafts")
	assert.True(t, l.IsFreePreview())
}

func TestNewLessonRequiresTitle(t *testing.T) {
	_, err := NewLesson("   ", "desc", 0, false)
	assert.Error(t, err)
}

func TestReconstructLesson(t *testing.T) {
	now := time.Now()
	l, err := ReconstructLesson(7, "les_aB3xY9kQ2mNp", "Algebra", "", 100, true, false, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), l.ID())
	assert.True(t, l.IsPublished())

	_, err = ReconstructLesson(0, "les_aB3xY9kQ2mNp", "Algebra", "", 100, true, false, now, now)
	assert.Error(t, err)

	_, err = ReconstructLesson(7, "", "Algebra", "", 100, true, false, now, now)
	assert.Error(t, err)
}

func TestPublishUnpublish(t *testing.T) {
	l, err := NewLesson("Geometry", "", 0, false)
	require.NoError(t, err)

	l.Publish()
	assert.True(t, l.IsPublished())

	// Idempotent.
	updated := l.UpdatedAt()
	l.Publish()
	assert.Equal(t, updated, l.UpdatedAt())

	l.Unpublish()
	assert.False(t, l.IsPublished())
}

func TestSetID(t *testing.T) {
	l, err := NewLesson("Geometry", "", 0, false)
	require.NoError(t, err)

	require.NoError(t, l.SetID(3))
	assert.Error(t, l.SetID(4), "ID cannot be reassigned")
	assert.Equal(t, uint(3), l.ID())
}

func TestAccessMetaProjection(t *testing.T) {
	l, err := NewLesson("Geometry", "", 0, true)
	require.NoError(t, err)
	l.Publish()

	meta := l.AccessMeta()
	assert.Equal(t, l.SID(), meta.LessonSID())
	assert.True(t, meta.IsPublished())
	assert.True(t, meta.IsFreePreview())
}
