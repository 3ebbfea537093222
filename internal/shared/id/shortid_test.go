package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate(DefaultLength)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)

	for _, r := range got {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
	}
}

func TestGenerateZeroLengthUsesDefault(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixLesson, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "les_"))
}

func TestParsePrefixedID(t *testing.T) {
	prefix, short, err := ParsePrefixedID("les_aB3xY9kQ2mNp")
	require.NoError(t, err)
	assert.Equal(t, "les", prefix)
	assert.Equal(t, "aB3xY9kQ2mNp", short)

	_, _, err = ParsePrefixedID("noprefix")
	assert.Error(t, err)
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("les_aB3xY9kQ2mNp", PrefixLesson))
	assert.Error(t, ValidatePrefix("usr_aB3xY9kQ2mNp", PrefixLesson))
	assert.Error(t, ValidatePrefix("garbage", PrefixLesson))
}

func TestNewLessonSID(t *testing.T) {
	sid := NewLessonSID()
	assert.NoError(t, ValidatePrefix(sid, PrefixLesson))

	// Two generations should not collide.
	assert.NotEqual(t, sid, NewLessonSID())
}
