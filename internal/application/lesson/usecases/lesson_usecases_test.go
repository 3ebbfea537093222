package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/shared/errors"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

type stubLessonRepo struct {
	lessons map[string]*lesson.Lesson
	nextID  uint
	err     error
}

func newStubLessonRepo() *stubLessonRepo {
	return &stubLessonRepo{lessons: make(map[string]*lesson.Lesson), nextID: 1}
}

func (s *stubLessonRepo) Create(ctx context.Context, l *lesson.Lesson) error {
	if s.err != nil {
		return s.err
	}
	_ = l.SetID(s.nextID)
	s.nextID++
	s.lessons[l.SID()] = l
	return nil
}

func (s *stubLessonRepo) GetBySID(ctx context.Context, sid string) (*lesson.Lesson, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.lessons[sid], nil
}

func (s *stubLessonRepo) Save(ctx context.Context, l *lesson.Lesson) error {
	if s.err != nil {
		return s.err
	}
	s.lessons[l.SID()] = l
	return nil
}

func (s *stubLessonRepo) ListPublished(ctx context.Context) ([]*lesson.Lesson, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*lesson.Lesson
	for _, l := range s.lessons {
		if l.IsPublished() {
			out = append(out, l)
		}
	}
	return out, nil
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.Default())
}

func TestCreateLesson(t *testing.T) {
	repo := newStubLessonRepo()
	uc := NewCreateLessonUseCase(repo, testLogger())

	got, err := uc.Execute(context.Background(), CreateLessonCommand{
		Title:         "Fractions 101",
		Description:   "Intro to fractions",
		PriceCoins:    50,
		IsFreePreview: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.SID)
	assert.False(t, got.IsPublished)
	assert.True(t, got.IsFreePreview)
	assert.Contains(t, repo.lessons, got.SID)
}

func TestCreateLessonValidation(t *testing.T) {
	uc := NewCreateLessonUseCase(newStubLessonRepo(), testLogger())

	_, err := uc.Execute(context.Background(), CreateLessonCommand{Title: ""})
	assert.True(t, errors.IsValidationError(err))
}

func TestPublishAndUnpublishLesson(t *testing.T) {
	repo := newStubLessonRepo()
	createUC := NewCreateLessonUseCase(repo, testLogger())
	publishUC := NewPublishLessonUseCase(repo, testLogger())
	unpublishUC := NewUnpublishLessonUseCase(repo, testLogger())

	created, err := createUC.Execute(context.Background(), CreateLessonCommand{Title: "Algebra"})
	require.NoError(t, err)

	require.NoError(t, publishUC.Execute(context.Background(), created.SID))
	assert.True(t, repo.lessons[created.SID].IsPublished())

	require.NoError(t, unpublishUC.Execute(context.Background(), created.SID))
	assert.False(t, repo.lessons[created.SID].IsPublished())
}

func TestPublishLessonNotFound(t *testing.T) {
	uc := NewPublishLessonUseCase(newStubLessonRepo(), testLogger())

	err := uc.Execute(context.Background(), "les_missing00000")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPublishLessonRepoFailure(t *testing.T) {
	repo := newStubLessonRepo()
	repo.err = fmt.Errorf("connection refused")
	uc := NewPublishLessonUseCase(repo, testLogger())

	err := uc.Execute(context.Background(), "les_whatever0000")
	require.Error(t, err)
	assert.False(t, errors.IsAppError(err))
}

func TestListPublishedLessons(t *testing.T) {
	repo := newStubLessonRepo()
	createUC := NewCreateLessonUseCase(repo, testLogger())
	publishUC := NewPublishLessonUseCase(repo, testLogger())
	listUC := NewListPublishedLessonsUseCase(repo, testLogger())

	a, err := createUC.Execute(context.Background(), CreateLessonCommand{Title: "A"})
	require.NoError(t, err)
	_, err = createUC.Execute(context.Background(), CreateLessonCommand{Title: "B"})
	require.NoError(t, err)
	require.NoError(t, publishUC.Execute(context.Background(), a.SID))

	got, err := listUC.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.SID, got[0].SID)
}
