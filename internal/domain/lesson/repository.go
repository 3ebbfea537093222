package lesson

import "context"

// Repository defines persistence operations for the lesson aggregate.
// Implementations return (nil, nil) when a lesson does not exist.
type Repository interface {
	Create(ctx context.Context, lessonEntity *Lesson) error
	GetBySID(ctx context.Context, sid string) (*Lesson, error)
	Save(ctx context.Context, lessonEntity *Lesson) error
	ListPublished(ctx context.Context) ([]*Lesson, error)
}

// AccessMetaRepository loads the gating flags for one lesson. It is the
// metadata seam of the access gate: called once per request, never cached.
// Implementations return (nil, nil) when the lesson does not exist.
type AccessMetaRepository interface {
	GetAccessMeta(ctx context.Context, lessonSID string) (*AccessMeta, error)
}
