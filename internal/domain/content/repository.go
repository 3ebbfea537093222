package content

import "context"

// PayloadRepository loads the full content payload for one lesson and content
// type. It is the payload seam of the access gate: only invoked after access
// has been confirmed, so denied callers never trigger a content fetch.
// Implementations return (nil, nil) when no content exists.
type PayloadRepository interface {
	GetPayload(ctx context.Context, contentType Type, lessonSID string) (*Payload, error)
}
