package lesson

// AccessMeta is the per-lesson metadata the access gate needs. It is loaded
// fresh on every request and never cached across requests, so publish and
// unpublish take effect immediately.
type AccessMeta struct {
	lessonSID     string
	isPublished   bool
	isFreePreview bool
}

// NewAccessMeta creates access metadata for a lesson.
func NewAccessMeta(lessonSID string, isPublished, isFreePreview bool) AccessMeta {
	return AccessMeta{
		lessonSID:     lessonSID,
		isPublished:   isPublished,
		isFreePreview: isFreePreview,
	}
}

// LessonSID returns the lesson identifier this metadata belongs to.
func (m AccessMeta) LessonSID() string {
	return m.lessonSID
}

// IsPublished reports whether the lesson is live. Unpublished lessons are
// never accessible through the gate, regardless of entitlement.
func (m AccessMeta) IsPublished() bool {
	return m.isPublished
}

// IsFreePreview reports whether unentitled, authenticated users may see a
// redacted preview.
func (m AccessMeta) IsFreePreview() bool {
	return m.isFreePreview
}
