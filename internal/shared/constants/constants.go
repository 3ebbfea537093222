// Package constants defines shared constant values used across layers.
package constants

// Context keys set by the auth middleware and read by handlers.
const (
	ContextKeyUserSID  = "user_sid"
	ContextKeyUserRole = "user_role"
)

// Database table names.
const (
	TableUsers         = "users"
	TableLessons       = "lessons"
	TableLessonSlots   = "lesson_slots"
	TableQuizQuestions = "quiz_questions"
	TableFlashcards    = "flashcards"
	TableExamTasks     = "exam_tasks"
	TableProgress      = "lesson_progress"
	TableSubscriptions = "subscriptions"
	TablePurchases     = "purchases"
)
