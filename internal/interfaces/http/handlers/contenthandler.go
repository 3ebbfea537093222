package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appaccess "github.com/darasa-app/darasa/internal/application/access"
	"github.com/darasa-app/darasa/internal/domain/access"
	"github.com/darasa-app/darasa/internal/domain/content"
	"github.com/darasa-app/darasa/internal/domain/entitlement"
	"github.com/darasa-app/darasa/internal/shared/constants"
	"github.com/darasa-app/darasa/internal/shared/errors"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

// ContentHandler serves the gated content endpoints. All five content types
// share one flow: resolve identity, run the gate, map the result. The wire
// format is deliberately minimal: the shaped payload on success, a bare
// {"error": reason} object on denial.
type ContentHandler struct {
	getContent      *appaccess.GetContentUseCase
	entitlementRepo entitlement.Repository
	logger          logger.Interface
}

func NewContentHandler(
	getContent *appaccess.GetContentUseCase,
	entitlementRepo entitlement.Repository,
	logger logger.Interface,
) *ContentHandler {
	return &ContentHandler{
		getContent:      getContent,
		entitlementRepo: entitlementRepo,
		logger:          logger,
	}
}

// GetLessonContent handles GET /lessons/:id/content
func (h *ContentHandler) GetLessonContent(c *gin.Context) {
	h.serve(c, content.TypeLesson, c.Param("id"))
}

// GetQuiz handles GET /quizzes?lessonId=<id>
func (h *ContentHandler) GetQuiz(c *gin.Context) {
	h.serve(c, content.TypeQuiz, c.Query("lessonId"))
}

// GetFlashcards handles GET /flashcards?lessonId=<id>
func (h *ContentHandler) GetFlashcards(c *gin.Context) {
	h.serve(c, content.TypeFlashcard, c.Query("lessonId"))
}

// GetExam handles GET /exams?lessonId=<id>
func (h *ContentHandler) GetExam(c *gin.Context) {
	h.serve(c, content.TypeExam, c.Query("lessonId"))
}

// GetProgress handles GET /progress?lessonId=<id>
func (h *ContentHandler) GetProgress(c *gin.Context) {
	h.serve(c, content.TypeProgress, c.Query("lessonId"))
}

func (h *ContentHandler) serve(c *gin.Context, contentType content.Type, lessonSID string) {
	// Parameter validation happens before any gate work.
	if lessonSID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MISSING_LESSON_ID"})
		return
	}

	user, err := h.resolveUser(c)
	if err != nil {
		h.logger.Errorw("failed to resolve user entitlements",
			"error", err, "lesson_sid", lessonSID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL"})
		return
	}

	result, err := h.getContent.Execute(c.Request.Context(), contentType, lessonSID, user)
	if err != nil {
		// A lesson that does not exist is indistinguishable from one that is
		// not yet published.
		if errors.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": string(access.ReasonNotPublished)})
			return
		}
		if errors.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "MISSING_LESSON_ID"})
			return
		}
		h.logger.Errorw("content gate failed",
			"error", err, "lesson_sid", lessonSID, "content_type", contentType)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL"})
		return
	}

	if !result.Allowed {
		c.JSON(DenyStatus(result.Reason), gin.H{"error": string(result.Reason)})
		return
	}

	c.JSON(http.StatusOK, result.Payload)
}

// resolveUser builds the entitlement snapshot for the authenticated caller.
// Returns (nil, nil) when the request carries no identity.
func (h *ContentHandler) resolveUser(c *gin.Context) (*entitlement.UserEntitlements, error) {
	userSID, exists := c.Get(constants.ContextKeyUserSID)
	if !exists {
		return nil, nil
	}

	sid, ok := userSID.(string)
	if !ok || sid == "" {
		return nil, nil
	}

	return h.entitlementRepo.GetForUser(c.Request.Context(), sid)
}
