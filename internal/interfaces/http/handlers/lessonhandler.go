package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darasa-app/darasa/internal/application/lesson/usecases"
	"github.com/darasa-app/darasa/internal/shared/id"
	"github.com/darasa-app/darasa/internal/shared/logger"
	"github.com/darasa-app/darasa/internal/shared/utils"
)

// LessonHandler serves the lesson catalog endpoints: admin lifecycle
// (create, publish, unpublish) and the public published listing.
type LessonHandler struct {
	createLesson    *usecases.CreateLessonUseCase
	publishLesson   *usecases.PublishLessonUseCase
	unpublishLesson *usecases.UnpublishLessonUseCase
	listLessons     *usecases.ListPublishedLessonsUseCase
	logger          logger.Interface
}

func NewLessonHandler(
	createLesson *usecases.CreateLessonUseCase,
	publishLesson *usecases.PublishLessonUseCase,
	unpublishLesson *usecases.UnpublishLessonUseCase,
	listLessons *usecases.ListPublishedLessonsUseCase,
	logger logger.Interface,
) *LessonHandler {
	return &LessonHandler{
		createLesson:    createLesson,
		publishLesson:   publishLesson,
		unpublishLesson: unpublishLesson,
		listLessons:     listLessons,
		logger:          logger,
	}
}

// CreateLesson handles POST /admin/lessons
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var cmd usecases.CreateLessonCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createLesson.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "lesson created successfully")
}

// PublishLesson handles POST /admin/lessons/:id/publish
func (h *LessonHandler) PublishLesson(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixLesson, "lesson")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.publishLesson.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "lesson published successfully", nil)
}

// UnpublishLesson handles POST /admin/lessons/:id/unpublish
func (h *LessonHandler) UnpublishLesson(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixLesson, "lesson")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.unpublishLesson.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "lesson unpublished successfully", nil)
}

// ListLessons handles GET /lessons
func (h *LessonHandler) ListLessons(c *gin.Context) {
	lessons, err := h.listLessons.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "lessons retrieved successfully", lessons)
}
