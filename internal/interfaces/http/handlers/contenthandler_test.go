package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaccess "github.com/darasa-app/darasa/internal/application/access"
	"github.com/darasa-app/darasa/internal/domain/access"
	"github.com/darasa-app/darasa/internal/domain/content"
	"github.com/darasa-app/darasa/internal/domain/entitlement"
	"github.com/darasa-app/darasa/internal/domain/lesson"
	"github.com/darasa-app/darasa/internal/shared/constants"
	"github.com/darasa-app/darasa/internal/shared/logger"
)

type fakeMetaRepo struct {
	metas map[string]lesson.AccessMeta
	err   error
}

func (f *fakeMetaRepo) GetAccessMeta(ctx context.Context, sid string) (*lesson.AccessMeta, error) {
	if f.err != nil {
		return nil, f.err
	}
	meta, ok := f.metas[sid]
	if !ok {
		return nil, nil
	}
	return &meta, nil
}

type fakePayloadRepo struct {
	payloads map[string]*content.Payload
	err      error
}

func (f *fakePayloadRepo) GetPayload(ctx context.Context, contentType content.Type, sid string) (*content.Payload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payloads[sid], nil
}

type fakeEntitlementRepo struct {
	snapshots map[string]*entitlement.UserEntitlements
	err       error
}

func (f *fakeEntitlementRepo) GetForUser(ctx context.Context, userSID string) (*entitlement.UserEntitlements, error) {
	if f.err != nil {
		return nil, f.err
	}
	if snap, ok := f.snapshots[userSID]; ok {
		return snap, nil
	}
	return entitlement.NewUserEntitlements(userSID, false, nil)
}

type gateFixture struct {
	metaRepo        *fakeMetaRepo
	payloadRepo     *fakePayloadRepo
	entitlementRepo *fakeEntitlementRepo
	engine          *gin.Engine
}

// identityHeader carries the acting user in tests, standing in for the JWT
// middleware which is exercised separately.
const identityHeader = "X-Test-User"

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &gateFixture{
		metaRepo:        &fakeMetaRepo{metas: map[string]lesson.AccessMeta{}},
		payloadRepo:     &fakePayloadRepo{payloads: map[string]*content.Payload{}},
		entitlementRepo: &fakeEntitlementRepo{snapshots: map[string]*entitlement.UserEntitlements{}},
	}

	log := logger.NewLoggerWithSlog(slog.Default())
	uc := appaccess.NewGetContentUseCase(f.metaRepo, f.payloadRepo, log)
	h := NewContentHandler(uc, f.entitlementRepo, log)

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if user := c.GetHeader(identityHeader); user != "" {
			c.Set(constants.ContextKeyUserSID, user)
		}
		c.Next()
	})
	engine.GET("/lessons/:id/content", h.GetLessonContent)
	engine.GET("/quizzes", h.GetQuiz)
	engine.GET("/flashcards", h.GetFlashcards)
	engine.GET("/exams", h.GetExam)
	engine.GET("/progress", h.GetProgress)

	f.engine = engine
	return f
}

func (f *gateFixture) addLesson(sid string, published, freePreview bool) {
	f.metaRepo.metas[sid] = lesson.NewAccessMeta(sid, published, freePreview)
	f.payloadRepo.payloads[sid] = &content.Payload{
		Items: []content.Item{
			{SID: "slt_1", Kind: "text", Title: "Intro", Content: "body one", Position: 0},
			{SID: "slt_2", Kind: "text", Title: "Middle", Content: "body two", Position: 1},
			{SID: "slt_3", Kind: "video", Title: "Clip", Content: "body three", Position: 2},
			{SID: "slt_4", Kind: "text", Title: "End", Content: "body four", Position: 3},
		},
		Assessment: &content.Assessment{
			SID: "quiz_" + sid,
			Items: []content.AssessmentItem{
				{SID: "qz_1", Kind: "single", Prompt: "2+2?", Choices: []string{"3", "4"}},
			},
		},
		Metadata: map[string]any{"lessonSid": sid},
	}
}

func (f *gateFixture) addUser(t *testing.T, userSID string, subscriptionActive bool, purchased ...string) {
	t.Helper()
	snap, err := entitlement.NewUserEntitlements(userSID, subscriptionActive, purchased)
	require.NoError(t, err)
	f.entitlementRepo.snapshots[userSID] = snap
}

func (f *gateFixture) get(path, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != "" {
		req.Header.Set(identityHeader, user)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func decodePayload(t *testing.T, w *httptest.ResponseRecorder) *content.Payload {
	t.Helper()
	var payload content.Payload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return &payload
}

func TestAnonymousDeniedOnPaidLesson(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_paid00000001", true, false)

	w := f.get("/lessons/les_paid00000001/content", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(access.ReasonNotAuthenticated), decodeError(t, w))
}

func TestAnonymousDeniedOnFreePreviewLesson(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_free00000001", true, true)

	// Anonymous callers are denied before the free-preview rule is reached;
	// preview is for authenticated, unentitled users.
	w := f.get("/lessons/les_free00000001/content", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(access.ReasonNotAuthenticated), decodeError(t, w))
}

func TestUnentitledUserGetsPreviewOnFreePreviewLesson(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_free00000001", true, true)
	f.addUser(t, "usr_browser00001", false)

	w := f.get("/lessons/les_free00000001/content", "usr_browser00001")

	require.Equal(t, http.StatusOK, w.Code)
	payload := decodePayload(t, w)

	require.Len(t, payload.Items, 3)
	for _, item := range payload.Items {
		assert.Equal(t, content.RedactionMarker, item.Content)
		assert.NotEmpty(t, item.SID)
		assert.NotEmpty(t, item.Kind)
	}
	require.NotNil(t, payload.Assessment)
	assert.Empty(t, payload.Assessment.Items)
	assert.Equal(t, true, payload.Metadata["preview"])
}

func TestSubscriberGetsFullContent(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_paid00000001", true, false)
	f.addUser(t, "usr_subscriber01", true)

	w := f.get("/lessons/les_paid00000001/content", "usr_subscriber01")

	require.Equal(t, http.StatusOK, w.Code)
	payload := decodePayload(t, w)

	require.Len(t, payload.Items, 4)
	assert.Equal(t, "body one", payload.Items[0].Content)
	require.NotNil(t, payload.Assessment)
	assert.Len(t, payload.Assessment.Items, 1)
	_, marked := payload.Metadata["preview"]
	assert.False(t, marked)
}

func TestPurchaserGetsFullContent(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_paid00000001", true, false)
	f.addUser(t, "usr_buyer0000001", false, "les_paid00000001")

	w := f.get("/lessons/les_paid00000001/content", "usr_buyer0000001")

	require.Equal(t, http.StatusOK, w.Code)
	payload := decodePayload(t, w)
	assert.Len(t, payload.Items, 4)
	assert.Equal(t, "body four", payload.Items[3].Content)
}

func TestAuthenticatedWithoutEntitlementForbidden(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_paid00000001", true, false)

	w := f.get("/lessons/les_paid00000001/content", "usr_nobody000001")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, string(access.ReasonNotEntitled), decodeError(t, w))
}

func TestUnpublishedDominatesForSubscriber(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_draft0000001", false, false)
	f.addUser(t, "usr_subscriber01", true)

	w := f.get("/lessons/les_draft0000001/content", "usr_subscriber01")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(access.ReasonNotPublished), decodeError(t, w))
}

func TestUnpublishedDominatesForAnonymous(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_draft0000001", false, true)

	w := f.get("/lessons/les_draft0000001/content", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(access.ReasonNotPublished), decodeError(t, w))
}

func TestMissingLessonIDRejectedBeforeGate(t *testing.T) {
	f := newGateFixture(t)

	for _, path := range []string{"/quizzes", "/flashcards", "/exams", "/progress"} {
		w := f.get(path, "usr_subscriber01")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "MISSING_LESSON_ID", decodeError(t, w), path)
	}
}

func TestUnknownLessonLooksUnpublished(t *testing.T) {
	f := newGateFixture(t)
	f.addUser(t, "usr_subscriber01", true)

	w := f.get("/lessons/les_missing00001/content", "usr_subscriber01")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(access.ReasonNotPublished), decodeError(t, w))
}

func TestQueryParamRoutesServePreview(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_free00000001", true, true)
	f.addUser(t, "usr_browser00001", false)

	for _, path := range []string{
		"/quizzes?lessonId=les_free00000001",
		"/flashcards?lessonId=les_free00000001",
		"/exams?lessonId=les_free00000001",
		"/progress?lessonId=les_free00000001",
	} {
		w := f.get(path, "usr_browser00001")
		require.Equal(t, http.StatusOK, w.Code, path)
		payload := decodePayload(t, w)
		assert.LessOrEqual(t, len(payload.Items), 3, path)
		assert.Equal(t, true, payload.Metadata["preview"], path)
	}
}

func TestMetaLoaderFailureIsInternal(t *testing.T) {
	f := newGateFixture(t)
	f.metaRepo.err = fmt.Errorf("connection reset")

	w := f.get("/lessons/les_paid00000001/content", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL", decodeError(t, w))
}

func TestEntitlementLoaderFailureIsInternal(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_paid00000001", true, false)
	f.entitlementRepo.err = fmt.Errorf("connection reset")

	w := f.get("/lessons/les_paid00000001/content", "usr_subscriber01")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL", decodeError(t, w))
}

func TestPublishingFlipsGateImmediately(t *testing.T) {
	f := newGateFixture(t)
	f.addLesson("les_flip00000001", true, false)
	f.metaRepo.metas["les_flip00000001"] = lesson.NewAccessMeta("les_flip00000001", false, false)
	f.addUser(t, "usr_subscriber01", true)

	w := f.get("/lessons/les_flip00000001/content", "usr_subscriber01")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Metadata is read fresh per request, so publishing takes effect at once.
	f.metaRepo.metas["les_flip00000001"] = lesson.NewAccessMeta("les_flip00000001", true, false)

	w = f.get("/lessons/les_flip00000001/content", "usr_subscriber01")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDenyStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, DenyStatus(access.ReasonNotAuthenticated))
	assert.Equal(t, http.StatusNotFound, DenyStatus(access.ReasonNotPublished))
	assert.Equal(t, http.StatusForbidden, DenyStatus(access.ReasonNotEntitled))
	assert.Equal(t, http.StatusInternalServerError, DenyStatus(access.DenyReason("bogus")))
}
