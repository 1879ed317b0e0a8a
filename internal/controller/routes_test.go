package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/config"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/lshigami/studydash/internal/service"
	"github.com/lshigami/studydash/internal/storage"
	"github.com/lshigami/studydash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	clock := fixedClock{t: time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)}

	users := repository.NewUserRepository(db)
	accounts := service.NewAccountService(users)
	for _, name := range []string{"alice", "bob"} {
		_, _, err := accounts.EnsureAccount(context.Background(), name, name+"-pass")
		require.NoError(t, err)
	}

	quizRepo := repository.NewQuizRepository(db)
	schedule := service.NewScheduleService(repository.NewScheduleRepository(db), clock)
	quizzes := service.NewQuizService(quizRepo, clock)
	assignments := service.NewAssignmentService(repository.NewAssignmentRepository(db))
	goals := service.NewWeeklyGoalService(repository.NewWeeklyGoalRepository(db), clock)
	activities := service.NewStudyActivityService(repository.NewStudyActivityRepository(db), clock)
	performance := service.NewSubjectPerformanceService(repository.NewSubjectPerformanceRepository(db))
	exams := service.NewExamService(repository.NewExamRepository(db), clock)
	auth := service.NewAuthService(users, repository.NewTokenRepository(db))

	h := Handlers{
		Auth:        NewAuthController(auth),
		Schedule:    NewScheduleController(schedule),
		Quizzes:     NewQuizController(quizzes),
		Questions:   NewQuizQuestionController(service.NewQuizQuestionService(repository.NewQuizQuestionRepository(db), quizRepo)),
		Assignments: NewAssignmentController(assignments),
		Goals:       NewWeeklyGoalController(goals),
		Activities:  NewStudyActivityController(activities),
		Performance: NewSubjectPerformanceController(performance),
		Exams:       NewExamController(exams),
		Dashboard: NewDashboardController(
			service.NewDashboardService(schedule, quizzes, exams, assignments, goals, activities, performance),
			service.NewUploadService(storage.NewObjectStorage(&config.Config{})),
		),
	}

	router := gin.New()
	RegisterRoutes(router, h, auth)
	return &testServer{t: t, handler: middleware.StripTrailingSlash("/api/", router)}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(username string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/login/", "", map[string]string{"username": username, "password": username + "-pass"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var resp struct{ Token string }
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Study Dashboard API is running!", body["message"])
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/login/", "", map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Username and password required"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/login/", "", map[string]string{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())

	token := s.login("alice")
	assert.Equal(t, token, s.login("alice"))

	w = s.do(http.MethodPost, "/api/verify-token/", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"username":"alice"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/logout/", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/verify-token/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"valid":false}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/logout/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/dashboard/", "/api/dashboard-overview/", "/api/schedule/", "/api/quizzes/upcoming/"} {
		w := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
	}
	w := s.do(http.MethodGet, "/api/dashboard/", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScheduleRoundTripInBothNamings(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	for _, body := range []map[string]any{
		{"subject": "Calculus", "startTime": "09:00", "endTime": "10:30", "date": "2026-10-21"},
		{"subject": "Calculus", "start_time": "09:00:00", "end_time": "10:30:00", "date": "2026-10-21"},
	} {
		w := s.do(http.MethodPost, "/api/schedule/", token, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[map[string]any](t, w)

		w = s.do(http.MethodGet, "/api/schedule/"+jsonID(created)+"/", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[map[string]any](t, w)
		assert.Equal(t, "Calculus", got["subject"])
		assert.Equal(t, "09:00", got["startTime"])
		assert.Equal(t, "10:30", got["endTime"])
		assert.Equal(t, "2026-10-21", got["date"])
		assert.Equal(t, "upcoming", got["status"])
	}
}

func TestPartialUpdateAndDelete(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	w := s.do(http.MethodPost, "/api/assignments/", token, map[string]any{
		"title": "Essay", "subject": "History", "dueDate": "2026-10-30", "link": "",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Nil(t, created["link"])
	id := jsonID(created)

	w = s.do(http.MethodPatch, "/api/assignments/"+id+"/", token, map[string]any{"status": "in-progress"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "in-progress", updated["status"])
	assert.Equal(t, "Essay", updated["title"])
	assert.Equal(t, "2026-10-30", updated["dueDate"])

	w = s.do(http.MethodPut, "/api/assignments/"+id+"/", token, map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodDelete, "/api/assignments/"+id+"/", s.login("bob"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/api/assignments/"+id+"/", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/assignments/"+id+"/", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuizSubmitOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	w := s.do(http.MethodPost, "/api/quizzes/", token, map[string]any{
		"title": "Derivatives", "subject": "Mathematics", "topic": "Rules", "quizDate": "2026-10-23",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	quiz := decode[map[string]any](t, w)
	assert.EqualValues(t, 15, quiz["timeLimit"])
	assert.EqualValues(t, 2, quiz["daysUntil"])
	quizID := jsonID(quiz)

	w = s.do(http.MethodPost, "/api/quiz-questions/", token, map[string]any{
		"quizId": quiz["id"], "question": "d/dx x²", "options": []string{"x", "2x", "x²", "2"}, "correctAnswer": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	question := decode[map[string]any](t, w)
	assert.Equal(t, []any{"x", "2x", "x²", "2"}, question["options"])

	w = s.do(http.MethodPost, "/api/quizzes/"+quizID+"/submit/", token, map[string]any{
		"answers": map[string]any{jsonID(question): 1},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	attempt := decode[map[string]any](t, w)
	assert.EqualValues(t, 1, attempt["score"])
	assert.EqualValues(t, 1, attempt["total_questions"])
	assert.EqualValues(t, 100, attempt["percentage"])

	w = s.do(http.MethodGet, "/api/quizzes/"+quizID+"/attempts/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]any](t, w), 1)

	w = s.do(http.MethodPost, "/api/quizzes/"+quizID+"/submit/", s.login("bob"), map[string]any{"answers": map[string]any{}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGoalStatusRejectsUnknownValue(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	w := s.do(http.MethodPost, "/api/goals/", token, map[string]any{"text": "Read chapter 7"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	goal := decode[map[string]any](t, w)
	assert.Equal(t, "2026-10-19", goal["weekStart"])

	w = s.do(http.MethodPost, "/api/goals/"+jsonID(goal)+"/update_status/", token, map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid status"}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/goals/"+jsonID(goal)+"/", token, nil)
	assert.Equal(t, "pending", decode[map[string]any](t, w)["status"])
}

func TestQueryValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/activities/?limit=abc", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/activities/?limit=-1", token, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/activities/?limit=3", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/schedule/?date=tomorrow", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/quiz-questions/?quiz=x", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/exams/abc/", token, nil).Code)
}

func TestDashboardShape(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	w := s.do(http.MethodGet, "/api/dashboard/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	for _, key := range []string{"schedule", "upcomingQuiz", "upcomingExam", "assignments", "weeklyGoals", "recentActivities", "subjectPerformance"} {
		assert.Contains(t, body, key)
	}
	assert.Nil(t, body["upcomingQuiz"])
	assert.Equal(t, map[string]any{"completed": float64(0), "total": float64(0), "remaining": float64(0)}, body["assignments"])
}

func TestUploadPDFValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	upload := func(name string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, _ = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload-pdf/", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Token "+token)
		w := httptest.NewRecorder()
		s.handler.ServeHTTP(w, req)
		return w
	}

	w := upload("report.docx")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Only PDF files are allowed"}`, w.Body.String())

	w = upload("notes.pdf")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(http.MethodPost, "/api/upload-pdf/", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No file provided"}`, w.Body.String())
}

func jsonID(v map[string]any) string {
	id, _ := v["id"].(float64)
	return strconv.FormatFloat(id, 'f', -1, 64)
}
