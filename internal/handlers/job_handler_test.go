package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobify_backend/internal/auth"
	"jobify_backend/internal/middleware"
	"jobify_backend/internal/models"
	"jobify_backend/internal/services/dto"
	"jobify_backend/internal/validator"
	"jobify_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubJobService implements services.JobService with canned responses.
type stubJobService struct {
	listResponse *dto.JobListResponse
	lastQuery    *dto.JobListQuery
	lastOwner    string
	job          *models.Job
	jobErr       error
	stats        *dto.StatsResponse
}

func (s *stubJobService) ListJobs(ownerID string, query *dto.JobListQuery) (*dto.JobListResponse, error) {
	s.lastOwner = ownerID
	s.lastQuery = query
	return s.listResponse, nil
}

func (s *stubJobService) CreateJob(ownerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	return &models.Job{CreatedBy: ownerID, Company: req.Company, Position: req.Position}, nil
}

func (s *stubJobService) GetJob(ownerID, jobID string) (*models.Job, error) {
	return s.job, s.jobErr
}

func (s *stubJobService) UpdateJob(ownerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	return s.job, s.jobErr
}

func (s *stubJobService) DeleteJob(ownerID, jobID string) (*models.Job, error) {
	return s.job, s.jobErr
}

func (s *stubJobService) ShowStats(ownerID string) (*dto.StatsResponse, error) {
	return s.stats, nil
}

const handlerTestOwner = "2a3f8a60-0000-0000-0000-000000000042"

func newJobTestRouter(t *testing.T, svc *stubJobService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.Init("handler_test_secret", 60)

	router := gin.New()
	api := router.Group("/api/v1")

	base := NewBaseHandler(validator.New())
	NewJobHandler(base, svc).RegisterRoutes(api)
	return router
}

func authedRequest(t *testing.T, method, target string, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	token, err := auth.GenerateToken(handlerTestOwner, "user")
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: token})
	return req
}

func TestGetAllJobs_ResponseShape(t *testing.T) {
	svc := &stubJobService{
		listResponse: &dto.JobListResponse{
			TotalJobs:   1,
			NumOfPages:  1,
			CurrentPage: 1,
			Jobs:        []models.Job{{Company: "Acme", Position: "Engineer"}},
		},
	}
	router := newJobTestRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/jobs?search=acme&sort=z-a&page=2", ""))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "totalJobs")
	assert.Contains(t, body, "numOfPages")
	assert.Contains(t, body, "currentPage")
	assert.Contains(t, body, "jobs")

	// raw params reach the service untouched; normalization happens there
	assert.Equal(t, "acme", svc.lastQuery.Search)
	assert.Equal(t, "z-a", svc.lastQuery.Sort)
	assert.Equal(t, "2", svc.lastQuery.Page)
	assert.Equal(t, handlerTestOwner, svc.lastOwner)
}

func TestGetAllJobs_RequiresAuth(t *testing.T) {
	router := newJobTestRouter(t, &stubJobService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAllJobs_BearerHeaderAccepted(t *testing.T) {
	svc := &stubJobService{listResponse: &dto.JobListResponse{Jobs: []models.Job{}}}
	router := newJobTestRouter(t, svc)

	token, err := auth.GenerateToken(handlerTestOwner, "user")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteJob_NotFound(t *testing.T) {
	svc := &stubJobService{jobErr: apperrors.ErrJobNotFound}
	router := newJobTestRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/v1/jobs/2a3f8a60-0000-0000-0000-0000000000ff", ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "msg")
}

func TestCreateJob_MissingFieldsRejected(t *testing.T) {
	router := newJobTestRouter(t, &stubJobService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/jobs", `{"company":"Acme"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateJob_Success(t *testing.T) {
	router := newJobTestRouter(t, &stubJobService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/jobs",
		`{"company":"Acme","position":"Engineer"}`))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "newJob")
}

func TestShowStats_ResponseShape(t *testing.T) {
	svc := &stubJobService{
		stats: &dto.StatsResponse{
			DefaultStats:        dto.DefaultStats{Pending: 2, Interview: 1},
			MonthlyApplications: []dto.MonthlyApplication{{Date: "Aug 25", Count: 3}},
		},
	}
	router := newJobTestRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/jobs/stats", ""))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		DefaultStats struct {
			Pending   int64 `json:"pending"`
			Interview int64 `json:"interview"`
			Declined  int64 `json:"declined"`
		} `json:"defaultStats"`
		MonthlyApplications []dto.MonthlyApplication `json:"monthlyApplications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.DefaultStats.Pending)
	assert.Equal(t, int64(0), body.DefaultStats.Declined, "declined key present even at zero")
	require.Len(t, body.MonthlyApplications, 1)
}
