package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"jobify_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user row, hashing PasswordHash when it holds a raw
// password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && user.PasswordHash[0] != '$' {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash test password")
		user.PasswordHash = string(hashed)
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}

	require.NoError(t, db.Create(user).Error, "failed to create test user %s", user.Email)
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the session token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: %s", bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateJob inserts a job row directly. A non-zero createdAt overrides the
// insert timestamp, which the stats tests rely on.
func CreateJob(t *testing.T, db *gorm.DB, ownerID string, company, position string, status models.JobStatus, createdAt time.Time) *models.Job {
	t.Helper()

	job := &models.Job{
		CreatedBy: ownerID,
		Company:   company,
		Position:  position,
		JobStatus: status,
		JobType:   models.JobTypeFullTime,
	}
	if !createdAt.IsZero() {
		job.CreatedAt = createdAt
	}

	require.NoError(t, db.Create(job).Error, "failed to create test job")
	return job
}
