package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"jobify_backend/internal/models"
	"jobify_backend/internal/services/dto"
	"jobify_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchStats(t *testing.T, ts *helpers.TestServer, token string) dto.StatsResponse {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/stats", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "stats failed: %s", body)

	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	return stats
}

func TestStatsEmptyAccount(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginUser(t, ts, "Ada", "ada@example.com", "password123")

	stats := fetchStats(t, ts, token)
	assert.Equal(t, int64(0), stats.DefaultStats.Pending)
	assert.Equal(t, int64(0), stats.DefaultStats.Interview)
	assert.Equal(t, int64(0), stats.DefaultStats.Declined)
	assert.Empty(t, stats.MonthlyApplications)
}

func TestStatsBreakdownAndMonthlySeries(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, "Ada", "ada@example.com", "password123")
	otherToken, other := helpers.CreateAndLoginUser(t, ts, "Bob", "bob@example.com", "password123")

	may := time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 2, 9, 0, 0, 0, time.UTC)

	helpers.CreateJob(t, ts.DB, user.ID, "Acme", "Engineer", models.JobStatusPending, may)
	helpers.CreateJob(t, ts.DB, user.ID, "Globex", "Analyst", models.JobStatusPending, july)
	helpers.CreateJob(t, ts.DB, user.ID, "Initech", "Manager", models.JobStatusInterview, july)

	// another account's jobs must not leak into the numbers
	helpers.CreateJob(t, ts.DB, other.ID, "Umbrella", "Chemist", models.JobStatusDeclined, july)

	stats := fetchStats(t, ts, token)
	assert.Equal(t, int64(2), stats.DefaultStats.Pending)
	assert.Equal(t, int64(1), stats.DefaultStats.Interview)
	assert.Equal(t, int64(0), stats.DefaultStats.Declined, "empty status still reported as 0")

	// only months with jobs appear, oldest first
	require.Len(t, stats.MonthlyApplications, 2)
	assert.Equal(t, "May 25", stats.MonthlyApplications[0].Date)
	assert.Equal(t, int64(1), stats.MonthlyApplications[0].Count)
	assert.Equal(t, "Jul 25", stats.MonthlyApplications[1].Date)
	assert.Equal(t, int64(2), stats.MonthlyApplications[1].Count)

	otherStats := fetchStats(t, ts, otherToken)
	assert.Equal(t, int64(1), otherStats.DefaultStats.Declined)
	assert.Equal(t, int64(0), otherStats.DefaultStats.Pending)
}

func TestStatsMonthlySeriesCap(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, "Ada", "ada@example.com", "password123")

	// jobs across eight distinct months; only the latest six survive
	for m := 1; m <= 8; m++ {
		created := time.Date(2025, time.Month(m), 5, 10, 0, 0, 0, time.UTC)
		helpers.CreateJob(t, ts.DB, user.ID, "Acme", "Engineer", models.JobStatusPending, created)
	}

	stats := fetchStats(t, ts, token)
	require.Len(t, stats.MonthlyApplications, 6)
	assert.Equal(t, "Mar 25", stats.MonthlyApplications[0].Date)
	assert.Equal(t, "Aug 25", stats.MonthlyApplications[5].Date)
}
