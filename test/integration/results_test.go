package integration

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/domain"
)

func (app *TestApp) fetchResults(t *testing.T, query string) *domain.AggregateResult {
	t.Helper()

	resp, err := app.Client.Get(app.Server.URL + "/api/results" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                   `json:"success"`
		Data    domain.AggregateResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	return &body.Data
}

func TestResultsAggregation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	demographics := []map[string]string{
		{"age_group": "25-34", "region": "South West", "gender": "Male"},
		{"age_group": "18-24", "region": "North East", "gender": "Female"},
		{"age_group": "25-34", "region": "South West", "gender": "Male"},
	}
	candidates := []string{
		"APC (All Progressives Congress)",
		"APC (All Progressives Congress)",
		"LP (Labour Party)",
	}
	issues := [][]string{
		{"Economy & Job Creation", "Security & Safety", "Healthcare System"},
		{"Economy & Job Creation"},
		{"Education Reform"},
	}

	for i := 0; i < 3; i++ {
		payload := submitPayload()
		payload["presidential_candidate"] = candidates[i]
		payload["key_issues"] = issues[i]
		payload["demographics"] = demographics[i]

		resp, _ := app.submitFrom(t, fmt.Sprintf("10.0.0.%d", i+1), payload)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	results := app.fetchResults(t, "")

	assert.Equal(t, int64(3), results.TotalResponses)
	assert.Equal(t, int64(2), results.CandidateCounts["APC (All Progressives Congress)"])
	assert.Equal(t, int64(1), results.CandidateCounts["LP (Labour Party)"])

	// One response selecting three issues bumps each of them exactly once.
	assert.Equal(t, int64(2), results.IssueCounts["Economy & Job Creation"])
	assert.Equal(t, int64(1), results.IssueCounts["Security & Safety"])
	assert.Equal(t, int64(1), results.IssueCounts["Healthcare System"])
	assert.Equal(t, int64(1), results.IssueCounts["Education Reform"])

	assert.Equal(t, int64(2), results.Demographics.AgeGroups["25-34"])
	assert.Equal(t, int64(2), results.Demographics.Regions["South West"])
	assert.Equal(t, int64(2), results.Demographics.Genders["Male"])

	// No intervening writes: a second read returns the same values.
	again := app.fetchResults(t, "")
	assert.Equal(t, results, again)
}

func TestCachedResults(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, _ := app.submitFrom(t, "10.0.0.1", submitPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// No snapshot yet: cached read falls back to the live reduce.
	results := app.fetchResults(t, "?cached=1")
	assert.Equal(t, int64(1), results.TotalResponses)

	require.NoError(t, app.CacheSvc.RefreshResultsCache(context.Background()))

	resp, _ = app.submitFrom(t, "10.0.0.2", submitPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The snapshot is a point-in-time view; the live endpoint moves on.
	cached := app.fetchResults(t, "?cached=1")
	assert.Equal(t, int64(1), cached.TotalResponses)
	live := app.fetchResults(t, "")
	assert.Equal(t, int64(2), live.TotalResponses)
}

func TestHealthEndpoint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := app.Client.Get(app.Server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Status         string `json:"status"`
			TotalResponses int64  `json:"total_responses"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Data.Status)
}

func TestEventsStreamNotifiesOnSubmission(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, app.Server.URL+"/api/events", nil)
	require.NoError(t, err)

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	// The stream opens with a ready event.
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "event: ready", strings.TrimSpace(line))

	// The subscription is live once "ready" arrived; the published event waits
	// in the stream's buffer, so submitting before the next read loses nothing.
	resp2, _ := app.submitFrom(t, "10.0.0.9", submitPayload())
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("no refresh event received")
		default:
		}

		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.TrimSpace(line) == "event: refresh" {
			return
		}
	}
}
