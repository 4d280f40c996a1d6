package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshnanu12/vybe/internal/adapters/snapshot"
	"github.com/niteshnanu12/vybe/internal/core/domain"
)

type workoutStateBody struct {
	State struct {
		IsRunning      bool   `json:"isRunning"`
		StartTime      *int64 `json:"startTime"`
		Type           string `json:"type"`
		ElapsedSeconds int    `json:"elapsedSeconds"`
		Elapsed        string `json:"elapsed"`
	} `json:"state"`
	Activity  *domain.Activity `json:"activity"`
	Persisted *bool            `json:"persisted"`
}

func decodeWorkout(t *testing.T, raw []byte) workoutStateBody {
	t.Helper()
	var body workoutStateBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestWorkoutLifecycle(t *testing.T) {
	t.Run("Success: start, tick and stop records an activity", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/workout/start", `{"type": "running"}`, "user-1")
		require.Equal(t, http.StatusOK, w.Code)
		started := decodeWorkout(t, w.Body.Bytes())
		assert.True(t, started.State.IsRunning)
		assert.Equal(t, "running", started.State.Type)
		require.NotNil(t, started.State.StartTime)
		assert.Equal(t, testNow.UnixMilli(), *started.State.StartTime)
		require.NotNil(t, started.Persisted)
		assert.True(t, *started.Persisted)

		env.scheduler.Tick(90)

		w = env.do("GET", "/api/v1/workout", "", "user-1")
		require.Equal(t, http.StatusOK, w.Code)
		running := decodeWorkout(t, w.Body.Bytes())
		assert.Equal(t, 90, running.State.ElapsedSeconds)
		assert.Equal(t, "01:30", running.State.Elapsed)

		w = env.do("POST", "/api/v1/workout/stop", "", "user-1")
		require.Equal(t, http.StatusCreated, w.Code)
		stopped := decodeWorkout(t, w.Body.Bytes())
		require.NotNil(t, stopped.Activity)
		assert.Equal(t, "Running", stopped.Activity.Name)
		assert.Equal(t, 2, stopped.Activity.Duration)
		assert.Equal(t, 19, stopped.Activity.Calories)
		assert.False(t, stopped.State.IsRunning)
		assert.Equal(t, 0, stopped.State.ElapsedSeconds)

		w = env.do("GET", "/api/v1/activities", "", "user-1")
		assert.Contains(t, w.Body.String(), stopped.Activity.ID)
	})

	t.Run("Success: start without a body defaults to walking", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/workout/start", "", "user-1")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "walking", decodeWorkout(t, w.Body.Bytes()).State.Type)
	})

	t.Run("Success: second start keeps the running session", func(t *testing.T) {
		env := setupRouter(t)

		env.do("POST", "/api/v1/workout/start", `{"type": "cycling"}`, "user-1")
		env.scheduler.Tick(5)

		w := env.do("POST", "/api/v1/workout/start", `{"type": "running"}`, "user-1")

		body := decodeWorkout(t, w.Body.Bytes())
		assert.Equal(t, "cycling", body.State.Type)
		assert.Equal(t, 5, body.State.ElapsedSeconds)
	})

	t.Run("Success: short session stops without an activity", func(t *testing.T) {
		env := setupRouter(t)

		env.do("POST", "/api/v1/workout/start", `{"type": "running"}`, "user-1")
		env.scheduler.Tick(30)

		w := env.do("POST", "/api/v1/workout/stop", "", "user-1")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeWorkout(t, w.Body.Bytes())
		assert.Nil(t, body.Activity)
		assert.False(t, body.State.IsRunning)
	})

	t.Run("Success: reset discards the session", func(t *testing.T) {
		env := setupRouter(t)

		env.do("POST", "/api/v1/workout/start", `{"type": "running"}`, "user-1")
		env.scheduler.Tick(120)

		w := env.do("POST", "/api/v1/workout/reset", "", "user-1")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeWorkout(t, w.Body.Bytes())
		assert.False(t, body.State.IsRunning)
		assert.Nil(t, body.State.StartTime)

		w = env.do("GET", "/api/v1/activities", "", "user-1")
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Isolation: sessions are per user", func(t *testing.T) {
		env := setupRouter(t)

		env.do("POST", "/api/v1/workout/start", `{"type": "running"}`, "user-1")

		w := env.do("GET", "/api/v1/workout", "", "user-2")

		assert.False(t, decodeWorkout(t, w.Body.Bytes()).State.IsRunning)
	})

	t.Run("Success: chunked body without a length is read", func(t *testing.T) {
		env := setupRouter(t)

		w := env.doChunked("/api/v1/workout/start", `{"type": "cycling"}`, "user-1")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cycling", decodeWorkout(t, w.Body.Bytes()).State.Type)
	})

	t.Run("Success: empty chunked body defaults to walking", func(t *testing.T) {
		env := setupRouter(t)

		w := env.doChunked("/api/v1/workout/start", "", "user-1")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "walking", decodeWorkout(t, w.Body.Bytes()).State.Type)
	})

	t.Run("Fail: 400 on malformed body", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/workout/start", `{"type":`, "user-1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// doChunked sends a POST body of unknown length, as a chunked client would.
func (e *testEnv) doChunked(path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, io.NopCloser(strings.NewReader(body)))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestWorkoutStart_UnreadableSnapshot(t *testing.T) {
	env := setupRouter(t)
	path := snapshot.NewFileStore(env.snapshotDir, "user-1").Path()
	require.NoError(t, os.Mkdir(path, 0o755))

	w := env.do("POST", "/api/v1/workout/start", `{"type": "running"}`, "user-1")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "temporarily unavailable")

	require.NoError(t, os.Remove(path))

	w = env.do("POST", "/api/v1/workout/start", `{"type": "running"}`, "user-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeWorkout(t, w.Body.Bytes()).State.IsRunning)
}

func readEvent(t *testing.T, scanner *bufio.Scanner) (string, string) {
	t.Helper()
	var event, data string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimPrefix(line, "event:")
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimPrefix(line, "data:")
		case line == "" && event != "":
			return event, data
		}
	}
	require.NoError(t, scanner.Err())
	t.Fatal("stream closed before an event arrived")
	return "", ""
}

func TestWorkoutStream(t *testing.T) {
	env := setupRouter(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	w := env.do("POST", "/api/v1/workout/start", `{"type": "running"}`, "user-1")
	require.Equal(t, http.StatusOK, w.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", srv.URL+"/api/v1/workout/stream", nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "user-1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	scanner := bufio.NewScanner(resp.Body)

	event, data := readEvent(t, scanner)
	assert.Equal(t, "state", event)
	assert.Contains(t, data, `"isRunning":true`)
	assert.Contains(t, data, `"elapsedSeconds":0`)

	env.scheduler.Tick(1)

	event, data = readEvent(t, scanner)
	assert.Equal(t, "state", event)
	assert.Contains(t, data, `"elapsedSeconds":1`)
	assert.Contains(t, data, `"elapsed":"00:01"`)

	cancel()
}
