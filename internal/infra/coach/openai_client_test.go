package coach

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coach/config"
	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
)

func testWorkout() *entity.Workout {
	return &entity.Workout{
		Type:            "running",
		Intensity:       7,
		DurationMinutes: 45,
		Equipment:       "treadmill",
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*openaiClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Coach: &config.CoachConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}}
	svc := NewCoachService(cfg, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	client, ok := svc.(*openaiClient)
	require.True(t, ok)

	return client, server
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))

	return len(p), nil
}

func completionReply(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestCoachService_UnconfiguredReturnsUnavailable(t *testing.T) {
	t.Parallel()

	svc := NewCoachService(&config.Config{}, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	_, err := svc.GeneratePlan(context.Background(), testWorkout())
	assert.ErrorIs(t, err, domainerrors.ErrCoachUnavailable)

	_, err = svc.Chat(context.Background(), "how sore is too sore?")
	assert.ErrorIs(t, err, domainerrors.ErrCoachUnavailable)
}

func TestCoachService_GeneratePlan(t *testing.T) {
	t.Parallel()

	planJSON := `{"title":"Cool-Down","duration_minutes":20,"exercises":["Quad Stretch"],"notes":"Stay consistent."}`

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "running")
		assert.Contains(t, req.Messages[1].Content, "45 minutes")

		require.NoError(t, json.NewEncoder(w).Encode(completionReply(planJSON)))
	})

	plan, err := client.GeneratePlan(context.Background(), testWorkout())
	require.NoError(t, err)
	assert.Equal(t, "Cool-Down", plan.Title)
	assert.Equal(t, 20, plan.DurationMinutes)
	assert.Equal(t, []string{"Quad Stretch"}, plan.Exercises)
	assert.Equal(t, "Stay consistent.", plan.Notes)
}

func TestCoachService_GeneratePlanStripsCodeFences(t *testing.T) {
	t.Parallel()

	fenced := "```json\n{\"title\":\"Fenced\",\"duration_minutes\":10,\"exercises\":[],\"notes\":\"ok\"}\n```"

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(completionReply(fenced)))
	})

	plan, err := client.GeneratePlan(context.Background(), testWorkout())
	require.NoError(t, err)
	assert.Equal(t, "Fenced", plan.Title)
	assert.Equal(t, []string{}, plan.Exercises)
}

func TestCoachService_GeneratePlanRejectsBadJSON(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(completionReply("sorry, I cannot do that")))
	})

	_, err := client.GeneratePlan(context.Background(), testWorkout())
	assert.ErrorIs(t, err, domainerrors.ErrCoachBadReply)
}

func TestCoachService_Chat(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Nil(t, req.ResponseFormat)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "how sore is too sore?")

		require.NoError(t, json.NewEncoder(w).Encode(completionReply("  Rest today.  ")))
	})

	reply, err := client.Chat(context.Background(), "how sore is too sore?")
	require.NoError(t, err)
	assert.Equal(t, "Rest today.", reply)
}

func TestCoachService_UpstreamErrorSurfacesAsBadReply(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, domainerrors.ErrCoachBadReply)
}

func TestCoachService_EmptyChoicesIsBadReply(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"choices": []any{}}))
	})

	_, err := client.Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, domainerrors.ErrCoachBadReply)
}
