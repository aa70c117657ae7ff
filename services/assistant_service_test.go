package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatjain1997/meal-planner/models"
)

func testAssistant(t *testing.T, url string) *AssistantService {
	t.Helper()
	db := setupTestDB(t)
	bus := NewEventBus()
	return &AssistantService{
		apiKey:     "test-key",
		apiURL:     url,
		model:      "test-model",
		client:     &http.Client{Timeout: 5 * time.Second},
		library:    NewLibraryService(db, bus),
		logs:       NewLogService(db, bus),
		maxRetries: 2,
		baseDelay:  20 * time.Millisecond,
		now:        time.Now,
	}
}

func completionBody(t *testing.T, content string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	require.NoError(t, err)
	return b
}

func TestCallWithRetry_RateLimitFailsImmediately(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer srv.Close()

	svc := testAssistant(t, srv.URL)
	_, err := svc.CallWithRetry("I had idli for breakfast", nil)

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "rate-limit errors must not be retried")
}

func TestCallWithRetry_AuthErrorFailsImmediately(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	svc := testAssistant(t, srv.URL)
	_, err := svc.CallWithRetry("hello", nil)

	assert.ErrorIs(t, err, ErrInvalidAPIKey)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCallWithRetry_TransientFailureThenSuccess(t *testing.T) {
	var calls int32
	content := `Sure, noted!
{"message":"Logged your breakfast.","alreadyHad":[],"suggestions":[]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"upstream hiccup"}}`))
			return
		}
		w.Write(completionBody(t, content))
	}))
	defer srv.Close()

	svc := testAssistant(t, srv.URL)
	start := time.Now()
	reply, err := svc.CallWithRetry("I had idli", nil)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "Logged your breakfast.", reply.Message)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.GreaterOrEqual(t, elapsed, svc.baseDelay, "backoff delay expected between attempts")
}

func TestCall_ExtractsJSONFromProse(t *testing.T) {
	mealID := "B1"
	content := `Here's what I understood:

{"message":"You had moong dal chilla.","alreadyHad":[{"mealId":"B1","name":"Moong Dal Chilla","credits":3,"type":"breakfast","isNew":false,"calories":280,"ingredients":[],"steps":[]}],"suggestions":[]}

Let me know if that's right!`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody(t, content))
	}))
	defer srv.Close()

	svc := testAssistant(t, srv.URL)
	reply, err := svc.Call("I had moong dal chilla", nil)

	require.NoError(t, err)
	require.Len(t, reply.AlreadyHad, 1)
	require.NotNil(t, reply.AlreadyHad[0].MealID)
	assert.Equal(t, mealID, *reply.AlreadyHad[0].MealID)
	assert.False(t, reply.AlreadyHad[0].IsNew)
}

func TestCall_MissingFieldsIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody(t, `{"message":"no arrays here"}`))
	}))
	defer srv.Close()

	svc := testAssistant(t, srv.URL)
	_, err := svc.Call("hello", nil)
	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestCall_NoJSONInContentIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody(t, "I'm sorry, I can only chat in plain text."))
	}))
	defer srv.Close()

	svc := testAssistant(t, srv.URL)
	_, err := svc.Call("hello", nil)
	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestCall_NonJSONBodyIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	svc := testAssistant(t, srv.URL)
	_, err := svc.Call("hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error 502")
}

func TestCall_SendsHistoryBetweenSystemAndUser(t *testing.T) {
	var got completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write(completionBody(t, `{"message":"ok","alreadyHad":[],"suggestions":[]}`))
	}))
	defer srv.Close()

	svc := testAssistant(t, srv.URL)
	history := []models.ChatMessage{
		{Role: "user", Content: "I had poha"},
		{Role: "assistant", Content: "Noted!"},
	}
	_, err := svc.Call("what about dinner?", history)
	require.NoError(t, err)

	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "I had poha", got.Messages[1].Content)
	assert.Equal(t, "assistant", got.Messages[2].Role)
	assert.Equal(t, "what about dinner?", got.Messages[3].Content)
}
