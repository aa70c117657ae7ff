package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proxyRouter(pc *ProxyController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", pc.Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProxyChat_ReturnsUpstreamBodyVerbatim(t *testing.T) {
	upstreamBody := `{"choices":[{"message":{"content":"hello"}}],"usage":{"total_tokens":42}}`
	var gotAuth string
	var gotPayload map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(upstreamBody))
	}))
	defer upstream.Close()

	pc := &ProxyController{
		APIKey: "secret-key",
		APIURL: upstream.URL,
		Model:  "test-model",
		Client: &http.Client{Timeout: 5 * time.Second},
	}
	w := postChat(t, proxyRouter(pc), `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, upstreamBody, w.Body.String())
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "test-model", gotPayload["model"])
}

func TestProxyChat_RejectsEmptyMessages(t *testing.T) {
	pc := &ProxyController{APIKey: "secret-key", Client: http.DefaultClient}
	r := proxyRouter(pc)

	assert.Equal(t, http.StatusBadRequest, postChat(t, r, `{"messages":[]}`).Code)
	assert.Equal(t, http.StatusBadRequest, postChat(t, r, `not json`).Code)
}

func TestProxyChat_FailsWithoutConfiguredKey(t *testing.T) {
	pc := &ProxyController{APIKey: "", Client: http.DefaultClient}
	w := postChat(t, proxyRouter(pc), `{"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestProxyChat_MapsUpstreamErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		upstream   int
		body       string
		wantStatus int
		wantError  string
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, http.StatusUnauthorized, "invalid API key configured on server"},
		{"rate limited", http.StatusTooManyRequests, `{}`, http.StatusTooManyRequests, "rate limit exceeded, please wait a moment and try again"},
		{"other error passes message through", http.StatusBadRequest, `{"error":{"message":"context too long"}}`, http.StatusBadRequest, "context too long"},
		{"other error without message", http.StatusServiceUnavailable, `oops`, http.StatusServiceUnavailable, "completion API error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.upstream)
				w.Write([]byte(tt.body))
			}))
			defer upstream.Close()

			pc := &ProxyController{
				APIKey: "secret-key",
				APIURL: upstream.URL,
				Client: &http.Client{Timeout: 5 * time.Second},
			}
			w := postChat(t, proxyRouter(pc), `{"messages":[{"role":"user","content":"hi"}]}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp["error"])
		})
	}
}
