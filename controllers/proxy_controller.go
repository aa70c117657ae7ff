package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// ProxyController forwards chat completion requests to the upstream API with
// the server-held credential, so browser clients never see the key. On
// success the upstream body is returned verbatim.
type ProxyController struct {
	APIKey string
	APIURL string
	Model  string
	Client *http.Client
}

func NewProxyController() *ProxyController {
	apiURL := os.Getenv("OPENAI_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &ProxyController{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		APIURL: apiURL,
		Model:  model,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (pc *ProxyController) Chat(c *gin.Context) {
	var body struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: messages array required"})
		return
	}
	if pc.APIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured on server"})
		return
	}

	payload, err := json.Marshal(gin.H{
		"model":       pc.Model,
		"messages":    body.Messages,
		"temperature": 0.7,
		"max_tokens":  2000,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	req, err := http.NewRequest("POST", pc.APIURL, bytes.NewReader(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+pc.APIKey)

	resp, err := pc.Client.Do(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to connect to completion API"})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read completion API response"})
		return
	}

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key configured on server"})
		case http.StatusTooManyRequests:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, please wait a moment and try again"})
		default:
			var upstream struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			msg := "completion API error"
			if json.Unmarshal(respBody, &upstream) == nil && upstream.Error.Message != "" {
				msg = upstream.Error.Message
			}
			c.JSON(resp.StatusCode, gin.H{"error": msg})
		}
		return
	}

	c.Data(http.StatusOK, "application/json", respBody)
}
