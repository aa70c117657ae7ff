package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rajatjain1997/meal-planner/models"
	"github.com/rajatjain1997/meal-planner/utils"
)

// Assistant error taxonomy. Auth and rate-limit failures are terminal: the
// retry loop propagates them immediately instead of backing off.
var (
	ErrInvalidAPIKey  = errors.New("invalid API key, please check your configuration")
	ErrRateLimited    = errors.New("rate limit exceeded, please wait a moment and try again")
	ErrMalformedReply = errors.New("failed to parse assistant response, please try again")
)

const (
	defaultCompletionsURL = "https://api.openai.com/v1/chat/completions"
	defaultChatModel      = "gpt-4o-mini"
)

// AssistantService turns a free-text meal description into a structured
// reply: meals the user already had plus suggestions for upcoming slots.
// It builds the system prompt from the live library and ledger, calls an
// OpenAI-compatible completions endpoint and validates the JSON it extracts
// from the model's answer.
type AssistantService struct {
	apiKey  string
	apiURL  string
	model   string
	client  *http.Client
	library *LibraryService
	logs    *LogService

	maxRetries int
	baseDelay  time.Duration
	now        func() time.Time
}

func NewAssistantService(library *LibraryService, logs *LogService) *AssistantService {
	apiURL := os.Getenv("OPENAI_API_URL")
	if apiURL == "" {
		apiURL = defaultCompletionsURL
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultChatModel
	}
	return &AssistantService{
		apiKey:     os.Getenv("OPENAI_API_KEY"),
		apiURL:     apiURL,
		model:      model,
		client:     &http.Client{Timeout: 60 * time.Second},
		library:    library,
		logs:       logs,
		maxRetries: 2,
		baseDelay:  time.Second,
		now:        time.Now,
	}
}

type chatAPIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string           `json:"model"`
	Messages    []chatAPIMessage `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *AssistantService) timeContext() string {
	now := s.now()
	return fmt.Sprintf("Current device timestamp: %s\nCurrent time: %s (%s)",
		now.Format(time.RFC3339),
		now.Format("3:04:05 PM"),
		utils.TimeOfDayLabel(now.Hour()),
	)
}

func (s *AssistantService) todaysMealsContext() string {
	l, ok := s.logs.Get(utils.DateString(s.now()))
	if !ok {
		return "No meals logged today yet."
	}
	var lines []string
	if n := len(l.Breakfast); n > 0 {
		lines = append(lines, fmt.Sprintf("Breakfast: %d meal(s) logged", n))
	}
	if n := len(l.Lunch); n > 0 {
		lines = append(lines, fmt.Sprintf("Lunch: %d meal(s) logged", n))
	}
	if n := len(l.Dinner); n > 0 {
		lines = append(lines, fmt.Sprintf("Dinner: %d meal(s) logged", n))
	}
	if len(lines) == 0 {
		return "No meals logged today yet."
	}
	out := "Today's logged meals:"
	for _, line := range lines {
		out += "\n" + line
	}
	return out
}

func (s *AssistantService) systemPrompt() string {
	return fmt.Sprintf(`You are a helpful vegetarian meal planning assistant for a family. Your job is to:
1. Understand what meals the user has already eaten today (or plans to eat)
2. Suggest the NEXT meals they need - be contextual:
   - If they mention breakfast, suggest lunch & dinner
   - If they mention lunch, suggest dinner
   - If they mention the whole day or it's late evening, suggest tomorrow's breakfast, lunch, AND dinner

CONVERSATION CONTEXT:
- You will receive previous messages in the conversation for context
- Use this history to understand what the user has already told you
- Build on previous suggestions and adapt recommendations based on follow-up questions

MEAL LIBRARY (available meals with IDs):
%s

IMPORTANT MATCHING GUIDELINES:
- Each meal in the library has a unique name and specific ingredients
- Only match if the user's meal description matches BOTH the name AND key ingredients
- If the user describes a variation, it's a DIFFERENT meal - create new
- When creating new meals, use the EXACT name and description the user provided

%s
%s

CREDIT SYSTEM:
- Healthy meals earn positive credits (1-3 credits based on nutritional value)
- Unhealthy/cheat meals have PUNITIVE NEGATIVE credits (typically -5 to -15)
- Meal types: breakfast, lunch, dinner, cheat
- Type "cheat" MUST be used for unhealthy meals (junk food, desserts, fried foods)
- Breakfast (5 AM - 11 AM), Lunch (11 AM - 4 PM), Dinner (4 PM onwards)

RESPONSE FORMAT:
You MUST respond with valid JSON only. No additional text outside the JSON.

{
  "message": "Your natural language explanation and dietary advice here",
  "alreadyHad": [
    {
      "mealId": "B1" or null if not in library,
      "name": "Meal name",
      "credits": 1-3 for healthy meals, -5 to -15 for cheat meals,
      "type": "breakfast|lunch|dinner|cheat",
      "isNew": true if not in library else false,
      "calories": approximate number,
      "ingredients": ["ingredient1", "ingredient2"],
      "steps": ["step1", "step2"]
    }
  ],
  "suggestions": [
    {
      "mealId": "L5" or null if new meal,
      "name": "Meal name",
      "type": "breakfast|lunch|dinner|cheat",
      "credits": 1-3 for healthy meals, -5 to -15 for cheat meals,
      "calories": number,
      "ingredients": ["ingredient1", "ingredient2"],
      "steps": ["step1", "step2"],
      "isNew": true if new suggestion else false,
      "description": "Why this meal balances the diet"
    }
  ]
}

RULES:
1. For "alreadyHad": include ALL meals the user mentions they had. Only use a
   mealId from the library if the user's meal is CLEARLY and EXACTLY the same
   meal; when in doubt create a new meal (mealId: null, isNew: true).
2. For "suggestions": suggest only the meals still needed for the rest of the
   day. After 8 PM suggest tomorrow's full day. Provide at least one library
   suggestion per slot when possible.
3. Always include ingredients and steps for new meals, preserving the user's
   exact wording.
4. Match meal types to appropriate times based on the current timestamp.`,
		s.library.ContextJSON(), s.timeContext(), s.todaysMealsContext())
}

// Call makes a single completion round trip and parses the structured reply.
func (s *AssistantService) Call(userMessage string, history []models.ChatMessage) (*models.ChatReply, error) {
	messages := make([]chatAPIMessage, 0, len(history)+2)
	messages = append(messages, chatAPIMessage{Role: "system", Content: s.systemPrompt()})
	for _, m := range history {
		if m.Role == "user" || m.Role == "assistant" {
			messages = append(messages, chatAPIMessage{Role: m.Role, Content: m.Content})
		}
	}
	messages = append(messages, chatAPIMessage{Role: "user", Content: userMessage})

	payload, err := json.Marshal(completionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	var cr completionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("server error %d, please try again", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, ErrInvalidAPIKey
		case http.StatusTooManyRequests:
			return nil, ErrRateLimited
		}
		if cr.Error != nil && cr.Error.Message != "" {
			return nil, fmt.Errorf("completion API error %d: %s", resp.StatusCode, cr.Error.Message)
		}
		return nil, fmt.Errorf("completion API error %d", resp.StatusCode)
	}

	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: no response content", ErrMalformedReply)
	}

	return parseReply(cr.Choices[0].Message.Content)
}

// parseReply extracts the first top-level JSON object from the assistant's
// content, tolerating surrounding prose, then validates its shape.
func parseReply(content string) (*models.ChatReply, error) {
	span, ok := utils.ExtractJSONObject(content)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedReply)
	}
	var reply models.ChatReply
	if err := json.Unmarshal([]byte(span), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if reply.Message == "" || reply.AlreadyHad == nil || reply.Suggestions == nil {
		return nil, fmt.Errorf("%w: missing required fields", ErrMalformedReply)
	}
	return &reply, nil
}

// CallWithRetry retries transient failures with exponential backoff. Auth and
// rate-limit errors are never retried.
func (s *AssistantService) CallWithRetry(userMessage string, history []models.ChatMessage) (*models.ChatReply, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		reply, err := s.Call(userMessage, history)
		if err == nil {
			return reply, nil
		}
		if errors.Is(err, ErrInvalidAPIKey) || errors.Is(err, ErrRateLimited) {
			return nil, err
		}
		lastErr = err
		if attempt < s.maxRetries {
			time.Sleep(s.baseDelay << attempt)
		}
	}
	return nil, lastErr
}
