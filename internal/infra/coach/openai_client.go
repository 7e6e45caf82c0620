// Package coach talks to an OpenAI-compatible chat completion endpoint to
// produce recovery plans and free-form coaching replies.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"coach/config"
	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/domain/service"
)

const (
	defaultBaseURL   = "https://api.openai.com/v1"
	defaultPlanModel = "gpt-3.5-turbo-1106"
	defaultChatModel = "gpt-3.5-turbo"
	defaultTimeout   = 30 * time.Second
)

const planSystemPrompt = "You are an AI Recovery Coach that responds in a structured JSON format."

const chatSystemPrompt = "You are an AI Recovery Coach. Keep your answers brief and helpful."

// openaiClient implements service.CoachService against the chat completions API.
// A client built without an API key stays inert: every call fails with
// ErrCoachUnavailable while the rest of the service keeps working.
type openaiClient struct {
	baseURL   string
	apiKey    string
	planModel string
	chatModel string
	client    *http.Client
	logger    *slog.Logger
}

// NewCoachService builds the coach client from configuration.
func NewCoachService(cfg *config.Config, logger *slog.Logger) service.CoachService {
	c := &openaiClient{
		baseURL:   defaultBaseURL,
		planModel: defaultPlanModel,
		chatModel: defaultChatModel,
		client:    &http.Client{Timeout: defaultTimeout},
		logger:    logger,
	}

	if cfg.Coach == nil {
		return c
	}

	c.apiKey = cfg.Coach.APIKey
	if cfg.Coach.BaseURL != "" {
		c.baseURL = strings.TrimSuffix(cfg.Coach.BaseURL, "/")
	}
	if cfg.Coach.PlanModel != "" {
		c.planModel = cfg.Coach.PlanModel
	}
	if cfg.Coach.ChatModel != "" {
		c.chatModel = cfg.Coach.ChatModel
	}
	if cfg.Coach.Timeout > 0 {
		c.client.Timeout = cfg.Coach.Timeout
	}

	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GeneratePlan asks the model for a structured recovery plan and decodes the
// strict-JSON reply into a RecoveryPlan.
func (c *openaiClient) GeneratePlan(ctx context.Context, workout *entity.Workout) (*entity.RecoveryPlan, error) {
	if c.apiKey == "" {
		return nil, domainerrors.ErrCoachUnavailable
	}

	content, err := c.complete(ctx, chatRequest{
		Model: c.planModel,
		Messages: []chatMessage{
			{Role: "system", Content: planSystemPrompt},
			{Role: "user", Content: buildPlanPrompt(workout)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var plan entity.RecoveryPlan
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &plan); err != nil {
		c.logger.Warn("coach returned unparseable plan", slog.String("error", err.Error()))

		return nil, domainerrors.ErrCoachBadReply
	}
	if plan.Exercises == nil {
		plan.Exercises = []string{}
	}

	return &plan, nil
}

// Chat returns a free-text coaching reply.
func (c *openaiClient) Chat(ctx context.Context, message string) (string, error) {
	if c.apiKey == "" {
		return "", domainerrors.ErrCoachUnavailable
	}

	prompt := fmt.Sprintf(
		"A user is asking a question in the chat. You are a friendly and supportive AI Recovery Coach."+
			" Answer concisely and to the point. User's question: %q", message)

	return c.complete(ctx, chatRequest{
		Model: c.chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: chatSystemPrompt},
			{Role: "user", Content: prompt},
		},
	})
}

func (c *openaiClient) complete(ctx context.Context, payload chatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("coach request failed", slog.String("error", err.Error()))

		return "", domainerrors.ErrCoachUnavailable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read chat response")
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("coach returned non-200 status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)

		return "", domainerrors.ErrCoachBadReply
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", domainerrors.ErrCoachBadReply
	}
	if len(parsed.Choices) == 0 {
		return "", domainerrors.ErrCoachBadReply
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func buildPlanPrompt(workout *entity.Workout) string {
	equipment := workout.Equipment
	if equipment == "" {
		equipment = "Not specified"
	}

	var b strings.Builder
	b.WriteString("You are an expert AI Recovery Coach. Generate a detailed and personalized recovery plan")
	b.WriteString(" for an athlete based on the following workout details.\n\n")
	b.WriteString("Workout Details:\n")
	fmt.Fprintf(&b, "- Type: %s\n", workout.Type)
	fmt.Fprintf(&b, "- Duration: %d minutes\n", workout.DurationMinutes)
	fmt.Fprintf(&b, "- Intensity (1-10): %d\n", workout.Intensity)
	fmt.Fprintf(&b, "- Equipment Used: %s\n\n", equipment)
	b.WriteString("The recovery plan should be structured and actionable. It must include the following sections:\n")
	b.WriteString("1. A concise, motivating title for the plan.\n")
	b.WriteString("2. The total estimated duration of the active recovery session in minutes.\n")
	b.WriteString("3. A list of 3-5 specific exercises (stretching, mobility, foam rolling)." +
		" For each exercise, provide a brief, clear instruction.\n")
	b.WriteString("4. A short, general recommendation or note about the importance of consistency" +
		" or listening to one's body.\n\n")
	b.WriteString("Your response MUST be in a strict JSON format, without any introductory text or explanations.\n\n")
	b.WriteString("Example JSON structure:\n")
	b.WriteString(`{
  "title": "Post-Workout Essential Cool-Down",
  "duration_minutes": 20,
  "exercises": [
    "Quad Stretch: Stand and pull your heel towards your glute, hold for 30 seconds per side.",
    "Foam Roll Calves: Roll each calf slowly for 60 seconds."
  ],
  "notes": "Consistency is key. Listen to your body and stop if you feel sharp pain."
}`)

	return b.String()
}

// stripCodeFences removes a surrounding markdown code block if the model
// wrapped its JSON in one despite the instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
