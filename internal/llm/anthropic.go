package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"atelier/internal/domain/models"
)

const anthropicAPI = "https://api.anthropic.com/v1/messages"

// Anthropic calls the messages API directly over HTTP.
type Anthropic struct {
	apiKey string
	model  string
	http   *http.Client
}

// NewAnthropic creates a client for the given key and model.
func NewAnthropic(apiKey, model string) *Anthropic {
	return &Anthropic{
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (a *Anthropic) GenerateTags(ctx context.Context, fileName string) ([]string, error) {
	prompt := fmt.Sprintf("Generate 3 short tags for a design file named %q. Return ONLY comma separated words.", fileName)

	text, err := a.call(ctx, "", []apiMessage{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, err
	}

	tags := []string{}
	for _, part := range strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == '\n' }) {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("no tags in response %q", text)
	}
	return tags, nil
}

func (a *Anthropic) ChatReply(ctx context.Context, persona *models.Character, history []models.ChatMessage, message string) (string, error) {
	system := buildPersonaPrompt(persona)

	messages := make([]apiMessage, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == models.ChatRoleModel {
			role = "assistant"
		}
		messages = append(messages, apiMessage{Role: role, Content: msg.Text})
	}
	messages = append(messages, apiMessage{Role: "user", Content: message})

	return a.call(ctx, system, messages)
}

func (a *Anthropic) BriefAssist(ctx context.Context, title, client string) (*BriefDraft, error) {
	prompt := fmt.Sprintf(`Write a professional graphic design brief for a project titled %q for client %q.
Output ONLY a JSON object with these keys:
{
  "objective": "Main goal of the design",
  "target_audience": "Who is this for?",
  "deliverables": "List of typical items (Logo, Poster, etc.)",
  "preferences": "Suggested style or preferences based on the client/project type"
}`, title, client)

	text, err := a.call(ctx, "", []apiMessage{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, err
	}
	return parseBriefDraft(text)
}

// buildPersonaPrompt turns a character into a roleplay system prompt.
func buildPersonaPrompt(persona *models.Character) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are roleplaying as %s.\n", persona.Name)
	fmt.Fprintf(&sb, "Age: %d\n", persona.Age)
	fmt.Fprintf(&sb, "Job: %s\n", persona.Job)
	fmt.Fprintf(&sb, "Design Style: %s\n", persona.Style)
	fmt.Fprintf(&sb, "Personality Traits: %s\n", strings.Join(persona.Traits, ", "))
	fmt.Fprintf(&sb, "Tone of Voice: %s\n", persona.Tone)
	fmt.Fprintf(&sb, "Bio: %s\n\n", persona.Bio)
	sb.WriteString("Act exactly like this persona. Critique designs and give advice based on your design style and job. ")
	sb.WriteString("Use the tone of voice defined. Keep responses concise unless asked for a deep analysis.")
	return sb.String()
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (a *Anthropic) call(ctx context.Context, system string, messages []apiMessage) (string, error) {
	reqBody := apiRequest{
		Model:     a.model,
		MaxTokens: 1024,
		System:    system,
		Messages:  messages,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", anthropicAPI, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("api error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return apiResp.Content[0].Text, nil
}

// parseBriefDraft tolerates markdown code fences around the JSON.
func parseBriefDraft(resp string) (*BriefDraft, error) {
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")
	resp = strings.TrimSpace(resp)

	var draft BriefDraft
	if err := json.Unmarshal([]byte(resp), &draft); err != nil {
		return nil, fmt.Errorf("parse json: %w (response: %s)", err, resp)
	}
	return &draft, nil
}
