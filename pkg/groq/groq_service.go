package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"snackstock-api/internal/utils"
)

const (
	apiURL       = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "llama-3.3-70b-versatile"
)

type (
	// GroqService wraps the Groq chat-completions API. Callers send a
	// system and user prompt and get back the raw completion text with
	// any markdown code fences already stripped, ready for JSON parsing.
	GroqService interface {
		ChatJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
	}

	groqService struct {
		httpClient *http.Client
	}
)

func NewGroqService() GroqService {
	return &groqService{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *groqService) ChatJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	apiKey := utils.GetConfig("GROQ_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY not configured")
	}

	model := utils.GetConfig("GROQ_MODEL")
	if model == "" {
		model = defaultModel
	}

	requestBody := map[string]interface{}{
		"model":       model,
		"temperature": temperature,
		"messages": []map[string]interface{}{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("groq API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}

	return StripCodeFences(completion.Choices[0].Message.Content), nil
}

// StripCodeFences removes ```json / ``` wrappers the model sometimes adds
// despite being told not to.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
