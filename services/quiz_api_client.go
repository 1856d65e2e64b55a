package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/generatorku/quiz-web/models"
)

const (
	ManualQuizEndpoint = "/api/generate_quiz"
	AIQuizEndpoint     = "/api/generate_quiz_ai"

	defaultAPIBaseURL = "http://127.0.0.1:5000"
)

// MsgQuizAPIFallback is shown when the API fails without an error text.
const MsgQuizAPIFallback = "Terjadi kesalahan saat membuat kuis."

var ErrQuizAPIUnavailable = errors.New("quiz api unavailable")

// APIError is a non-2xx answer from the quiz API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("quiz api returned status %d", e.StatusCode)
	}
	return e.Message
}

// QuizGenerator produces a quiz for a validated request. cookie is forwarded
// so the API sees the same logged-in user as the browser.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, req models.QuizRequest, cookie string) (models.GenerateQuizResponse, error)
}

type QuizAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewQuizAPIClient(baseURL string, httpClient *http.Client) *QuizAPIClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &QuizAPIClient{baseURL: baseURL, httpClient: httpClient}
}

func (c *QuizAPIClient) BaseURL() string { return c.baseURL }

// EndpointFor returns the generation endpoint path for a quiz kind.
func EndpointFor(kind models.QuizKind) string {
	if kind == models.QuizAI {
		return AIQuizEndpoint
	}
	return ManualQuizEndpoint
}

func (c *QuizAPIClient) GenerateQuiz(ctx context.Context, req models.QuizRequest, cookie string) (models.GenerateQuizResponse, error) {
	var out models.GenerateQuizResponse

	payload, err := json.Marshal(req.Body())
	if err != nil {
		return out, fmt.Errorf("encode quiz request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+EndpointFor(req.Kind), bytes.NewReader(payload))
	if err != nil {
		return out, fmt.Errorf("create quiz request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if cookie != "" {
		httpReq.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrQuizAPIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: MsgQuizAPIFallback}
		var body models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && strings.TrimSpace(body.Error) != "" {
			apiErr.Message = body.Error
		}
		return out, apiErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("read quiz response: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode quiz response: %w", err)
	}
	return out, nil
}

// Ping checks that the quiz API host answers at all. Any status below 500
// counts as reachable.
func (c *QuizAPIClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuizAPIUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusInternalServerError {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}
