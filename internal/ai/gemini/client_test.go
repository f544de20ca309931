package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

type modelCall struct {
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

type fakeModels struct {
	mu    sync.Mutex
	calls []modelCall
	queue map[string][]fakeResponse
}

func newFakeModels() *fakeModels {
	return &fakeModels{queue: make(map[string][]fakeResponse)}
}

func (f *fakeModels) enqueue(model string, resp *genai.GenerateContentResponse, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue[model] = append(f.queue[model], fakeResponse{resp: resp, err: err})
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prompt := ""
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		prompt = contents[0].Parts[0].Text
	}
	f.calls = append(f.calls, modelCall{model: model, prompt: prompt, config: config})

	responses := f.queue[model]
	if len(responses) == 0 {
		return nil, errors.New("unexpected call")
	}
	res := responses[0]
	f.queue[model] = responses[1:]
	return res.resp, res.err
}

func (f *fakeModels) models() []string {
	names := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		names = append(names, call.model)
	}
	return names
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func testGenerator(models modelsAPI, names ...string) *Generator {
	g := newGenerator(models, Config{Models: names}, zap.NewNop())
	g.retryDelay = 0
	return g
}

func TestGeneratorRetriesOnRateLimit(t *testing.T) {
	models := newFakeModels()
	rateErr := genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED", Message: "slow down"}
	models.enqueue("primary", nil, rateErr)
	models.enqueue("primary", textResponse("retry ok"), nil)

	g := testGenerator(models, "primary", "secondary")

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}
	if got := models.models(); len(got) != 2 || got[0] != "primary" || got[1] != "primary" {
		t.Fatalf("unexpected calls: %v", got)
	}

	for _, call := range models.calls {
		if call.prompt != "prompt" {
			t.Fatalf("unexpected prompt: %q", call.prompt)
		}
		if call.config == nil || call.config.ResponseMIMEType != "application/json" {
			t.Fatalf("expected json response mime type, got %+v", call.config)
		}
	}
}

func TestGeneratorFallsBackOnNotFound(t *testing.T) {
	models := newFakeModels()
	models.enqueue("primary", nil, genai.APIError{Code: http.StatusNotFound, Status: "NOT_FOUND"})
	models.enqueue("secondary", textResponse("from secondary"), nil)

	g := testGenerator(models, "primary", "secondary")

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output != "from secondary" {
		t.Fatalf("unexpected output: %q", output)
	}
	if got := models.models(); len(got) != 2 || got[1] != "secondary" {
		t.Fatalf("unexpected calls: %v", got)
	}
}

func TestGeneratorFallsBackOnPlainErrors(t *testing.T) {
	models := newFakeModels()
	models.enqueue("primary", nil, errors.New("boom"))
	models.enqueue("secondary", textResponse("ok"), nil)

	g := testGenerator(models, "primary", "secondary")

	if _, err := g.GenerateContent(context.Background(), "prompt"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(models.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.calls))
	}
}

func TestGeneratorQuotaExhaustedForAllModels(t *testing.T) {
	models := newFakeModels()
	quotaErr := genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exceeded, limit: 0"}
	models.enqueue("primary", nil, quotaErr)
	models.enqueue("secondary", nil, quotaErr)

	g := testGenerator(models, "primary", "secondary")

	_, err := g.GenerateContent(context.Background(), "prompt")
	if !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
	if len(models.calls) != 2 {
		t.Fatalf("expected single call per model, got %d", len(models.calls))
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	models := newFakeModels()
	rateErr := errors.New("status 429: too many requests")
	for i := 0; i < DefaultMaxRetries; i++ {
		models.enqueue("only", nil, rateErr)
	}

	g := testGenerator(models, "only")

	_, err := g.GenerateContent(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("rate limit without zero quota must not report exhausted quota: %v", err)
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected last error to be wrapped, got %v", err)
	}
	if len(models.calls) != DefaultMaxRetries {
		t.Fatalf("expected %d calls, got %d", DefaultMaxRetries, len(models.calls))
	}
}

func TestGeneratorRejectsEmptyResponse(t *testing.T) {
	models := newFakeModels()
	models.enqueue("only", textResponse("   "), nil)

	_, err := testGenerator(models, "only").GenerateContent(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("expected empty response error, got %v", err)
	}
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	models := newFakeModels()

	if _, err := testGenerator(models).GenerateContent(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if len(models.calls) != 0 {
		t.Fatalf("expected no calls, got %d", len(models.calls))
	}
}

func TestGeneratorStopsOnCanceledContext(t *testing.T) {
	models := newFakeModels()
	models.enqueue("primary", nil, errors.New("canceled upstream"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testGenerator(models, "primary", "secondary").GenerateContent(ctx, "prompt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(models.calls) != 1 {
		t.Fatalf("expected a single call, got %d", len(models.calls))
	}
}

func TestNewGeneratorDefaults(t *testing.T) {
	g := newGenerator(newFakeModels(), Config{Models: []string{" ", ""}}, nil)

	if got := g.Models(); len(got) != len(DefaultModels) || got[0] != DefaultModels[0] {
		t.Fatalf("expected default models, got %v", got)
	}
	if g.maxRetries != DefaultMaxRetries || g.retryDelay != DefaultRetryDelay {
		t.Fatalf("unexpected defaults: retries=%d delay=%s", g.maxRetries, g.retryDelay)
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), Config{APIKey: "  "}, nil); err == nil {
		t.Fatal("expected error for empty api key")
	}
}
