package generation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kamaal2002/interviewai-prepbot/internal/generation"
)

const twoQuestionCompletion = `[
  {"id": 1, "text": "Write a SQL query using a window function.", "type": "technical", "difficulty": "Medium", "answerGuide": "Mention OVER and PARTITION BY.", "sampleAnswer": "SELECT ..."},
  {"id": 2, "text": "How do you index a slow query?", "type": "technical", "difficulty": "Medium", "answerGuide": "Talk about EXPLAIN.", "sampleAnswer": "First I would..."}
]`

type stubProvider struct {
	completion string
	err        error
	calls      int
}

func (p *stubProvider) Complete(ctx context.Context, system, user string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.completion, nil
}

type stubStore struct {
	err   error
	saves []struct {
		userID    string
		req       generation.GenerateRequest
		questions []generation.Question
	}
}

func (s *stubStore) SaveGenerated(ctx context.Context, userID string, req generation.GenerateRequest, questions []generation.Question) error {
	s.saves = append(s.saves, struct {
		userID    string
		req       generation.GenerateRequest
		questions []generation.Question
	}{userID, req, questions})
	return s.err
}

func postGenerate(t *testing.T, h *generation.Handler, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/generate-questions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.GenerateQuestions(rec, req)
	return rec
}

func TestGenerateQuestions_MissingInputs(t *testing.T) {
	provider := &stubProvider{completion: twoQuestionCompletion}
	store := &stubStore{}
	h := generation.NewHandler(generation.NewService(provider, store))

	rec := postGenerate(t, h, map[string]interface{}{"questionCount": 3})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("want 400, got %d", rec.Code)
	}
	if provider.calls != 0 {
		t.Errorf("model must not be called on validation failure, got %d calls", provider.calls)
	}
	if len(store.saves) != 0 {
		t.Errorf("no storage write allowed on validation failure, got %d", len(store.saves))
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("400 response must carry an error message")
	}
}

func TestGenerateQuestions_EndToEnd(t *testing.T) {
	provider := &stubProvider{completion: twoQuestionCompletion}
	store := &stubStore{}
	h := generation.NewHandler(generation.NewService(provider, store))

	rec := postGenerate(t, h, map[string]interface{}{
		"jobDescription": "Backend engineer, must know SQL",
		"questionCount":  2,
		"questionTypes":  []string{"technical"},
		"difficulty":     "Medium",
		"userId":         "0e7e8a5e-9c2b-4f6f-8a3d-cc8af5b5f111",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp generation.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success should be true")
	}
	if len(resp.Questions) != 2 {
		t.Fatalf("want 2 questions, got %d", len(resp.Questions))
	}
	if resp.GeneratedAt.IsZero() {
		t.Error("generatedAt should be set")
	}

	if len(store.saves) != 1 {
		t.Fatalf("want exactly one session write, got %d", len(store.saves))
	}
	save := store.saves[0]
	if save.userID != "0e7e8a5e-9c2b-4f6f-8a3d-cc8af5b5f111" {
		t.Errorf("wrong userID saved: %s", save.userID)
	}
	if save.req.QuestionCount != 2 {
		t.Errorf("want question_count 2, got %d", save.req.QuestionCount)
	}
	if len(save.questions) != 2 {
		t.Errorf("want 2 questions persisted, got %d", len(save.questions))
	}
}

func TestGenerateQuestions_AnonymousSkipsPersistence(t *testing.T) {
	provider := &stubProvider{completion: twoQuestionCompletion}
	store := &stubStore{}
	h := generation.NewHandler(generation.NewService(provider, store))

	rec := postGenerate(t, h, map[string]interface{}{"jobDescription": "any"})

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if len(store.saves) != 0 {
		t.Errorf("anonymous generation must not persist, got %d writes", len(store.saves))
	}
}

func TestGenerateQuestions_DuplicateRequestsWriteTwoRows(t *testing.T) {
	provider := &stubProvider{completion: twoQuestionCompletion}
	store := &stubStore{}
	h := generation.NewHandler(generation.NewService(provider, store))

	body := map[string]interface{}{
		"jobDescription": "Backend engineer",
		"userId":         "0e7e8a5e-9c2b-4f6f-8a3d-cc8af5b5f111",
	}
	postGenerate(t, h, body)
	postGenerate(t, h, body)

	if len(store.saves) != 2 {
		t.Errorf("two identical requests must produce two rows, got %d", len(store.saves))
	}
}

func TestGenerateQuestions_StorageFailureDoesNotDowngrade(t *testing.T) {
	provider := &stubProvider{completion: twoQuestionCompletion}
	store := &stubStore{err: errors.New("db down")}
	h := generation.NewHandler(generation.NewService(provider, store))

	rec := postGenerate(t, h, map[string]interface{}{
		"jobDescription": "Backend engineer",
		"userId":         "0e7e8a5e-9c2b-4f6f-8a3d-cc8af5b5f111",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("storage failure must not change the HTTP status, got %d", rec.Code)
	}
	var resp generation.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success || len(resp.Questions) != 2 {
		t.Errorf("success payload changed by a storage failure: %+v", resp)
	}
}

func TestGenerateQuestions_ProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	store := &stubStore{}
	h := generation.NewHandler(generation.NewService(provider, store))

	rec := postGenerate(t, h, map[string]interface{}{"jobDescription": "any"})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("want 500, got %d", rec.Code)
	}
	if len(store.saves) != 0 {
		t.Errorf("no storage write on provider failure, got %d", len(store.saves))
	}
}

func TestGenerateQuestions_UnparseableCompletion(t *testing.T) {
	provider := &stubProvider{completion: "I cannot help with that."}
	store := &stubStore{}
	h := generation.NewHandler(generation.NewService(provider, store))

	rec := postGenerate(t, h, map[string]interface{}{"jobDescription": "any"})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("want 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body["error"] != "Failed to parse model response" {
		t.Errorf("parse failures should report a distinct message, got %q", body["error"])
	}
}
