package httpd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/repository"
	"github.com/RubachokBoss/textinspect/internal/service"
	"github.com/RubachokBoss/textinspect/internal/service/integration"
	"github.com/RubachokBoss/textinspect/internal/service/mock"
)

const longText = "Artificial intelligence is reshaping how people work. It also raises many ethical questions about fairness."

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
}

func newTestRouter(t *testing.T, providerURL, apiKey string) http.Handler {
	t.Helper()

	client, err := integration.NewDetectionClient(integration.ClientConfig{
		APIKey:             apiKey,
		BaseURL:            providerURL,
		AIDetectionPath:    "/v2/text/ai_detection",
		PlagiarismPath:     "/v2/text/plagia_detection",
		AIProvider:         "winstonai",
		PlagiarismProvider: "originalityai",
	}, mock.NewGenerator(11), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDetectionClient: %v", err)
	}

	repo := repository.NewSessionRepository(100, time.Minute, zerolog.Nop())
	sessions := service.NewSessionService(repo, client, 10, nil, zerolog.Nop())

	h := NewHandler(sessions, service.NewCatalogService(), client, nil, false, zerolog.Nop())
	router := chi.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code, env
}

func TestHealthAndStatus(t *testing.T) {
	h := newTestRouter(t, "http://127.0.0.1:1", "")

	if code, _ := do(t, h, http.MethodGet, "/health", ""); code != http.StatusOK {
		t.Errorf("health status = %d", code)
	}

	code, env := do(t, h, http.MethodGet, "/status", "")
	if code != http.StatusOK {
		t.Fatalf("status code = %d", code)
	}
	if env.Data["credential_present"] != false || env.Data["ai_provider"] != "winstonai" {
		t.Errorf("status = %v", env.Data)
	}
}

func TestCatalogRoutes(t *testing.T) {
	h := newTestRouter(t, "http://127.0.0.1:1", "")

	code, env := do(t, h, http.MethodGet, "/api/v1/catalog", "")
	if code != http.StatusOK || env.Data["product"] != "TextInspect" {
		t.Errorf("catalog = %d %v", code, env.Data)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/pricing", nil))
	var plans struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &plans); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plans.Data) != 3 || plans.Data[2]["name"] != "Team" {
		t.Errorf("plans = %v", plans.Data)
	}
}

func TestOneShotDetection(t *testing.T) {
	h := newTestRouter(t, "http://127.0.0.1:1", "")

	code, env := do(t, h, http.MethodPost, "/api/v1/ai-detection", `{"text":"`+longText+`","use_mock":true}`)
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	if env.Data["state"] != "success" || env.Data["demo"] != true {
		t.Errorf("snapshot = %v", env.Data)
	}
	view := env.Data["view"].(map[string]interface{})
	if view["segments_analyzed"] != float64(2) {
		t.Errorf("view = %v", view)
	}

	code, env = do(t, h, http.MethodPost, "/api/v1/plagiarism-detection", `{"text":"too short","use_mock":true}`)
	if code != http.StatusOK || env.Data["state"] != "error" {
		t.Fatalf("short text = %d %v", code, env.Data)
	}
	errInfo := env.Data["error"].(map[string]interface{})
	if errInfo["reason"] != "validation_failed" {
		t.Errorf("error = %v", errInfo)
	}

	if code, _ := do(t, h, http.MethodPost, "/api/v1/ai-detection", `{"text":`); code != http.StatusBadRequest {
		t.Errorf("bad json code = %d", code)
	}
}

func TestSessionFlowWithCreditsExhausted(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer provider.Close()
	h := newTestRouter(t, provider.URL, "key")

	code, env := do(t, h, http.MethodPost, "/api/v1/sessions", `{"kind":"ai-detection"}`)
	if code != http.StatusCreated {
		t.Fatalf("create code = %d", code)
	}
	id := env.Data["id"].(string)
	if env.Data["state"] != "idle" {
		t.Errorf("initial state = %v", env.Data["state"])
	}

	_, env = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/submit", `{"text":"`+longText+`"}`)
	if env.Data["state"] != "error" || env.Data["offer_demo_mode"] != true {
		t.Fatalf("after 402 = %v", env.Data)
	}

	_, env = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/demo", "")
	if env.Data["demo_mode"] != true || env.Data["error"] != nil {
		t.Errorf("after demo = %v", env.Data)
	}

	_, env = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/submit", `{"text":"`+longText+`"}`)
	if env.Data["state"] != "success" || env.Data["demo"] != true {
		t.Errorf("demo submission = %v", env.Data)
	}

	code, env = do(t, h, http.MethodGet, "/api/v1/sessions/"+id, "")
	if code != http.StatusOK || env.Data["state"] != "success" {
		t.Errorf("get = %d %v", code, env.Data)
	}

	if code, _ := do(t, h, http.MethodDelete, "/api/v1/sessions/"+id, ""); code != http.StatusNoContent {
		t.Errorf("delete code = %d", code)
	}
	if code, _ := do(t, h, http.MethodGet, "/api/v1/sessions/"+id, ""); code != http.StatusNotFound {
		t.Errorf("get after delete code = %d", code)
	}
	if code, _ := do(t, h, http.MethodDelete, "/api/v1/sessions/"+id, ""); code != http.StatusNotFound {
		t.Errorf("second delete code = %d", code)
	}
}

func TestSessionErrors(t *testing.T) {
	h := newTestRouter(t, "http://127.0.0.1:1", "")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"unknown kind", http.MethodPost, "/api/v1/sessions", `{"kind":"summary"}`, http.StatusBadRequest},
		{"bad json", http.MethodPost, "/api/v1/sessions", `{`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/v1/sessions", `{"kind":"ai-detection","extra":1}`, http.StatusBadRequest},
		{"not found", http.MethodGet, "/api/v1/sessions/6f1c2f0e-8a4b-4a53-9df4-2a1f3c9a7b10", "", http.StatusNotFound},
		{"submit not found", http.MethodPost, "/api/v1/sessions/6f1c2f0e-8a4b-4a53-9df4-2a1f3c9a7b10/submit", `{"text":"x"}`, http.StatusNotFound},
		{"invalid id", http.MethodGet, "/api/v1/sessions/not-a-uuid", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, h, tt.method, tt.path, tt.body)
			if code != tt.want {
				t.Errorf("code = %d, want %d (%s)", code, tt.want, env.Message)
			}
		})
	}
}

func TestSubmitWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"winstonai":{"ai_score":0.1,"items":[],"cost":0.01}}`))
	}))
	defer provider.Close()
	unblock := sync.OnceFunc(func() { close(release) })
	defer unblock()
	h := newTestRouter(t, provider.URL, "key")

	_, env := do(t, h, http.MethodPost, "/api/v1/sessions", `{"kind":"ai-detection"}`)
	id := env.Data["id"].(string)

	done := make(chan int)
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/submit", strings.NewReader(`{"text":"`+longText+`"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		done <- rec.Code
	}()

	for {
		_, env := do(t, h, http.MethodGet, "/api/v1/sessions/"+id, "")
		if env.Data["state"] == "loading" {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if code, _ := do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/submit", `{"text":"`+longText+`"}`); code != http.StatusConflict {
		t.Errorf("second submit code = %d, want 409", code)
	}

	unblock()
	if code := <-done; code != http.StatusOK {
		t.Errorf("first submit code = %d", code)
	}
}
