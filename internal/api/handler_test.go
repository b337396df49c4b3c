package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/story-agent/internal/api"
	"github.com/povarna/generative-ai-agents/story-agent/internal/config"
	"github.com/povarna/generative-ai-agents/story-agent/internal/generator"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/story-agent/internal/llm/mocks"
	"github.com/povarna/generative-ai-agents/story-agent/internal/models"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

const stubStory = `{"title":"T","genre":"Adventure","story":"...","wordCount":550,"themes":["courage"]}`

type testAPI struct {
	container *restful.Container
	client    *mocks.MockLLMClient
	handler   *api.Handler
}

func setupTestAPI(t *testing.T, withOps bool) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockLLMClient(ctrl)
	logger := zerolog.Nop()

	gen, err := generator.NewGenerator(client, config.Default(), &logger)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	handler := api.NewHandler(gen, &logger)
	container := restful.NewContainer()
	api.RegisterRoutes(container, handler)
	if withOps {
		api.RegisterOpsRoutes(container, handler)
	}

	return &testAPI{container: container, client: client, handler: handler}
}

// expectCall stubs a single model call and records the prompt it receives.
func (a *testAPI) expectCall(content string, err error) *string {
	var prompt string
	a.client.EXPECT().
		InvokeModel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req llm.LLMRequest) (*llm.LLMResponse, error) {
			prompt = req.Prompt
			if err != nil {
				return nil, err
			}
			return &llm.LLMResponse{Content: content}, nil
		}).
		Times(1)
	return &prompt
}

func (a *testAPI) post(t *testing.T, body string, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	recorder := httptest.NewRecorder()
	a.container.ServeHTTP(recorder, req)
	return recorder
}

func decodeSuccess(t *testing.T, recorder *httptest.ResponseRecorder) models.SuccessResponse {
	t.Helper()

	var response models.SuccessResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v (%s)", err, recorder.Body.String())
	}
	return response
}

func decodeFailure(t *testing.T, recorder *httptest.ResponseRecorder) models.FailureResponse {
	t.Helper()

	var response models.FailureResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v (%s)", err, recorder.Body.String())
	}
	return response
}

func TestAPI_Generate_Success(t *testing.T) {
	a := setupTestAPI(t, false)
	a.expectCall(stubStory, nil)

	recorder := a.post(t, `{"topic":"a brave explorer on an alien planet","style":"adventure","length":"medium"}`, restful.MIME_JSON)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if ct := recorder.Header().Get("Content-Type"); !strings.HasPrefix(ct, restful.MIME_JSON) {
		t.Errorf("expected json content type, got %s", ct)
	}

	response := decodeSuccess(t, recorder)
	want := models.GenerationResult{
		Title:     "T",
		Genre:     "Adventure",
		Story:     "...",
		WordCount: 550,
		Themes:    []string{"courage"},
	}
	if !response.Success {
		t.Error("expected success true")
	}
	if !reflect.DeepEqual(response.Data, want) {
		t.Errorf("expected %+v, got %+v", want, response.Data)
	}
}

func TestAPI_Generate_ExtraOutputFieldsDropped(t *testing.T) {
	a := setupTestAPI(t, false)
	a.expectCall(`{"title":"T","genre":"Adventure","story":"...","wordCount":550.0,"themes":["courage"],"mood":"dark"}`, nil)

	recorder := a.post(t, `{"topic":"dragons"}`, restful.MIME_JSON)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if strings.Contains(recorder.Body.String(), "mood") {
		t.Errorf("expected extra key to be dropped, got %s", recorder.Body.String())
	}
	if response := decodeSuccess(t, recorder); response.Data.WordCount != 550 {
		t.Errorf("expected wordCount 550, got %v", response.Data.WordCount)
	}
}

func TestAPI_Generate_AppliesDefaults(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
	}{
		{"empty object", `{}`, restful.MIME_JSON},
		{"empty body", ``, restful.MIME_JSON},
		{"malformed body", `not json at all`, "text/plain"},
		{"json array", `[1,2,3]`, restful.MIME_JSON},
		{"null fields", `{"topic":null,"style":null,"length":null}`, restful.MIME_JSON},
		{"empty strings", `{"topic":"","style":"","length":""}`, restful.MIME_JSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setupTestAPI(t, false)
			prompt := a.expectCall(stubStory, nil)

			recorder := a.post(t, tt.body, tt.contentType)

			if recorder.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
			}
			for _, want := range []string{"adventure", "a brave explorer on an alien planet", "500-700"} {
				if !strings.Contains(*prompt, want) {
					t.Errorf("expected prompt to contain %q, got:\n%s", want, *prompt)
				}
			}
		})
	}
}

func TestAPI_Generate_InvalidLengthFallsBackToMedium(t *testing.T) {
	a := setupTestAPI(t, false)
	prompt := a.expectCall(stubStory, nil)

	recorder := a.post(t, `{"topic":"dragons","length":"epic"}`, restful.MIME_JSON)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(*prompt, "500-700") {
		t.Errorf("expected medium word count in prompt, got:\n%s", *prompt)
	}
	if strings.Contains(*prompt, "epic") {
		t.Errorf("unexpected raw length in prompt:\n%s", *prompt)
	}
}

func TestAPI_Generate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		clientErr error
		wantMsg   string
	}{
		{
			name:      "provider error message is returned",
			clientErr: errors.New("429 Too Many Requests: quota exceeded"),
			wantMsg:   "429 Too Many Requests: quota exceeded",
		},
		{
			name:    "empty model output",
			content: "",
			wantMsg: "Failed to generate story",
		},
		{
			name:    "model output missing a field",
			content: `{"title":"T","genre":"Adventure","story":"...","wordCount":550}`,
			wantMsg: "Failed to generate story",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setupTestAPI(t, false)
			a.expectCall(tt.content, tt.clientErr)

			recorder := a.post(t, `{"topic":"dragons"}`, restful.MIME_JSON)

			if recorder.Code != http.StatusInternalServerError {
				t.Fatalf("expected status 500, got %d", recorder.Code)
			}
			response := decodeFailure(t, recorder)
			if response.Success {
				t.Error("expected success false")
			}
			if response.Error != tt.wantMsg {
				t.Errorf("expected error %q, got %q", tt.wantMsg, response.Error)
			}
		})
	}
}

func TestAPI_Generate_WrongFieldType(t *testing.T) {
	a := setupTestAPI(t, false)
	a.client.EXPECT().InvokeModel(gomock.Any(), gomock.Any()).Times(0)

	recorder := a.post(t, `{"topic":42}`, restful.MIME_JSON)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", recorder.Code)
	}
	if response := decodeFailure(t, recorder); !strings.Contains(response.Error, "topic") {
		t.Errorf("expected error to name the field, got %q", response.Error)
	}
}

func TestAPI_OpsRoutesDisabledByDefault(t *testing.T) {
	a := setupTestAPI(t, false)

	for _, path := range []string{"/health", api.OpenAPIPath} {
		recorder := httptest.NewRecorder()
		a.container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		if recorder.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, recorder.Code)
		}
	}
}

func TestAPI_Health(t *testing.T) {
	a := setupTestAPI(t, true)

	recorder := httptest.NewRecorder()
	a.container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var response models.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got '%s'", response.Status)
	}
}

func TestAPI_OpenAPI(t *testing.T) {
	a := setupTestAPI(t, true)

	recorder := httptest.NewRecorder()
	a.container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, api.OpenAPIPath, nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	for _, want := range []string{`"/generate"`, `"Story Agent API"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected openapi document to contain %s", want)
		}
	}
}

func TestEnvelope(t *testing.T) {
	result := &models.GenerationResult{Title: "T", Themes: []string{}}

	status, body := api.Envelope(result, nil)
	if status != http.StatusOK {
		t.Errorf("expected 200, got %d", status)
	}
	if success, ok := body.(models.SuccessResponse); !ok || !success.Success {
		t.Errorf("unexpected body %+v", body)
	}

	status, body = api.Envelope(nil, errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if failure, ok := body.(models.FailureResponse); !ok || failure.Error != "boom" {
		t.Errorf("unexpected body %+v", body)
	}
}
