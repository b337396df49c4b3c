package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
)

func newContainer(handler restful.RouteFunction) *restful.Container {
	container := restful.NewContainer()
	container.Filter(Logger)
	container.Filter(RecoverPanic)

	ws := new(restful.WebService)
	ws.Path("/test").Produces(restful.MIME_JSON)
	ws.Route(ws.GET("").To(handler))
	container.Add(ws)
	return container
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return body
}

func TestRecoverPanic(t *testing.T) {
	container := newContainer(func(req *restful.Request, resp *restful.Response) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", recorder.Code)
	}

	body := decodeError(t, recorder)
	if body.Success {
		t.Error("expected success false")
	}
	if body.Error != UnknownErrorMessage {
		t.Errorf("expected %q, got %q", UnknownErrorMessage, body.Error)
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		wantMsg string
	}{
		{"error message is kept", errors.New("quota exceeded"), http.StatusInternalServerError, "quota exceeded"},
		{"nil error", nil, http.StatusInternalServerError, UnknownErrorMessage},
		{"custom status", errors.New("bad body"), http.StatusBadRequest, "bad body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := newContainer(func(req *restful.Request, resp *restful.Response) {
				HandleError(resp, tt.err, tt.status)
			})

			recorder := httptest.NewRecorder()
			container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))

			if recorder.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, recorder.Code)
			}
			if body := decodeError(t, recorder); body.Error != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}
