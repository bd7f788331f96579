package mock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

type cannedResponse struct {
	status int
	body   any
}

// ApiMock is a recording HTTP server standing in for the Resend API. Requests
// are keyed by method and path; each key keeps its bodies in arrival order.
type ApiMock struct {
	mu               sync.Mutex
	server           *httptest.Server
	requestsReceived map[string][]map[string]any
	headersReceived  map[string][]http.Header
	responses        map[string]map[int]cannedResponse
	defaults         map[string]cannedResponse
}

// NewApiServer creates an unstarted mock.
func NewApiServer() *ApiMock {
	return &ApiMock{
		requestsReceived: map[string][]map[string]any{},
		headersReceived:  map[string][]http.Header{},
		responses:        map[string]map[int]cannedResponse{},
		defaults:         map[string]cannedResponse{},
	}
}

// Start begins serving on a random local port.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// Close stops the server.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// GetUrl returns the base URL of the running server.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}

	a.mu.Lock()
	index := len(a.requestsReceived[key])
	a.requestsReceived[key] = append(a.requestsReceived[key], request)
	a.headersReceived[key] = append(a.headersReceived[key], r.Header.Clone())
	resp := a.responseFor(key, index)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.body)
}

// responseFor picks the canned response for the index-th call, then the
// default for the key, then a 200 carrying a generated id.
func (a *ApiMock) responseFor(key string, index int) cannedResponse {
	if byIndex, ok := a.responses[key]; ok {
		if resp, ok := byIndex[index]; ok {
			return resp
		}
	}
	if resp, ok := a.defaults[key]; ok {
		return resp
	}
	return cannedResponse{
		status: http.StatusOK,
		body:   map[string]any{"id": fmt.Sprintf("mock-%d", index+1)},
	}
}

// SetResponse configures the reply to the index-th call of method+path.
// An index of -1 sets the default for every call.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	resp := cannedResponse{status: status, body: response}
	if index == -1 {
		a.defaults[key] = resp
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]cannedResponse{}
	}
	a.responses[key][index] = resp
}

// GetRequestBody returns the decoded body of the index-th call, or nil.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	requests := a.requestsReceived[method+path]
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index]
}

// GetRequestHeaders returns the headers of the index-th call, or nil.
func (a *ApiMock) GetRequestHeaders(method, path string, index int) http.Header {
	a.mu.Lock()
	defer a.mu.Unlock()

	headers := a.headersReceived[method+path]
	if index < 0 || index >= len(headers) {
		return nil
	}
	return headers[index]
}

// RequestCount returns how many calls method+path received.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requestsReceived[method+path])
}

// ClearResponses forgets every recorded call and canned response.
func (a *ApiMock) ClearResponses() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requestsReceived = map[string][]map[string]any{}
	a.headersReceived = map[string][]http.Header{}
	a.responses = map[string]map[int]cannedResponse{}
	a.defaults = map[string]cannedResponse{}
}
