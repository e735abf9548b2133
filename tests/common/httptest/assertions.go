//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error any `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg == "" {
		return
	}

	// handlers answer either {"error": "msg"} or {"error": {"message": "msg"}}
	switch v := errorResponse.Error.(type) {
	case string:
		assert.Contains(t, v, expectedErrorMsg, "Response error message doesn't contain expected text")
	case map[string]any:
		msg, _ := v["message"].(string)
		assert.Contains(t, msg, expectedErrorMsg, "Response error message doesn't contain expected text")
	default:
		t.Errorf("unexpected error payload shape: %s", w.Body.String())
	}
}

// AssertDenialResponse checks the dashboard gate's denial body: the
// machine-readable reason plus the redirect the front end should follow.
func AssertDenialResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedReason, expectedRedirect string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var body struct {
		Reason   string `json:"reason"`
		Redirect string `json:"redirect"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode denial response JSON: %s", w.Body.String()))

	assert.Equal(t, expectedReason, body.Reason)
	assert.Equal(t, expectedRedirect, body.Redirect)
}
