//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status code and, for 2xx, decodes the
// body into targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct),
			"response body is not the expected JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status code and that the standard error
// body's message contains expectedErrorMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body),
		"error body is not the expected JSON: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg)
	}
}
