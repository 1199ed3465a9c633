package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/router"
)

// Tokens is the token service all tests share. The secret only has to
// be consistent within one test process.
var Tokens = auth.NewTokenService("test-secret", time.Hour)

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, method, url, body string, headers ...map[string]string) httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	router.AttachRoutes(r.Group(""), Tokens)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// BearerHeader builds the Authorization header for a token.
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	for _, status := range expectedStatus {
		if status == r.Code {
			return
		}
	}

	assert.Fail(t, "HTTP status is wrong", "expected one of %v, got %d. Response body: %s", expectedStatus, r.Code, r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target interface{}) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}
