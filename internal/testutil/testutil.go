package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"libraryapi/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateTestToken generates a JWT token for testing
func GenerateTestToken(secret, userID, username string) string {
	token, _ := auth.GenerateToken(secret, userID, username, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing
func GenerateExpiredToken(secret, userID, username string) string {
	c := auth.Claims{
		Sub:      userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewGraphQLRequest builds a POST /graphql request; a non-empty token is sent
// as a bearer credential.
func NewGraphQLRequest(query string, variables map[string]any, token string) *http.Request {
	body, _ := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	r := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// GraphQLResponse is the decoded wire shape of a GraphQL response.
type GraphQLResponse struct {
	Data   map[string]any `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

// DecodeGraphQLResponse reads the recorded response body.
func DecodeGraphQLResponse(w *httptest.ResponseRecorder) GraphQLResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var resp GraphQLResponse
	_ = json.Unmarshal(bodyBytes, &resp)
	return resp
}
