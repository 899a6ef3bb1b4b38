package graphql

import (
	"encoding/json"
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

// Handler serves the standard GraphQL-over-HTTP POST shape:
// {"query": ..., "operationName": ..., "variables": ...}.
type Handler struct {
	schema *graphqlgo.Schema
}

func NewHandler(schema *graphqlgo.Schema) *Handler {
	return &Handler{schema: schema}
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response := h.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
