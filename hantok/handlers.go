package hantok

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MyounghoonKim/hantok/internal/util"
)

// TokenizeRequest is the HTTP request body for POST /v1/tokenize.
type TokenizeRequest struct {
	Text string `json:"text"`
}

// TokenizeResponse is the HTTP response body for POST /v1/tokenize.
type TokenizeResponse struct {
	Tokens   []Token `json:"tokens"`
	Rendered string  `json:"rendered"`
}

// TokenizeHandler handles POST /v1/tokenize requests against the
// package's default Tokenizer.
func TokenizeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req TokenizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	toks := Tokenize(req.Text)
	res := TokenizeResponse{Tokens: toks, Rendered: Render(toks)}

	w.Header().Set("Content-Type", "application/json")
	out, err := util.MarshalNoEscape(res, true)
	if err != nil {
		http.Error(w, fmt.Sprintf("Encode failed: %v", err), http.StatusInternalServerError)
		return
	}
	fmt.Fprint(w, string(out))
}

// HealthHandler handles GET /health requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "hantok",
	})
}

// OpenAPIHandler serves a minimal OpenAPI 3.0 description at GET /openapi.json.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": { "title": "hantok API", "description": "Korean morphological tokenizer", "version": "1.0.0" },
  "paths": {
    "/v1/tokenize": {
      "post": {
        "summary": "Tokenize",
        "requestBody": {
          "required": true,
          "content": { "application/json": { "schema": { "$ref": "#/components/schemas/TokenizeRequest" } } }
        },
        "responses": {
          "200": { "description": "tokens", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/TokenizeResponse" } } } },
          "400": { "description": "invalid request body" }
        }
      }
    },
    "/health": { "get": { "summary": "Health", "responses": { "200": { "description": "ok" } } } }
  },
  "components": {
    "schemas": {
      "TokenizeRequest": { "type": "object", "required": ["text"], "properties": { "text": { "type": "string" } } },
      "TokenizeResponse": {
        "type": "object",
        "properties": {
          "tokens": { "type": "array", "items": { "type": "object" } },
          "rendered": { "type": "string" }
        }
      }
    }
  }
}`
