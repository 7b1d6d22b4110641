package response

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type errorBody struct {
	Detail string `json:"detail"`
}

// Encode marshals v once so handlers can serve the same bytes on every request.
func Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Raw writes an already encoded JSON document.
func Raw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func Error(w http.ResponseWriter, status int, message string) {
	body, _ := json.Marshal(errorBody{Detail: message})
	Raw(w, status, body)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed answers 405 and advertises the methods the routes accept.
func MethodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		if allow != "" {
			w.Header().Set("Allow", allow)
		}
		Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	}
}
