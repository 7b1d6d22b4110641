// Package openapi serves the API description and its Swagger UI page.
package openapi

import (
	_ "embed"
	"net/http"
	"strconv"

	"chiku/backend/internal/httpapi/response"
)

//go:embed openapi.json
var document []byte

//go:embed docs.html
var docsPage []byte

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	response.Raw(w, http.StatusOK, document)
}

func (h *Handler) Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(docsPage)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docsPage)
}
