package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jastipid/storefront/internal/apperror"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Post("/refresh", h.refresh)
		r.Get("/products", h.listProducts)
		r.Get("/categories", h.listCategories)
	})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		apperror.Handle(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]int{"products": len(h.service.Products(""))})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Products(r.URL.Query().Get("category")))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.service.Categories()
	if cats == nil {
		cats = []string{}
	}
	respond(w, http.StatusOK, cats)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
