package cart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jastipid/storefront/internal/apperror"
)

// Handler exposes cart HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// AddRequest is the payload for adding one unit of a product.
type AddRequest struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
}

// ChangeRequest is the payload for adjusting a line's quantity.
type ChangeRequest struct {
	Delta int64 `json:"delta"`
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.summary)
		r.Delete("/", h.clear)
		r.Post("/items", h.add)
		r.Patch("/items/{name}", h.changeQuantity)
		r.Delete("/items/{name}", h.remove)
	})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	respond(w, http.StatusOK, sum)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.Handle(w, apperror.Validation("invalid request body"))
		return
	}
	sum, err := h.service.Add(r.Context(), req.Name, req.UnitPrice)
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	respond(w, http.StatusOK, sum)
}

func (h *Handler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	var req ChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.Handle(w, apperror.Validation("invalid request body"))
		return
	}
	sum, err := h.service.ChangeQuantity(r.Context(), chi.URLParam(r, "name"), req.Delta)
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	respond(w, http.StatusOK, sum)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Remove(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	respond(w, http.StatusOK, sum)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		apperror.Handle(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
