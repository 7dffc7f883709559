package checkout

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jastipid/storefront/internal/apperror"
)

// Handler exposes the checkout HTTP endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/checkout", h.checkout)
}

// checkout responds 200 even when the sink write failed: the WhatsApp link
// must still reach the client, and the result body carries the persist error.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Checkout(r.Context())
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	respond(w, http.StatusOK, result)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
