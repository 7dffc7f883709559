package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jastipid/storefront/internal/apperror"
)

// CatalogReloader lets the handler refresh the catalog after the current
// profile changes, mirroring the page flow where switching profiles reloads
// the product list. A reload failure never fails the profile operation.
type CatalogReloader interface {
	Refresh(ctx context.Context) error
	Clear()
}

// Handler exposes profile HTTP endpoints.
type Handler struct {
	service Service
	catalog CatalogReloader
	log     *zap.Logger
}

func NewHandler(service Service, catalog CatalogReloader, log *zap.Logger) *Handler {
	return &Handler{service: service, catalog: catalog, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/profiles", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.save)
		r.Delete("/", h.reset)
		r.Get("/current", h.current)
		r.Delete("/current", h.deleteCurrent)
		r.Post("/{id}/use", h.use)
	})
	r.Get("/api/v1/branding", h.branding)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	if profiles == nil {
		profiles = []Profile{}
	}
	respond(w, http.StatusOK, profiles)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.Handle(w, apperror.Validation("invalid request body"))
		return
	}
	p, err := h.service.Save(r.Context(), req)
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	h.reload(r.Context())
	respond(w, http.StatusOK, p)
}

func (h *Handler) use(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Use(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	h.reload(r.Context())
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteCurrent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCurrent(r.Context()); err != nil {
		apperror.Handle(w, err)
		return
	}
	if h.catalog != nil {
		h.catalog.Clear()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		apperror.Handle(w, err)
		return
	}
	if h.catalog != nil {
		h.catalog.Clear()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Current(r.Context())
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) branding(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Branding(r.Context())
	if err != nil {
		apperror.Handle(w, err)
		return
	}
	respond(w, http.StatusOK, b)
}

func (h *Handler) reload(ctx context.Context) {
	if h.catalog == nil {
		return
	}
	if err := h.catalog.Refresh(ctx); err != nil {
		h.log.Warn("catalog reload after profile change failed", zap.Error(err))
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
