package handlers

import (
	"net/http"
	"strconv"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ContextHandler struct {
	svc *service.ContextService
}

func NewContextHandler(svc *service.ContextService) *ContextHandler {
	return &ContextHandler{svc: svc}
}

type createContextRequest struct {
	Name     string         `json:"name"`
	Objects  objectsField   `json:"objects"`
	Metadata map[string]any `json:"metadata"`
}

func (h *ContextHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContextRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fc := &domain.FormalContext{
		Name:     req.Name,
		Objects:  req.Objects,
		Metadata: req.Metadata,
	}
	if err := h.svc.Create(r.Context(), fc); err != nil {
		writeServiceError(w, err, "failed to create context")
		return
	}

	writeJSON(w, http.StatusCreated, fc)
}

func (h *ContextHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	fc, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, fc)
}

func (h *ContextHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	list, err := h.svc.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err, "failed to list contexts")
		return
	}
	if list == nil {
		list = []domain.ContextSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"contexts": list})
}

func (h *ContextHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid context id")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "failed to delete context")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// load resolves the {id} URL parameter to a stored context, writing the
// error response itself when that fails.
func (h *ContextHandler) load(w http.ResponseWriter, r *http.Request) (*domain.FormalContext, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid context id")
		return nil, false
	}
	fc, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to get context")
		return nil, false
	}
	return fc, true
}
