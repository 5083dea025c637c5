package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/fca"
	"github.com/Harshitk-cp/galois/internal/service"
)

type MiningHandler struct {
	contexts *ContextHandler
	svc      *service.MiningService
	validate func(*domain.FormalContext) error
}

func NewMiningHandler(contexts *ContextHandler, svc *service.MiningService) *MiningHandler {
	return &MiningHandler{contexts: contexts, svc: svc, validate: contexts.svc.Validate}
}

type conceptsResponse struct {
	Concepts []domain.ConceptRecord `json:"concepts"`
}

type implicationsResponse struct {
	Basis        string                     `json:"basis"`
	Implications []domain.ImplicationRecord `json:"implications"`
}

type descriptionsRequest struct {
	MinSupport domain.MinSupport `json:"min_support"`
}

type inferRequest struct {
	Observed []string `json:"observed"`
	Basis    string   `json:"basis"`
}

func (h *MiningHandler) Concepts(w http.ResponseWriter, r *http.Request) {
	fc, ok := h.contexts.load(w, r)
	if !ok {
		return
	}
	var q domain.ConceptQuery
	if err := decodeBody(w, r, &q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeConcepts(w, r, fc, q)
}

func (h *MiningHandler) Implications(w http.ResponseWriter, r *http.Request) {
	fc, ok := h.contexts.load(w, r)
	if !ok {
		return
	}
	var q domain.ImplicationQuery
	if err := decodeBody(w, r, &q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeImplications(w, r, fc, q)
}

func (h *MiningHandler) Descriptions(w http.ResponseWriter, r *http.Request) {
	fc, ok := h.contexts.load(w, r)
	if !ok {
		return
	}
	var req descriptionsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	descs, err := h.svc.MineDescriptions(r.Context(), fc, req.MinSupport)
	if err != nil {
		writeServiceError(w, err, "failed to mine descriptions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"descriptions": descs})
}

func (h *MiningHandler) Infer(w http.ResponseWriter, r *http.Request) {
	fc, ok := h.contexts.load(w, r)
	if !ok {
		return
	}
	var req inferRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Infer(r.Context(), fc, req.Observed, req.Basis)
	if err != nil {
		writeServiceError(w, err, "failed to infer attributes")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *MiningHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	fc, ok := h.contexts.load(w, r)
	if !ok {
		return
	}

	stored, err := h.svc.Snapshot(r.Context(), fc)
	if err != nil {
		writeServiceError(w, err, "failed to store concepts")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"concepts": stored})
}

// Nearest takes the observation as a comma-separated attributes parameter.
func (h *MiningHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	fc, ok := h.contexts.load(w, r)
	if !ok {
		return
	}

	var observed []string
	for _, a := range strings.Split(r.URL.Query().Get("attributes"), ",") {
		if a = strings.TrimSpace(a); a != "" {
			observed = append(observed, a)
		}
	}
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	results, err := h.svc.Nearest(r.Context(), fc, observed, limit)
	if err != nil {
		writeServiceError(w, err, "failed to find nearest concepts")
		return
	}
	if results == nil {
		results = []domain.StoredConceptWithScore{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"concepts": results})
}

type adHocConceptsRequest struct {
	Objects objectsField        `json:"objects"`
	Query   domain.ConceptQuery `json:"query"`
}

type adHocImplicationsRequest struct {
	Objects objectsField            `json:"objects"`
	Query   domain.ImplicationQuery `json:"query"`
}

// MineConcepts mines a context sent inline without storing it.
func (h *MiningHandler) MineConcepts(w http.ResponseWriter, r *http.Request) {
	var req adHocConceptsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	fc := &domain.FormalContext{Name: "ad-hoc", Objects: req.Objects}
	if err := h.validate(fc); err != nil {
		writeServiceError(w, err, "invalid context")
		return
	}
	h.writeConcepts(w, r, fc, req.Query)
}

// MineImplications mines a basis of a context sent inline without storing it.
func (h *MiningHandler) MineImplications(w http.ResponseWriter, r *http.Request) {
	var req adHocImplicationsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	fc := &domain.FormalContext{Name: "ad-hoc", Objects: req.Objects}
	if err := h.validate(fc); err != nil {
		writeServiceError(w, err, "invalid context")
		return
	}
	h.writeImplications(w, r, fc, req.Query)
}

func (h *MiningHandler) writeConcepts(w http.ResponseWriter, r *http.Request, fc *domain.FormalContext, q domain.ConceptQuery) {
	concepts, err := h.svc.MineConcepts(r.Context(), fc, q)
	if err != nil {
		writeServiceError(w, err, "failed to mine concepts")
		return
	}
	writeJSON(w, http.StatusOK, conceptsResponse{Concepts: concepts})
}

func (h *MiningHandler) writeImplications(w http.ResponseWriter, r *http.Request, fc *domain.FormalContext, q domain.ImplicationQuery) {
	impls, err := h.svc.MineImplications(r.Context(), fc, q)
	if err != nil {
		writeServiceError(w, err, "failed to mine implications")
		return
	}
	// The service has already rejected unknown kinds.
	kind, _ := fca.ParseBasisKind(q.Basis)
	writeJSON(w, http.StatusOK, implicationsResponse{Basis: kind.String(), Implications: impls})
}
