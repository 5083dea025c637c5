package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/fca"
	"github.com/Harshitk-cp/galois/internal/service"
)

// maxBodyBytes bounds request bodies; contexts are sent inline.
const maxBodyBytes = 8 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody decodes an optional JSON body into v. An empty body leaves v
// untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// objectsField accepts either an object → attributes mapping or an ordered
// list of {"name", "attributes"} rows.
type objectsField []domain.Object

func (o *objectsField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var m map[string][]string
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*o = domain.ObjectsFromMap(m)
		return nil
	}
	var rows []domain.Object
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("objects must be a mapping or a list of rows: %w", err)
	}
	*o = rows
	return nil
}

// writeServiceError maps service errors onto HTTP statuses. fallback is the
// message used for unexpected failures.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrContextNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrContextConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrContextTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrContextNameMissing),
		errors.Is(err, service.ErrNoObservation):
		writeError(w, http.StatusBadRequest, err.Error())
	case fca.IsInvariantViolation(err):
		writeError(w, http.StatusInternalServerError, "internal invariant violated")
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
