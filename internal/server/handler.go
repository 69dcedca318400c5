package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/julianstephens/quantumlife/internal/collection"
)

// maxBodyBytes bounds request documents.
const maxBodyBytes = 1 << 20

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	opts := collection.Options{}
	filter := collection.Filter{}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if key == "limit" {
			limit, err := strconv.Atoi(values[0])
			if err != nil || limit < 0 {
				writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be a non-negative integer")
				return
			}
			opts.Limit = limit
			continue
		}
		filter[key] = values[0]
	}

	res, err := s.provider.ListAll(r.Context(), name, filter, opts)
	if err != nil {
		s.storeError(w, r, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}

	stored, err := s.provider.Create(r.Context(), name, doc)
	if err != nil {
		s.storeError(w, r, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	id := chi.URLParam(r, "id")

	partial, ok := decodeDocument(w, r)
	if !ok {
		return
	}
	partial[collection.FieldID] = id

	stored, err := s.provider.Update(r.Context(), name, partial)
	if err != nil {
		s.storeError(w, r, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	id := chi.URLParam(r, "id")

	if err := s.provider.Delete(r.Context(), name, id); err != nil {
		s.storeError(w, r, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeDocument(w http.ResponseWriter, r *http.Request) (collection.Document, bool) {
	var doc collection.Document
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return nil, false
	}
	if doc == nil {
		doc = collection.Document{}
	}
	return doc, true
}

// storeError maps provider sentinels onto status codes. Anything else is a 500.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, collection.ErrUnknownCollection):
		writeError(w, http.StatusNotFound, CodeUnknownCollection, err.Error())
	case errors.Is(err, collection.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, collection.ErrConflict):
		writeError(w, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, collection.ErrMissingID):
		writeError(w, http.StatusBadRequest, CodeMissingID, err.Error())
	default:
		s.log.Error("Store operation failed", "op", op, "collection", chi.URLParam(r, "name"), "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
