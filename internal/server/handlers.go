package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/store"
)

type layoutRequest struct {
	Layout model.Layout `json:"layout"`
}

type addFieldRequest struct {
	Type model.FieldType `json:"type"`
}

// reorderRequest accepts either the drag pair or explicit positions. A drag
// without overId is a no-op.
type reorderRequest struct {
	ActiveID string `json:"activeId"`
	OverID   string `json:"overId"`
	From     *int   `json:"from"`
	To       *int   `json:"to"`
}

type editingRequest struct {
	ID string `json:"id"`
}

type validateRequest struct {
	Values map[string]any `json:"values"`
	Strict *bool          `json:"strict"`
}

type validateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type reorderResponse struct {
	Moved bool       `json:"moved"`
	Form  model.Form `json:"form"`
}

func (s *Server) store() *store.Store {
	return s.orch.Store()
}

func (s *Server) getForm(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.orch.Snapshot())
}

func (s *Server) setLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.store().SetLayout(req.Layout); err != nil {
		s.writeError(w, http.StatusBadRequest, codeUnknownLayout, err.Error())
		return
	}
	s.metrics.mutations.WithLabelValues("set_layout").Inc()
	s.writeJSON(w, http.StatusOK, s.orch.Snapshot())
}

func (s *Server) addField(w http.ResponseWriter, r *http.Request) {
	var req addFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON: "+err.Error())
		return
	}
	field, err := s.store().AddField(req.Type)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, codeUnknownFieldType, err.Error())
		return
	}
	s.metrics.mutations.WithLabelValues("add_field").Inc()
	s.writeJSON(w, http.StatusCreated, field)
}

func (s *Server) getField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	field, ok := s.store().Field(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, codeNotFound, "field not found: "+id)
		return
	}
	s.writeJSON(w, http.StatusOK, field)
}

// updateField answers 204 for an unknown id: updating a removed field is a
// no-op, not a failure.
func (s *Server) updateField(w http.ResponseWriter, r *http.Request) {
	var patch model.Patch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON: "+err.Error())
		return
	}
	field, ok := s.store().UpdateField(chi.URLParam(r, "id"), patch)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.metrics.mutations.WithLabelValues("update_field").Inc()
	s.writeJSON(w, http.StatusOK, field)
}

func (s *Server) removeField(w http.ResponseWriter, r *http.Request) {
	if s.store().RemoveField(chi.URLParam(r, "id")) {
		s.metrics.mutations.WithLabelValues("remove_field").Inc()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) reorderFields(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON: "+err.Error())
		return
	}

	var moved bool
	switch {
	case req.From != nil && req.To != nil:
		moved = s.store().Reorder(*req.From, *req.To)
	case req.ActiveID != "" && req.OverID != "":
		moved = s.store().Move(req.ActiveID, req.OverID)
	case req.ActiveID != "":
		// A drag dropped outside any field has no over target.
	default:
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "reorder needs activeId and overId or from and to")
		return
	}
	if moved {
		s.metrics.mutations.WithLabelValues("reorder").Inc()
	}
	s.writeJSON(w, http.StatusOK, reorderResponse{Moved: moved, Form: s.orch.Snapshot()})
}

func (s *Server) getEditing(w http.ResponseWriter, _ *http.Request) {
	field, ok := s.store().EditingField()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, http.StatusOK, field)
}

func (s *Server) setEditing(w http.ResponseWriter, r *http.Request) {
	var req editingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.store().SetEditingField(req.ID) {
		s.writeError(w, http.StatusNotFound, codeNotFound, "field not found: "+req.ID)
		return
	}
	s.metrics.mutations.WithLabelValues("set_editing").Inc()
	field, _ := s.store().EditingField()
	s.writeJSON(w, http.StatusOK, field)
}

func (s *Server) clearEditing(w http.ResponseWriter, _ *http.Request) {
	s.store().ClearEditingField()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON: "+err.Error())
		return
	}
	strict := s.strict
	if req.Strict != nil {
		strict = *req.Strict
	}
	report := s.orch.Validate(req.Values, strict)
	s.writeJSON(w, http.StatusOK, validateResponse{Valid: report.Valid(), Errors: report.Errors()})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "renderer")
	query := r.URL.Query()

	started := time.Now()
	out, contentType, err := s.orch.Generate(r.Context(), orchestrator.Request{
		Renderer:     name,
		ThemeName:    query.Get("theme"),
		ThemeVariant: query.Get("variant"),
	})
	switch {
	case errors.Is(err, render.ErrRendererNotFound),
		errors.Is(err, orchestrator.ErrThemeNotFound),
		errors.Is(err, orchestrator.ErrVariantNotFound):
		s.writeError(w, http.StatusNotFound, codeNotFound, err.Error())
		return
	case err != nil:
		s.logger.Error("render form", slog.String("renderer", name), slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, codeInternal, "render failed")
		return
	}
	s.metrics.observeRender(name, started)

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		s.logger.Error("write render", slog.Any("error", err))
	}
}
