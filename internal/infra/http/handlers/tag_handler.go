package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/anvaya/crm-backend/internal/entity"
)

type TagHandler struct {
	Tags entity.TagRepository
}

func NewTagHandler(tags entity.TagRepository) *TagHandler {
	return &TagHandler{Tags: tags}
}

func (h *TagHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		writeError(w, http.StatusBadRequest, "Invalid input: 'name' is required.")
		return
	}

	tag := entity.NewTag(input.Name)
	if err := h.Tags.Create(r.Context(), tag); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

func (h *TagHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Tags.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, tags)
}
