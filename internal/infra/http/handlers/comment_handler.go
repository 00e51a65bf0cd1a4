package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anvaya/crm-backend/internal/entity"
	"github.com/anvaya/crm-backend/internal/usecase"
)

type CommentHandler struct {
	CreateCommentUC *usecase.CreateCommentUseCase
	Comments        entity.CommentRepository
}

func NewCommentHandler(uc *usecase.CreateCommentUseCase, comments entity.CommentRepository) *CommentHandler {
	return &CommentHandler{CreateCommentUC: uc, Comments: comments}
}

func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	comment, err := h.CreateCommentUC.Execute(r.Context(), leadID, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// HandleList does not check the lead exists: comments of a deleted lead
// stay readable, matching the no-cascade delete.
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	if !usecase.ValidateID(leadID) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Lead ID: %s must be valid.", leadID))
		return
	}

	comments, err := h.Comments.FindByLead(r.Context(), leadID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, comments)
}
