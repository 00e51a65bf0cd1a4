package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anvaya/crm-backend/internal/entity"
)

type CreateCommentInput struct {
	Author      string `json:"author"`
	CommentText string `json:"commentText"`
}

type CreateCommentUseCase struct {
	Leads    entity.LeadRepository
	Comments entity.CommentRepository
}

func NewCreateCommentUseCase(leads entity.LeadRepository, comments entity.CommentRepository) *CreateCommentUseCase {
	return &CreateCommentUseCase{Leads: leads, Comments: comments}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, leadID string, input CreateCommentInput) (*entity.Comment, error) {
	if !ValidateID(leadID) {
		return nil, validationError(fmt.Sprintf("Lead ID: %s must be valid.", leadID))
	}
	if strings.TrimSpace(input.CommentText) == "" {
		return nil, validationError("Invalid input: 'commentText' is required.")
	}

	if _, err := uc.Leads.FindByID(ctx, leadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, notFoundError(fmt.Sprintf("Lead with ID %s not found.", leadID))
		}
		return nil, err
	}

	comment := entity.NewComment(leadID, input.Author, input.CommentText)
	if err := uc.Comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
