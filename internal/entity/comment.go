package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Comment is append-only: there is no update or delete path, and deleting
// a lead leaves its comments behind.
type Comment struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"lead"`
	Author      string    `json:"author"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewComment(leadID, author, commentText string) *Comment {
	return &Comment{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		Author:      author,
		CommentText: commentText,
		CreatedAt:   time.Now(),
	}
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	FindByLead(ctx context.Context, leadID string) ([]Comment, error)
}
