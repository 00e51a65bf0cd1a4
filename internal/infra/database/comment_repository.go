package database

import (
	"context"
	"database/sql"

	"github.com/anvaya/crm-backend/internal/entity"
)

type CommentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, lead, author, comment_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		comment.ID,
		comment.LeadID,
		comment.Author,
		comment.CommentText,
		comment.CreatedAt,
	)

	return err
}

// FindByLead orders by creation time; the listing endpoint promises a
// stable chronological order rather than whatever the store feels like.
func (r *CommentRepository) FindByLead(ctx context.Context, leadID string) ([]entity.Comment, error) {
	query := `
		SELECT id, lead, author, comment_text, created_at
		FROM comments
		WHERE lead = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []entity.Comment{}
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.LeadID, &c.Author, &c.CommentText, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
