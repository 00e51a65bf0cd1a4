package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewTag(name string) *Tag {
	return &Tag{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	FindAll(ctx context.Context) ([]Tag, error)
}
