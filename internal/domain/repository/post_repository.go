package repository

import (
	"context"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// PostRepository defines the interface for post persistence.
// Update, Delete and SetCoverURL operate by identifier and return
// ErrNotFound when the row is gone; authorization lives above this layer.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
	SetCoverURL(ctx context.Context, id, url string) error
}
