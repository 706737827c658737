package task

import (
	"context"

	"taskboard/internal/domain"
)

type TaskRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Task) error
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task, tags []domain.Tag) error
	Delete(ctx context.Context, id string) error
}

type StatusReader interface {
	GetForUser(ctx context.Context, id, userID string) (*domain.Status, error)
}

type TagReader interface {
	CountForUser(ctx context.Context, ids []string, userID string) (int64, error)
}

// EventPublisher pushes board events to the owning user's open sockets.
type EventPublisher interface {
	Publish(userID string, event any)
}
