package tag

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"gorm.io/gorm"
)

type TagRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Tag) error
	ListByUser(ctx context.Context, userID string) ([]domain.Tag, error)
	GetForUser(ctx context.Context, id, userID string) (*domain.Tag, error)
	NameTaken(ctx context.Context, userID, name, excludeID string) (bool, error)
	Update(ctx context.Context, t *domain.Tag) error
	Delete(ctx context.Context, id string) error
}

type EventPublisher interface {
	Publish(userID string, event any)
}

type Service struct {
	tags   TagRepositoryInterface
	events EventPublisher
}

func NewService(tags TagRepositoryInterface, events EventPublisher) *Service {
	return &Service{tags: tags, events: events}
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Tag, error) {
	return s.tags.ListByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, userID, name, color string) (*domain.Tag, error) {
	t := &domain.Tag{
		Name:      name,
		Color:     color,
		IsDefault: false,
		UserID:    userID,
	}
	if err := s.tags.Create(ctx, t); err != nil {
		return nil, err
	}
	s.publish(userID, "tag.created", t)
	return t, nil
}

func (s *Service) Update(ctx context.Context, id, userID string, name, color *string) (*domain.Tag, error) {
	t, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != "" {
		if t.IsDefault {
			return nil, ErrDefaultImmutable
		}
		taken, err := s.tags.NameTaken(ctx, userID, *name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNameTaken
		}
		t.Name = *name
	}
	if color != nil {
		t.Color = *color
	}

	if err := s.tags.Update(ctx, t); err != nil {
		return nil, err
	}
	s.publish(userID, "tag.updated", t)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	t, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if t.IsDefault {
		return ErrDefaultDelete
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(userID, "tag.deleted", map[string]any{"id": id})
	return nil
}

// Tags are looked up scoped to the user, so a foreign tag is simply not
// found.
func (s *Service) getOwned(ctx context.Context, id, userID string) (*domain.Tag, error) {
	t, err := s.tags.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) publish(userID, eventType string, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(userID, map[string]any{"type": eventType, "payload": payload})
}
