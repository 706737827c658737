package status

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"gorm.io/gorm"
)

type StatusRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Status) error
	ListByUser(ctx context.Context, userID string) ([]domain.Status, error)
	GetByID(ctx context.Context, id string) (*domain.Status, error)
	GetByName(ctx context.Context, userID, name string) (*domain.Status, error)
	NameTaken(ctx context.Context, userID, name, excludeID string) (bool, error)
	Update(ctx context.Context, s *domain.Status) error
	Delete(ctx context.Context, id string) error
}

type TaskReassigner interface {
	AnyWithStatus(ctx context.Context, statusID string) (bool, error)
	ReassignStatus(ctx context.Context, fromStatusID, toStatusID string) error
}

type EventPublisher interface {
	Publish(userID string, event any)
}

type Service struct {
	statuses StatusRepositoryInterface
	tasks    TaskReassigner
	events   EventPublisher
}

func NewService(statuses StatusRepositoryInterface, tasks TaskReassigner, events EventPublisher) *Service {
	return &Service{statuses: statuses, tasks: tasks, events: events}
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Status, error) {
	return s.statuses.ListByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, userID, name, color string) (*domain.Status, error) {
	st := &domain.Status{
		Name:      name,
		Color:     color,
		IsDefault: false,
		UserID:    userID,
	}
	if err := s.statuses.Create(ctx, st); err != nil {
		return nil, err
	}
	s.publish(userID, "status.created", st)
	return st, nil
}

// Update renames or recolors a status. Default statuses keep their names.
func (s *Service) Update(ctx context.Context, id, userID string, name, color *string) (*domain.Status, error) {
	st, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != "" {
		if st.IsDefault {
			return nil, ErrDefaultImmutable
		}
		taken, err := s.statuses.NameTaken(ctx, userID, *name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNameTaken
		}
		st.Name = *name
	}
	if color != nil {
		st.Color = *color
	}

	if err := s.statuses.Update(ctx, st); err != nil {
		return nil, err
	}
	s.publish(userID, "status.updated", st)
	return st, nil
}

// Delete removes a non-default status. Tasks still referencing it are moved
// to the user's "To Do" column first; deletion fails if that column is gone.
func (s *Service) Delete(ctx context.Context, id, userID string) (reassigned bool, err error) {
	st, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return false, err
	}
	if st.IsDefault {
		return false, ErrDefaultDelete
	}

	inUse, err := s.tasks.AnyWithStatus(ctx, id)
	if err != nil {
		return false, err
	}
	if inUse {
		fallback, err := s.statuses.GetByName(ctx, userID, domain.StatusToDo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrNoFallbackStatus
			}
			return false, err
		}
		if err := s.tasks.ReassignStatus(ctx, id, fallback.ID); err != nil {
			return false, err
		}
	}

	if err := s.statuses.Delete(ctx, id); err != nil {
		return false, err
	}
	s.publish(userID, "status.deleted", map[string]any{"id": id})
	return inUse, nil
}

func (s *Service) getOwned(ctx context.Context, id, userID string) (*domain.Status, error) {
	st, err := s.statuses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if st.UserID != userID {
		return nil, ErrAccessDenied
	}
	return st, nil
}

func (s *Service) publish(userID, eventType string, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(userID, map[string]any{"type": eventType, "payload": payload})
}
