package task

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	tasks    TaskRepositoryInterface
	statuses StatusReader
	tags     TagReader
	events   EventPublisher
}

func NewService(tasks TaskRepositoryInterface, statuses StatusReader, tags TagReader, events EventPublisher) *Service {
	return &Service{
		tasks:    tasks,
		statuses: statuses,
		tags:     tags,
		events:   events,
	}
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, userID string, req CreateTaskRequest) (*domain.Task, error) {
	t := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		StatusID:    req.StatusID,
		Deadline:    req.Deadline,
		UserID:      userID,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	s.publish(userID, "task.created", t)
	return t, nil
}

func (s *Service) Get(ctx context.Context, id, userID string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.UserID != userID {
		return nil, ErrAccessDenied
	}
	return t, nil
}

// Update applies a partial update and replaces the task's tag set. A status
// or tag that does not belong to the user is rejected before anything is
// written.
func (s *Service) Update(ctx context.Context, id, userID string, req UpdateTaskRequest) (*domain.Task, error) {
	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.StatusID != nil {
		if _, err := s.statuses.GetForUser(ctx, *req.StatusID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStatusNotFound
			}
			return nil, err
		}
		t.StatusID = req.StatusID
	}

	var tags []domain.Tag
	if len(req.TagIDs) > 0 {
		count, err := s.tags.CountForUser(ctx, req.TagIDs, userID)
		if err != nil {
			return nil, err
		}
		if count != int64(len(req.TagIDs)) {
			return nil, ErrTagsNotFound
		}
		tags = make([]domain.Tag, 0, len(req.TagIDs))
		for _, tagID := range req.TagIDs {
			tags = append(tags, domain.Tag{ID: tagID})
		}
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Deadline != nil {
		t.Deadline = req.Deadline
	}

	if err := s.tasks.Update(ctx, t, tags); err != nil {
		return nil, err
	}
	s.publish(userID, "task.updated", t)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, t.ID); err != nil {
		return err
	}
	s.publish(userID, "task.deleted", map[string]any{"id": t.ID})
	return nil
}

func (s *Service) publish(userID, eventType string, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(userID, map[string]any{"type": eventType, "payload": payload})
}
