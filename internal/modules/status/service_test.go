package status

import (
	"context"
	"testing"

	"taskboard/internal/database"
	"taskboard/internal/domain"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	svc      *Service
	statuses *repository.StatusRepository
	tasks    *repository.TaskRepository
	userID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Status{}, &domain.Tag{}, &domain.Task{}))

	f := &fixture{
		db:       db,
		statuses: repository.NewStatusRepository(db),
		tasks:    repository.NewTaskRepository(db),
		userID:   uuid.NewString(),
	}
	f.svc = NewService(f.statuses, f.tasks, nil)

	for _, ds := range domain.DefaultStatuses {
		require.NoError(t, f.statuses.Create(context.Background(), &domain.Status{
			Name:      ds.Name,
			Color:     ds.Color,
			IsDefault: true,
			UserID:    f.userID,
		}))
	}
	return f
}

func (f *fixture) statusByName(t *testing.T, name string) *domain.Status {
	t.Helper()
	st, err := f.statuses.GetByName(context.Background(), f.userID, name)
	require.NoError(t, err)
	return st
}

func strPtr(s string) *string { return &s }

func TestStatusService_CreateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.userID, "Blocked", "#FF4500")
	require.NoError(t, err)
	assert.False(t, created.IsDefault)

	all, err := f.svc.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, all, len(domain.DefaultStatuses)+1)
}

func TestStatusService_DefaultNameIsImmutable(t *testing.T) {
	f := newFixture(t)
	done := f.statusByName(t, "Done")

	_, err := f.svc.Update(context.Background(), done.ID, f.userID, strPtr("Finished"), nil)
	assert.ErrorIs(t, err, ErrDefaultImmutable)
}

func TestStatusService_DefaultColorIsEditable(t *testing.T) {
	f := newFixture(t)
	done := f.statusByName(t, "Done")

	updated, err := f.svc.Update(context.Background(), done.ID, f.userID, nil, strPtr("#000000"))
	require.NoError(t, err)
	assert.Equal(t, "#000000", updated.Color)
	assert.Equal(t, "Done", updated.Name)
}

func TestStatusService_RenameConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	blocked, err := f.svc.Create(ctx, f.userID, "Blocked", "")
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, blocked.ID, f.userID, strPtr("Done"), nil)
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestStatusService_DeleteDefaultRefused(t *testing.T) {
	f := newFixture(t)
	backlog := f.statusByName(t, "Backlog")

	_, err := f.svc.Delete(context.Background(), backlog.ID, f.userID)
	assert.ErrorIs(t, err, ErrDefaultDelete)
}

func TestStatusService_DeleteReassignsTasksToToDo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	blocked, err := f.svc.Create(ctx, f.userID, "Blocked", "")
	require.NoError(t, err)

	task := &domain.Task{Title: "Stuck task", StatusID: &blocked.ID, UserID: f.userID}
	require.NoError(t, f.tasks.Create(ctx, task))

	reassigned, err := f.svc.Delete(ctx, blocked.ID, f.userID)
	require.NoError(t, err)
	assert.True(t, reassigned)

	moved, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.Status)
	assert.Equal(t, domain.StatusToDo, moved.Status.Name)
}

func TestStatusService_DeleteEmptyStatusSkipsReassignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	blocked, err := f.svc.Create(ctx, f.userID, "Blocked", "")
	require.NoError(t, err)

	reassigned, err := f.svc.Delete(ctx, blocked.ID, f.userID)
	require.NoError(t, err)
	assert.False(t, reassigned)
}

func TestStatusService_DeleteFailsWithoutFallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Simulate a corrupted board with no "To Do" column.
	toDo := f.statusByName(t, domain.StatusToDo)
	require.NoError(t, f.db.Delete(&domain.Status{}, "id = ?", toDo.ID).Error)

	blocked, err := f.svc.Create(ctx, f.userID, "Blocked", "")
	require.NoError(t, err)
	require.NoError(t, f.tasks.Create(ctx, &domain.Task{Title: "Stuck", StatusID: &blocked.ID, UserID: f.userID}))

	_, err = f.svc.Delete(ctx, blocked.ID, f.userID)
	assert.ErrorIs(t, err, ErrNoFallbackStatus)
}

func TestStatusService_ForeignStatusDenied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	otherUser := uuid.NewString()
	foreign := &domain.Status{Name: "Private", UserID: otherUser}
	require.NoError(t, f.statuses.Create(ctx, foreign))

	_, err := f.svc.Update(ctx, foreign.ID, f.userID, strPtr("Hijacked"), nil)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.Delete(ctx, foreign.ID, f.userID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestStatusService_UnknownStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), uuid.NewString(), f.userID, strPtr("X"), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
