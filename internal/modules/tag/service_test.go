package tag

import (
	"context"
	"testing"

	"taskboard/internal/database"
	"taskboard/internal/domain"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc    *Service
	tags   *repository.TagRepository
	tasks  *repository.TaskRepository
	userID string
	bug    domain.Tag
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Status{}, &domain.Tag{}, &domain.Task{}))

	f := &fixture{
		tags:   repository.NewTagRepository(db),
		tasks:  repository.NewTaskRepository(db),
		userID: uuid.NewString(),
	}
	f.svc = NewService(f.tags, nil)

	f.bug = domain.Tag{Name: "Bug", Color: "#FF0000", IsDefault: true, UserID: f.userID}
	require.NoError(t, f.tags.Create(context.Background(), &f.bug))
	return f
}

func strPtr(s string) *string { return &s }

func TestTagService_CreateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.userID, "Backend", "#123456")
	require.NoError(t, err)
	assert.False(t, created.IsDefault)

	all, err := f.svc.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTagService_DefaultNameIsImmutable(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), f.bug.ID, f.userID, strPtr("Defect"), nil)
	assert.ErrorIs(t, err, ErrDefaultImmutable)
}

func TestTagService_DefaultColorIsEditable(t *testing.T) {
	f := newFixture(t)

	updated, err := f.svc.Update(context.Background(), f.bug.ID, f.userID, nil, strPtr("#AA0000"))
	require.NoError(t, err)
	assert.Equal(t, "#AA0000", updated.Color)
	assert.Equal(t, "Bug", updated.Name)
}

func TestTagService_RenameConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	backend, err := f.svc.Create(ctx, f.userID, "Backend", "")
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, backend.ID, f.userID, strPtr("Bug"), nil)
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestTagService_DeleteDefaultRefused(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Delete(context.Background(), f.bug.ID, f.userID)
	assert.ErrorIs(t, err, ErrDefaultDelete)
}

func TestTagService_DeleteUnlinksFromTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	backend, err := f.svc.Create(ctx, f.userID, "Backend", "")
	require.NoError(t, err)

	task := &domain.Task{Title: "Tagged task", UserID: f.userID}
	require.NoError(t, f.tasks.Create(ctx, task))
	require.NoError(t, f.tasks.Update(ctx, task, []domain.Tag{{ID: backend.ID}}))

	require.NoError(t, f.svc.Delete(ctx, backend.ID, f.userID))

	reloaded, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Tags)
}

func TestTagService_ForeignTagInvisible(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foreign := domain.Tag{Name: "Private", UserID: uuid.NewString()}
	require.NoError(t, f.tags.Create(ctx, &foreign))

	_, err := f.svc.Update(ctx, foreign.ID, f.userID, strPtr("Hijacked"), nil)
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.svc.Delete(ctx, foreign.ID, f.userID)
	assert.ErrorIs(t, err, ErrNotFound)
}
