package guard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
	"github.com/shreyansh404/attendanceManagment/internal/user"
)

type fakeUserRepo struct {
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindStaffByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) ListStaffByManager(ctx context.Context, managerID string) ([]user.User, error) {
	return nil, nil
}

func TestCurrentActor(t *testing.T) {
	known := &user.User{ID: uuid.New(), Email: "m@example.com", Role: user.RoleManager}
	g := New(&fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == known.Email {
				return known, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	})

	actor, err := g.CurrentActor(context.Background(), "m@example.com")
	assert.NoError(t, err)
	assert.Equal(t, known.ID, actor.ID)

	_, err = g.CurrentActor(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = g.CurrentActor(context.Background(), "")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestRequireManager(t *testing.T) {
	g := New(&fakeUserRepo{})

	assert.NoError(t, g.RequireManager(&user.User{Role: user.RoleManager}))
	assert.ErrorIs(t, g.RequireManager(&user.User{Role: user.RoleStaff}), apperror.ErrForbidden)
	assert.ErrorIs(t, g.RequireManager(nil), apperror.ErrForbidden)
}

func TestRequireOwnership(t *testing.T) {
	g := New(&fakeUserRepo{})

	managerID := uuid.New()
	otherID := uuid.New()
	manager := &user.User{ID: managerID, Role: user.RoleManager}
	owned := &user.User{ID: uuid.New(), Role: user.RoleStaff, ManagerID: &managerID}
	foreign := &user.User{ID: uuid.New(), Role: user.RoleStaff, ManagerID: &otherID}
	orphan := &user.User{ID: uuid.New(), Role: user.RoleStaff}

	assert.NoError(t, g.RequireOwnership(manager, owned))
	assert.ErrorIs(t, g.RequireOwnership(manager, foreign), apperror.ErrForbidden)
	assert.ErrorIs(t, g.RequireOwnership(manager, orphan), apperror.ErrForbidden)
}
