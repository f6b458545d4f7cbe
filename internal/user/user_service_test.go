package user

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
	usererrors "github.com/shreyansh404/attendanceManagment/internal/user/errors"
)

type fakeRepo struct {
	byEmail   map[string]*User
	byID      map[uuid.UUID]*User
	staff     []User
	listCalls int
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error { return nil }

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindStaffByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListStaffByManager(ctx context.Context, managerID string) ([]User, error) {
	f.listCalls++
	return f.staff, nil
}

func TestGetProfile(t *testing.T) {
	u := &User{ID: uuid.New(), Username: "jdoe", Email: "jane@example.com", Role: RoleStaff}
	repo := &fakeRepo{byID: map[uuid.UUID]*User{u.ID: u}}
	svc := NewService(repo, nil)

	resp, err := svc.GetProfile(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)

	_, err = svc.GetProfile(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)

	_, err = svc.GetProfile(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
}

func TestListStaffCacheMiss(t *testing.T) {
	managerID := uuid.New()
	manager := &User{ID: managerID, Email: "boss@example.com", Role: RoleManager}
	staff := []User{
		{ID: uuid.New(), Username: "jdoe", Email: "jane@example.com", Role: RoleStaff, ManagerID: &managerID},
	}
	repo := &fakeRepo{byEmail: map[string]*User{manager.Email: manager}, staff: staff}

	rdb, mock := redismock.NewClientMock()
	key := StaffCacheKey(managerID.String())

	expected := []UserResponse{ToResponse(&staff[0])}
	payload, err := json.Marshal(expected)
	require.NoError(t, err)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, payload, 5*time.Minute).SetVal("OK")

	svc := NewService(repo, rdb)

	resp, err := svc.ListStaff(context.Background(), manager.Email)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "jane@example.com", resp[0].Email)
	assert.Equal(t, 1, repo.listCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStaffCacheHit(t *testing.T) {
	managerID := uuid.New()
	manager := &User{ID: managerID, Email: "boss@example.com", Role: RoleManager}
	repo := &fakeRepo{byEmail: map[string]*User{manager.Email: manager}}

	cached := []UserResponse{{ID: uuid.New().String(), Email: "jane@example.com", Role: "staff"}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(StaffCacheKey(managerID.String())).SetVal(string(payload))

	svc := NewService(repo, rdb)

	resp, err := svc.ListStaff(context.Background(), manager.Email)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "jane@example.com", resp[0].Email)

	// the repository is never consulted on a hit
	assert.Equal(t, 0, repo.listCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStaffRejectsStaffActor(t *testing.T) {
	managerID := uuid.New()
	staff := &User{ID: uuid.New(), Email: "jane@example.com", Role: RoleStaff, ManagerID: &managerID}
	repo := &fakeRepo{byEmail: map[string]*User{staff.Email: staff}}

	svc := NewService(repo, nil)

	_, err := svc.ListStaff(context.Background(), staff.Email)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = svc.ListStaff(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestInvalidateStaffCache(t *testing.T) {
	managerID := uuid.New().String()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(StaffCacheKey(managerID)).SetVal(1)

	svc := NewService(&fakeRepo{}, rdb)
	svc.InvalidateStaffCache(context.Background(), managerID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidate(t *testing.T) {
	managerID := uuid.New()

	assert.NoError(t, (&User{Role: RoleStaff, ManagerID: &managerID}).Validate())
	assert.NoError(t, (&User{Role: RoleManager}).Validate())

	assert.ErrorIs(t, (&User{Role: RoleStaff}).Validate(), usererrors.ErrStaffWithoutManager)
	assert.ErrorIs(t, (&User{Role: RoleManager, ManagerID: &managerID}).Validate(), usererrors.ErrManagerWithManager)
	assert.ErrorIs(t, (&User{Role: "admin"}).Validate(), usererrors.ErrInvalidRole)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("staff")
	assert.NoError(t, err)
	assert.Equal(t, RoleStaff, r)

	r, err = ParseRole("manager")
	assert.NoError(t, err)
	assert.Equal(t, RoleManager, r)

	_, err = ParseRole("Staff")
	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
}
