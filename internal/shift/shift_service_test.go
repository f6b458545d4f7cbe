package shift

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shreyansh404/attendanceManagment/internal/guard"
	"github.com/shreyansh404/attendanceManagment/internal/messaging/kafka"
	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
	shifterrors "github.com/shreyansh404/attendanceManagment/internal/shift/errors"
	"github.com/shreyansh404/attendanceManagment/internal/user"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	staff   map[uuid.UUID]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindStaffByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := f.staff[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListStaffByManager(ctx context.Context, managerID string) ([]user.User, error) {
	return nil, nil
}

type fakeShiftRepo struct {
	byStaff map[uuid.UUID]*Shift
	created []*Shift
	updated []*Shift
}

func (f *fakeShiftRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeShiftRepo) FindByStaff(ctx context.Context, staffID uuid.UUID) (*Shift, error) {
	if s, ok := f.byStaff[staffID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShiftRepo) Create(ctx context.Context, s *Shift) error {
	s.ID = uuid.New()
	f.byStaff[s.StaffID] = s
	f.created = append(f.created, s)
	return nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s *Shift) error {
	f.byStaff[s.StaffID] = s
	f.updated = append(f.updated, s)
	return nil
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error             { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, r string) error { return nil }

type shiftFixture struct {
	svc     Service
	repo    *fakeShiftRepo
	outbox  *fakeOutbox
	mock    sqlmock.Sqlmock
	manager *user.User
	staff   *user.User
}

func newFixture(t *testing.T) *shiftFixture {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	managerID := uuid.New()
	manager := &user.User{ID: managerID, Email: "boss@example.com", Role: user.RoleManager}
	staff := &user.User{ID: uuid.New(), Email: "jane@example.com", Role: user.RoleStaff, ManagerID: &managerID}

	users := &fakeUserRepo{
		byEmail: map[string]*user.User{manager.Email: manager, staff.Email: staff},
		staff:   map[uuid.UUID]*user.User{staff.ID: staff},
	}
	repo := &fakeShiftRepo{byStaff: map[uuid.UUID]*Shift{}}
	outbox := &fakeOutbox{}

	return &shiftFixture{
		svc:     NewService(gdb, repo, users, guard.New(users), outbox),
		repo:    repo,
		outbox:  outbox,
		mock:    mock,
		manager: manager,
		staff:   staff,
	}
}

func assignRequest(staffID uuid.UUID) AssignShiftRequest {
	return AssignShiftRequest{
		StaffID:   staffID.String(),
		ShiftName: "morning",
		StartTime: "08:00",
		EndTime:   "16:00",
	}
}

func TestAssignCreates(t *testing.T) {
	fx := newFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	resp, err := fx.svc.Assign(context.Background(), fx.manager.Email, assignRequest(fx.staff.ID))
	require.NoError(t, err)

	assert.Equal(t, OutcomeCreated, resp.Outcome)
	assert.Equal(t, "morning", resp.Shift.ShiftName)
	assert.False(t, resp.Shift.Overnight)
	require.Len(t, fx.repo.created, 1)
	assert.Equal(t, fx.manager.ID, fx.repo.created[0].ManagerID)

	require.Len(t, fx.outbox.events, 1)
	assert.Equal(t, "shift.assigned", fx.outbox.events[0].EventType)
	assert.Equal(t, fx.staff.ID.String(), fx.outbox.events[0].AggregateID)

	assert.NoError(t, fx.mock.ExpectationsWereMet())
}

func TestAssignUpdatesExisting(t *testing.T) {
	fx := newFixture(t)
	fx.repo.byStaff[fx.staff.ID] = &Shift{
		ID:        uuid.New(),
		StaffID:   fx.staff.ID,
		ManagerID: fx.manager.ID,
		ShiftName: "morning",
		StartTime: "08:00",
		EndTime:   "16:00",
	}
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	req := AssignShiftRequest{
		StaffID:   fx.staff.ID.String(),
		ShiftName: "night",
		StartTime: "21:00",
		EndTime:   "06:00",
	}

	resp, err := fx.svc.Assign(context.Background(), fx.manager.Email, req)
	require.NoError(t, err)

	assert.Equal(t, OutcomeUpdated, resp.Outcome)
	assert.Equal(t, "night", resp.Shift.ShiftName)
	assert.True(t, resp.Shift.Overnight)
	require.Len(t, fx.repo.updated, 1)
	assert.False(t, fx.repo.updated[0].UpdatedAt.IsZero())
}

func TestAssignIdenticalWindowConflicts(t *testing.T) {
	fx := newFixture(t)
	fx.repo.byStaff[fx.staff.ID] = &Shift{
		ID:        uuid.New(),
		StaffID:   fx.staff.ID,
		ShiftName: "Morning",
		StartTime: "08:00",
		EndTime:   "16:00",
	}

	_, err := fx.svc.Assign(context.Background(), fx.manager.Email, assignRequest(fx.staff.ID))
	assert.ErrorIs(t, err, shifterrors.ErrShiftAlreadyAssigned)
	assert.Empty(t, fx.outbox.events)
}

func TestAssignRejectsUnknownWindow(t *testing.T) {
	fx := newFixture(t)

	req := assignRequest(fx.staff.ID)
	req.StartTime = "09:00"

	_, err := fx.svc.Assign(context.Background(), fx.manager.Email, req)
	assert.ErrorIs(t, err, shifterrors.ErrInvalidShift)
}

func TestAssignRejectsForeignStaff(t *testing.T) {
	fx := newFixture(t)

	otherManagerID := uuid.New()
	fx.staff.ManagerID = &otherManagerID

	_, err := fx.svc.Assign(context.Background(), fx.manager.Email, assignRequest(fx.staff.ID))
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestAssignRejectsStaffActor(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Assign(context.Background(), fx.staff.Email, assignRequest(fx.staff.ID))
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestAssignUnknownStaff(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Assign(context.Background(), fx.manager.Email, assignRequest(uuid.New()))
	assert.ErrorIs(t, err, shifterrors.ErrStaffNotFound)
}

func TestGetCurrent(t *testing.T) {
	fx := newFixture(t)
	fx.repo.byStaff[fx.staff.ID] = &Shift{
		ID:        uuid.New(),
		StaffID:   fx.staff.ID,
		ShiftName: "evening",
		StartTime: "16:00",
		EndTime:   "03:00",
	}

	resp, err := fx.svc.GetCurrent(context.Background(), fx.staff.Email)
	require.NoError(t, err)
	assert.Equal(t, "evening", resp.ShiftName)
	assert.True(t, resp.Overnight)
}

func TestGetCurrentWithoutShift(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.GetCurrent(context.Background(), fx.staff.Email)
	assert.ErrorIs(t, err, shifterrors.ErrNoShiftAssigned)
}
