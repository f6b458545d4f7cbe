package shift

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shreyansh404/attendanceManagment/internal/events"
	"github.com/shreyansh404/attendanceManagment/internal/guard"
	"github.com/shreyansh404/attendanceManagment/internal/messaging/kafka"
	"github.com/shreyansh404/attendanceManagment/internal/shared/contextutil"
	shifterrors "github.com/shreyansh404/attendanceManagment/internal/shift/errors"
	"github.com/shreyansh404/attendanceManagment/internal/user"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, actorEmail string, req AssignShiftRequest) (AssignShiftResponse, error)
	GetCurrent(ctx context.Context, actorEmail string) (ShiftResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	users  user.Repository
	guard  *guard.Guard
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	users user.Repository,
	g *guard.Guard,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		users:  users,
		guard:  g,
		outbox: outbox,
		logger: l,
	}
}

// Assign gives a staff member their shift, creating or replacing the single
// row per staff member. Re-assigning the identical window is a conflict, not
// a silent no-op, so the caller learns nothing changed.
func (s *service) Assign(ctx context.Context, actorEmail string, req AssignShiftRequest) (AssignShiftResponse, error) {
	actor, err := s.guard.CurrentActor(ctx, actorEmail)
	if err != nil {
		return AssignShiftResponse{}, err
	}
	if err := s.guard.RequireManager(actor); err != nil {
		return AssignShiftResponse{}, err
	}

	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return AssignShiftResponse{}, shifterrors.ErrInvalidStaffID
	}

	staffMember, err := s.users.FindStaffByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignShiftResponse{}, shifterrors.ErrStaffNotFound
		}
		return AssignShiftResponse{}, err
	}

	if err := s.guard.RequireOwnership(actor, staffMember); err != nil {
		return AssignShiftResponse{}, err
	}

	window, err := ValidateWindow(req.ShiftName, req.StartTime, req.EndTime)
	if err != nil {
		return AssignShiftResponse{}, err
	}

	existing, err := s.repo.FindByStaff(ctx, staffID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AssignShiftResponse{}, err
	}

	if existing != nil && sameWindow(existing, window) {
		return AssignShiftResponse{}, shifterrors.ErrShiftAlreadyAssigned
	}

	var (
		assigned *Shift
		outcome  AssignOutcome
	)

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if existing != nil {
			existing.ShiftName = window.Name
			existing.StartTime = window.Start
			existing.EndTime = window.End
			existing.UpdatedAt = time.Now()
			if err := repo.Update(ctx, existing); err != nil {
				return err
			}
			assigned = existing
			outcome = OutcomeUpdated
		} else {
			created := &Shift{
				StaffID:   staffID,
				ManagerID: actor.ID,
				ShiftName: window.Name,
				StartTime: window.Start,
				EndTime:   window.End,
			}
			if err := repo.Create(ctx, created); err != nil {
				return err
			}
			assigned = created
			outcome = OutcomeCreated
		}

		return s.enqueueAssignedEvent(ctx, tx, actor, assigned, outcome)
	})
	if txErr != nil {
		return AssignShiftResponse{}, txErr
	}

	contextutil.GetLogger(ctx, s.logger).Info("shift assigned",
		zap.String("staff_id", staffID.String()),
		zap.String("shift_name", window.Name),
		zap.String("outcome", string(outcome)),
	)

	return AssignShiftResponse{Outcome: outcome, Shift: ToResponse(assigned)}, nil
}

// GetCurrent returns the calling user's own shift.
func (s *service) GetCurrent(ctx context.Context, actorEmail string) (ShiftResponse, error) {
	actor, err := s.guard.CurrentActor(ctx, actorEmail)
	if err != nil {
		return ShiftResponse{}, err
	}

	current, err := s.repo.FindByStaff(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrNoShiftAssigned
		}
		return ShiftResponse{}, err
	}

	return ToResponse(current), nil
}

func (s *service) enqueueAssignedEvent(ctx context.Context, tx *gorm.DB, actor *user.User, assigned *Shift, outcome AssignOutcome) error {
	payload, err := json.Marshal(events.ShiftAssignedEvent{
		EventType:  "shift.assigned",
		StaffID:    assigned.StaffID.String(),
		ManagerID:  actor.ID.String(),
		ShiftName:  assigned.ShiftName,
		Outcome:    string(outcome),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "shift",
		AggregateID:   assigned.StaffID.String(),
		EventType:     "shift.assigned",
		Topic:         events.ShiftAssignedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func sameWindow(existing *Shift, w Window) bool {
	return strings.EqualFold(existing.ShiftName, w.Name) &&
		existing.StartTime == w.Start &&
		existing.EndTime == w.End
}
