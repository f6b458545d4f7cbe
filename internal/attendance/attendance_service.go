package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	attendanceerrors "github.com/shreyansh404/attendanceManagment/internal/attendance/errors"
	"github.com/shreyansh404/attendanceManagment/internal/events"
	"github.com/shreyansh404/attendanceManagment/internal/guard"
	"github.com/shreyansh404/attendanceManagment/internal/messaging/kafka"
	"github.com/shreyansh404/attendanceManagment/internal/shared/contextutil"
	"github.com/shreyansh404/attendanceManagment/internal/shift"
	"github.com/shreyansh404/attendanceManagment/internal/storage"
)

const gracePeriod = time.Hour

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, actorEmail string, req CheckInRequest) (AttendanceResponse, error)
	ListMine(ctx context.Context, actorEmail string) ([]AttendanceResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	shifts shift.Repository
	guard  *guard.Guard
	media  storage.MediaSink
	outbox kafka.OutboxRepository
	logger *zap.Logger
	nowFn  func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	shifts shift.Repository,
	g *guard.Guard,
	media storage.MediaSink,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		shifts: shifts,
		guard:  g,
		media:  media,
		outbox: outbox,
		logger: l,
		nowFn:  time.Now,
	}
}

// CheckIn records a Present row for the actor's current day. The photo is
// uploaded before the row is written, so a failed insert leaves at most an
// orphaned blob, never a record without its photo.
func (s *service) CheckIn(ctx context.Context, actorEmail string, req CheckInRequest) (AttendanceResponse, error) {
	actor, err := s.guard.CurrentActor(ctx, actorEmail)
	if err != nil {
		return AttendanceResponse{}, err
	}

	assigned, err := s.shifts.FindByStaff(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoShift
		}
		return AttendanceResponse{}, err
	}

	now := s.nowFn()

	ok, err := withinWindow(assigned, now)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !ok {
		return AttendanceResponse{}, attendanceerrors.ErrOutsideWindow
	}

	date := now.Format("2006-01-02")

	if _, err := s.repo.FindPresentByStaffAndDate(ctx, actor.ID, date); err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyMarked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	if req.Image == nil {
		return AttendanceResponse{}, attendanceerrors.ErrMissingImage
	}

	imageURL, err := s.media.Upload(ctx, storage.ObjectKey(now, req.Filename), req.Image, req.ContentType)
	if err != nil {
		return AttendanceResponse{}, err
	}

	record := &Attendance{
		StaffID:        actor.ID,
		AttendanceDate: date,
		Status:         StatusPresent,
		TimeIn:         now.Format("15:04:05"),
		ImageURL:       imageURL,
		CreatedAt:      now,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, record); err != nil {
			return err
		}
		return s.enqueueCheckInEvent(ctx, tx, record)
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			// lost the race against a concurrent check-in
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyMarked
		}
		return AttendanceResponse{}, txErr
	}

	contextutil.GetLogger(ctx, s.logger).Info("attendance recorded",
		zap.String("staff_id", actor.ID.String()),
		zap.String("date", date),
		zap.String("time_in", record.TimeIn),
	)

	return ToResponse(record), nil
}

func (s *service) ListMine(ctx context.Context, actorEmail string) ([]AttendanceResponse, error) {
	actor, err := s.guard.CurrentActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByStaff(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(rows))
	for i := range rows {
		resp[i] = ToResponse(&rows[i])
	}
	return resp, nil
}

// withinWindow gates the check-in to [start-1h, end+1h] inclusive. A shift
// whose end time-of-day precedes its start spans midnight, so the window
// anchored on the previous calendar day is tried as well; a 02:30 check-in
// still belongs to yesterday's evening shift.
func withinWindow(assigned *shift.Shift, now time.Time) (bool, error) {
	startH, startM, err := parseClock(assigned.StartTime)
	if err != nil {
		return false, err
	}
	endH, endM, err := parseClock(assigned.EndTime)
	if err != nil {
		return false, err
	}

	duration := time.Duration(endH-startH)*time.Hour + time.Duration(endM-startM)*time.Minute
	if duration <= 0 {
		duration += 24 * time.Hour
	}

	anchors := []time.Time{now}
	if assigned.Overnight() {
		anchors = append(anchors, now.AddDate(0, 0, -1))
	}

	for _, anchor := range anchors {
		startAt := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), startH, startM, 0, 0, now.Location())
		endAt := startAt.Add(duration)

		lo := startAt.Add(-gracePeriod)
		hi := endAt.Add(gracePeriod)
		if !now.Before(lo) && !now.After(hi) {
			return true, nil
		}
	}

	return false, nil
}

func parseClock(v string) (int, int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed shift time %q: %w", v, err)
	}
	return t.Hour(), t.Minute(), nil
}

func (s *service) enqueueCheckInEvent(ctx context.Context, tx *gorm.DB, record *Attendance) error {
	payload, err := json.Marshal(events.CheckInRecordedEvent{
		EventType:    "attendance.checkin.recorded",
		AttendanceID: record.ID.String(),
		StaffID:      record.StaffID.String(),
		Date:         record.AttendanceDate,
		TimeIn:       record.TimeIn,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance",
		AggregateID:   record.StaffID.String(),
		EventType:     "attendance.checkin.recorded",
		Topic:         events.CheckInRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
