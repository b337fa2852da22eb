package session

import (
	"context"
	"errors"
	"time"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/logger"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/member"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/metrics"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/trainer"
)

var ErrOutsideAvailability = errors.New("session is outside the trainer's declared availability")

// IdentityChecker answers trainer and member existence.
type IdentityChecker interface {
	TrainerExists(ctx context.Context, id int) (bool, error)
	MemberExists(ctx context.Context, id int) (bool, error)
}

// AvailabilityChecker reports whether an interval lies fully within one of a
// trainer's declared windows.
type AvailabilityChecker interface {
	IsWithinAvailability(ctx context.Context, trainerID int, candidate schedule.Interval) (bool, error)
}

// Notifier sends the booking confirmation mail; failures are logged only.
type Notifier interface {
	SendSessionConfirmation(ctx context.Context, to, name, trainerName string, startTime time.Time) error
}

type Service interface {
	Book(ctx context.Context, req BookSessionRequest) (*PTSession, error)
	GetByTrainer(ctx context.Context, trainerID int) ([]PTSession, error)
}

type service struct {
	repo         Repository
	directory    IdentityChecker
	availability AvailabilityChecker
	trainers     trainer.Repository
	members      member.Repository
	index        *schedule.Index
	locks        *schedule.KeyedMutex
	notifier     Notifier
}

func NewService(
	repo Repository,
	directory IdentityChecker,
	availability AvailabilityChecker,
	trainers trainer.Repository,
	members member.Repository,
	index *schedule.Index,
	locks *schedule.KeyedMutex,
	notifier Notifier,
) Service {
	return &service{
		repo:         repo,
		directory:    directory,
		availability: availability,
		trainers:     trainers,
		members:      members,
		index:        index,
		locks:        locks,
		notifier:     notifier,
	}
}

func (s *service) Book(ctx context.Context, req BookSessionRequest) (*PTSession, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, schedule.ErrInvalidInterval
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, schedule.ErrInvalidInterval
	}

	interval, err := schedule.NewInterval(start, end)
	if err != nil {
		return nil, err
	}

	ok, err := s.directory.TrainerExists(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, trainer.ErrTrainerNotFound
	}

	ok, err = s.directory.MemberExists(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, member.ErrMemberNotFound
	}

	within, err := s.availability.IsWithinAvailability(ctx, req.TrainerID, interval)
	if err != nil {
		return nil, err
	}
	if !within {
		return nil, ErrOutsideAvailability
	}

	// Conflict check and commit are atomic per trainer-key; a group class
	// and a PT session contend for the same key.
	unlock := s.locks.Lock(schedule.TrainerKey(req.TrainerID))
	defer unlock()

	if c := s.index.FindConflict(schedule.TrainerKey(req.TrainerID), interval, nil); c != nil {
		metrics.RecordConflict("trainer")
		return nil, &schedule.ConflictError{Resource: schedule.KindTrainer, With: *c}
	}

	pt, err := s.repo.Create(ctx, req.TrainerID, req.MemberID, interval.Start, interval.End)
	if err != nil {
		return nil, err
	}

	s.index.Add(
		schedule.Commitment{ID: pt.ID, Kind: schedule.CommitmentPTSession, Interval: interval},
		schedule.TrainerKey(pt.TrainerID),
	)
	metrics.RecordSessionBooked()
	s.sendConfirmation(ctx, pt)

	return pt, nil
}

func (s *service) GetByTrainer(ctx context.Context, trainerID int) ([]PTSession, error) {
	ok, err := s.directory.TrainerExists(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, trainer.ErrTrainerNotFound
	}
	return s.repo.GetByTrainer(ctx, trainerID)
}

func (s *service) sendConfirmation(ctx context.Context, pt *PTSession) {
	if s.notifier == nil {
		return
	}

	m, err := s.members.GetByID(ctx, pt.MemberID)
	if err != nil {
		logger.Errorf("Failed to load member %d for session confirmation: %v", pt.MemberID, err)
		return
	}
	tr, err := s.trainers.GetByID(ctx, pt.TrainerID)
	if err != nil {
		logger.Errorf("Failed to load trainer %d for session confirmation: %v", pt.TrainerID, err)
		return
	}

	if err := s.notifier.SendSessionConfirmation(ctx, m.Email, m.Name, tr.Name, pt.StartTime); err != nil {
		logger.Errorf("Failed to queue session confirmation to %s: %v", m.Email, err)
	}
}
