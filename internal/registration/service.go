package registration

import (
	"context"
	"errors"
	"time"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/class"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/logger"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/member"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/metrics"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"
)

var (
	ErrDuplicateRegistration = errors.New("member already has an active registration for this class")
	ErrClassFull             = errors.New("class is at capacity")
)

// ClassLookup is the slice of the class service this package needs.
type ClassLookup interface {
	GetByID(ctx context.Context, id int) (*class.GroupClass, error)
}

// MemberDirectory answers member existence and profile lookups.
type MemberDirectory interface {
	MemberExists(ctx context.Context, id int) (bool, error)
}

// Notifier sends confirmation mails; failures are logged, never surfaced.
type Notifier interface {
	SendRegistrationConfirmation(ctx context.Context, to, name, className string, startTime time.Time) error
	SendCancellationConfirmation(ctx context.Context, to, name, className string, startTime time.Time) error
}

type Service interface {
	Register(ctx context.Context, memberID, classID int) (*Registration, error)
	Cancel(ctx context.Context, memberID, classID int) error
	GetByClass(ctx context.Context, classID int) ([]RegistrationWithMember, error)
}

type service struct {
	repo      Repository
	classes   ClassLookup
	directory MemberDirectory
	members   member.Repository
	ledger    *Ledger
	locks     *schedule.KeyedMutex
	notifier  Notifier
}

func NewService(repo Repository, classes ClassLookup, directory MemberDirectory, members member.Repository, ledger *Ledger, locks *schedule.KeyedMutex, notifier Notifier) Service {
	return &service{
		repo:      repo,
		classes:   classes,
		directory: directory,
		members:   members,
		ledger:    ledger,
		locks:     locks,
		notifier:  notifier,
	}
}

func (s *service) Register(ctx context.Context, memberID, classID int) (*Registration, error) {
	cls, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	ok, err := s.directory.MemberExists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, member.ErrMemberNotFound
	}

	// Duplicate check, reservation and persistence form one atomic unit
	// per class-key; without this, two requests from the same member could
	// both pass the duplicate check before either commits.
	unlock := s.locks.Lock(schedule.ClassKey(classID))
	defer unlock()

	if !s.ledger.Has(classID) {
		active, err := s.repo.CountActive(ctx, classID)
		if err != nil {
			return nil, err
		}
		s.ledger.Seed(classID, cls.Capacity, active)
	}

	dup, err := s.repo.HasActive(ctx, memberID, classID)
	if err != nil {
		return nil, err
	}
	if dup {
		metrics.RecordRegistration("duplicate")
		return nil, ErrDuplicateRegistration
	}

	if !s.ledger.TryReserve(classID) {
		metrics.RecordRegistration("class_full")
		return nil, ErrClassFull
	}

	reg, err := s.repo.Create(ctx, memberID, classID)
	if err != nil {
		// The seat was reserved but the row never landed; roll the
		// reservation back so no partial state survives.
		s.ledger.Release(classID)
		metrics.RecordRegistration("error")
		return nil, err
	}

	metrics.RecordRegistration("registered")
	s.sendConfirmation(ctx, memberID, cls, false)

	return reg, nil
}

func (s *service) Cancel(ctx context.Context, memberID, classID int) error {
	cls, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(schedule.ClassKey(classID))
	defer unlock()

	if err := s.repo.Cancel(ctx, memberID, classID); err != nil {
		return err
	}

	s.ledger.Release(classID)
	metrics.RecordCancellation()
	s.sendConfirmation(ctx, memberID, cls, true)

	return nil
}

func (s *service) GetByClass(ctx context.Context, classID int) ([]RegistrationWithMember, error) {
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return nil, err
	}
	return s.repo.GetByClass(ctx, classID)
}

func (s *service) sendConfirmation(ctx context.Context, memberID int, cls *class.GroupClass, cancelled bool) {
	if s.notifier == nil {
		return
	}

	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		logger.Errorf("Failed to load member %d for confirmation mail: %v", memberID, err)
		return
	}

	if cancelled {
		err = s.notifier.SendCancellationConfirmation(ctx, m.Email, m.Name, cls.Name, cls.StartTime)
	} else {
		err = s.notifier.SendRegistrationConfirmation(ctx, m.Email, m.Name, cls.Name, cls.StartTime)
	}
	if err != nil {
		logger.Errorf("Failed to queue confirmation mail to %s: %v", m.Email, err)
	}
}
