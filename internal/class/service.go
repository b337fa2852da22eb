package class

import (
	"context"
	"errors"
	"time"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/metrics"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/room"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/trainer"
)

var (
	ErrInvalidCapacity       = errors.New("capacity must be a positive integer")
	ErrCapacityBelowEnrolled = errors.New("capacity cannot drop below the active registration count")
)

// ExistenceChecker is the identity lookup collaborator: the engine only needs
// "exists?" answers for the rooms and trainers a class references.
type ExistenceChecker interface {
	RoomExists(ctx context.Context, id int) (bool, error)
	TrainerExists(ctx context.Context, id int) (bool, error)
}

// CapacityRegistrar is the slice of the capacity ledger the scheduling
// service drives: installing an entry when a class is committed and reading
// the active count when capacity shrinks on update.
type CapacityRegistrar interface {
	Register(classID, capacity int)
	ActiveCount(classID int) int
}

type Service interface {
	Create(ctx context.Context, req CreateClassRequest) (*GroupClass, error)
	Update(ctx context.Context, id int, req CreateClassRequest) (*GroupClass, error)
	GetByID(ctx context.Context, id int) (*GroupClass, error)
	GetAll(ctx context.Context) ([]ClassWithAvailability, error)
}

type service struct {
	repo      Repository
	directory ExistenceChecker
	index     *schedule.Index
	locks     *schedule.KeyedMutex
	ledger    CapacityRegistrar
}

func NewService(repo Repository, directory ExistenceChecker, index *schedule.Index, locks *schedule.KeyedMutex, ledger CapacityRegistrar) Service {
	return &service{
		repo:      repo,
		directory: directory,
		index:     index,
		locks:     locks,
		ledger:    ledger,
	}
}

func (s *service) parseAndValidate(req CreateClassRequest) (schedule.Interval, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return schedule.Interval{}, schedule.ErrInvalidInterval
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return schedule.Interval{}, schedule.ErrInvalidInterval
	}

	interval, err := schedule.NewInterval(start, end)
	if err != nil {
		return schedule.Interval{}, err
	}

	if req.Capacity <= 0 {
		return schedule.Interval{}, ErrInvalidCapacity
	}

	return interval, nil
}

func (s *service) checkIdentities(ctx context.Context, roomID, trainerID int) error {
	ok, err := s.directory.RoomExists(ctx, roomID)
	if err != nil {
		return err
	}
	if !ok {
		return room.ErrRoomNotFound
	}

	ok, err = s.directory.TrainerExists(ctx, trainerID)
	if err != nil {
		return err
	}
	if !ok {
		return trainer.ErrTrainerNotFound
	}

	return nil
}

// findConflicts runs the room-key scan then the trainer-key scan; a class
// occupies both keys simultaneously. exclude skips the class's own prior
// commitment on update.
func (s *service) findConflicts(roomID, trainerID int, interval schedule.Interval, exclude *schedule.Commitment) error {
	if c := s.index.FindConflict(schedule.RoomKey(roomID), interval, exclude); c != nil {
		metrics.RecordConflict("room")
		return &schedule.ConflictError{Resource: schedule.KindRoom, With: *c}
	}
	if c := s.index.FindConflict(schedule.TrainerKey(trainerID), interval, exclude); c != nil {
		metrics.RecordConflict("trainer")
		return &schedule.ConflictError{Resource: schedule.KindTrainer, With: *c}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateClassRequest) (*GroupClass, error) {
	interval, err := s.parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	if err := s.checkIdentities(ctx, req.RoomID, req.TrainerID); err != nil {
		return nil, err
	}

	// Conflict check and commit form one atomic unit per room-key and
	// trainer-key; KeyedMutex acquires both in a fixed global order.
	unlock := s.locks.Lock(schedule.RoomKey(req.RoomID), schedule.TrainerKey(req.TrainerID))
	defer unlock()

	if err := s.findConflicts(req.RoomID, req.TrainerID, interval, nil); err != nil {
		return nil, err
	}

	gc, err := s.repo.Create(ctx, req.Name, req.TrainerID, req.RoomID, interval.Start, interval.End, req.Capacity)
	if err != nil {
		return nil, err
	}

	s.index.Add(
		schedule.Commitment{ID: gc.ID, Kind: schedule.CommitmentClass, Interval: interval},
		schedule.RoomKey(gc.RoomID), schedule.TrainerKey(gc.TrainerID),
	)
	s.ledger.Register(gc.ID, gc.Capacity)
	metrics.RecordClassCreated()

	return gc, nil
}

// Update treats the change as a re-validated creation that replaces the prior
// commitment: the class may move into its own former slot without
// self-conflict, but must pass every other check anew.
func (s *service) Update(ctx context.Context, id int, req CreateClassRequest) (*GroupClass, error) {
	interval, err := s.parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	// The class-key lock serializes updates to the same class, so the
	// prior room/trainer keys read here stay valid for the whole unit.
	// Class keys are always taken before room/trainer keys, keeping the
	// global lock order acyclic.
	unlockClass := s.locks.Lock(schedule.ClassKey(id))
	defer unlockClass()

	prior, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkIdentities(ctx, req.RoomID, req.TrainerID); err != nil {
		return nil, err
	}

	// Both the old and new room/trainer keys participate in the atomic
	// unit; duplicates collapse inside Lock.
	unlock := s.locks.Lock(
		schedule.RoomKey(prior.RoomID), schedule.TrainerKey(prior.TrainerID),
		schedule.RoomKey(req.RoomID), schedule.TrainerKey(req.TrainerID),
	)
	defer unlock()

	if s.ledger.ActiveCount(id) > req.Capacity {
		return nil, ErrCapacityBelowEnrolled
	}

	self := &schedule.Commitment{ID: id, Kind: schedule.CommitmentClass}
	if err := s.findConflicts(req.RoomID, req.TrainerID, interval, self); err != nil {
		return nil, err
	}

	gc, err := s.repo.Update(ctx, id, req.Name, req.TrainerID, req.RoomID, interval.Start, interval.End, req.Capacity)
	if err != nil {
		return nil, err
	}

	s.index.Remove(schedule.CommitmentClass, id,
		schedule.RoomKey(prior.RoomID), schedule.TrainerKey(prior.TrainerID))
	s.index.Add(
		schedule.Commitment{ID: gc.ID, Kind: schedule.CommitmentClass, Interval: interval},
		schedule.RoomKey(gc.RoomID), schedule.TrainerKey(gc.TrainerID),
	)
	s.ledger.Register(gc.ID, gc.Capacity)

	return gc, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*GroupClass, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]ClassWithAvailability, error) {
	return s.repo.GetAllWithAvailability(ctx)
}
