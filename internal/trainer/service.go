package trainer

import (
	"context"
	"errors"
	"time"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"
)

var ErrWindowOverlap = errors.New("availability window overlaps an existing window")

type Service interface {
	AddWindow(ctx context.Context, trainerID int, req AddWindowRequest) (*AvailabilityWindow, error)
	GetWindows(ctx context.Context, trainerID int) ([]AvailabilityWindow, error)
	// IsWithinAvailability reports whether some declared window fully
	// contains the candidate interval.
	IsWithinAvailability(ctx context.Context, trainerID int, candidate schedule.Interval) (bool, error)
}

type service struct {
	repo  Repository
	locks *schedule.KeyedMutex
}

func NewService(repo Repository, locks *schedule.KeyedMutex) Service {
	return &service{repo: repo, locks: locks}
}

func (s *service) AddWindow(ctx context.Context, trainerID int, req AddWindowRequest) (*AvailabilityWindow, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, schedule.ErrInvalidInterval
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, schedule.ErrInvalidInterval
	}

	candidate, err := schedule.NewInterval(start, end)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, trainerID); err != nil {
		return nil, err
	}

	// Overlap check and insert must not interleave with another window
	// creation for the same trainer.
	unlock := s.locks.Lock(schedule.TrainerKey(trainerID))
	defer unlock()

	windows, err := s.repo.GetWindows(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	for _, w := range windows {
		existing := schedule.Interval{Start: w.StartTime, End: w.EndTime}
		if existing.Overlaps(candidate) {
			return nil, ErrWindowOverlap
		}
	}

	return s.repo.AddWindow(ctx, trainerID, candidate.Start, candidate.End)
}

func (s *service) GetWindows(ctx context.Context, trainerID int) ([]AvailabilityWindow, error) {
	if _, err := s.repo.GetByID(ctx, trainerID); err != nil {
		return nil, err
	}
	return s.repo.GetWindows(ctx, trainerID)
}

func (s *service) IsWithinAvailability(ctx context.Context, trainerID int, candidate schedule.Interval) (bool, error) {
	windows, err := s.repo.GetWindows(ctx, trainerID)
	if err != nil {
		return false, err
	}

	for _, w := range windows {
		window := schedule.Interval{Start: w.StartTime, End: w.EndTime}
		if window.Contains(candidate) {
			return true, nil
		}
	}
	return false, nil
}
