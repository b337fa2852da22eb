package class

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/room"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/schedule"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/trainer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory stand-in for the sqlx repository so service tests
// can exercise the full check-then-commit pipeline.
type fakeRepo struct {
	mu      sync.Mutex
	nextID  int
	classes map[int]*GroupClass
	failing bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, classes: make(map[int]*GroupClass)}
}

func (f *fakeRepo) Create(ctx context.Context, name string, trainerID, roomID int, start, end time.Time, capacity int) (*GroupClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, assert.AnError
	}
	gc := &GroupClass{
		ID: f.nextID, Name: name, TrainerID: trainerID, RoomID: roomID,
		StartTime: start, EndTime: end, Capacity: capacity, CreatedAt: time.Now(),
	}
	f.nextID++
	f.classes[gc.ID] = gc
	return gc, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int, name string, trainerID, roomID int, start, end time.Time, capacity int) (*GroupClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gc, ok := f.classes[id]
	if !ok {
		return nil, ErrClassNotFound
	}
	gc.Name, gc.TrainerID, gc.RoomID = name, trainerID, roomID
	gc.StartTime, gc.EndTime, gc.Capacity = start, end, capacity
	return gc, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*GroupClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gc, ok := f.classes[id]
	if !ok {
		return nil, ErrClassNotFound
	}
	copied := *gc
	return &copied, nil
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]GroupClass, error) { return nil, nil }

func (f *fakeRepo) GetAllWithAvailability(ctx context.Context) ([]ClassWithAvailability, error) {
	return nil, nil
}

type fakeDirectory struct {
	rooms    map[int]bool
	trainers map[int]bool
}

func (d *fakeDirectory) RoomExists(ctx context.Context, id int) (bool, error) {
	return d.rooms[id], nil
}

func (d *fakeDirectory) TrainerExists(ctx context.Context, id int) (bool, error) {
	return d.trainers[id], nil
}

type fakeLedger struct {
	mu       sync.Mutex
	capacity map[int]int
	active   map[int]int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{capacity: make(map[int]int), active: make(map[int]int)}
}

func (l *fakeLedger) Register(classID, capacity int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.capacity[classID] = capacity
}

func (l *fakeLedger) ActiveCount(classID int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active[classID]
}

type fixture struct {
	svc    Service
	repo   *fakeRepo
	ledger *fakeLedger
	index  *schedule.Index
}

func newFixture() *fixture {
	repo := newFakeRepo()
	ledger := newFakeLedger()
	index := schedule.NewIndex()
	dir := &fakeDirectory{
		rooms:    map[int]bool{1: true, 2: true},
		trainers: map[int]bool{1: true, 2: true},
	}
	svc := NewService(repo, dir, index, schedule.NewKeyedMutex(), ledger)
	return &fixture{svc: svc, repo: repo, ledger: ledger, index: index}
}

func classReq(name string, trainerID, roomID, startHour, endHour, capacity int) CreateClassRequest {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return CreateClassRequest{
		Name:      name,
		TrainerID: trainerID,
		RoomID:    roomID,
		StartTime: day.Add(time.Duration(startHour) * time.Hour).Format(time.RFC3339),
		EndTime:   day.Add(time.Duration(endHour) * time.Hour).Format(time.RFC3339),
		Capacity:  capacity,
	}
}

func TestCreateClassScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// ClassA: room 1, trainer 1, 09:00-10:00.
	a, err := f.svc.Create(ctx, classReq("ClassA", 1, 1, 9, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, 10, f.ledger.capacity[a.ID])

	// ClassB: room 1, trainer 2, 09:30-10:30 — room conflict.
	dayHalf := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	_, err = f.svc.Create(ctx, CreateClassRequest{
		Name: "ClassB", TrainerID: 2, RoomID: 1,
		StartTime: dayHalf.Format(time.RFC3339),
		EndTime:   dayHalf.Add(time.Hour).Format(time.RFC3339),
		Capacity:  10,
	})
	var conflict *schedule.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, schedule.KindRoom, conflict.Resource)
	assert.Equal(t, a.ID, conflict.With.ID)

	// ClassC: room 1, trainer 1, 10:00-11:00 — back-to-back, allowed.
	_, err = f.svc.Create(ctx, classReq("ClassC", 1, 1, 10, 11, 10))
	assert.NoError(t, err)
}

func TestCreateClassTrainerConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, classReq("Spin", 1, 1, 9, 10, 10))
	require.NoError(t, err)

	// Same trainer, different room, overlapping time.
	_, err = f.svc.Create(ctx, classReq("Yoga", 1, 2, 9, 11, 10))
	var conflict *schedule.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, schedule.KindTrainer, conflict.Resource)
}

func TestCreateClassValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, classReq("Bad", 1, 1, 10, 9, 10))
	assert.ErrorIs(t, err, schedule.ErrInvalidInterval)

	_, err = f.svc.Create(ctx, classReq("Bad", 1, 1, 9, 10, 0))
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = f.svc.Create(ctx, classReq("Bad", 1, 9, 9, 10, 10))
	assert.ErrorIs(t, err, room.ErrRoomNotFound)

	_, err = f.svc.Create(ctx, classReq("Bad", 9, 1, 9, 10, 10))
	assert.ErrorIs(t, err, trainer.ErrTrainerNotFound)
}

func TestCreateClassPersistenceFailureLeavesNoCommitment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.failing = true
	_, err := f.svc.Create(ctx, classReq("Spin", 1, 1, 9, 10, 10))
	require.Error(t, err)

	f.repo.failing = false
	_, err = f.svc.Create(ctx, classReq("Spin", 1, 1, 9, 10, 10))
	assert.NoError(t, err, "failed create must not leave a phantom commitment")
}

func TestUpdateIntoOwnSlot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	gc, err := f.svc.Create(ctx, classReq("Spin", 1, 1, 9, 10, 10))
	require.NoError(t, err)

	// Unchanged slot must not self-conflict.
	updated, err := f.svc.Update(ctx, gc.ID, classReq("Spin v2", 1, 1, 9, 10, 12))
	require.NoError(t, err)
	assert.Equal(t, "Spin v2", updated.Name)
	assert.Equal(t, 12, f.ledger.capacity[gc.ID])
}

func TestUpdateMovesCommitmentKeys(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	gc, err := f.svc.Create(ctx, classReq("Spin", 1, 1, 9, 10, 10))
	require.NoError(t, err)

	// Move to room 2; room 1's 09:00-10:00 slot frees up.
	_, err = f.svc.Update(ctx, gc.ID, classReq("Spin", 1, 2, 9, 10, 10))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, classReq("Pilates", 2, 1, 9, 10, 10))
	assert.NoError(t, err, "old room key must be released by the move")

	// But room 2 is now occupied.
	_, err = f.svc.Create(ctx, classReq("HIIT", 2, 2, 9, 10, 10))
	var conflict *schedule.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestUpdateRejectsConflictAndKeepsPrior(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.svc.Create(ctx, classReq("A", 1, 1, 9, 10, 10))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, classReq("B", 2, 2, 9, 10, 10))
	require.NoError(t, err)

	// Moving A onto B's room must fail and leave A's commitment intact.
	_, err = f.svc.Update(ctx, a.ID, classReq("A", 1, 2, 9, 10, 10))
	var conflict *schedule.ConflictError
	require.ErrorAs(t, err, &conflict)

	_, err = f.svc.Create(ctx, classReq("C", 2, 1, 9, 10, 10))
	assert.Error(t, err, "A still occupies room 1")
}

func TestUpdateCapacityBelowEnrolled(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	gc, err := f.svc.Create(ctx, classReq("Spin", 1, 1, 9, 10, 10))
	require.NoError(t, err)

	f.ledger.active[gc.ID] = 8
	_, err = f.svc.Update(ctx, gc.ID, classReq("Spin", 1, 1, 9, 10, 5))
	assert.ErrorIs(t, err, ErrCapacityBelowEnrolled)
}

func TestUpdateUnknownClass(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Update(context.Background(), 99, classReq("X", 1, 1, 9, 10, 10))
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestConcurrentCreatesSameRoomOnlyOneWins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Create(ctx, classReq("Race", 1, 1, 9, 10, 10))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		var conflict *schedule.ConflictError
		require.ErrorAs(t, err, &conflict)
		conflicts++
	}

	assert.Equal(t, 1, successes, "exactly one concurrent create may win the slot")
	assert.Equal(t, n-1, conflicts)
}

func TestConcurrentCreatesDisjointRoomsAllWin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.svc.Create(ctx, classReq("R1", 1, 1, 9, 10, 10))
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.svc.Create(ctx, classReq("R2", 2, 2, 9, 10, 10))
	}()
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}
