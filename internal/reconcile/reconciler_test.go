package reconcile

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/logger"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/registration"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	os.Exit(m.Run())
}

type fakeCounts struct {
	counts map[int]int
	err    error
}

func (f *fakeCounts) ActiveCounts(ctx context.Context) (map[int]int, error) {
	return f.counts, f.err
}

func TestRunNoDrift(t *testing.T) {
	ledger := registration.NewLedger()
	ledger.Seed(1, 10, 3)
	ledger.Seed(2, 5, 0)

	r := New(ledger, &fakeCounts{counts: map[int]int{1: 3}}, "@every 5m")

	drift, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, drift)
}

func TestRunDetectsDrift(t *testing.T) {
	ledger := registration.NewLedger()
	ledger.Seed(1, 10, 3)

	// Database says 4 for class 1 and has a class 9 the ledger never saw.
	r := New(ledger, &fakeCounts{counts: map[int]int{1: 4, 9: 2}}, "@every 5m")

	drift, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, drift)
}

func TestRunInMemoryOnlyDrift(t *testing.T) {
	ledger := registration.NewLedger()
	ledger.Seed(1, 10, 2)

	r := New(ledger, &fakeCounts{counts: map[int]int{}}, "@every 5m")

	drift, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, drift)
}

func TestRunRepositoryError(t *testing.T) {
	ledger := registration.NewLedger()

	r := New(ledger, &fakeCounts{err: assert.AnError}, "@every 5m")

	_, err := r.Run(context.Background())
	assert.Error(t, err)
}

func TestStartRejectsBadSpec(t *testing.T) {
	ledger := registration.NewLedger()

	r := New(ledger, &fakeCounts{counts: map[int]int{}}, "not a cron spec")

	err := r.Start(context.Background())
	assert.Error(t, err)
}
