package reconcile

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/logger"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/metrics"
)

// CounterSource reads the in-memory active counts per class.
type CounterSource interface {
	Snapshot() map[int]int
}

// PersistedCounts reads the active registration counts from the database.
type PersistedCounts interface {
	ActiveCounts(ctx context.Context) (map[int]int, error)
}

// Reconciler periodically compares the in-memory capacity counters against
// the persisted registration rows. The counters are the admission authority,
// so any drift means a failed write slipped past the rollback path and needs
// a look.
type Reconciler struct {
	ledger CounterSource
	repo   PersistedCounts
	cron   *cron.Cron
	spec   string
}

func New(ledger CounterSource, repo PersistedCounts, spec string) *Reconciler {
	return &Reconciler{
		ledger: ledger,
		repo:   repo,
		cron:   cron.New(),
		spec:   spec,
	}
}

// Start schedules the periodic check. The spec accepts standard cron
// expressions and @every descriptors.
func (r *Reconciler) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.spec, func() {
		if _, err := r.Run(ctx); err != nil {
			logger.Errorf("Ledger reconciliation failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	r.cron.Start()
	logger.Info("Ledger reconciler started", "spec", r.spec)
	return nil
}

func (r *Reconciler) Stop() {
	r.cron.Stop()
	logger.Info("Ledger reconciler stopped")
}

// Run performs one comparison pass and returns the number of drifting
// classes. A class counts as drifting when the two sides disagree on its
// active registrations; classes absent from memory are only drift if the
// database shows active rows for them.
func (r *Reconciler) Run(ctx context.Context) (int, error) {
	persisted, err := r.repo.ActiveCounts(ctx)
	if err != nil {
		return 0, err
	}

	inMemory := r.ledger.Snapshot()

	drift := 0
	for classID, dbCount := range persisted {
		if inMemory[classID] != dbCount {
			drift++
			logger.Error("Ledger drift detected",
				"class_id", classID,
				"in_memory", inMemory[classID],
				"persisted", dbCount,
			)
		}
	}
	for classID, memCount := range inMemory {
		if _, ok := persisted[classID]; !ok && memCount != 0 {
			drift++
			logger.Error("Ledger drift detected",
				"class_id", classID,
				"in_memory", memCount,
				"persisted", 0,
			)
		}
	}

	metrics.LedgerDrift.Set(float64(drift))
	if drift == 0 {
		logger.Debug("Ledger reconciliation clean", "classes", len(persisted))
	}
	return drift, nil
}
