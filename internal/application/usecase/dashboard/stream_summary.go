package dashboard

import (
	"context"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/snapshot"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
)

// SnapshotSource publishes collection snapshots. Implemented by snapshot.Observer.
type SnapshotSource interface {
	Subscribe(ctx context.Context, predicate snapshot.Predicate) <-chan snapshot.Snapshot
}

// SummaryUpdate is the summary recomputed from one snapshot.
type SummaryUpdate struct {
	Version uint64
	Metrics aggregation.Metrics
}

// StreamSummaryUseCase recomputes the dashboard summary on every snapshot.
type StreamSummaryUseCase struct {
	source SnapshotSource
	clock  adapter.Clock
}

// NewStreamSummaryUseCase creates a new StreamSummaryUseCase instance.
func NewStreamSummaryUseCase(source SnapshotSource, clock adapter.Clock) *StreamSummaryUseCase {
	return &StreamSummaryUseCase{
		source: source,
		clock:  clock,
	}
}

// Execute validates the range and returns a channel of summaries, closed when ctx is done.
// The range is resolved once, so a current-month stream keeps its month across midnight.
func (uc *StreamSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (<-chan SummaryUpdate, error) {
	r, err := resolveRange(input.Range, uc.clock)
	if err != nil {
		return nil, err
	}

	snapshots := uc.source.Subscribe(ctx, nil)
	updates := make(chan SummaryUpdate, 1)

	go func() {
		defer close(updates)
		for snap := range snapshots {
			update := SummaryUpdate{
				Version: snap.Version,
				Metrics: aggregation.Aggregate(snap.Transactions, r, aggregation.DefaultConfig()),
			}
			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}
