package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/adapter/adaptertest"
	"github.com/finanzas-pro/backend/internal/application/usecase/snapshot"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

type channelSource struct {
	ch chan snapshot.Snapshot
}

func (s *channelSource) Subscribe(context.Context, snapshot.Predicate) <-chan snapshot.Snapshot {
	return s.ch
}

func TestStreamSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	clock := adaptertest.NewClock(testNow)

	t.Run("recomputes on each snapshot", func(t *testing.T) {
		source := &channelSource{ch: make(chan snapshot.Snapshot, 2)}
		uc := NewStreamSummaryUseCase(source, clock)

		updates, err := uc.Execute(ctx, GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		all, _ := fixture().FindAll(ctx, entity.TransactionFilter{})
		source.ch <- snapshot.Snapshot{Version: 1, Transactions: all}

		select {
		case update := <-updates:
			if update.Version != 1 {
				t.Errorf("expected version 1, got %d", update.Version)
			}
			if !update.Metrics.Balance.Equal(decimal.NewFromInt(2500)) {
				t.Errorf("expected balance 2500, got %s", update.Metrics.Balance)
			}
			if update.Metrics.Range.StartDate != "2024-03-01" || update.Metrics.Range.EndDate != "2024-03-31" {
				t.Errorf("expected current month range, got %s", update.Metrics.Range)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for update")
		}

		source.ch <- snapshot.Snapshot{Version: 2}
		select {
		case update := <-updates:
			if !update.Metrics.Balance.IsZero() {
				t.Errorf("expected zero balance for empty snapshot, got %s", update.Metrics.Balance)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for second update")
		}

		close(source.ch)
		select {
		case _, ok := <-updates:
			if ok {
				t.Error("expected updates to be closed")
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for close")
		}
	})

	t.Run("rejects an incomplete range", func(t *testing.T) {
		uc := NewStreamSummaryUseCase(&channelSource{ch: make(chan snapshot.Snapshot)}, clock)

		_, err := uc.Execute(ctx, GetSummaryInput{Range: RangeInput{StartDate: "2024-03-01"}})
		if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeMissingEndDate {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeMissingEndDate, code)
		}
	})
}
