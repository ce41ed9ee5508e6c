package merge

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/skjoshi/internscout/internal/models"
	"github.com/skjoshi/internscout/internal/store"
)

// Plan selects the incoming postings that are genuinely new. Identity is
// the Link field alone: a posting whose link is already persisted, already
// planned earlier in this batch, or the "N/A" sentinel is dropped. Order of
// the survivors is the incoming order.
func Plan(existing []store.Row, incoming []models.Posting) []models.Posting {
	links := make(map[string]struct{}, len(existing)+len(incoming))
	for _, row := range existing {
		if link := row["Link"]; link != "" {
			links[link] = struct{}{}
		}
	}

	var planned []models.Posting
	for _, posting := range incoming {
		if !posting.HasLink() {
			continue
		}
		if _, seen := links[posting.Link]; seen {
			continue
		}
		links[posting.Link] = struct{}{}
		planned = append(planned, posting)
	}
	return planned
}

// Merger commits newly discovered postings into the persisted store.
// Unlike fetch failures, every store failure is surfaced: a partial write
// is a correctness risk the operator has to see.
type Merger struct {
	Store  store.Store
	Delay  time.Duration
	Sleep  func(time.Duration)
	Logger zerolog.Logger
}

// Run reads the store's current contents, appends every new posting in
// order, and returns how many rows were committed. When an append fails the
// returned count still reflects the rows already written; nothing is rolled
// back. A header row is written first iff the store held no records.
func (m *Merger) Run(ctx context.Context, incoming []models.Posting) (int, error) {
	existing, err := m.Store.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read store: %w", err)
	}

	planned := Plan(existing, incoming)
	if len(planned) == 0 {
		m.Logger.Info().Int("incoming", len(incoming)).Msg("no new postings to append")
		return 0, nil
	}

	sleep := m.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	if len(existing) == 0 {
		if err := m.Store.AppendRow(ctx, models.Header()); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
	}

	appended := 0
	for _, posting := range planned {
		if err := m.Store.AppendRow(ctx, posting.Row()); err != nil {
			return appended, fmt.Errorf("append %s: %w", posting.Link, err)
		}
		appended++
		// Courtesy pause toward the store's API between appends.
		if m.Delay > 0 {
			sleep(m.Delay)
		}
	}

	m.Logger.Info().Int("appended", appended).Msg("postings committed")
	return appended, nil
}
