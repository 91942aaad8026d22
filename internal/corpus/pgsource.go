package corpus

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/annekeller/mediasearch/pkg/errors"
	"github.com/annekeller/mediasearch/pkg/postgres"
	"github.com/annekeller/mediasearch/pkg/resilience"
)

// loadAllTimeout bounds a single batch SELECT over media_items. The corpus
// is loaded once per process (spec.md §5), so this is generous rather than
// tuned for latency.
const loadAllTimeout = 2 * time.Minute

// PgSource is a read-only, batch-at-startup corpus source: one SELECT over
// the full media_items table, no writes, no per-row polling, no
// subscription. This matches "corpus loaded once at startup" (spec.md §5) —
// it is not a live ingestion path.
type PgSource struct {
	client  *postgres.Client
	breaker *resilience.CircuitBreaker
}

// NewPgSource wraps an already-connected Postgres client.
func NewPgSource(client *postgres.Client) *PgSource {
	return &PgSource{
		client:  client,
		breaker: resilience.NewCircuitBreaker("postgres-corpus-source", resilience.CircuitBreakerConfig{}),
	}
}

const selectAllMediaItems = `
SELECT id, description, credit, item_date, width, height
FROM media_items
ORDER BY id
`

// BreakerState reports the current circuit breaker state, for callers that
// want to surface it on a health check or a gauge.
func (s *PgSource) BreakerState() resilience.State {
	return s.breaker.GetState()
}

// LoadAll runs a single batch query, bounded by loadAllTimeout, and decodes
// every row into a RawRecord.
func (s *PgSource) LoadAll(ctx context.Context) ([]RawRecord, error) {
	var records []RawRecord
	err := resilience.WithTimeout(ctx, loadAllTimeout, "postgres-corpus-source", func(ctx context.Context) error {
		return resilience.Retry(ctx, "postgres-corpus-source", resilience.RetryConfig{}, func() error {
			return s.breaker.Execute(func() error {
				rows, err := s.client.DB.QueryContext(ctx, selectAllMediaItems)
				if err != nil {
					return apperrors.Newf(apperrors.ErrCorpusSourceUnavailable, 3, "querying media_items: %v", err)
				}
				defer rows.Close()

				records = nil
				for rows.Next() {
					var r RawRecord
					if err := rows.Scan(&r.ID, &r.Desc, &r.Credit, &r.Date, &r.WidthPixel, &r.HeightPixel); err != nil {
						return apperrors.Newf(apperrors.ErrCorpusRecordInvalid, 2, "scanning media_items row: %v", err)
					}
					records = append(records, r)
				}
				return rows.Err()
			})
		})
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Newf(apperrors.ErrTimeout, 3, "loading media_items: %v", err)
		}
		return nil, err
	}
	return records, nil
}
