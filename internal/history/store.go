package history

import "wpts/internal/domain"

// Store records aggregation run summaries so counts can be compared
// across runs.
type Store interface {
	Record(meta domain.RunMeta) error
	List(limit int) ([]domain.RunMeta, error)
}
