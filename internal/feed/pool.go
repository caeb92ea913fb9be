package feed

import "errors"

// ErrEmptyPool is returned when both candidate sources are empty.
// An empty pool is a caller contract violation: there is nothing to rank.
var ErrEmptyPool = errors.New("feed: no candidates to rank")

// BuildPool merges the in-network and discovery candidate lists into one
// pool. Within-group order is preserved and the groups are not interleaved:
// in-network candidates come first, discovery after. Either group may be
// empty, but not both.
func BuildPool(inNetwork, discovery []Candidate) ([]Candidate, error) {
	if len(inNetwork) == 0 && len(discovery) == 0 {
		return nil, ErrEmptyPool
	}

	pool := make([]Candidate, 0, len(inNetwork)+len(discovery))
	pool = append(pool, inNetwork...)
	pool = append(pool, discovery...)
	return pool, nil
}
