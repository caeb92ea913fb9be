package diversity

import "github.com/abelbrown/foryou/internal/feed"

// entry is a candidate waiting in the demotion queue.
// effective is the candidate's adjusted score decayed for the author count
// assumed at push time; atCount records that assumption so the adjuster can
// detect stale entries and re-push them.
type entry struct {
	cand      *feed.Candidate
	effective float64
	atCount   int
	heapIndex int
}

// demotionQueue implements heap.Interface over entries.
// Higher effective score pops first (max-heap). Ties break by newest
// creation time, then by candidate ID, so the final order is deterministic.
type demotionQueue []*entry

func (q demotionQueue) Len() int { return len(q) }

func (q demotionQueue) Less(i, j int) bool {
	if q[i].effective != q[j].effective {
		return q[i].effective > q[j].effective // Higher score first
	}
	if !q[i].cand.CreatedAt.Equal(q[j].cand.CreatedAt) {
		return q[i].cand.CreatedAt.After(q[j].cand.CreatedAt) // Newest first
	}
	return q[i].cand.ID < q[j].cand.ID
}

func (q demotionQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIndex = i
	q[j].heapIndex = j
}

func (q *demotionQueue) Push(x any) {
	n := len(*q)
	e := x.(*entry)
	e.heapIndex = n
	*q = append(*q, e)
}

func (q *demotionQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // avoid memory leak
	e.heapIndex = -1
	*q = old[0 : n-1]
	return e
}
