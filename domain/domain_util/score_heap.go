package domain_util

import (
	"container/heap"
	"sort"
)

// ScoredRef 堆元素：原切片下标+分数，避免在堆中复制整个内容项
type ScoredRef struct {
	Index int
	Score float64
}

// ScoreMinHeap 最小堆实现 (基于container/heap)
type ScoreMinHeap []ScoredRef

func (h ScoreMinHeap) Len() int            { return len(h) }
func (h ScoreMinHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h ScoreMinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *ScoreMinHeap) Push(x interface{}) { *h = append(*h, x.(ScoredRef)) }
func (h *ScoreMinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopKIndexes 返回分数最高的K项的下标，按分数降序（同分按下标升序）
func TopKIndexes(scores []float64, k int) []int {
	if k <= 0 || len(scores) == 0 {
		return []int{}
	}

	h := make(ScoreMinHeap, 0, k)
	heap.Init(&h)
	for i, s := range scores {
		if h.Len() < k {
			heap.Push(&h, ScoredRef{Index: i, Score: s})
		} else if s > h[0].Score {
			h[0] = ScoredRef{Index: i, Score: s}
			heap.Fix(&h, 0)
		}
	}

	refs := []ScoredRef(h)
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Score != refs[j].Score {
			return refs[i].Score > refs[j].Score
		}
		return refs[i].Index < refs[j].Index
	})

	indexes := make([]int, len(refs))
	for i, r := range refs {
		indexes[i] = r.Index
	}
	return indexes
}
