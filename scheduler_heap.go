package engine

// ScheduledTrack pairs a track with the frame it should become active at.
type ScheduledTrack struct {
	Track      Track
	StartFrame uint64
}

// pendingHeap is a container/heap.Interface min-heap ordered by
// StartFrame, earliest first. The source's own pending queue is a
// max-heap with a reversed comparator to the same effect; a direct
// min-heap is equivalent and reads more plainly in Go.
type pendingHeap []ScheduledTrack

func (h pendingHeap) Len() int            { return len(h) }
func (h pendingHeap) Less(i, j int) bool  { return h[i].StartFrame < h[j].StartFrame }
func (h pendingHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pendingHeap) Push(x interface{}) { *h = append(*h, x.(ScheduledTrack)) }

func (h *pendingHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
