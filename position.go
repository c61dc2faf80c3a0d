package engine

// TimelinePosition is a point-in-time snapshot of transport position,
// suitable for a UI to poll on its own schedule; it is not itself part of
// the realtime state the scheduler owns.
type TimelinePosition struct {
	CurrentFrame   uint64
	Bar            uint64
	Beat           uint64
	Tick           uint64
	TickWithinBeat uint64
}
