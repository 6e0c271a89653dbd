// Package syncstore implements the console's client-side cache pattern: a
// tri-state container per remote resource that fetches, caches and patches
// one collection (or one summary snapshot), so the transition logic exists
// once instead of once per resource.
package syncstore

// Status is the lifecycle of a store's data.
//
// Transitions: Idle→Loading, Loading→{Ready, Failed}, Ready→Loading
// (refetch), Failed→Loading (retry). There is no terminal state.
type Status int

const (
	Idle Status = iota
	Loading
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
