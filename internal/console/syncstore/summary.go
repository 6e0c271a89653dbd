package syncstore

import (
	"context"
	"sync"
)

// SummarySnapshot is the read surface of a single-record store.
type SummarySnapshot[T any] struct {
	Status Status
	Data   T
	Err    string
}

// Summary is the tri-state wrapper for a single aggregate record (dashboard
// stats, analytics). Read-only: fetch is the only operation. The same
// stale-on-error and last-fetch-wins rules as Collection apply.
type Summary[T any] struct {
	mu     sync.Mutex
	status Status
	data   T
	err    string
	seq    uint64
}

func NewSummary[T any]() *Summary[T] {
	return &Summary[T]{}
}

func (s *Summary[T]) Fetch(ctx context.Context, fn func(ctx context.Context) (T, error)) (bool, error) {
	s.mu.Lock()
	s.seq++
	mySeq := s.seq
	s.status = Loading
	s.err = ""
	s.mu.Unlock()

	data, err := fn(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if mySeq != s.seq {
		return false, nil
	}

	if err != nil {
		s.status = Failed
		s.err = err.Error()
		return true, err
	}

	s.data = data
	s.status = Ready
	s.err = ""
	return true, nil
}

func (s *Summary[T]) Snapshot() SummarySnapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SummarySnapshot[T]{Status: s.status, Data: s.data, Err: s.err}
}

func (s *Summary[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = ""
	if s.status == Failed {
		s.status = Idle
	}
}
