package syncstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stats struct {
	Total int
}

func TestSummary_FetchSuccess(t *testing.T) {
	s := NewSummary[stats]()

	applied, err := s.Fetch(context.Background(), func(ctx context.Context) (stats, error) {
		return stats{Total: 7}, nil
	})
	require.NoError(t, err)
	assert.True(t, applied)

	snap := s.Snapshot()
	assert.Equal(t, Ready, snap.Status)
	assert.Equal(t, 7, snap.Data.Total)
}

func TestSummary_FailureKeepsPreviousData(t *testing.T) {
	s := NewSummary[stats]()
	ctx := context.Background()

	_, err := s.Fetch(ctx, func(ctx context.Context) (stats, error) {
		return stats{Total: 7}, nil
	})
	require.NoError(t, err)

	_, err = s.Fetch(ctx, func(ctx context.Context) (stats, error) {
		return stats{}, errors.New("server unavailable")
	})
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, Failed, snap.Status)
	assert.Equal(t, 7, snap.Data.Total, "stale data must survive a failed refresh")
	assert.Equal(t, "server unavailable", snap.Err)
}

func TestSummary_SupersededFetchIsDiscarded(t *testing.T) {
	s := NewSummary[stats]()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan struct{})

	go func() {
		defer close(firstDone)
		applied, err := s.Fetch(ctx, func(ctx context.Context) (stats, error) {
			close(started)
			<-release
			return stats{Total: 1}, nil
		})
		assert.False(t, applied)
		assert.NoError(t, err)
	}()
	<-started

	applied, err := s.Fetch(ctx, func(ctx context.Context) (stats, error) {
		return stats{Total: 2}, nil
	})
	require.NoError(t, err)
	assert.True(t, applied)

	close(release)
	<-firstDone

	assert.Equal(t, 2, s.Snapshot().Data.Total)
}

func TestSummary_ClearError(t *testing.T) {
	s := NewSummary[stats]()

	_, err := s.Fetch(context.Background(), func(ctx context.Context) (stats, error) {
		return stats{}, errors.New("boom")
	})
	require.Error(t, err)

	s.ClearError()

	snap := s.Snapshot()
	assert.Equal(t, Idle, snap.Status)
	assert.Empty(t, snap.Err)
}
