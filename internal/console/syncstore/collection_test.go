package syncstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string
	Name string
}

func newTestCollection() *Collection[record] {
	return NewCollection(func(r record) string { return r.ID })
}

func TestCollection_StartsIdleAndEmpty(t *testing.T) {
	c := newTestCollection()

	snap := c.Snapshot()
	assert.Equal(t, Idle, snap.Status)
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Err)
}

func TestCollection_FetchSuccess(t *testing.T) {
	c := newTestCollection()

	applied, err := c.Fetch(context.Background(), func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1", Name: "first"}}, nil
	})
	require.NoError(t, err)
	assert.True(t, applied)

	snap := c.Snapshot()
	assert.Equal(t, Ready, snap.Status)
	assert.Len(t, snap.Items, 1)
	assert.Empty(t, snap.Err)
}

func TestCollection_FailedFetchKeepsPreviousItems(t *testing.T) {
	c := newTestCollection()

	_, err := c.Fetch(context.Background(), func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1"}, {ID: "2"}}, nil
	})
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), func(ctx context.Context) ([]record, error) {
		return nil, errors.New("server unavailable")
	})
	require.Error(t, err)

	snap := c.Snapshot()
	assert.Equal(t, Failed, snap.Status)
	assert.Len(t, snap.Items, 2, "stale items must survive a failed refetch")
	assert.Equal(t, "server unavailable", snap.Err)
}

func TestCollection_SupersededFetchIsDiscarded(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan struct{})

	go func() {
		defer close(firstDone)
		applied, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
			close(started)
			<-release
			return []record{{ID: "stale"}}, nil
		})
		assert.False(t, applied, "superseded fetch must not apply")
		assert.NoError(t, err)
	}()
	<-started

	// Second fetch is issued while the first is still in flight and
	// returns immediately.
	applied, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "fresh"}}, nil
	})
	require.NoError(t, err)
	assert.True(t, applied)

	close(release)
	<-firstDone

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "fresh", snap.Items[0].ID, "the later fetch defines the items regardless of arrival order")
	assert.Equal(t, Ready, snap.Status)
}

func TestCollection_SupersededFailureDoesNotTouchState(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan struct{})

	go func() {
		defer close(firstDone)
		applied, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
			close(started)
			<-release
			return nil, errors.New("late failure")
		})
		assert.False(t, applied)
		assert.NoError(t, err, "a discarded result reports no error")
	}()
	<-started

	applied, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "fresh"}}, nil
	})
	require.NoError(t, err)
	assert.True(t, applied)

	close(release)
	<-firstDone

	snap := c.Snapshot()
	assert.Equal(t, Ready, snap.Status)
	assert.Empty(t, snap.Err)
}

func TestCollection_CreateAppends(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	_, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1"}}, nil
	})
	require.NoError(t, err)

	err = c.Create(ctx, func(ctx context.Context) (record, error) {
		return record{ID: "2", Name: "new"}, nil
	})
	require.NoError(t, err)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "2", snap.Items[1].ID)
}

func TestCollection_CreateFailureKeepsItems(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	_, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1"}}, nil
	})
	require.NoError(t, err)

	err = c.Create(ctx, func(ctx context.Context) (record, error) {
		return record{}, errors.New("Email already exists")
	})
	require.Error(t, err)

	snap := c.Snapshot()
	assert.Equal(t, Failed, snap.Status)
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, "Email already exists", snap.Err)
}

func TestCollection_UpdateReplacesById(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	_, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1", Name: "old"}, {ID: "2", Name: "other"}}, nil
	})
	require.NoError(t, err)

	err = c.Update(ctx, "1", func(ctx context.Context) (record, error) {
		return record{ID: "1", Name: "updated"}, nil
	})
	require.NoError(t, err)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "updated", snap.Items[0].Name)
	assert.Equal(t, "other", snap.Items[1].Name, "unrelated items stay untouched")
}

func TestCollection_UpdateMissingIdIsNoOp(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	_, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1"}}, nil
	})
	require.NoError(t, err)

	err = c.Update(ctx, "missing", func(ctx context.Context) (record, error) {
		return record{ID: "missing"}, nil
	})
	require.NoError(t, err)

	snap := c.Snapshot()
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, "1", snap.Items[0].ID)
}

func TestCollection_RemoveDeletesByIdPreservingOrder(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	_, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
	})
	require.NoError(t, err)

	err = c.Remove(ctx, "2", func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "1", snap.Items[0].ID)
	assert.Equal(t, "3", snap.Items[1].ID)
}

func TestCollection_RemoveFailureKeepsItems(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	_, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1"}}, nil
	})
	require.NoError(t, err)

	err = c.Remove(ctx, "1", func(ctx context.Context) error {
		return errors.New("boom")
	})
	require.Error(t, err)

	snap := c.Snapshot()
	assert.Equal(t, Failed, snap.Status)
	assert.Len(t, snap.Items, 1)
}

func TestCollection_SnapshotIsACopy(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	_, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1", Name: "original"}}, nil
	})
	require.NoError(t, err)

	snap := c.Snapshot()
	snap.Items[0].Name = "mutated"

	assert.Equal(t, "original", c.Snapshot().Items[0].Name)
}

func TestCollection_ClearError(t *testing.T) {
	c := newTestCollection()
	ctx := context.Background()

	_, err := c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1"}}, nil
	})
	require.NoError(t, err)

	_, err = c.Fetch(ctx, func(ctx context.Context) ([]record, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	c.ClearError()

	snap := c.Snapshot()
	assert.Equal(t, Ready, snap.Status, "a store holding data goes back to ready")
	assert.Empty(t, snap.Err)
}

func TestCollection_ClearErrorWithoutData(t *testing.T) {
	c := newTestCollection()

	_, err := c.Fetch(context.Background(), func(ctx context.Context) ([]record, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	c.ClearError()

	assert.Equal(t, Idle, c.Snapshot().Status)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
