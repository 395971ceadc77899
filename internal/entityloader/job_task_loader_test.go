package entityloader

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/hrapi/internal/domain"
)

type fakeTaskSource struct {
	mu    sync.Mutex
	calls [][]int64
	tasks map[int64][]domain.Task
	err   error
}

func (f *fakeTaskSource) TasksByJobIDs(_ context.Context, ids []int64) (map[int64][]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]int64(nil), ids...))
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks, nil
}

func title(s string) *string { return &s }

func TestHydrateBatchesIntoOneLookup(t *testing.T) {
	src := &fakeTaskSource{tasks: map[int64][]domain.Task{
		1: {{ID: 10, Title: title("review")}},
		3: {{ID: 11, Title: title("deploy")}, {ID: 12, Title: title("monitor")}},
	}}
	loader := NewJobTaskLoader(src)

	jobs := []domain.Job{{ID: 1}, {ID: 2}, {ID: 3}}
	require.NoError(t, loader.Hydrate(context.Background(), jobs))

	assert.Len(t, src.calls, 1)
	assert.ElementsMatch(t, []int64{1, 2, 3}, src.calls[0])
	assert.Equal(t, []int64{10}, jobs[0].TaskIDs())
	assert.Empty(t, jobs[1].Tasks)
	assert.Equal(t, []int64{11, 12}, jobs[2].TaskIDs())
}

func TestHydrateUsesCache(t *testing.T) {
	src := &fakeTaskSource{tasks: map[int64][]domain.Task{4: {{ID: 1}}}}
	loader := NewJobTaskLoader(src)

	for range 2 {
		jobs := []domain.Job{{ID: 4}}
		require.NoError(t, loader.Hydrate(context.Background(), jobs))
		assert.Len(t, jobs[0].Tasks, 1)
	}
	assert.Len(t, src.calls, 1)
}

func TestHydratePropagatesErrors(t *testing.T) {
	loader := NewJobTaskLoader(&fakeTaskSource{err: errors.New("db down")})
	err := loader.Hydrate(context.Background(), []domain.Job{{ID: 1}})
	assert.EqualError(t, err, "db down")
}
