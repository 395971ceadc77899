package entityloader

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/graph-gophers/dataloader"

	"github.com/rpattn/hrapi/internal/domain"
)

// TaskSource resolves task references for many jobs in one query.
type TaskSource interface {
	TasksByJobIDs(ctx context.Context, jobIDs []int64) (map[int64][]domain.Task, error)
}

// JobTaskLoader batches task lookups for the jobs rendered in one request.
type JobTaskLoader struct {
	Loader *dataloader.Loader
}

func NewJobTaskLoader(source TaskSource) *JobTaskLoader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		ids := make([]int64, len(keys))
		for i, k := range keys {
			id, err := strconv.ParseInt(k.String(), 10, 64)
			if err != nil {
				return failAll(len(keys), fmt.Errorf("invalid job id %q: %w", k.String(), err))
			}
			ids[i] = id
		}

		tasks, err := source.TasksByJobIDs(ctx, ids)
		if err != nil {
			return failAll(len(keys), err)
		}

		// Build results in the same order as keys
		results := make([]*dataloader.Result, len(keys))
		for i, id := range ids {
			results[i] = &dataloader.Result{Data: tasks[id]}
		}
		return results
	}

	loader := dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(2*time.Millisecond))

	return &JobTaskLoader{Loader: loader}
}

func failAll(n int, err error) []*dataloader.Result {
	results := make([]*dataloader.Result, n)
	for i := range results {
		results[i] = &dataloader.Result{Error: err}
	}
	return results
}

func jobKey(id int64) dataloader.Key {
	return dataloader.StringKey(strconv.FormatInt(id, 10))
}

// Hydrate fills Tasks on every job with a single batched lookup.
func (l *JobTaskLoader) Hydrate(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	keys := make(dataloader.Keys, len(jobs))
	for i, j := range jobs {
		keys[i] = jobKey(j.ID)
	}

	data, errs := l.Loader.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for i := range jobs {
		jobs[i].Tasks, _ = data[i].([]domain.Task)
	}
	return nil
}
