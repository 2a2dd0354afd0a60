package async

import (
	"context"
	"errors"
	"fmt"
)

// Task represents a unit of work with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// Run executes all tasks and waits for every one of them to finish.
// Tasks run concurrently unless sequential is set, in which case they run
// one after another in slice order. A failing task never stops the others.
//
// Every task error is returned, prefixed with the task name and combined
// with errors.Join.
//
// Example:
//
//	tasks := []Task{
//	    {Name: "log-group", Func: scanLogGroups},
//	    {Name: "queue", Func: scanQueues},
//	}
//	if err := Run(ctx, tasks, false); err != nil {
//	    return err
//	}
func Run(ctx context.Context, tasks []Task, sequential bool) error {
	if len(tasks) == 0 {
		return nil
	}

	if sequential {
		var errs []error
		for _, task := range tasks {
			if err := task.Func(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", task.Name, err))
			}
		}
		return errors.Join(errs...)
	}

	errs := make([]error, len(tasks))
	done := make(chan struct{}, len(tasks))

	for i, task := range tasks {
		go func() {
			defer func() { done <- struct{}{} }()
			if err := task.Func(ctx); err != nil {
				errs[i] = fmt.Errorf("%s: %w", task.Name, err)
			}
		}()
	}

	for range len(tasks) {
		<-done
	}

	return errors.Join(errs...)
}
