package tasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
)

// FindTask resolves a task by full id or unique id prefix.
func FindTask(ctx *cli.Context, idOrPrefix string) (models.Task, error) {
	task, err := ctx.Planner.GetTask(idOrPrefix)
	if err == nil {
		return task, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.Task{}, err
	}

	all, err := ctx.Store.AllTasks()
	if err != nil {
		return models.Task{}, err
	}

	var matches []models.Task
	for _, t := range all {
		if strings.HasPrefix(t.ID, idOrPrefix) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("task %q not found", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("task id prefix %q is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}
