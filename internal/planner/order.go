package planner

import (
	"sort"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/utils"
)

// openEnded sorts after every real clock time, so a task with a missing
// or unparseable time falls last among otherwise equal keys.
const openEnded = 24*60 + 1

func sortMinutes(clock string) int {
	m, err := utils.ParseTimeToMinutes(clock)
	if err != nil {
		return openEnded
	}
	return m
}

// SortTasksChronologically returns a new slice with timed tasks first in
// start order, then untimed tasks in creation order. Timed ties break on
// finish, then priority rank, then createdAt; tasks identical on all keys
// keep their input order.
func SortTasksChronologically(tasks []models.Task) []models.Task {
	timed := make([]models.Task, 0, len(tasks))
	untimed := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Timed() {
			timed = append(timed, t)
		} else {
			untimed = append(untimed, t)
		}
	}

	sort.SliceStable(timed, func(i, j int) bool {
		a, b := timed[i], timed[j]
		if sa, sb := sortMinutes(a.PlannedStart), sortMinutes(b.PlannedStart); sa != sb {
			return sa < sb
		}
		if fa, fb := sortMinutes(a.PlannedFinish), sortMinutes(b.PlannedFinish); fa != fb {
			return fa < fb
		}
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}
		return a.CreatedAt < b.CreatedAt
	})

	sort.SliceStable(untimed, func(i, j int) bool {
		return untimed[i].CreatedAt < untimed[j].CreatedAt
	})

	return append(timed, untimed...)
}

// DetectOverlaps reports which timed tasks intersect on the timeline. Two
// tasks overlap when their [start, finish) intervals share any instant;
// tasks that merely touch endpoints do not. The result maps each involved
// task id to the ids it overlaps, symmetrically. Untimed tasks and timed
// tasks without a finish never conflict.
func DetectOverlaps(tasks []models.Task) map[string][]string {
	type interval struct {
		id    string
		start int
		end   int
	}

	intervals := make([]interval, 0, len(tasks))
	for _, t := range tasks {
		if !t.Timed() || t.PlannedFinish == "" {
			continue
		}
		start, errStart := utils.ParseTimeToMinutes(t.PlannedStart)
		end, errEnd := utils.ParseTimeToMinutes(t.PlannedFinish)
		if errStart != nil || errEnd != nil || end <= start {
			continue
		}
		intervals = append(intervals, interval{id: t.ID, start: start, end: end})
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})

	overlaps := make(map[string][]string)
	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			if intervals[j].start >= intervals[i].end {
				break
			}
			overlaps[intervals[i].id] = append(overlaps[intervals[i].id], intervals[j].id)
			overlaps[intervals[j].id] = append(overlaps[intervals[j].id], intervals[i].id)
		}
	}
	return overlaps
}
