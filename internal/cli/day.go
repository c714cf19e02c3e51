package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/planner"
	"github.com/daygrid/daygrid/internal/storage"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

// Run materializes the day from recurring rules and timed habits, then
// prints the timeline with overlap warnings.
func (c *DayCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if _, err := ctx.Planner.EnsureDay(date, ctx.Mode); err != nil {
		return err
	}

	tasks, err := ctx.Planner.ListTasks(date, ctx.Mode)
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render(fmt.Sprintf("%s — %s", date, ctx.Mode)))

	if note, err := ctx.Planner.GetNote(date, ctx.Mode); err == nil && note.Text != "" {
		fmt.Println(MutedStyle.Render("Note: " + note.Text))
	} else if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	sorted := planner.SortTasksChronologically(tasks)
	overlaps := planner.DetectOverlaps(sorted)

	for _, t := range sorted {
		fmt.Println(formatTaskLine(t, overlaps))
	}

	if len(overlaps) > 0 {
		fmt.Println(WarningStyle.Render(fmt.Sprintf("%d task(s) overlap on the timeline", len(overlaps))))
	}
	return nil
}

func formatTaskLine(t models.Task, overlaps map[string][]string) string {
	var b strings.Builder

	timeCol := "        "
	if t.Timed() {
		if t.PlannedFinish != "" {
			timeCol = fmt.Sprintf("%s-%s", t.PlannedStart, t.PlannedFinish)
		} else {
			timeCol = fmt.Sprintf("%s      ", t.PlannedStart)
		}
	}
	b.WriteString(TimeStyle.Render(timeCol))
	b.WriteString("  ")

	check := "[ ]"
	if t.Done {
		check = "[x]"
	}
	b.WriteString(check)
	b.WriteString(" ")

	title := t.Title
	if t.Priority != "" {
		title = fmt.Sprintf("%s (%s)", title, t.Priority)
	}
	if t.Done {
		title = DoneStyle.Render(title)
	}
	b.WriteString(title)

	if len(overlaps[t.ID]) > 0 {
		b.WriteString(" ")
		b.WriteString(WarningStyle.Render("⚠ overlap"))
	}
	return b.String()
}
