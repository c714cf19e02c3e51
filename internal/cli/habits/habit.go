package habits

import (
	"errors"
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
	"github.com/daygrid/daygrid/internal/utils"
)

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	FreqPerWeek int    `short:"q" help:"Target times per week (informational)." default:"7"`
	Days        string `short:"w" help:"Comma-separated weekdays. Empty = every day."`
	Stream      string `help:"Part of day (Anytime|Morning|Afternoon|Evening)." default:"Anytime"`
	Start       string `short:"s" help:"Start time (HH:MM). Timed habits appear on the day timeline."`
	Finish      string `short:"f" help:"Finish time (HH:MM)."`
	Reminder    string `short:"r" help:"Reminder time (HH:MM, stored as data only)."`
	Note        string `short:"n" help:"Free-text note."`
}

func (c *HabitAddCmd) Validate() error {
	if c.Start != "" && !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM): %s", c.Start)
	}
	if c.Finish != "" && !utils.ValidateTimeFormat(c.Finish) {
		return fmt.Errorf("invalid finish time format (expected HH:MM): %s", c.Finish)
	}
	if c.Reminder != "" && !utils.ValidateTimeFormat(c.Reminder) {
		return fmt.Errorf("invalid reminder time format (expected HH:MM): %s", c.Reminder)
	}
	if !models.Stream(c.Stream).Valid() {
		return fmt.Errorf("stream must be one of Anytime, Morning, Afternoon, Evening")
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	days, err := cli.ParseWeekdays(c.Days)
	if err != nil {
		return err
	}

	habit, err := ctx.Planner.UpsertHabit(models.Habit{
		Mode:         ctx.Mode,
		Title:        c.Title,
		FreqPerWeek:  c.FreqPerWeek,
		Days:         days,
		Stream:       models.Stream(c.Stream),
		TimeStart:    c.Start,
		TimeFinish:   c.Finish,
		ReminderTime: c.Reminder,
		Note:         c.Note,
		Active:       true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit %s: %s\n", cli.ShortID(habit.ID), habit.Title)
	return nil
}

type HabitListCmd struct {
	All  bool   `help:"Include inactive habits."`
	Date string `short:"d" help:"Date whose week to report done-counts for." default:"today"`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Planner.ListHabits(ctx.Mode)
	if err != nil {
		return err
	}

	shown := 0
	for _, h := range habits {
		if !h.Active && !c.All {
			continue
		}
		done, err := ctx.Planner.HabitWeekDoneCount(h.ID, date)
		if err != nil {
			return err
		}
		status := ""
		if !h.Active {
			status = " [inactive]"
		}
		timeCol := ""
		if h.TimeStart != "" {
			timeCol = " @" + h.TimeStart
		}
		fmt.Printf("%s  %s%s — %d/%d this week (%s)%s\n",
			cli.ShortID(h.ID), h.Title, timeCol, done, h.FreqPerWeek, cli.FormatWeekdays(h.Days), status)
		shown++
	}
	if shown == 0 {
		fmt.Println("No habits.")
	}
	return nil
}

// HabitMarkCmd toggles a habit's done state for a day via its log entry.
type HabitMarkCmd struct {
	ID   string `arg:"" help:"Habit id."`
	Date string `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Note string `short:"n" help:"Optional note for the entry."`
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Planner.GetHabit(c.ID)
	if err != nil {
		return err
	}
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Planner.GetHabitLog(date, ctx.Mode, habit.ID)
	if errors.Is(err, storage.ErrNotFound) {
		log = models.HabitLog{Date: date, Mode: ctx.Mode, HabitID: habit.ID}
	} else if err != nil {
		return err
	}

	log.Done = !log.Done
	if c.Note != "" {
		log.Note = c.Note
	}
	updated, err := ctx.Planner.UpsertHabitLog(log)
	if err != nil {
		return err
	}

	state := "not done"
	if updated.Done {
		state = "done"
	}
	fmt.Printf("%s: %s on %s\n", habit.Title, state, date)
	return nil
}

// HabitToggleCmd flips a habit between active and inactive.
type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Planner.GetHabit(c.ID)
	if err != nil {
		return err
	}

	habit.Active = !habit.Active
	updated, err := ctx.Planner.UpsertHabit(habit)
	if err != nil {
		return err
	}

	state := "inactive"
	if updated.Active {
		state = "active"
	}
	fmt.Printf("Habit %s is now %s\n", updated.Title, state)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Planner.GetHabit(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Planner.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s (logs kept)\n", habit.Title)
	return nil
}
