package plan

import (
	"fmt"
	"math"
	"sort"
	"time"

	"dayboard/internal/model"
)

// Displayed timetable hours. Keys outside this range may exist in the
// document but are never rendered.
const (
	FirstHour = 6
	LastHour  = 22
)

// Filter selects tasks by completion state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps a flag value to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterActive, FilterCompleted:
		return Filter(s), nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// DateOf formats t as an ISO calendar date (YYYY-MM-DD).
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// TasksDueOn returns the tasks due on the given ISO date, in store order.
func TasksDueOn(doc model.Document, date string) []model.Task {
	var out []model.Task
	for _, t := range doc.Tasks {
		if t.DueDate != nil && *t.DueDate == date {
			out = append(out, t)
		}
	}
	return out
}

// SortForDisplay orders tasks for display: incomplete before completed, ties
// by ascending due date, tasks with a due date before tasks without one.
// The sort is stable, so otherwise-equal tasks keep their store order. The
// input is not modified.
func SortForDisplay(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			return *a.DueDate < *b.DueDate
		case a.DueDate != nil:
			return true
		default:
			return false
		}
	})
	return out
}

// FilterByStatus keeps the tasks matching the filter.
func FilterByStatus(tasks []model.Task, f Filter) []model.Task {
	if f == FilterAll {
		return tasks
	}
	var out []model.Task
	for _, t := range tasks {
		if t.Completed == (f == FilterCompleted) {
			out = append(out, t)
		}
	}
	return out
}

// Progress summarizes completion of the tasks due on a date.
type Progress struct {
	Percentage int
	Completed  int
	Total      int
}

// DailyProgress computes completion of the tasks due on the given date.
// A date with no due tasks yields zero percent, not an error.
func DailyProgress(doc model.Document, date string) Progress {
	due := TasksDueOn(doc, date)
	p := Progress{Total: len(due)}
	for _, t := range due {
		if t.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
	}
	return p
}

// WeekDates returns the 7 ISO dates Monday through Sunday of the week
// containing ref, Monday first regardless of locale.
func WeekDates(ref time.Time) []string {
	// Go's weekday: Sunday=0, Monday=1, ..., Saturday=6
	wd := int(ref.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := ref.AddDate(0, 0, -(wd - 1))
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, ref.Location())

	dates := make([]string, 7)
	for i := range dates {
		dates[i] = DateOf(monday.AddDate(0, 0, i))
	}
	return dates
}

// HourBlock is one displayed timetable row.
type HourBlock struct {
	Hour    int
	Text    string
	Current bool
}

// HourlyBlocks returns the fixed hour range with each slot's text and a flag
// marking the current wall-clock hour.
func HourlyBlocks(doc model.Document, now time.Time) []HourBlock {
	blocks := make([]HourBlock, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		blocks = append(blocks, HourBlock{
			Hour:    h,
			Text:    doc.Timetable[fmt.Sprintf("%d", h)],
			Current: h == now.Hour(),
		})
	}
	return blocks
}

// DayColumn is one day of the weekly board.
type DayColumn struct {
	Date  string
	Tasks []model.Task
}

// WeeklyBoard pairs each date of the week containing ref with its due tasks
// in display order.
func WeeklyBoard(doc model.Document, ref time.Time) []DayColumn {
	dates := WeekDates(ref)
	board := make([]DayColumn, 0, len(dates))
	for _, d := range dates {
		board = append(board, DayColumn{
			Date:  d,
			Tasks: SortForDisplay(TasksDueOn(doc, d)),
		})
	}
	return board
}
