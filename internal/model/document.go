package model

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority maps user input to a Priority. Anything unrecognised
// (including the empty string) falls back to medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Task is a single to-do item. IDs are assigned at creation and never reused.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	DueDate   *string   `json:"dueDate"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings holds user preferences.
type Settings struct {
	DarkMode bool   `json:"darkMode"`
	UserName string `json:"userName"`
}

// DefaultUserName is used whenever no (or a blank) name is configured.
const DefaultUserName = "Student"

// FullTimerSeconds is a complete 25-minute pomodoro countdown.
const FullTimerSeconds = 25 * 60

// TimerState is the persisted pomodoro countdown state.
type TimerState struct {
	Seconds   int  `json:"seconds"`
	IsRunning bool `json:"isRunning"`
}

// Document is the aggregate of all persisted application state. It is owned
// by the document store; everything else receives read copies.
type Document struct {
	Tasks     []Task            `json:"tasks"`
	Timetable map[string]string `json:"timetable"`
	Settings  Settings          `json:"settings"`
	Timer     TimerState        `json:"timer"`
}

// DefaultSettings returns the settings of a fresh document.
func DefaultSettings() Settings {
	return Settings{DarkMode: false, UserName: DefaultUserName}
}

// DefaultTimer returns an idle timer with a full countdown.
func DefaultTimer() TimerState {
	return TimerState{Seconds: FullTimerSeconds, IsRunning: false}
}

// DefaultDocument returns the document used when nothing has been persisted
// yet, or when the persisted blob cannot be read.
func DefaultDocument() Document {
	return Document{
		Tasks:     []Task{},
		Timetable: map[string]string{},
		Settings:  DefaultSettings(),
		Timer:     DefaultTimer(),
	}
}
