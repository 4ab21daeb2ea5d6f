package store

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"dayboard/internal/model"
	"dayboard/internal/storage"
)

// Store owns the canonical in-memory document and routes every mutation
// through a save. It is the only writer of the persisted blob.
//
// Load problems are never fatal: an absent or unreadable blob yields the
// default document. Save problems are logged and swallowed, so the in-memory
// document may run ahead of disk until the next successful save.
type Store struct {
	blob *storage.Blob
	doc  model.Document

	timeFunc func() time.Time
	newID    func() string
}

// Open materializes the document from the blob, repairing or defaulting as
// needed.
func Open(blob *storage.Blob) *Store {
	s := &Store{
		blob:     blob,
		timeFunc: time.Now,
		newID:    uuid.NewString,
	}
	s.doc = load(blob)
	return s
}

// SetTimeFunc overrides the clock used for task timestamps. Tests use this
// for deterministic createdAt values.
func (s *Store) SetTimeFunc(fn func() time.Time) {
	s.timeFunc = fn
}

// partialDocument distinguishes absent top-level fields from present-but-empty
// ones, so each can be defaulted individually.
type partialDocument struct {
	Tasks     *[]model.Task      `json:"tasks"`
	Timetable *map[string]string `json:"timetable"`
	Settings  *model.Settings    `json:"settings"`
	Timer     *model.TimerState  `json:"timer"`
}

func load(blob *storage.Blob) model.Document {
	data, ok, err := blob.Read()
	if err != nil {
		log.Printf("dayboard: reading document: %v (starting from defaults)", err)
		return model.DefaultDocument()
	}
	if !ok {
		return model.DefaultDocument()
	}

	var partial partialDocument
	if err := json.Unmarshal(data, &partial); err != nil {
		log.Printf("dayboard: document is not valid JSON: %v (starting from defaults)", err)
		if qErr := blob.Quarantine(); qErr != nil {
			log.Printf("dayboard: %v", qErr)
		}
		return model.DefaultDocument()
	}

	doc := model.DefaultDocument()
	if partial.Tasks != nil {
		doc.Tasks = *partial.Tasks
	}
	if partial.Timetable != nil {
		doc.Timetable = *partial.Timetable
	}
	if partial.Settings != nil {
		doc.Settings = *partial.Settings
		if strings.TrimSpace(doc.Settings.UserName) == "" {
			doc.Settings.UserName = model.DefaultUserName
		}
	}
	if partial.Timer != nil {
		doc.Timer = *partial.Timer
		if doc.Timer.Seconds < 0 || doc.Timer.Seconds > model.FullTimerSeconds {
			doc.Timer = model.DefaultTimer()
		}
	}
	return doc
}

// Document returns a read copy of the current document. The contained slices
// and maps are shared; callers treat them as read views.
func (s *Store) Document() model.Document {
	return s.doc
}

func (s *Store) save() {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		log.Printf("dayboard: encoding document: %v (changes kept in memory)", err)
		return
	}
	if err := s.blob.Write(data); err != nil {
		log.Printf("dayboard: saving document: %v (changes kept in memory)", err)
	}
}

// AddTask creates and appends a task. A title that trims to empty is a no-op
// and returns ok=false. due is an ISO date (YYYY-MM-DD) or empty for none.
func (s *Store) AddTask(title string, priority model.Priority, due string) (task model.Task, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, false
	}
	if priority == "" {
		priority = model.PriorityMedium
	}
	task = model.Task{
		ID:        s.newID(),
		Title:     title,
		Priority:  priority,
		Completed: false,
		CreatedAt: s.timeFunc(),
	}
	if due != "" {
		task.DueDate = &due
	}
	s.doc.Tasks = append(s.doc.Tasks, task)
	s.save()
	return task, true
}

// ToggleTask flips the completed flag of the task with the given id. Unknown
// ids are a no-op.
func (s *Store) ToggleTask(id string) {
	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == id {
			s.doc.Tasks[i].Completed = !s.doc.Tasks[i].Completed
			break
		}
	}
	s.save()
}

// DeleteTask removes the task with the given id. Unknown ids are a no-op.
func (s *Store) DeleteTask(id string) {
	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == id {
			s.doc.Tasks = append(s.doc.Tasks[:i], s.doc.Tasks[i+1:]...)
			break
		}
	}
	s.save()
}

// SetTimetableEntry stores text for the given hour. Hours are not range
// checked here; out-of-range keys round-trip through the blob but are never
// displayed. Text that trims to empty clears the slot.
func (s *Store) SetTimetableEntry(hour int, text string) {
	key := strconv.Itoa(hour)
	if strings.TrimSpace(text) == "" {
		delete(s.doc.Timetable, key)
	} else {
		s.doc.Timetable[key] = text
	}
	s.save()
}

// SetDarkMode updates the dark-mode preference.
func (s *Store) SetDarkMode(on bool) {
	s.doc.Settings.DarkMode = on
	s.save()
}

// SetUserName updates the display name. A name that trims to empty is coerced
// to the default.
func (s *Store) SetUserName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultUserName
	}
	s.doc.Settings.UserName = name
	s.save()
}

// UpdateTimer applies fn to the timer state and saves. The timer state
// machine routes every tick and transition through here, so a running
// countdown is persisted second by second.
func (s *Store) UpdateTimer(fn func(*model.TimerState)) {
	fn(&s.doc.Timer)
	s.save()
}
