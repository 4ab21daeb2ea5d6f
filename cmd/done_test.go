package cmd

import (
	"testing"

	"dayboard/internal/model"
)

func TestFindTask(t *testing.T) {
	doc := model.DefaultDocument()
	doc.Tasks = []model.Task{
		{ID: "abc12345-0000", Title: "A"},
		{ID: "abd67890-0000", Title: "B"},
	}

	task, err := findTask(doc, "abc12345-0000")
	if err != nil || task.Title != "A" {
		t.Errorf("exact id lookup = (%+v, %v), want A", task, err)
	}

	task, err = findTask(doc, "abd")
	if err != nil || task.Title != "B" {
		t.Errorf("unique prefix lookup = (%+v, %v), want B", task, err)
	}

	if _, err = findTask(doc, "ab"); err == nil {
		t.Error("ambiguous prefix: expected error")
	}
	if _, err = findTask(doc, "zzz"); err == nil {
		t.Error("unknown id: expected error")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("abc12345-0000-0000"); got != "abc12345" {
		t.Errorf("shortID = %q, want %q", got, "abc12345")
	}
	if got := shortID("ab"); got != "ab" {
		t.Errorf("shortID of a short id = %q, want unchanged", got)
	}
}
