package todolist

import (
	"testing"
	"time"

	"github.com/nhle/todo/internal/model"
)

func TestTodoItemDescription(t *testing.T) {
	created := time.Date(2026, 8, 27, 10, 0, 0, 0, time.Local)
	item := TodoItem{Todo: model.Todo{Name: "task", CreatedAt: created}}

	if got := item.Description(); got != "Aug 27" {
		t.Errorf("Description() = %q, want %q", got, "Aug 27")
	}

	empty := TodoItem{Todo: model.Todo{Name: "no time"}}
	if got := empty.Description(); got != "" {
		t.Errorf("Description() = %q for zero CreatedAt, want empty", got)
	}
}

func TestTodoItemFilterValue(t *testing.T) {
	item := TodoItem{Todo: model.Todo{Name: "Buy milk"}}
	if got := item.FilterValue(); got != "Buy milk" {
		t.Errorf("FilterValue() = %q, want %q", got, "Buy milk")
	}
}
