package todolist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/theme"
)

// TodoItem wraps a model.Todo so it can be used in a bubbles/list.
type TodoItem struct {
	Todo model.Todo
}

// FilterValue returns the string used for fuzzy filtering.
func (i TodoItem) FilterValue() string { return i.Todo.Name }

// Title returns the todo name for the list.
func (i TodoItem) Title() string { return i.Todo.Name }

// Description returns the created-date line for the list.
func (i TodoItem) Description() string {
	if i.Todo.CreatedAt.IsZero() {
		return ""
	}
	return i.Todo.CreatedAt.Local().Format("Jan 02")
}

// ItemDelegate implements list.ItemDelegate for rendering todo lines.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single todo line: completion glyph, name, created date.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	todoItem, ok := item.(TodoItem)
	if !ok {
		return
	}

	todo := todoItem.Todo

	glyph := "○"
	if todo.Completed {
		glyph = "✓"
	}
	prefix := theme.CheckStyle(todo.Completed).Render(glyph)

	name := todo.Name
	if todo.Completed {
		name = theme.CompletedStyle.Render(name)
	}

	line := prefix + " " + name
	if desc := todoItem.Description(); desc != "" {
		line += "  " + theme.DateStyle.Render(desc)
	}

	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedItemStyle.Render(line))
		return
	}
	fmt.Fprint(w, theme.ListItemStyle.Render(line))
}
