package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/ui/todoform"
)

// todoSavedMsg is sent after an add or edit is persisted.
type todoSavedMsg struct{ err error }

// todoToggledMsg is sent after a completion toggle is persisted.
type todoToggledMsg struct{ err error }

// todoDeletedMsg is sent after a todo is deleted.
type todoDeletedMsg struct{ err error }

// saveTodo persists a form submission: an add when EditID is empty,
// otherwise a rename of the existing todo.
func (m *Model) saveTodo(msg todoform.TodoSubmittedMsg) tea.Cmd {
	vm := m.vm
	return func() tea.Msg {
		ctx := context.Background()
		if msg.EditID != "" {
			return todoSavedMsg{err: vm.Edit(ctx, msg.EditID, msg.Name)}
		}
		return todoSavedMsg{err: vm.Add(ctx, msg.Name, msg.CreatedAt)}
	}
}

// toggleTodo flips a todo between open and complete.
func (m *Model) toggleTodo(id string) tea.Cmd {
	vm := m.vm
	return func() tea.Msg {
		return todoToggledMsg{err: vm.Toggle(context.Background(), id)}
	}
}

// deleteTodo removes a todo from the store.
func (m *Model) deleteTodo(id string) tea.Cmd {
	vm := m.vm
	return func() tea.Msg {
		return todoDeletedMsg{err: vm.Delete(context.Background(), id)}
	}
}
