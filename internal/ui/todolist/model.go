package todolist

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/todo/internal/keys"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/theme"
	"github.com/nhle/todo/internal/viewmodel"
)

// TodosLoadedMsg is sent when todos and counts have been read. Err is
// set when the read failed; the root model surfaces it in the status bar.
type TodosLoadedMsg struct {
	Todos []model.Todo
	All   int
	Today int
	Err   error
}

// AddRequestedMsg asks the root model to open the create form.
type AddRequestedMsg struct{}

// EditRequestedMsg asks the root model to open the edit form for a todo.
type EditRequestedMsg struct {
	Todo model.Todo
}

// ToggleRequestedMsg asks the root model to flip a todo's completion.
type ToggleRequestedMsg struct {
	ID string
}

// DeleteRequestedMsg asks the root model to delete a todo.
type DeleteRequestedMsg struct {
	ID string
}

// Model is the todo list view component.
type Model struct {
	list   list.Model
	vm     *viewmodel.ViewModel
	keys   *keys.KeyMap
	all    int
	today  int
	width  int
	height int
}

// New creates a new todo list model.
func New(vm *viewmodel.ViewModel, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height)
	l.Title = "Todos"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		vm:     vm,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the initial set of todos.
func (m Model) Init() tea.Cmd {
	return m.LoadTodos()
}

// Update handles messages for the todo list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TodosLoadedMsg:
		if msg.Err != nil && msg.Todos == nil {
			// Keep showing whatever was last loaded; the root model
			// reports the failure.
			return m, nil
		}
		items := make([]list.Item, len(msg.Todos))
		for i, todo := range msg.Todos {
			items[i] = TodoItem{Todo: todo}
		}
		m.all = msg.All
		m.today = msg.Today
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKeys processes key input for the list view.
func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m, func() tea.Msg { return AddRequestedMsg{} }

	case key.Matches(msg, m.keys.Edit):
		item, ok := m.list.SelectedItem().(TodoItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return EditRequestedMsg{Todo: item.Todo} }

	case key.Matches(msg, m.keys.Toggle):
		item, ok := m.list.SelectedItem().(TodoItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return ToggleRequestedMsg{ID: item.Todo.ID} }

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.list.SelectedItem().(TodoItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return DeleteRequestedMsg{ID: item.Todo.ID} }

	case key.Matches(msg, m.keys.FilterAll):
		m.vm.SetFilter(model.FilterAll)
		return m, m.LoadTodos()

	case key.Matches(msg, m.keys.FilterToday):
		m.vm.SetFilter(model.FilterToday)
		return m, m.LoadTodos()
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the todo list view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

// renderEmptyState shows guidance text when no todos are visible.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.vm.Filter() == model.FilterToday && m.all > 0 {
		return style.Render("Nothing created today.\nPress 1 to show all todos.")
	}

	return style.Render("No todos yet.\n\nPress a to add one.")
}

// Counts returns the All and Today counts from the last load.
func (m Model) Counts() (all, today int) {
	return m.all, m.today
}

// LoadTodos returns a tea.Cmd that reads the filtered snapshot and the
// counts from the viewmodel.
func (m Model) LoadTodos() tea.Cmd {
	vm := m.vm
	return func() tea.Msg {
		ctx := context.Background()
		todos, err := vm.List(ctx)
		if err != nil {
			return TodosLoadedMsg{Err: err}
		}
		all, today, err := vm.Counts(ctx)
		if err != nil {
			return TodosLoadedMsg{Todos: todos, Err: err}
		}
		return TodosLoadedMsg{Todos: todos, All: all, Today: today}
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}
