package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/keys"
	"github.com/nhle/todo/internal/theme"
	"github.com/nhle/todo/internal/ui"
	"github.com/nhle/todo/internal/ui/todoform"
	"github.com/nhle/todo/internal/ui/todolist"
	"github.com/nhle/todo/internal/viewmodel"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewForm
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the viewmodel.
type Model struct {
	currentView   ViewState
	layout        ui.Layout
	vm            *viewmodel.ViewModel
	keys          *keys.KeyMap
	todoList      todolist.Model
	todoForm      todoform.Model
	statusMessage string
	statusIsError bool
	showFullHelp  bool
	ready         bool
}

// New creates a new root application model over the given viewmodel.
func New(vm *viewmodel.ViewModel) Model {
	k := keys.DefaultKeyMap()

	return Model{
		currentView: ViewList,
		vm:          vm,
		keys:        k,
		todoList:    todolist.New(vm, k, 80, 24),
		todoForm:    todoform.New(80, 24),
	}
}

// Init returns the initial command to load the todo list.
func (m Model) Init() tea.Cmd {
	return m.todoList.Init()
}

// Update routes messages to the active view and handles the messages
// that cross view boundaries.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.todoList.SetSize(m.layout.ContentWidth(), m.layout.ContentHeight())
		m.todoForm.SetSize(m.layout.ContentWidth(), m.layout.ContentHeight())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.currentView == ViewList {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			if key.Matches(msg, m.keys.Help) {
				m.showFullHelp = !m.showFullHelp
				return m, nil
			}
		}

	case todolist.TodosLoadedMsg:
		if msg.Err != nil {
			m.statusMessage = m.vm.UserMessage(msg.Err)
			m.statusIsError = true
		}
		// Always deliver to the list, whichever view is active.
		var cmd tea.Cmd
		m.todoList, cmd = m.todoList.Update(msg)
		return m, cmd

	case todolist.AddRequestedMsg:
		m.currentView = ViewForm
		m.statusMessage = ""
		return m, m.todoForm.StartCreate()

	case todolist.EditRequestedMsg:
		m.currentView = ViewForm
		m.statusMessage = ""
		return m, m.todoForm.StartEdit(msg.Todo)

	case todolist.ToggleRequestedMsg:
		return m, m.toggleTodo(msg.ID)

	case todolist.DeleteRequestedMsg:
		return m, m.deleteTodo(msg.ID)

	case todoform.TodoSubmittedMsg:
		m.currentView = ViewList
		return m, m.saveTodo(msg)

	case todoform.FormCancelMsg:
		m.currentView = ViewList
		return m, nil

	case todoSavedMsg:
		return m.finishMutation(msg.err)

	case todoToggledMsg:
		return m.finishMutation(msg.err)

	case todoDeletedMsg:
		return m.finishMutation(msg.err)
	}

	return m.updateActiveView(msg)
}

// finishMutation records the outcome of a store mutation in the status
// bar and reloads the list so the view reflects whatever was persisted.
func (m Model) finishMutation(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.statusMessage = m.vm.UserMessage(err)
		m.statusIsError = true
	} else {
		m.statusMessage = ""
		m.statusIsError = false
	}
	return m, m.todoList.LoadTodos()
}

// updateActiveView delegates a message to the currently visible view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewForm:
		m.todoForm, cmd = m.todoForm.Update(msg)
	default:
		m.todoList, cmd = m.todoList.Update(msg)
	}
	return m, cmd
}

// View renders the header, the active view, and the status bar.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	all, today := m.todoList.Counts()
	summary := fmt.Sprintf("%s · %d all · %d today", m.vm.Filter(), all, today)
	header := m.layout.RenderHeader("Todos", summary)

	var content string
	switch m.currentView {
	case ViewForm:
		content = m.todoForm.View()
	default:
		content = m.todoList.View()
	}

	return header + "\n" + content + "\n" + m.renderStatusBar()
}

// renderStatusBar shows the last error message if one is pending,
// otherwise the keyboard hints.
func (m Model) renderStatusBar() string {
	if m.statusMessage != "" {
		msg := m.statusMessage
		if m.statusIsError {
			msg = theme.ErrorStyle.Render(msg)
		}
		return m.layout.RenderStatusBar(msg)
	}
	return m.layout.RenderStatusBar(m.renderHints())
}

// renderHints joins the keymap help entries into a single hint line.
func (m Model) renderHints() string {
	bindings := m.keys.ShortHelp()
	if m.showFullHelp {
		bindings = nil
		for _, group := range m.keys.FullHelp() {
			bindings = append(bindings, group...)
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
