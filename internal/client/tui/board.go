package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okarpov/taskdeck/internal/client/api"
	"github.com/okarpov/taskdeck/internal/validation"
)

// taskItem adapts an api.Task to bubbles/list.Item.
type taskItem struct {
	task api.Task
}

func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return i.task.Description }
func (i taskItem) FilterValue() string { return i.task.Title }

// taskDelegate renders each task on a single line with a checkbox.
type taskDelegate struct{}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(taskItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.task.Title
	if it.task.Status == api.StatusDone {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type boardMode int

const (
	modeBrowse boardMode = iota
	modeAdd
	modeEdit
)

// submitTaskMsg asks the root model to create or update a task.
type submitTaskMsg struct {
	task api.Task // ID empty means create
}

// requestMsg asks the root model to run a board action.
type requestMsg struct {
	action string // "toggle", "delete", "reload", "logout"
	task   *api.Task
}

// boardModel is the task list with its inline add/edit form.
type boardModel struct {
	list list.Model
	mode boardMode

	title       textinput.Model
	description textinput.Model
	formFocus   int
	editID      string
	fieldErrs   validation.Errors

	username string
}

func newBoardModel(username string) boardModel {
	l := list.New(nil, taskDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Tasks")
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	logoutBind := key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out"))
	extra := func() []key.Binding {
		return []key.Binding{addBind, editBind, toggleBind, deleteBind, reloadBind, logoutBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	title := textinput.New()
	title.Prompt = "> "
	title.Placeholder = "title"
	title.CharLimit = validation.MaxTitleLen

	description := textinput.New()
	description.Prompt = "> "
	description.Placeholder = "description (optional)"
	description.CharLimit = validation.MaxDescriptionLen

	return boardModel{
		list:        l,
		title:       title,
		description: description,
		fieldErrs:   validation.Errors{},
		username:    username,
	}
}

func (m *boardModel) setTasks(tasks []api.Task) {
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{task: t})
	}
	m.list.SetItems(items)
	m.refreshHeader()
}

func (m *boardModel) upsertTask(t api.Task) {
	for i, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == t.ID {
			m.list.SetItem(i, taskItem{task: t})
			m.refreshHeader()
			return
		}
	}
	m.list.InsertItem(len(m.list.Items()), taskItem{task: t})
	m.refreshHeader()
}

func (m *boardModel) removeTask(id string) {
	for i, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
			m.list.RemoveItem(i)
			m.refreshHeader()
			return
		}
	}
}

func (m *boardModel) refreshHeader() {
	var done, pending int
	for _, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok {
			if ti.task.Status == api.StatusDone {
				done++
			} else {
				pending++
			}
		}
	}
	m.list.Title = fmt.Sprintf("%s %s  %s %d  %s %d",
		titleStyle.Render("Tasks"),
		mutedStyle.Render(m.username),
		successStyle.Render(boxChecked), done,
		pendingStyle.Render(boxUnchecked), pending,
	)
}

// selected returns the highlighted task. SelectedItem respects an applied
// filter, unlike indexing Items with the visible index.
func (m *boardModel) selected() *api.Task {
	if ti, ok := m.list.SelectedItem().(taskItem); ok {
		t := ti.task
		return &t
	}
	return nil
}

func (m *boardModel) setFieldErrors(errs validation.Errors) {
	m.fieldErrs = errs
	if m.mode == modeBrowse {
		m.mode = modeEdit
	}
}

func (m *boardModel) closeForm() {
	m.mode = modeBrowse
	m.title.SetValue("")
	m.description.SetValue("")
	m.title.Blur()
	m.description.Blur()
	m.fieldErrs = validation.Errors{}
	m.editID = ""
}

func (m boardModel) Update(msg tea.Msg) (boardModel, tea.Cmd) {
	if m.mode != modeBrowse {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch msg.String() {
		case "a":
			m.mode = modeAdd
			m.formFocus = 0
			m.title.Focus()
			return m, nil
		case "e":
			if t := m.selected(); t != nil {
				m.mode = modeEdit
				m.editID = t.ID
				m.title.SetValue(t.Title)
				m.title.CursorEnd()
				m.description.SetValue(t.Description)
				m.formFocus = 0
				m.title.Focus()
			}
			return m, nil
		case " ":
			if t := m.selected(); t != nil {
				return m, func() tea.Msg { return requestMsg{action: "toggle", task: t} }
			}
			return m, nil
		case "d":
			if t := m.selected(); t != nil {
				return m, func() tea.Msg { return requestMsg{action: "delete", task: t} }
			}
			return m, nil
		case "r":
			return m, func() tea.Msg { return requestMsg{action: "reload"} }
		case "ctrl+l":
			return m, func() tea.Msg { return requestMsg{action: "logout"} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m boardModel) updateForm(msg tea.Msg) (boardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "tab", "shift+tab", "up", "down":
			m.formFocus = (m.formFocus + 1) % 2
			if m.formFocus == 0 {
				m.title.Focus()
				m.description.Blur()
			} else {
				m.title.Blur()
				m.description.Focus()
			}
			return m, nil
		case "enter":
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m boardModel) submitForm() (boardModel, tea.Cmd) {
	title := strings.TrimSpace(m.title.Value())
	description := m.description.Value()

	errs := validation.Errors{}
	if msg := validation.TaskTitle(title); msg != "" {
		errs.Add("title", msg)
	}
	if msg := validation.TaskDescription(description); msg != "" {
		errs.Add("description", msg)
	}
	if len(errs) > 0 {
		m.fieldErrs = errs
		return m, nil
	}

	task := api.Task{ID: m.editID, Title: title, Description: description}
	if m.mode == modeEdit {
		if cur := m.findTask(m.editID); cur != nil {
			task.Status = cur.Status
		}
	}

	m.closeForm()
	return m, func() tea.Msg { return submitTaskMsg{task: task} }
}

func (m *boardModel) findTask(id string) *api.Task {
	for _, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
			t := ti.task
			return &t
		}
	}
	return nil
}

func (m *boardModel) setSize(w, h int) {
	listHeight := h - 2
	if m.mode != modeBrowse {
		listHeight = h - 8
	}
	m.list.SetSize(w, listHeight)
}

func (m boardModel) View() string {
	content := m.list.View()

	if m.mode != modeBrowse {
		header := "New task"
		if m.mode == modeEdit {
			header = "Edit task"
		}

		var b strings.Builder
		b.WriteString(header + "\n")
		b.WriteString(m.title.View() + "\n")
		if msg, ok := m.fieldErrs["title"]; ok {
			b.WriteString(errorStyle.Render(msg) + "\n")
		}
		b.WriteString(m.description.View())
		if msg, ok := m.fieldErrs["description"]; ok {
			b.WriteString("\n" + errorStyle.Render(msg))
		}

		content += "\n" + panelStyle.Render(b.String())
	}

	return content
}
