// Package tui is the interactive terminal front end. A single root model
// switches between the auth form and the task board, runs API calls as
// background commands, and keeps at most one request in flight.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okarpov/taskdeck/internal/client/api"
	"github.com/okarpov/taskdeck/internal/client/services"
	"github.com/okarpov/taskdeck/internal/common"
)

type view int

const (
	viewAuth view = iota
	viewBoard
)

const noticeTTL = 3 * time.Second

type (
	authDoneMsg struct {
		signup   bool
		username string
		err      error
	}
	tasksLoadedMsg struct {
		tasks []api.Task
		err   error
	}
	taskSavedMsg struct {
		task *api.Task
		err  error
	}
	taskDeletedMsg struct {
		id  string
		err error
	}
	loggedOutMsg   struct{}
	clearNoticeMsg struct{ id int }
)

// Model is the root Bubble Tea model.
type Model struct {
	auth  *services.AuthService
	tasks *services.TaskService

	view   view
	busy   bool
	width  int
	height int

	authView  authModel
	boardView boardModel

	notice    string
	noticeErr bool
	noticeID  int
}

// NewModel builds the root model. When resumed is true the client
// already has a session and the board is shown right away.
func NewModel(auth *services.AuthService, tasks *services.TaskService, resumed bool) Model {
	m := Model{
		auth:      auth,
		tasks:     tasks,
		view:      viewAuth,
		authView:  newAuthModel(),
		boardView: newBoardModel(auth.Username()),
	}
	if resumed {
		m.view = viewBoard
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.view == viewBoard {
		return m.loadTasks()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.boardView.setSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view == viewBoard && msg.String() == "q" &&
			m.boardView.mode == modeBrowse && !m.boardView.list.SettingFilter() {
			return m, tea.Quit
		}
		// Drop input while a request is running so at most one call is
		// in flight.
		if m.busy {
			return m, nil
		}

	case submitAuthMsg:
		m.busy = true
		return m, m.runAuth(msg)

	case authDoneMsg:
		return m.handleAuthDone(msg)

	case submitTaskMsg:
		m.busy = true
		return m, m.saveTask(msg.task)

	case requestMsg:
		return m.handleRequest(msg)

	case tasksLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m.handleAPIError(msg.err)
		}
		m.boardView.setTasks(msg.tasks)
		return m, nil

	case taskSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m.handleAPIError(msg.err)
		}
		m.boardView.upsertTask(*msg.task)
		return m, nil

	case taskDeletedMsg:
		m.busy = false
		if msg.err != nil {
			// The row is already gone server-side, drop it locally too.
			if errors.Is(msg.err, common.ErrNotFound) {
				m.boardView.removeTask(msg.id)
				return m, nil
			}
			return m.handleAPIError(msg.err)
		}
		m.boardView.removeTask(msg.id)
		return m, nil

	case loggedOutMsg:
		m.busy = false
		return m.toAuth("")

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m.routeToView(msg)
}

func (m Model) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewAuth:
		m.authView, cmd = m.authView.Update(msg)
	case viewBoard:
		m.boardView, cmd = m.boardView.Update(msg)
	}
	return m, cmd
}

func (m Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		var fieldErrs *api.FieldErrors
		switch {
		case errors.As(msg.err, &fieldErrs):
			m.authView.setFieldErrors(fieldErrs.Fields)
			return m, nil
		case errors.Is(msg.err, api.ErrUnauthorized):
			return m.showError("wrong username or password")
		case errors.Is(msg.err, common.ErrAlreadyExists):
			return m.showError("that username is taken")
		case errors.Is(msg.err, api.ErrUnavailable):
			return m.showError("server unavailable, try again")
		default:
			return m.showError(msg.err.Error())
		}
	}

	if msg.signup {
		// Account created, log in with the same credentials next.
		m.authView.mode = modeLogin
		return m.showNotice("account created, log in")
	}

	m.boardView = newBoardModel(msg.username)
	m.boardView.setSize(m.width-4, m.height-4)
	m.view = viewBoard
	m.busy = true
	return m, m.loadTasks()
}

func (m Model) handleRequest(msg requestMsg) (tea.Model, tea.Cmd) {
	switch msg.action {
	case "toggle":
		m.busy = true
		t := msg.task
		return m, func() tea.Msg {
			saved, err := m.tasks.Toggle(context.Background(), t)
			return taskSavedMsg{task: saved, err: err}
		}
	case "delete":
		m.busy = true
		id := msg.task.ID
		return m, func() tea.Msg {
			err := m.tasks.Delete(context.Background(), id)
			return taskDeletedMsg{id: id, err: err}
		}
	case "reload":
		m.busy = true
		return m, m.loadTasks()
	case "logout":
		m.busy = true
		return m, func() tea.Msg {
			_ = m.auth.Logout(context.Background())
			return loggedOutMsg{}
		}
	}
	return m, nil
}

// handleAPIError routes request failures: an expired session returns to
// the auth form, field errors land on the open form, everything else
// becomes a transient notice.
func (m Model) handleAPIError(err error) (tea.Model, tea.Cmd) {
	var fieldErrs *api.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		m.boardView.setFieldErrors(fieldErrs.Fields)
		return m, nil
	case errors.Is(err, api.ErrUnauthorized):
		return m.toAuth("session expired, log in again")
	case errors.Is(err, api.ErrUnavailable):
		return m.showError("server unavailable, try again")
	case errors.Is(err, common.ErrNotFound):
		return m.showError("task no longer exists, reload with r")
	default:
		return m.showError(err.Error())
	}
}

func (m Model) toAuth(notice string) (tea.Model, tea.Cmd) {
	_ = m.auth.Logout(context.Background())
	m.view = viewAuth
	m.authView.reset()
	if notice != "" {
		return m.showError(notice)
	}
	return m, nil
}

func (m Model) runAuth(msg submitAuthMsg) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if msg.signup {
			err = m.auth.Signup(ctx, msg.username, msg.password)
		} else {
			err = m.auth.Login(ctx, msg.username, msg.password)
		}
		return authDoneMsg{signup: msg.signup, username: msg.username, err: err}
	}
}

func (m Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.tasks.List(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m Model) saveTask(t api.Task) tea.Cmd {
	return func() tea.Msg {
		var (
			saved *api.Task
			err   error
		)
		if t.ID == "" {
			saved, err = m.tasks.Create(context.Background(), t.Title, t.Description)
		} else {
			saved, err = m.tasks.Update(context.Background(), &t)
		}
		return taskSavedMsg{task: saved, err: err}
	}
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeErr = false
	m.noticeID++
	return m, m.expireNotice()
}

func (m Model) showError(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeErr = true
	m.noticeID++
	return m, m.expireNotice()
}

func (m Model) expireNotice() tea.Cmd {
	id := m.noticeID
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func (m Model) View() string {
	var content string
	switch m.view {
	case viewAuth:
		content = m.authView.View()
	case viewBoard:
		content = m.boardView.View()
	}

	if m.busy {
		content += "\n" + mutedStyle.Render("…")
	}
	if m.notice != "" {
		bar := successStyle.Render(m.notice)
		if m.noticeErr {
			bar = errorStyle.Render(m.notice)
		}
		content += "\n" + bar
	}

	return panelStyle.Render(content)
}
