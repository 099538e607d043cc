package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hestiadash/hestia/internal/reminder"
)

type reminderState int

const (
	reminderStateBrowse reminderState = iota
	reminderStateAdd
)

// reminderFields lives behind a pointer so the form bindings survive model copies.
type reminderFields struct {
	reason string
	kind   string
	date   string
}

type ReminderModel struct {
	CommonModel
	svc *reminder.Service

	state   reminderState
	buckets reminder.Buckets
	form    *huh.Form
	fields  *reminderFields

	loading bool
	err     error
	status  string
}

func NewReminderModel(svc *reminder.Service, common CommonModel) ReminderModel {
	return ReminderModel{CommonModel: common, svc: svc, loading: true}
}

func (m ReminderModel) Title() string { return "Reminders" }

func (m ReminderModel) ShortHelp() string {
	if m.state == reminderStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add | r: refresh"
}

func (m ReminderModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ReminderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRemindersMsg:
		m.loading = false
		m.err = msg.err
		m.buckets = msg.buckets

		return m, nil

	case reminderSavedMsg:
		m.state = reminderStateBrowse
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Reminder added"
		m.loading = true

		return m, m.loadCmd()
	}

	if m.state == reminderStateAdd {
		return m.updateAdd(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		}
	}

	return m, nil
}

func (m ReminderModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.fields = &reminderFields{kind: string(reminder.KindNone), date: time.Now().Format(time.DateOnly)}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reason").
				Value(&m.fields.reason).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("reason cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Repeats").
				Options(
					huh.NewOption("Never", string(reminder.KindNone)),
					huh.NewOption("Every day", string(reminder.KindDay)),
					huh.NewOption("Every week", string(reminder.KindWeek)),
					huh.NewOption("Every month", string(reminder.KindMonth)),
					huh.NewOption("Every year", string(reminder.KindYear)),
				).
				Value(&m.fields.kind),

			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&m.fields.date).
				Validate(func(s string) error {
					_, err := time.Parse(time.DateOnly, s)
					return err
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = reminderStateAdd
	m.status = ""

	return m, m.form.Init()
}

func (m ReminderModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = reminderStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd(*m.fields)
}

func (m ReminderModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading reminders...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	sections := []struct {
		title   string
		entries []reminder.Entry
	}{
		{"Upcoming", m.buckets.NonRecurring},
		{"Daily", m.buckets.Daily},
		{"Weekly", m.buckets.Weekly},
		{"Monthly", m.buckets.Monthly},
		{"Yearly", m.buckets.Yearly},
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Reminders") + "\n")

	for _, s := range sections {
		b.WriteString("\n" + headerStyle.Render(s.title) + "\n")

		if len(s.entries) == 0 {
			b.WriteString(faintStyle.Render("  nothing") + "\n")
			continue
		}

		for _, e := range s.entries {
			fmt.Fprintf(&b, "  %-16s %s\n", e.Label, e.Reason)
		}
	}

	content := b.String()

	if m.state == reminderStateAdd && m.form != nil {
		panel := panelStyle.Width(48).Render("New Reminder\n\n" + m.form.View())
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// Messages

type loadRemindersMsg struct {
	buckets reminder.Buckets
	err     error
}

func (m ReminderModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		buckets, err := m.svc.Upcoming(ctx, m.Owner, time.Now())

		return loadRemindersMsg{buckets: buckets, err: err}
	}
}

type reminderSavedMsg struct {
	err error
}

func (m ReminderModel) saveCmd(fields reminderFields) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		date, err := time.Parse(time.DateOnly, fields.date)
		if err != nil {
			return reminderSavedMsg{err: err}
		}

		_, err = m.svc.Create(ctx, reminder.CreateParams{
			Owner:  m.Owner,
			Reason: fields.reason,
			Kind:   reminder.Kind(fields.kind),
			Date:   date,
		})

		return reminderSavedMsg{err: err}
	}
}
