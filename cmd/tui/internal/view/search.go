package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hestiadash/hestia/internal/bang"
)

// SearchModel resolves a query through the owner's bangs and shows where it
// would redirect. Resolving counts as a use.
type SearchModel struct {
	CommonModel
	svc *bang.Service

	form  *huh.Form
	query *string

	bangs     []*bang.Bang
	result    *bang.Resolution
	err       error
	loading   bool
	resolving bool
}

func NewSearchModel(svc *bang.Service, common CommonModel) SearchModel {
	m := SearchModel{CommonModel: common, svc: svc, loading: true}
	m.form = m.newForm()

	return m
}

func (m *SearchModel) newForm() *huh.Form {
	m.query = new(string)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Placeholder("!bang terms").
				Value(m.query),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m SearchModel) Title() string { return "Search" }

func (m SearchModel) ShortHelp() string { return "Enter: resolve | Esc: back" }

func (m SearchModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.loadBangsCmd())
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBangsMsg:
		m.loading = false
		m.bangs = msg.bangs

		if msg.err != nil {
			m.err = msg.err
		}

		return m, nil

	case resolvedMsg:
		m.resolving = false
		m.result = msg.res
		m.err = msg.err
		m.form = m.newForm()

		return m, tea.Batch(m.form.Init(), m.loadBangsCmd())

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.resolving {
		m.resolving = true
		return m, m.resolveCmd(*m.query)
	}

	return m, cmd
}

func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Search") + "\n\n")
	b.WriteString(m.form.View() + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	case m.result != nil:
		via := "!" + m.result.Bang
		if m.result.Default {
			via = "default"
		}

		b.WriteString(headerStyle.Render("Redirect") + faintStyle.Render(" via "+via) + "\n")
		b.WriteString(m.result.URL + "\n")
	}

	b.WriteString("\n" + headerStyle.Render("Bangs") + "\n")

	if m.loading {
		b.WriteString(faintStyle.Render("  loading...") + "\n")
	}

	for _, bg := range m.bangs {
		fmt.Fprintf(&b, "  %-12s %-50s %s\n", bang.Prefix+bg.Name, bg.URL, faintStyle.Render(fmt.Sprintf("%d uses", bg.Uses)))
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String() + "\n" + m.ShortHelp())
}

type loadBangsMsg struct {
	bangs []*bang.Bang
	err   error
}

func (m SearchModel) loadBangsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		bangs, err := m.svc.List(ctx, m.Owner)

		return loadBangsMsg{bangs: bangs, err: err}
	}
}

type resolvedMsg struct {
	res *bang.Resolution
	err error
}

func (m SearchModel) resolveCmd(query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.Resolve(ctx, m.Owner, query)

		return resolvedMsg{res: res, err: err}
	}
}
