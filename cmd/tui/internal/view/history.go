package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/hestiadash/hestia/internal/ledger"
)

type closeHistoryMsg struct{}

// HistoryModel shows the transactions of a single account.
type HistoryModel struct {
	CommonModel
	svc       *ledger.Service
	accountID uuid.UUID
	limit     int

	table   table.Model
	history *ledger.History
	loading bool
	err     error
}

func NewHistoryModel(svc *ledger.Service, accountID uuid.UUID, limit int, common CommonModel) HistoryModel {
	columns := []table.Column{
		{Title: "Date", Width: 17},
		{Title: "From", Width: 18},
		{Title: "To", Width: 18},
		{Title: "Amount", Width: 12},
		{Title: "Reason", Width: 40},
	}

	return HistoryModel{
		CommonModel: common,
		svc:         svc,
		accountID:   accountID,
		limit:       limit,
		table:       newTable(columns),
		loading:     true,
	}
}

func (m HistoryModel) Title() string { return "History" }

func (m HistoryModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m HistoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadHistoryMsg:
		m.loading = false
		m.err = msg.err
		m.history = msg.history
		m.refreshTable()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return closeHistoryMsg{} }
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *HistoryModel) refreshTable() {
	if m.history == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, len(m.history.Transactions))
	for i, e := range m.history.Transactions {
		amount := outStyle.Render("-" + e.Amount.String())
		if e.Incoming {
			amount = inStyle.Render("+" + e.Amount.String())
		}

		rows[i] = table.Row{e.Date, e.From, e.To, amount, e.Reason}
	}

	m.table.SetRows(rows)
}

func (m HistoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading history...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := titleStyle.Render(m.history.Account) +
		faintStyle.Render(fmt.Sprintf("  balance %s  (%d transactions)", FormatBalance(m.history.Cents), len(m.history.Transactions)))

	return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + framed(m.table.View()) + "\n" + m.ShortHelp())
}

type loadHistoryMsg struct {
	history *ledger.History
	err     error
}

func (m HistoryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		h, err := m.svc.History(ctx, m.Owner, m.accountID, m.limit)

		return loadHistoryMsg{history: h, err: err}
	}
}
