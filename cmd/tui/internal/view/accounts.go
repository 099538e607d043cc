package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hestiadash/hestia/internal/ledger"
)

type accountState int

const (
	accountStateBrowse accountState = iota
	accountStateTransfer
	accountStateCreate
	accountStateHistory
)

type transferFields struct {
	from   string
	to     string
	amount string
	reason string
}

type AccountsModel struct {
	CommonModel
	svc          *ledger.Service
	historyLimit int

	state    accountState
	table    table.Model
	accounts []ledger.Summary
	form     *huh.Form
	history  HistoryModel

	transfer *transferFields
	newName  *string

	loading bool
	err     error
	status  string
}

func NewAccountsModel(svc *ledger.Service, historyLimit int, common CommonModel) AccountsModel {
	columns := []table.Column{
		{Title: "Account", Width: 30},
		{Title: "Balance", Width: 14},
	}

	return AccountsModel{
		CommonModel:  common,
		svc:          svc,
		historyLimit: historyLimit,
		table:        newTable(columns),
		loading:      true,
	}
}

func (m AccountsModel) Title() string { return "Accounts" }

func (m AccountsModel) ShortHelp() string {
	switch m.state {
	case accountStateTransfer, accountStateCreate:
		return "Navigate form | Esc: cancel"
	case accountStateHistory:
		return m.history.ShortHelp()
	}

	return "Esc: back | Enter: history | t: transfer | n: new account | r: refresh"
}

func (m AccountsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAccountsMsg:
		m.loading = false
		m.err = msg.err
		m.accounts = msg.accounts
		m.refreshTable()

		return m, nil

	case accountWriteMsg:
		m.state = accountStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = msg.status

		return m, m.loadCmd()

	case closeHistoryMsg:
		m.state = accountStateBrowse
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
	}

	switch m.state {
	case accountStateTransfer, accountStateCreate:
		return m.updateForm(msg)
	case accountStateHistory:
		h, cmd := m.history.Update(msg)
		m.history = h.(HistoryModel)

		return m, cmd
	}

	return m.updateBrowse(msg)
}

func (m AccountsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "t":
			return m.enterTransferMode()
		case "n":
			return m.enterCreateMode()
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.accounts) {
				return m, nil
			}

			m.history = NewHistoryModel(m.svc, m.accounts[idx].ID, m.historyLimit, m.CommonModel)
			m.state = accountStateHistory
			m.table.Blur()

			return m, m.history.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AccountsModel) enterTransferMode() (tea.Model, tea.Cmd) {
	options := []huh.Option[string]{huh.NewOption("(outside world)", ledger.ExternalAccount)}
	for _, a := range m.accounts {
		options = append(options, huh.NewOption(a.Name, a.Name))
	}

	m.transfer = &transferFields{from: ledger.ExternalAccount, to: ledger.ExternalAccount}

	if idx := m.table.Cursor(); idx >= 0 && idx < len(m.accounts) {
		m.transfer.from = m.accounts[idx].Name
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("From").
				Options(options...).
				Value(&m.transfer.from),

			huh.NewSelect[string]().
				Title("To").
				Options(options...).
				Value(&m.transfer.to),

			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&m.transfer.amount).
				Validate(func(s string) error {
					_, err := ledger.ParseAmount(s)
					return err
				}),

			huh.NewInput().
				Title("Reason").
				Value(&m.transfer.reason),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = accountStateTransfer
	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m AccountsModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.newName = new(string)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account name").
				Value(m.newName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = accountStateCreate
	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m AccountsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = accountStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == accountStateCreate {
		return m, m.createCmd(*m.newName)
	}

	return m, m.transferCmd(*m.transfer)
}

func (m *AccountsModel) refreshTable() {
	rows := make([]table.Row, len(m.accounts))
	for i, a := range m.accounts {
		rows[i] = table.Row{a.Name, FormatBalance(a.Cents)}
	}

	m.table.SetRows(rows)
}

func (m AccountsModel) View() string {
	if m.state == accountStateHistory {
		return m.history.View()
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	var total int64
	for _, a := range m.accounts {
		total += a.Cents
	}

	header := titleStyle.Render("Accounts") + faintStyle.Render(fmt.Sprintf("  total %s", FormatBalance(total)))

	content := framed(m.table.View())

	if m.form != nil {
		title := "Transfer"
		if m.state == accountStateCreate {
			title = "New Account"
		}

		panel := panelStyle.Width(48).Render(title + "\n\n" + m.form.View())
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", panel)
	}

	status := ""
	if m.status != "" {
		status = "\n" + faintStyle.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + content + status + "\n" + m.ShortHelp())
}

// Messages

type loadAccountsMsg struct {
	accounts []ledger.Summary
	err      error
}

func (m AccountsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.svc.ListAccounts(ctx, m.Owner)

		return loadAccountsMsg{accounts: accounts, err: err}
	}
}

type accountWriteMsg struct {
	status string
	err    error
}

func (m AccountsModel) transferCmd(fields transferFields) tea.Cmd {
	return func() tea.Msg {
		amount, err := ledger.ParseAmount(fields.amount)
		if err != nil {
			return accountWriteMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err = m.svc.Transfer(ctx, ledger.TransferParams{
			Owner:  m.Owner,
			From:   fields.from,
			To:     fields.to,
			Amount: amount,
			Reason: fields.reason,
		})
		if err != nil {
			return accountWriteMsg{err: err}
		}

		return accountWriteMsg{status: fmt.Sprintf("Transferred %s", ledger.TransactionAmount(amount))}
	}
}

func (m AccountsModel) createCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		a, err := m.svc.CreateAccount(ctx, m.Owner, name)
		if err != nil {
			return accountWriteMsg{err: err}
		}

		return accountWriteMsg{status: fmt.Sprintf("Created %s", a.Name)}
	}
}
