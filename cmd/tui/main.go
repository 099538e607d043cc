package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/hestiadash/hestia/cmd/tui/internal/view"
	"github.com/hestiadash/hestia/internal/bang"
	bangStore "github.com/hestiadash/hestia/internal/bang/store"
	"github.com/hestiadash/hestia/internal/config"
	"github.com/hestiadash/hestia/internal/database"
	"github.com/hestiadash/hestia/internal/ledger"
	ledgerStore "github.com/hestiadash/hestia/internal/ledger/store"
	"github.com/hestiadash/hestia/internal/reminder"
	reminderStore "github.com/hestiadash/hestia/internal/reminder/store"
	"github.com/hestiadash/hestia/internal/user"
	userStore "github.com/hestiadash/hestia/internal/user/store"
)

type model struct {
	reminderService *reminder.Service
	ledgerService   *ledger.Service
	bangService     *bang.Service
	historyLimit    int
	common          view.CommonModel
	username        string

	currentView View

	reminderView view.ReminderModel
	accountsView view.AccountsModel
	searchView   view.SearchModel
}

type View int

const (
	ViewMenu      View = 0
	ViewReminders View = 1
	ViewAccounts  View = 2
	ViewSearch    View = 3
)

func initialModel(db *sql.DB, cfg *config.Config) (model, error) {
	ctx, cancel := view.DbCtx()
	defer cancel()

	u, err := user.NewService(userStore.New(db)).ByUsername(ctx, cfg.TUI.Username)
	if err != nil {
		return model{}, fmt.Errorf("resolving TUI user %q: %w", cfg.TUI.Username, err)
	}

	return model{
		reminderService: reminder.NewService(reminderStore.New(db)),
		ledgerService:   ledger.NewService(ledgerStore.New(db)),
		bangService:     bang.NewService(bangStore.New(db)),
		historyLimit:    cfg.Finance.HistoryLimit,
		common:          view.CommonModel{Owner: u.ID},
		username:        u.Username,
		currentView:     ViewMenu,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewReminders
				m.reminderView = view.NewReminderModel(m.reminderService, m.common)

				return m, m.reminderView.Init()
			case "2":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.ledgerService, m.historyLimit, m.common)

				return m, m.accountsView.Init()
			case "3":
				m.currentView = ViewSearch
				m.searchView = view.NewSearchModel(m.bangService, m.common)

				return m, m.searchView.Init()
			}
		}
	case tea.WindowSizeMsg:
		m.common.Width = msg.Width
		m.common.Height = msg.Height
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewReminders:
		var newModel tea.Model
		newModel, cmd = m.reminderView.Update(msg)
		m.reminderView = newModel.(view.ReminderModel)
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.AccountsModel)
	case ViewSearch:
		var newModel tea.Model
		newModel, cmd = m.searchView.Update(msg)
		m.searchView = newModel.(view.SearchModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Hestia TUI (" + m.username + ")\n\n" +
				"1. Reminders\n" +
				"2. Accounts\n" +
				"3. Search\n\n" +
				"q. Quit",
		)
	case ViewReminders:
		return m.reminderView.View()
	case ViewAccounts:
		return m.accountsView.View()
	case ViewSearch:
		return m.searchView.View()
	}

	return "Unknown View"
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.TUI.Username == "" {
		slog.Error("TUI_USERNAME must be set")
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.Database())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	m, err := initialModel(db, cfg)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			slog.Error("unknown user, sign up through the API first", "username", cfg.TUI.Username)
		} else {
			slog.Error("failed to start TUI", "error", err)
		}

		os.Exit(1)
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
