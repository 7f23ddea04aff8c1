package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/stockgame/internal/game"
	"github.com/zappabad/stockgame/internal/ledger"
	"github.com/zappabad/stockgame/tui/panels"
	"github.com/zappabad/stockgame/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusMarket PanelFocus = 0
	FocusTrade  PanelFocus = 1

	focusCount = 2
)

type tickMsg time.Time

// Model is the main TUI application model. It is the host driver from
// the session's point of view: a timer advances the simulation with
// Tick, and rendering only projects the last snapshot.
type Model struct {
	session *game.Session
	refresh time.Duration

	marketPanel    *panels.MarketPanel
	portfolioPanel *panels.PortfolioPanel
	chartPanel     *panels.AssetChartPanel
	tradeLogPanel  *panels.TradeLogPanel
	tradePanel     *panels.TradeEntryPanel

	focusedPanel PanelFocus

	width  int
	height int

	statusMsg string
	statusErr bool
	ready     bool
}

// NewModel creates a new TUI model over an active session.
func NewModel(session *game.Session) *Model {
	m := &Model{
		session:        session,
		refresh:        time.Duration(session.Config().RefreshInterval),
		marketPanel:    panels.NewMarketPanel(),
		portfolioPanel: panels.NewPortfolioPanel(),
		chartPanel:     panels.NewAssetChartPanel(),
		tradeLogPanel:  panels.NewTradeLogPanel(),
		tradePanel:     panels.NewTradeEntryPanel(),
		focusedPanel:   FocusMarket,
	}
	m.refreshSnapshot()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.marketPanel.Init(),
		m.tradePanel.Init(),
		m.tickRefresh(),
	)
}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// 'q' types into the quantity input when trading
			if m.focusedPanel != FocusTrade {
				return m, tea.Quit
			}
		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % focusCount
		case "shift+tab":
			m.focusedPanel--
			if m.focusedPanel < 0 {
				m.focusedPanel = focusCount - 1
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case panels.TradeSubmitMsg:
		m.executeTrade(msg)

	case tickMsg:
		// advance the simulation, then re-project
		if err := m.session.Tick(); err != nil {
			m.statusMsg = err.Error()
			m.statusErr = true
		} else {
			m.refreshSnapshot()
		}
		cmds = append(cmds, m.tickRefresh())
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusMarket:
		m.marketPanel, cmd = m.marketPanel.Update(msg)
		if q, ok := m.marketPanel.Selected(); ok {
			m.tradePanel.SetCompany(q.Name)
		}
	case FocusTrade:
		m.tradePanel, cmd = m.tradePanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) executeTrade(msg panels.TradeSubmitMsg) {
	quote, ok := m.marketPanel.Selected()
	if !ok {
		return
	}

	receipt, err := m.session.Trade(msg.Kind, quote.ID, msg.Quantity)
	if err != nil {
		m.statusMsg = tradeErrorMessage(err)
		m.statusErr = true
		return
	}

	m.statusMsg = fmt.Sprintf("%s %s ×%d for %s",
		receipt.Kind, receipt.Company, receipt.Quantity, panels.FormatWon(receipt.Amount))
	m.statusErr = false
	m.refreshSnapshot()
}

func tradeErrorMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "not enough cash"
	case errors.Is(err, ledger.ErrInsufficientShares):
		return "not enough shares"
	case errors.Is(err, ledger.ErrInvalidQuantity):
		return "quantity must be a whole number ≥ 1"
	case errors.Is(err, ledger.ErrUnknownCompany):
		return "unknown company"
	default:
		return err.Error()
	}
}

func (m *Model) refreshSnapshot() {
	snap, err := m.session.Snapshot()
	if err != nil {
		return
	}

	m.marketPanel.SetQuotes(snap.Companies)
	m.portfolioPanel.SetSnapshot(snap)
	m.chartPanel.SetSeries(snap.AssetHistory)
	m.tradeLogPanel.SetLines(snap.TradeLog)
	if q, ok := m.marketPanel.Selected(); ok {
		m.tradePanel.SetCompany(q.Name)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.marketPanel.SetFocus(m.focusedPanel == FocusMarket)
	m.tradePanel.SetFocus(m.focusedPanel == FocusTrade)
	m.portfolioPanel.SetFocus(false)
	m.chartPanel.SetFocus(false)
	m.tradeLogPanel.SetFocus(false)

	// Layout:
	// ┌──────────────────────┬───────────────────┐
	// │        Market        │     Portfolio     │
	// │                      ├───────────────────┤
	// │                      │    Total Assets   │
	// ├──────────────────────┼───────────────────┤
	// │        Trade         │     Trade Log     │
	// └──────────────────────┴───────────────────┘

	leftWidth := m.width * 55 / 100
	rightWidth := m.width - leftWidth

	topHeight := (m.height - 3) * 2 / 3
	bottomHeight := m.height - topHeight - 3

	m.marketPanel.SetSize(leftWidth, topHeight)
	m.portfolioPanel.SetSize(rightWidth, topHeight/2)
	m.chartPanel.SetSize(rightWidth, topHeight-topHeight/2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.marketPanel.View(),
		lipgloss.JoinVertical(lipgloss.Left,
			m.portfolioPanel.View(),
			m.chartPanel.View(),
		),
	)

	m.tradePanel.SetSize(leftWidth, bottomHeight)
	m.tradeLogPanel.SetSize(rightWidth, bottomHeight)

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.tradePanel.View(),
		m.tradeLogPanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow, m.renderStatusBar())
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("Tab") + styles.StatusBarDescStyle.Render(" focus"),
		styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" select"),
		styles.StatusBarKeyStyle.Render("b/s") + styles.StatusBarDescStyle.Render(" trade"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}

	helpStr := lipgloss.JoinHorizontal(lipgloss.Center, help[0], " │ ", help[1], " │ ", help[2], " │ ", help[3])

	status := ""
	if m.statusMsg != "" {
		if m.statusErr {
			status = " │ " + styles.ErrorStyle.Render(m.statusMsg)
		} else {
			status = " │ " + m.statusMsg
		}
	}

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}
