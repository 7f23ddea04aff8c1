package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/stockgame/internal/game/view"
	"github.com/zappabad/stockgame/tui/styles"
)

// PortfolioPanel displays the cash/value/total metrics and the holdings
// table (companies with shares > 0 only).
type PortfolioPanel struct {
	snap    view.Snapshot
	focused bool
	width   int
	height  int
}

// NewPortfolioPanel creates a new portfolio panel.
func NewPortfolioPanel() *PortfolioPanel {
	return &PortfolioPanel{}
}

func (p *PortfolioPanel) Init() tea.Cmd {
	return nil
}

func (p *PortfolioPanel) Update(msg tea.Msg) (*PortfolioPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *PortfolioPanel) View() string {
	var content strings.Builder

	metric := func(label, value string) string {
		return styles.MetricLabelStyle.Render(label+" ") + styles.MetricValueStyle.Render(value)
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		metric("Cash", FormatWon(p.snap.Cash)),
		"   ",
		metric("Stocks", FormatWon(p.snap.PortfolioValue)),
		"   ",
		metric("Total", FormatWon(p.snap.TotalAssets)),
	))
	content.WriteString("\n\n")

	if len(p.snap.Holdings) == 0 {
		content.WriteString(styles.MetricLabelStyle.Render("No shares held."))
	} else {
		header := fmt.Sprintf("%-20s %8s %12s %14s", "Company", "Shares", "Price", "Value")
		content.WriteString(styles.HeaderStyle.Render(header))
		content.WriteString("\n")

		for i, h := range p.snap.Holdings {
			row := fmt.Sprintf("%-20s %8d %12s %14s",
				h.Name, h.Shares, FormatWon(int64(h.Price)), FormatWon(h.Value))
			content.WriteString(styles.RowStyle.Render(row))
			if i < len(p.snap.Holdings)-1 {
				content.WriteString("\n")
			}
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Portfolio", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetSnapshot replaces the displayed snapshot.
func (p *PortfolioPanel) SetSnapshot(snap view.Snapshot) {
	p.snap = snap
}

// SetFocus sets the focus state of the panel.
func (p *PortfolioPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *PortfolioPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
