package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/stockgame/tui/styles"
)

// TradeLogPanel displays executed trades, most recent first.
type TradeLogPanel struct {
	lines   []string
	focused bool
	width   int
	height  int
}

// NewTradeLogPanel creates a new trade log panel.
func NewTradeLogPanel() *TradeLogPanel {
	return &TradeLogPanel{}
}

func (p *TradeLogPanel) Init() tea.Cmd {
	return nil
}

func (p *TradeLogPanel) Update(msg tea.Msg) (*TradeLogPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *TradeLogPanel) View() string {
	maxLines := p.height - 5
	if maxLines < 1 {
		maxLines = 1
	}

	lines := p.lines
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	var content strings.Builder
	for i, line := range lines {
		style := styles.RowStyle
		switch {
		case strings.HasPrefix(line, "BUY"):
			style = styles.BuyStyle
		case strings.HasPrefix(line, "SELL"):
			style = styles.SellStyle
		}
		content.WriteString(style.Render(line))
		if i < len(lines)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Trade Log", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetLines replaces the displayed log lines (most recent first).
func (p *TradeLogPanel) SetLines(lines []string) {
	p.lines = lines
}

// SetFocus sets the focus state of the panel.
func (p *TradeLogPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *TradeLogPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
