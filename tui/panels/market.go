package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/stockgame/internal/game/view"
	"github.com/zappabad/stockgame/tui/styles"
)

// MarketPanel displays the listing with current prices, deltas, and a
// per-company price sparkline.
type MarketPanel struct {
	quotes        []view.CompanyQuote
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewMarketPanel creates a new market panel.
func NewMarketPanel() *MarketPanel {
	return &MarketPanel{}
}

// Init initializes the panel.
func (p *MarketPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MarketPanel) Update(msg tea.Msg) (*MarketPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.quotes)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *MarketPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-20s %12s %10s  %s", "Company", "Price", "Delta", "Trend")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, q := range p.quotes {
		deltaStr := FormatDelta(q.Delta)
		deltaStyle := styles.PriceFlatStyle
		if q.Delta > 0 {
			deltaStyle = styles.PriceUpStyle
		} else if q.Delta < 0 {
			deltaStyle = styles.PriceDownStyle
		}

		row := fmt.Sprintf("%-20s %12s ", q.Name, FormatWon(int64(q.Price)))
		row += deltaStyle.Render(fmt.Sprintf("%10s", deltaStr))
		row += "  " + styles.SparklineStyle.Render(Sparkline(q.History, 12))

		style := styles.RowStyle
		if i == p.selectedIndex && p.focused {
			style = styles.SelectedRowStyle
		}
		content.WriteString(style.Render(row))
		if i < len(p.quotes)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Market", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetQuotes replaces the displayed quotes from a fresh snapshot.
func (p *MarketPanel) SetQuotes(quotes []view.CompanyQuote) {
	p.quotes = quotes
	if p.selectedIndex >= len(quotes) {
		p.selectedIndex = 0
	}
}

// Selected returns the currently selected quote.
func (p *MarketPanel) Selected() (view.CompanyQuote, bool) {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.quotes) {
		return p.quotes[p.selectedIndex], true
	}
	return view.CompanyQuote{}, false
}

// SetFocus sets the focus state of the panel.
func (p *MarketPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MarketPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
