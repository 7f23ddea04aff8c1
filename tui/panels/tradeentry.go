package panels

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/stockgame/internal/ledger"
	"github.com/zappabad/stockgame/tui/styles"
)

// TradeSubmitMsg is emitted when the player submits a buy or sell.
type TradeSubmitMsg struct {
	Kind     ledger.Kind
	Quantity int64
}

// TradeEntryPanel holds the quantity input and submits trades for the
// company selected in the market panel.
type TradeEntryPanel struct {
	quantityInput textinput.Model
	company       string

	focused bool
	width   int
	height  int
}

// NewTradeEntryPanel creates a new trade entry panel.
func NewTradeEntryPanel() *TradeEntryPanel {
	quantityInput := textinput.New()
	quantityInput.Placeholder = "Quantity"
	quantityInput.Width = 10
	quantityInput.CharLimit = 9
	quantityInput.SetValue("1")

	return &TradeEntryPanel{quantityInput: quantityInput}
}

// Init initializes the panel.
func (p *TradeEntryPanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the panel.
func (p *TradeEntryPanel) Update(msg tea.Msg) (*TradeEntryPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("b"))):
			return p, p.submit(ledger.KindBuy)
		case key.Matches(msg, key.NewBinding(key.WithKeys("s"))):
			return p, p.submit(ledger.KindSell)
		}
	}

	var cmd tea.Cmd
	p.quantityInput, cmd = p.quantityInput.Update(msg)
	return p, cmd
}

func (p *TradeEntryPanel) submit(kind ledger.Kind) tea.Cmd {
	qty := p.Quantity()
	return func() tea.Msg {
		return TradeSubmitMsg{Kind: kind, Quantity: qty}
	}
}

// Quantity parses the entered quantity; anything unparseable is 0 and
// left to the ledger's quantity validation.
func (p *TradeEntryPanel) Quantity() int64 {
	qty, err := strconv.ParseInt(strings.TrimSpace(p.quantityInput.Value()), 10, 64)
	if err != nil {
		return 0
	}
	return qty
}

// View renders the panel.
func (p *TradeEntryPanel) View() string {
	company := p.company
	if company == "" {
		company = "-"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.MetricLabelStyle.Render("Company  ")+styles.MetricValueStyle.Render(company),
		styles.MetricLabelStyle.Render("Quantity ")+p.quantityInput.View(),
		"",
		styles.BuyStyle.Render("[b] buy")+"  "+styles.SellStyle.Render("[s] sell"),
	)

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Trade", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content)

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetCompany sets the company the next trade applies to.
func (p *TradeEntryPanel) SetCompany(name string) {
	p.company = name
}

// SetFocus sets the focus state of the panel and the inner input.
func (p *TradeEntryPanel) SetFocus(focused bool) {
	p.focused = focused
	if focused {
		p.quantityInput.Focus()
	} else {
		p.quantityInput.Blur()
	}
}

// SetSize sets the panel dimensions.
func (p *TradeEntryPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
