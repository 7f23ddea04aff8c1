package panels

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/stockgame/tui/styles"
)

// AssetChartPanel displays the total-asset history as a sparkline with
// min/max labels.
type AssetChartPanel struct {
	series  []int64
	focused bool
	width   int
	height  int
}

// NewAssetChartPanel creates a new asset chart panel.
func NewAssetChartPanel() *AssetChartPanel {
	return &AssetChartPanel{}
}

func (p *AssetChartPanel) Init() tea.Cmd {
	return nil
}

func (p *AssetChartPanel) Update(msg tea.Msg) (*AssetChartPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *AssetChartPanel) View() string {
	chartWidth := p.width - 6
	if chartWidth < 10 {
		chartWidth = 10
	}

	var lo, hi int64
	if len(p.series) > 0 {
		lo, hi = p.series[0], p.series[0]
		for _, v := range p.series {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.MetricLabelStyle.Render("High "+FormatWon(hi)),
		styles.ChartStyle.Render(Sparkline(p.series, chartWidth)),
		styles.MetricLabelStyle.Render("Low  "+FormatWon(lo)),
	)

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Total Assets", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content)

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetSeries replaces the displayed asset series (oldest first).
func (p *AssetChartPanel) SetSeries(series []int64) {
	p.series = series
}

// SetFocus sets the focus state of the panel.
func (p *AssetChartPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *AssetChartPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
