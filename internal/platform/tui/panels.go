package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-drone/internal/core"
	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/progress"
	"github.com/vovakirdan/neon-drone/internal/registry"
)

// Panel styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff")).
			MarginBottom(1)
	balanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffd700"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ffff"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff3355"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff00ff")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
)

// newTable creates a focused table in the neon palette.
func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#02021a")).
		Background(lipgloss.Color("#00ffff")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// ShopModel lists the cosmetic variants with their price and ownership.
type ShopModel struct {
	variants []registry.Variant
	table    table.Model
	status   string
	failed   bool
}

// NewShopModel creates the shop panel.
func NewShopModel(height int) ShopModel {
	m := ShopModel{variants: registry.List()}
	m.table = newTable([]table.Column{
		{Title: "Variant", Width: 16},
		{Title: "Price", Width: 12},
		{Title: "Status", Width: 10},
	}, height-10)
	return m
}

// Refresh rebuilds the rows for the given profile.
func (m *ShopModel) Refresh(p profile.Profile) {
	rows := make([]table.Row, len(m.variants))
	for i, v := range m.variants {
		price := "FREE"
		if v.Price > 0 {
			price = fmt.Sprintf("%d bits", v.Price)
		}
		status := "LOCKED"
		switch {
		case p.EquippedVariant == v.ID:
			status = "EQUIPPED"
		case p.Unlocked(v.ID):
			status = "OWNED"
		}
		rows[i] = table.Row{v.Title, price, status}
	}
	m.table.SetRows(rows)
}

// Selected returns the variant under the cursor.
func (m ShopModel) Selected() (registry.Variant, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.variants) {
		return registry.Variant{}, false
	}
	return m.variants[i], true
}

// Preview screen size in cells, and the drone body inside it.
const (
	previewW = 14
	previewH = 6
)

var previewBody = core.NewRect(3, 1, 8, 4)

// Preview draws the variant under the cursor onto a small screen.
func (m ShopModel) Preview() *core.Screen {
	s := core.NewScreen(previewW, previewH)
	if v, ok := m.Selected(); ok {
		v.Draw(s, previewBody, false)
	}
	return s
}

// SetStatus shows a message under the table.
func (m *ShopModel) SetStatus(msg string, failed bool) {
	m.status = msg
	m.failed = failed
}

// View renders the shop.
func (m ShopModel) View(p profile.Profile, width int, helpView string) string {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("SHOP"), width))
	b.WriteString("\n")
	b.WriteString(centerText(balanceStyle.Render(fmt.Sprintf("DATA-BITS: %d", p.DataBits)), width))
	b.WriteString("\n\n")
	shop := lipgloss.JoinHorizontal(lipgloss.Center,
		boxStyle.Render(m.table.View()),
		"  ",
		boxStyle.Render(RenderScreen(m.Preview())),
	)
	b.WriteString(centerText(shop, width))
	b.WriteString("\n\n")

	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(centerText(style.Render(m.status), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpView))
	return b.String()
}

// MissionsModel lists the mission table with completion flags.
type MissionsModel struct {
	table table.Model
}

// NewMissionsModel creates the missions panel.
func NewMissionsModel(height int) MissionsModel {
	return MissionsModel{
		table: newTable([]table.Column{
			{Title: "Mission", Width: 34},
			{Title: "Reward", Width: 8},
			{Title: "Status", Width: 8},
		}, height-8),
	}
}

// Refresh rebuilds the rows for the given profile.
func (m *MissionsModel) Refresh(p profile.Profile) {
	statuses := progress.Statuses(p)
	rows := make([]table.Row, len(statuses))
	for i, s := range statuses {
		done := ""
		if s.Completed {
			done = "✓ DONE"
		}
		rows[i] = table.Row{s.Description, fmt.Sprintf("+%d", s.Reward), done}
	}
	m.table.SetRows(rows)
}

// View renders the missions list.
func (m MissionsModel) View(width int, helpView string) string {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("MISSIONS"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boxStyle.Render(m.table.View()), width))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(helpView))
	return b.String()
}

// centerText centers a possibly styled block within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
