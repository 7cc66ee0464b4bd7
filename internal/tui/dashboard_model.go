package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/models"
)

// GoalRow is one goal with its precomputed ETA
type GoalRow struct {
	Goal models.FinancialGoal
	ETA  *string
}

// DashboardData is everything the dashboard renders, computed before the
// program starts so the model itself never touches the store
type DashboardData struct {
	Pay     analytics.PaySummary
	Today   analytics.TodaySummary
	Focus   analytics.FocusMetrics
	Burnout analytics.BurnoutRisk
	Goals   []GoalRow
}

// DashboardModel renders the read-only overview screen
type DashboardModel struct {
	width  int
	height int
	data   DashboardData
	bars   []progress.Model
}

// NewDashboardModel creates a dashboard model with one progress bar per goal
func NewDashboardModel(data DashboardData) DashboardModel {
	bars := make([]progress.Model, len(data.Goals))
	for i := range bars {
		bars[i] = progress.New(
			progress.WithGradient(ColorAccentMain, ColorAccentBright),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		)
	}
	return DashboardModel{data: data, bars: bars}
}

// Init implements tea.Model
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("⏱  ChronoDesk")

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderToday(),
		m.renderEarnings(),
	)
	mid := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderFocus(),
		m.renderBurnout(),
	)

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("q: quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title, "",
		top,
		mid,
		m.renderGoals(), "",
		help,
	)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m DashboardModel) card(title, body string) string {
	return m.cardWidth(title, body, 38)
}

func (m DashboardModel) cardWidth(title, body string, width int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width).
		Render(titleStyle.Render(title) + "\n" + body)
}

func (m DashboardModel) renderToday() string {
	d := m.data.Today
	var b strings.Builder
	fmt.Fprintf(&b, "%.1fh logged", d.TotalHours)
	if d.TotalPay > 0 {
		fmt.Fprintf(&b, "  ·  $%.2f", d.TotalPay)
	}
	return m.card(fmt.Sprintf("Today %s", d.Date), b.String())
}

func (m DashboardModel) renderEarnings() string {
	p := m.data.Pay
	body := fmt.Sprintf("Month  $%.2f\nYear   $%.2f\nTotal  $%.2f", p.ThisMonth, p.ThisYear, p.AllTime)
	return m.card("Earnings", body)
}

func (m DashboardModel) renderFocus() string {
	f := m.data.Focus
	body := fmt.Sprintf("Score  %.0f/100\nStreak %d day(s), best %d",
		f.FocusScore, f.CurrentStreakDays, f.LongestStreakDays)
	return m.card("Focus", body)
}

func (m DashboardModel) renderBurnout() string {
	r := m.data.Burnout
	color := ColorSuccess
	switch r.RiskLevel {
	case analytics.RiskModerate:
		color = ColorWarning
	case analytics.RiskHigh, analytics.RiskCritical:
		color = ColorError
	}
	level := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(r.RiskLevel)
	return m.card("Burnout", fmt.Sprintf("%s (%.0f/100)", level, r.RiskScore))
}

func (m DashboardModel) renderGoals() string {
	if len(m.data.Goals) == 0 {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	var rows []string
	for i, row := range m.data.Goals {
		g := row.Goal
		line := fmt.Sprintf("%s %s %3.0f%%",
			label.Width(18).Render(g.Name),
			m.bars[i].ViewAs(g.ProgressPercent()/100),
			g.ProgressPercent())
		if row.ETA != nil {
			line += muted.Render("  " + *row.ETA)
		}
		rows = append(rows, line)
	}
	return m.cardWidth("Goals", strings.Join(rows, "\n"), 78)
}
