// Package render turns dashboard figures into terminal output.
package render

import (
	"fmt"
	"strings"

	"budgethub/internal/aggregate"
	"budgethub/internal/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	barWidth     = 24
	emptyTable   = "No entries yet. Add contributions or expenses to see them here."
	emptyBars    = "No expenses yet."
	noTopCatText = "–"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	fillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
)

// Dashboard renders the goal, summary, month and category panes.
func Dashboard(d aggregate.Dashboard) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(goalPane(d)),
		boxStyle.Render(summaryPane(d)),
		boxStyle.Render(monthPane(d)),
		boxStyle.Render(categoryPane(d)),
	)
}

func goalPane(d aggregate.Dashboard) string {
	p := d.Progress
	lines := []string{
		titleStyle.Render(d.GoalName),
		fmt.Sprintf("Goal      %s", core.FormatCurrency(p.Goal)),
		fmt.Sprintf("Saved     %s", core.FormatCurrency(p.Saved)),
		fmt.Sprintf("Remaining %s", core.FormatCurrency(p.Remaining)),
		bar(p.Percent.InexactFloat64()) + " " + mutedStyle.Render(p.Label()),
	}
	return strings.Join(lines, "\n")
}

func summaryPane(d aggregate.Dashboard) string {
	s := d.Summary
	balance := core.FormatCurrency(s.Balance)
	if !s.Balance.IsPositive() {
		balance = alertStyle.Render(balance)
	}
	lines := []string{
		titleStyle.Render("Summary"),
		fmt.Sprintf("You added     %s", core.FormatCurrency(s.YouAdded)),
		fmt.Sprintf("Partner added %s", core.FormatCurrency(s.PartnerAdded)),
		fmt.Sprintf("Spent         %s  %s", core.FormatCurrency(s.Spent), mutedStyle.Render(d.Spending.String())),
		fmt.Sprintf("Balance       %s  %s", balance, mutedStyle.Render(d.Balance.String())),
	}
	return strings.Join(lines, "\n")
}

func monthPane(d aggregate.Dashboard) string {
	m := d.Month
	lines := []string{
		titleStyle.Render(fmt.Sprintf("This month (%04d-%02d)", m.Year, m.Month)),
		fmt.Sprintf("Saved %s", core.FormatCurrency(m.Saved)),
		fmt.Sprintf("Spent %s", core.FormatCurrency(m.Spent)),
		mutedStyle.Render(d.MonthStatus.String()),
	}
	return strings.Join(lines, "\n")
}

func categoryPane(d aggregate.Dashboard) string {
	lines := []string{titleStyle.Render("Categories")}
	if len(d.Categories) == 0 {
		lines = append(lines, mutedStyle.Render(emptyBars))
	}
	for _, c := range d.Categories {
		lines = append(lines, fmt.Sprintf("%-12s %s %s", c.Name, bar(c.Width.InexactFloat64()), core.FormatCurrency(c.Amount)))
	}
	top := noTopCatText
	if d.HasTop {
		top = fmt.Sprintf("%s (%s)", d.Top.Name, core.FormatCurrency(d.Top.Amount))
	}
	lines = append(lines, "Top: "+top)
	return strings.Join(lines, "\n")
}

// bar draws a fixed-width bar filled to percent (0-100).
func bar(percent float64) string {
	filled := int(percent/100*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return fillStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
}

// Transactions renders the transaction table.
func Transactions(txs []core.Transaction) string {
	if len(txs) == 0 {
		return mutedStyle.Render(emptyTable)
	}

	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			t.Date,
			t.Person.DisplayName(),
			t.Type.DisplayName(),
			core.FormatFloat(t.Amount),
			t.Category,
			t.Note,
			t.ID,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Who", "Type", "Amount", "Category", "Note", "ID").
		Rows(rows...).
		String()
}
