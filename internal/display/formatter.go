// Package display renders wallboard data for the terminal.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/xiaot623/wallboard/internal/domain"
)

// Formatter writes tables and messages to Writer.
type Formatter struct {
	Writer io.Writer

	HeaderStyle  *color.Color
	SuccessStyle *color.Color
	ErrorStyle   *color.Color
	statusStyles map[domain.AgentStatus]*color.Color
}

// NewFormatter creates a formatter. noColor disables ANSI colours globally.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}
	return &Formatter{
		Writer:       w,
		HeaderStyle:  color.New(color.Bold, color.FgCyan),
		SuccessStyle: color.New(color.FgGreen),
		ErrorStyle:   color.New(color.FgRed),
		statusStyles: map[domain.AgentStatus]*color.Color{
			domain.AgentStatusAvailable: color.New(color.FgGreen),
			domain.AgentStatusActive:    color.New(color.FgCyan),
			domain.AgentStatusWrapUp:    color.New(color.FgYellow),
			domain.AgentStatusNotReady:  color.New(color.FgRed),
			domain.AgentStatusOffline:   color.New(color.FgHiBlack),
		},
	}
}

// Status returns the coloured label for s.
func (f *Formatter) Status(s domain.AgentStatus) string {
	if style, ok := f.statusStyles[s]; ok {
		return style.Sprint(string(s))
	}
	return string(s)
}

// PrintHeader prints a section title.
func (f *Formatter) PrintHeader(text string) {
	fmt.Fprintln(f.Writer, f.HeaderStyle.Sprint(text))
}

// PrintSuccess prints a confirmation line.
func (f *Formatter) PrintSuccess(text string) {
	fmt.Fprintln(f.Writer, f.SuccessStyle.Sprint(text))
}

// PrintError prints err in the error style.
func (f *Formatter) PrintError(err error) {
	fmt.Fprintln(f.Writer, f.ErrorStyle.Sprint("[ERROR] "+err.Error()))
}

// PrintAgents prints one row per agent.
func (f *Formatter) PrintAgents(agents []domain.Agent) {
	rows := make([][]string, len(agents))
	for i, a := range agents {
		rows[i] = []string{
			a.Code,
			a.Name,
			f.Status(a.Status),
			dash(a.Extension),
			dash(strings.Join(a.Skills, ", ")),
			formatTime(a.LoginTime),
			formatTime(a.LastStatusChange),
		}
	}
	f.PrintTable([]string{"Code", "Name", "Status", "Ext", "Skills", "Logged In", "Last Change"}, rows)
	fmt.Fprintf(f.Writer, "%d agents\n", len(agents))
}

// PrintAgent prints a single agent after a mutation.
func (f *Formatter) PrintAgent(message string, agent *domain.Agent) {
	if message != "" {
		f.PrintSuccess(message)
	}
	if agent != nil {
		f.PrintAgents([]domain.Agent{*agent})
	}
}

// PrintStats prints the dashboard breakdown.
func (f *Formatter) PrintStats(stats *domain.DashboardStats) {
	f.PrintHeader("Agent Wallboard")
	rows := make([][]string, 0, 5)
	for _, s := range domain.ValidStatuses() {
		stat := stats.Stats.For(s)
		rows = append(rows, []string{f.Status(s), strconv.Itoa(stat.Count), strconv.Itoa(stat.Percent) + "%"})
	}
	f.PrintTable([]string{"Status", "Agents", "Share"}, rows)
	fmt.Fprintf(f.Writer, "Total agents: %d\n", stats.TotalAgents)
}

// PrintTable prints data in a table format.
func (f *Formatter) PrintTable(headers []string, data [][]string) {
	table := tablewriter.NewTable(f.Writer)
	table.Configure(func(tableConfig *tablewriter.Config) {
		tableConfig.Header.Alignment.Global = tw.AlignLeft
		tableConfig.Row.Alignment.Global = tw.AlignLeft
		tableConfig.Header.Padding.Global = tw.Padding{Left: " ", Right: " "}
		tableConfig.Row.Padding.Global = tw.Padding{Left: " ", Right: " "}
	})

	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	table.Header(cells...)
	if err := table.Bulk(data); err != nil {
		return
	}
	_ = table.Render()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
