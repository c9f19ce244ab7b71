package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)
)

// headerLines is the number of lines taken by the pager title and footer.
const headerLines = 2

// TUI implements UI with a scrollable pager for the full report and falls
// back to SimpleUI for everything else.
type TUI struct {
	*SimpleUI
	options []tea.ProgramOption
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command, options ...tea.ProgramOption) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		options:  options,
	}
}

// DisplayReports opens the full report in a pager; other forms are printed
// so they can be piped.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.Report, form m.ReportForm) error {
	if form != m.ReportFull {
		return t.SimpleUI.DisplayReports(ctx, reports, form)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := FormatReports(reports, form)
	if err != nil {
		return err
	}

	options := append([]tea.ProgramOption{
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	}, t.options...)

	program := tea.NewProgram(newPagerModel(reportTitle(reports), content), options...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func reportTitle(reports []m.Report) string {
	paths := make([]string, len(reports))
	for i, report := range reports {
		paths[i] = string(report.Source)
	}

	return "gpifab - " + strings.Join(paths, ", ")
}

// pagerModel is the Bubble Tea model of the report pager.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-headerLines, 1)

		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}

		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "g", "home":
			p.viewport.GotoTop()
			return p, nil
		case "G", "end":
			p.viewport.GotoBottom()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading...\n"
	}

	help := fmt.Sprintf("%3.f%%  j/k scroll  g/G top/bottom  q quit", p.viewport.ScrollPercent()*100)

	return titleStyle.Render(p.title) + "\n" + p.viewport.View() + "\n" + helpStyle.Render(help)
}
