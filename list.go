package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	absentStyle = lipgloss.NewStyle().Faint(true)
)

const absent = "-"

// renderMatches writes one row per view-model: package, view-model, view, interface.
func renderMatches(w io.Writer, scans []*PackageScan, module string) error {
	header := []string{"PACKAGE", "VIEW-MODEL", "VIEW", "INTERFACE"}
	var rows [][]string
	for _, scan := range scans {
		pkg := strings.TrimPrefix(strings.TrimPrefix(scan.PkgPath, module), "/")
		if pkg == "" {
			pkg = "."
		}
		for _, m := range scan.Matches {
			rows = append(rows, []string{pkg, m.ViewModel, orAbsent(m.View), orAbsent(m.Interface)})
		}
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no view-models found")
		return err
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(header, widths, headerStyle))
	for _, row := range rows {
		b.WriteString(renderRow(row, widths, lipgloss.NewStyle()))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		s := style
		if cell == absent {
			s = absentStyle
		}
		rendered[i] = cellStyle.Width(widths[i] + 2).Render(s.Render(cell))
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, rendered...), " ") + "\n"
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}
