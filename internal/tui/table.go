package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// ScanTable renders scan results as a bordered table: one row per entry,
// followed by the omissions when any were recorded.
func ScanTable(result sitemapgen.ScanResult) string {
	entries := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorSecondary)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			if col == 0 {
				return MutedCellStyle
			}
			return CellStyle
		}).
		Headers("DECLARATION", "ROUTE", "CHANGEFREQ", "PRIORITY")

	for _, e := range result.Entries {
		entries.Row(e.QualifiedName(), e.Entry.Template, e.Entry.ChangeFreq.String(), sitemap.FormatPriority(e.Entry.Priority))
	}

	out := entries.String() + "\n"
	out += SuccessStyle.Render(fmt.Sprintf("%s %d entries from %d files", SymbolCheck, len(result.Entries), result.FilesScanned)) + "\n"

	if len(result.Omissions) == 0 {
		return out
	}

	omitted := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorSecondary)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Foreground(ColorWarning)
			}
			return CellStyle
		}).
		Headers("POSITION", "DECLARATION", "REASON", "DETAIL")

	for _, o := range result.Omissions {
		omitted.Row(o.Position(), o.QualifiedName(), string(o.Reason), o.Detail)
	}

	out += omitted.String() + "\n"
	out += WarningStyle.Render(fmt.Sprintf("%s %d declarations omitted", SymbolWarning, len(result.Omissions))) + "\n"
	return out
}
