package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// ConfirmDeletion shows the record about to be removed and asks for a y/N
// answer on in. Anything other than "y" or "yes" declines, including EOF.
func ConfirmDeletion(in io.Reader, out io.Writer, pet *petapi.Pet, width int) bool {
	lines := []string{
		"",
		WarningTitleStyle.Render("   " + WarningMarker + "  DELETE  ─  " + pet.Summary()),
		"",
		lipgloss.NewStyle().Foreground(TextColor).Render("   • The record is removed from the registry"),
		lipgloss.NewStyle().Foreground(TextColor).Render("   • This cannot be undone"),
		"",
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(clampWidth(width)-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	_, _ = fmt.Fprintln(out, box)
	_, _ = fmt.Fprint(out, WarningTitleStyle.Render(fmt.Sprintf("Delete pet #%d? [y/N]: ", pet.ID)))

	answer, _ := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}

	_, _ = fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Deletion cancelled."))
	return false
}
