package ui

import (
	"strings"
)

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details []Detail, width int) string {
	lines := []string{
		"",
		SuccessTitleStyle.Render("   " + SuccessMarker + "  SUCCESS  ─  " + title),
		"",
	}
	lines = append(lines, renderDetails(details)...)
	lines = append(lines, "")

	return boxStyle(SuccessColor, width).Render(strings.Join(lines, "\n"))
}

// RenderWarningBox renders a non-fatal notice, e.g. an aborted deletion
func RenderWarningBox(title string, details []Detail, width int) string {
	lines := []string{
		"",
		WarningTitleStyle.Render("   " + WarningMarker + "  " + title),
		"",
	}
	lines = append(lines, renderDetails(details)...)
	if len(details) > 0 {
		lines = append(lines, "")
	}

	return boxStyle(WarningColor, width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box with troubleshooting
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	lines := []string{
		"",
		ErrorTitleStyle.Render("   " + FailureMarker + "  FAILED  ─  " + title),
		"",
	}

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+err.Error()), "")
	}

	if len(troubleshooting) > 0 {
		lines = append(lines, "   "+TroubleshootingTitleStyle.Render("Troubleshooting:"))
		for _, tip := range troubleshooting {
			lines = append(lines, TroubleshootingItemStyle.Render("     • "+tip))
		}
		lines = append(lines, "")
	}

	return boxStyle(ErrorColor, width).Render(strings.Join(lines, "\n"))
}

func renderDetails(details []Detail) []string {
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, ResultKeyStyle.Render("   "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	return lines
}
