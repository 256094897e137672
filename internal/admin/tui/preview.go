package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// Preview describes the photo shown next to the form: either the URL of a
// stored record's photo or a summary of a locally selected file.
type Preview struct {
	URL         string
	Path        string
	Description string
	Err         error
}

// Empty reports whether there is nothing to show
func (p Preview) Empty() bool {
	return p.URL == "" && p.Path == "" && p.Err == nil
}

func (p Preview) View() string {
	switch {
	case p.Empty():
		return PreviewStyle.Render("Foto: " + NoPhotoText)
	case p.Err != nil:
		return InvalidMarkerStyle.Render("Foto: " + petapi.GetShortErrorMessage(p.Err))
	case p.Description != "":
		return PreviewStyle.Render("Foto: " + p.Description)
	case p.URL != "":
		return PreviewStyle.Render("Foto: " + p.URL)
	default:
		return PreviewStyle.Render("Foto: " + p.Path)
	}
}

// previewMsg carries the result of reading a selected photo
type previewMsg struct {
	path    string
	preview Preview
}

// renderPhotoPreview reads the file at path off the update loop and reports
// a Preview. An empty path clears the preview.
func renderPhotoPreview(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return previewMsg{}
		}
		photo, err := petapi.LoadPhoto(path)
		if err != nil {
			return previewMsg{path: path, preview: Preview{Path: path, Err: err}}
		}
		return previewMsg{path: path, preview: Preview{Path: path, Description: photo.Describe()}}
	}
}
