package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// Placeholder texts of the single-row list states
const (
	EmptyListText   = "No pets registered"
	LoadingListText = "Loading pets..."
	NoPhotoText     = "no photo"
)

// ListStatus is what the list area currently shows
type ListStatus int

const (
	ListLoading ListStatus = iota
	ListReady
	ListFailed
)

var listColumns = []table.Column{
	{Title: "ID", Width: 5},
	{Title: "Nombre", Width: 14},
	{Title: "Tipo", Width: 10},
	{Title: "Raza", Width: 12},
	{Title: "Edad", Width: 6},
	{Title: "Direccion", Width: 18},
	{Title: "Propietario", Width: 14},
	{Title: "Foto", Width: 8},
}

// ListView renders the pets table and its loading, empty and error states.
type ListView struct {
	Table  table.Model
	Pets   []petapi.Pet
	Status ListStatus
	Err    error
}

// NewListView creates the table in the loading state
func NewListView() ListView {
	km := table.DefaultKeyMap()
	// "d" deletes; keep half-page down on ctrl+d only
	km.HalfPageDown.SetKeys("ctrl+d")
	km.HalfPageDown.SetHelp("ctrl+d", "½ page down")

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(SubtleColor).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(TextColor).
		Background(PrimaryColor).
		Bold(false)

	t := table.New(
		table.WithColumns(listColumns),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(styles),
	)
	t.KeyMap = km

	lv := ListView{Table: t}
	lv.RenderLoading()
	return lv
}

// BuildRows converts records into table rows. An empty list yields exactly
// one placeholder row.
func BuildRows(pets []petapi.Pet) []table.Row {
	if len(pets) == 0 {
		return []table.Row{messageRow(EmptyListText)}
	}

	rows := make([]table.Row, 0, len(pets))
	for i := range pets {
		p := &pets[i]
		photo := NoPhotoText
		if p.HasPhoto() {
			photo = "yes"
		}
		cells := p.Row()
		rows = append(rows, table.Row{
			cells[0], cells[1], cells[2], cells[3], cells[4],
			p.Direccion, cells[5], photo,
		})
	}
	return rows
}

// messageRow puts text in the name column and blanks the rest
func messageRow(text string) table.Row {
	row := make(table.Row, len(listColumns))
	row[1] = text
	return row
}

// RenderList shows the records, or the placeholder row when there are none
func (lv *ListView) RenderList(pets []petapi.Pet) {
	lv.Pets = pets
	lv.Status = ListReady
	lv.Err = nil
	lv.Table.SetRows(BuildRows(pets))
	if lv.Table.Cursor() >= len(pets) {
		lv.Table.SetCursor(max(len(pets)-1, 0))
	}
}

// RenderLoading replaces the rows with the loading indicator row
func (lv *ListView) RenderLoading() {
	lv.Pets = nil
	lv.Status = ListLoading
	lv.Err = nil
	lv.Table.SetRows([]table.Row{messageRow(LoadingListText)})
}

// RenderError replaces the rows with an inline error row
func (lv *ListView) RenderError(err error) {
	lv.Pets = nil
	lv.Status = ListFailed
	lv.Err = err
	lv.Table.SetRows([]table.Row{messageRow("Failed to load: " + petapi.GetShortErrorMessage(err))})
	lv.Table.SetCursor(0)
}

// SelectedID returns the id of the highlighted record. ok is false on the
// placeholder, loading and error rows.
func (lv ListView) SelectedID() (id int, ok bool) {
	if lv.Status != ListReady || len(lv.Pets) == 0 {
		return 0, false
	}
	i := lv.Table.Cursor()
	if i < 0 || i >= len(lv.Pets) {
		return 0, false
	}
	return lv.Pets[i].ID, true
}

// SetSize fits the table into the content area
func (lv *ListView) SetSize(width, height int) {
	if height > 4 {
		lv.Table.SetHeight(height)
	}
	if width > 0 {
		lv.Table.SetWidth(width)
	}
}
