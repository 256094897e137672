package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// Mode tells whether a submit creates a record or updates EditingID
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Form field indexes, in display order
const (
	fieldNombre = iota
	fieldTipo
	fieldRaza
	fieldEdad
	fieldDireccion
	fieldPropietario
	fieldFoto
	fieldCount
)

var formFields = [fieldCount]struct {
	name        string
	label       string
	placeholder string
	limit       int
}{
	{"nombre", "Nombre", "Luna", 100},
	{"tipo", "Tipo", "Perro", 50},
	{"raza", "Raza", "Mestizo", 50},
	{"edad", "Edad", "3", 30},
	{"direccion", "Direccion", "Calle Falsa 123", 200},
	{"propietario", "Propietario", "Ana Perez", 100},
	{"foto", "Foto (path)", "~/fotos/luna.jpg (optional)", 4096},
}

// FormModel holds the create/edit form
type FormModel struct {
	Inputs  [fieldCount]textinput.Model
	Focused int
	Mode    Mode
	Visible bool

	// EditingID is the record being edited; zero in create mode
	EditingID int

	// Invalid holds the names of fields flagged by the last Validate
	Invalid map[string]bool

	Preview Preview

	// previewPath is the photo path the preview was last requested for
	previewPath string
}

// NewFormModel creates a hidden form in create mode
func NewFormModel() FormModel {
	var f FormModel
	for i, field := range formFields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = field.limit
		in.Prompt = ""
		in.Width = 40
		f.Inputs[i] = in
	}
	return f
}

// lastField is the final field reachable in the current mode; the photo is
// only uploaded on create.
func (f *FormModel) lastField() int {
	if f.Mode == ModeEdit {
		return fieldPropietario
	}
	return fieldFoto
}

// ReadForm returns the trimmed editable values. It never carries the id or the photo.
func (f *FormModel) ReadForm() petapi.PetInput {
	v := func(i int) string { return f.Inputs[i].Value() }
	return petapi.PetInput{
		Nombre:      v(fieldNombre),
		Tipo:        v(fieldTipo),
		Raza:        v(fieldRaza),
		Edad:        petapi.Age(v(fieldEdad)),
		Direccion:   v(fieldDireccion),
		Propietario: v(fieldPropietario),
	}.Normalize()
}

// PhotoPath returns the selected photo file, or "" when none
func (f *FormModel) PhotoPath() string {
	if f.Mode == ModeEdit {
		return ""
	}
	return strings.TrimSpace(f.Inputs[fieldFoto].Value())
}

// Populate writes a record into the inputs and remembers its id
func (f *FormModel) Populate(pet petapi.Pet) {
	f.Inputs[fieldNombre].SetValue(pet.Nombre)
	f.Inputs[fieldTipo].SetValue(pet.Tipo)
	f.Inputs[fieldRaza].SetValue(pet.Raza)
	f.Inputs[fieldEdad].SetValue(pet.Edad.String())
	f.Inputs[fieldDireccion].SetValue(pet.Direccion)
	f.Inputs[fieldPropietario].SetValue(pet.Propietario)
	f.Inputs[fieldFoto].SetValue("")
	f.EditingID = pet.ID
	f.Preview = Preview{URL: pet.PhotoURL()}
	f.previewPath = ""
}

// Reset clears every field, the validation markers, the id and the preview
func (f *FormModel) Reset() {
	for i := range f.Inputs {
		f.Inputs[i].SetValue("")
		f.Inputs[i].Blur()
	}
	f.Focused = 0
	f.Invalid = nil
	f.EditingID = 0
	f.Preview = Preview{}
	f.previewPath = ""
}

// PrepareCreate resets the form, switches to create mode and shows it
func (f *FormModel) PrepareCreate() tea.Cmd {
	f.Reset()
	f.Mode = ModeCreate
	f.Visible = true
	return f.focus(fieldNombre)
}

// PrepareEdit switches to edit mode and shows the form. The caller
// populates the fields first.
func (f *FormModel) PrepareEdit() tea.Cmd {
	f.Mode = ModeEdit
	f.Visible = true
	f.Invalid = nil
	return f.focus(fieldNombre)
}

// Cancel resets and hides the form and reverts to create mode
func (f *FormModel) Cancel() {
	f.Reset()
	f.Visible = false
	f.Mode = ModeCreate
}

// Validate checks the required fields and flags the offending ones
func (f *FormModel) Validate() []error {
	errs := petapi.ValidatePet(f.ReadForm())
	f.Invalid = petapi.InvalidFields(errs)
	return errs
}

// MarkInvalid flags a single field, e.g. an unreadable photo
func (f *FormModel) MarkInvalid(name string) {
	if f.Invalid == nil {
		f.Invalid = make(map[string]bool)
	}
	f.Invalid[name] = true
}

// OnLastField reports whether the cursor is on the final field of the mode
func (f *FormModel) OnLastField() bool {
	return f.Focused == f.lastField()
}

func (f *FormModel) focus(i int) tea.Cmd {
	for j := range f.Inputs {
		f.Inputs[j].Blur()
	}
	f.Focused = i
	return f.Inputs[i].Focus()
}

// NextField moves the cursor down, wrapping around
func (f *FormModel) NextField() tea.Cmd {
	return f.moveFocus(1)
}

// PrevField moves the cursor up, wrapping around
func (f *FormModel) PrevField() tea.Cmd {
	return f.moveFocus(-1)
}

func (f *FormModel) moveFocus(delta int) tea.Cmd {
	leaving := f.Focused
	n := f.lastField() + 1
	cmd := f.focus((f.Focused + delta + n) % n)

	// Refresh the preview when the photo path was edited
	if leaving == fieldFoto {
		if preview := f.RequestPreview(); preview != nil {
			return tea.Batch(cmd, preview)
		}
	}
	return cmd
}

// RequestPreview returns a preview command when the photo path changed
// since the last request. Clearing the path clears the preview.
func (f *FormModel) RequestPreview() tea.Cmd {
	path := f.PhotoPath()
	if path == f.previewPath {
		return nil
	}
	f.previewPath = path
	if path == "" {
		f.Preview = Preview{}
	}
	return renderPhotoPreview(path)
}

// applyPreview stores a preview unless the path changed meanwhile
func (f *FormModel) applyPreview(msg previewMsg) {
	if msg.path != f.PhotoPath() {
		return
	}
	f.Preview = msg.preview
	if msg.preview.Err != nil {
		f.MarkInvalid("foto")
	} else if f.Invalid != nil {
		delete(f.Invalid, "foto")
	}
}

// Update forwards key input to the focused field
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	f.Inputs[f.Focused], cmd = f.Inputs[f.Focused].Update(msg)
	return f, cmd
}

// View renders the form panel
func (f FormModel) View(submitting bool) string {
	var b strings.Builder

	title := "New pet"
	if f.Mode == ModeEdit {
		title = fmt.Sprintf("Edit pet #%d", f.EditingID)
	}
	b.WriteString(RenderTitle(title))
	b.WriteString("\n\n")

	for i := 0; i <= f.lastField(); i++ {
		field := formFields[i]
		label := LabelStyle
		marker := "  "
		switch {
		case f.Invalid[field.name]:
			label = InvalidLabelStyle
			marker = InvalidMarkerStyle.Render("! ")
		case i == f.Focused:
			label = FocusedLabelStyle
		}
		b.WriteString(marker)
		b.WriteString(label.Render(field.label))
		b.WriteString(f.Inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.Preview.View())
	b.WriteString("\n\n")

	if submitting {
		b.WriteString(DisabledStyle.Render("[ Saving... ]"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true).Render("[ Save: ctrl+s ]"))
	}

	return FormBoxStyle.Render(b.String())
}
