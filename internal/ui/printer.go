package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// Printer writes styled output for the one-shot commands.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// WithWidth overrides the detected terminal width
func (p *Printer) WithWidth(width int) *Printer {
	p.width = clampWidth(width)
	return p
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Detail) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Detail) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintWarning prints a warning box
func (p *Printer) PrintWarning(title string, details ...Detail) {
	p.Println(RenderWarningBox(title, details, p.width))
}

// PrintError prints an error result box. Troubleshooting hints are taken from
// the error when it came from the registry client.
func (p *Printer) PrintError(title string, err error) {
	p.Println(RenderErrorBox(title, err, petapi.GetTroubleshootingHints(err), p.width))
}

// PrintPets prints the listing table followed by a record count
func (p *Printer) PrintPets(pets []petapi.Pet) {
	p.Println(RenderPetTable(pets, p.width))
	if len(pets) > 0 {
		p.Println(TroubleshootingItemStyle.Render(fmt.Sprintf("  %d record(s)", len(pets))))
	}
}

// PrintPet prints one record as a card
func (p *Printer) PrintPet(pet *petapi.Pet) {
	p.Println(RenderPetCard(pet, p.width))
}
