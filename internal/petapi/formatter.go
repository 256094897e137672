package petapi

import (
	"fmt"
	"strconv"
	"strings"
)

// Summary returns a one-line summary of the record
func (p *Pet) Summary() string {
	return fmt.Sprintf("#%d %s (%s, %s) - %s", p.ID, p.Nombre, p.Tipo, p.Raza, p.Propietario)
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (p *Pet) FormatCompact() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Pet:    #%d %s\n", p.ID, p.Nombre))
	b.WriteString(fmt.Sprintf("Kind:   %s / %s, age %s\n", p.Tipo, p.Raza, displayOrDash(p.Edad.String())))
	b.WriteString(fmt.Sprintf("Owner:  %s\n", p.Propietario))
	b.WriteString(fmt.Sprintf("Photo:  %s\n", displayOrDash(p.PhotoURL())))

	return b.String()
}

// FormatDetailed returns every field of the record, one per line
func (p *Pet) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Pet ===\n")
	b.WriteString(fmt.Sprintf("ID:          %d\n", p.ID))
	b.WriteString(fmt.Sprintf("Nombre:      %s\n", p.Nombre))
	b.WriteString(fmt.Sprintf("Tipo:        %s\n", p.Tipo))
	b.WriteString(fmt.Sprintf("Raza:        %s\n", p.Raza))
	b.WriteString(fmt.Sprintf("Edad:        %s\n", displayOrDash(p.Edad.String())))
	b.WriteString(fmt.Sprintf("Direccion:   %s\n", p.Direccion))
	b.WriteString(fmt.Sprintf("Propietario: %s\n", p.Propietario))
	b.WriteString("\n")

	b.WriteString("=== Photo ===\n")
	if u := p.PhotoURL(); u != "" {
		b.WriteString(fmt.Sprintf("URL: %s\n", u))
	} else {
		b.WriteString("URL: (none)\n")
	}

	return b.String()
}

// ListColumns are the headers of the tabular listing, in Row order.
var ListColumns = []string{"ID", "Nombre", "Tipo", "Raza", "Edad", "Propietario"}

// Row returns the record's cells in ListColumns order.
func (p *Pet) Row() []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Nombre,
		p.Tipo,
		p.Raza,
		p.Edad.String(),
		p.Propietario,
	}
}

func displayOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
