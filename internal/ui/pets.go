package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// EmptyRegistryText is shown in place of the table when there are no records
const EmptyRegistryText = "No pets registered"

// RenderPetTable renders the listing as a bordered table, one row per record
func RenderPetTable(pets []petapi.Pet, width int) string {
	if len(pets) == 0 {
		return TableEmptyStyle.Render(EmptyRegistryText)
	}

	headers := append(append([]string{}, petapi.ListColumns...), "Foto")
	rows := make([][]string, 0, len(pets))
	for i := range pets {
		photo := "-"
		if pets[i].HasPhoto() {
			photo = "yes"
		}
		rows = append(rows, append(pets[i].Row(), photo))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(PrimaryColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
	if width > 0 {
		t = t.Width(clampWidth(width))
	}

	return t.Render()
}

// PetDetails returns the record's fields in display order
func PetDetails(p *petapi.Pet) []Detail {
	photo := p.PhotoURL()
	if photo == "" {
		photo = "-"
	}
	edad := p.Edad.String()
	if edad == "" {
		edad = "-"
	}
	return []Detail{
		{Key: "ID", Value: strconv.Itoa(p.ID)},
		{Key: "Nombre", Value: p.Nombre},
		{Key: "Tipo", Value: p.Tipo},
		{Key: "Raza", Value: p.Raza},
		{Key: "Edad", Value: edad},
		{Key: "Direccion", Value: p.Direccion},
		{Key: "Propietario", Value: p.Propietario},
		{Key: "Foto", Value: photo},
	}
}

// RenderPetCard renders a single record in a rounded box
func RenderPetCard(p *petapi.Pet, width int) string {
	title := HeaderTitleStyle.Render(p.Nombre)
	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{title, ""}, renderDetails(PetDetails(p))...)...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(clampWidth(width) - 2).
		Render(body)
}
