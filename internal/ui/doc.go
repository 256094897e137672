// Package ui renders the output of the one-shot mascotas-admin commands.
//
// Unlike the interactive panel in internal/admin/tui, nothing here runs an
// event loop: every component renders to a string with lipgloss and is written
// once through a Printer.
//
//   - Header: command banner with the API address and other parameters
//   - Result boxes: success, warning and failure (with troubleshooting hints)
//   - Pet table and card: the listing and a single record
//   - ConfirmDeletion: y/N prompt shown before a delete
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Pet registry", "mascotas-admin list", ui.Detail{Key: "API", Value: baseURL})
//	pets, err := client.ListPets(ctx)
//	if err != nil {
//	    p.PrintError("Could not load pets", err)
//	    return err
//	}
//	p.PrintPets(pets)
package ui
