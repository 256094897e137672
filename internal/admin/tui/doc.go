// Package tui implements the interactive admin panel for the pets registry.
//
// The panel is a single bubbletea program. AppModel owns every piece of UI
// state and moves between five states:
//
//	Idle ──n──────────────▶ FormOpen(create) ──submit──▶ Submitting ──ok──▶ Idle (+reload)
//	Idle ──e (fetch ok)───▶ FormOpen(edit)                          └─fail─▶ FormOpen
//	Idle ──d──────────────▶ ConfirmingDelete ──y──▶ Deleting ──▶ Idle (+reload on success)
//	                                         └─n/esc─▶ Idle
//
// Requests run as tea.Cmd functions and report back through messages, so the
// update loop never blocks. A list load is numbered; a result that arrives
// after a newer load was started is dropped.
//
// Failures never end the program: each one is logged and becomes a transient
// alert that expires after Options.AlertTimeout.
//
// # Usage
//
//	client := petapi.NewClientWithURL(cfg.API.BaseURL)
//	model := tui.NewAppModel(client, tui.Options{
//	    BaseURL:      cfg.API.BaseURL,
//	    AlertTimeout: cfg.UI.AlertTimeout,
//	})
//	p := tea.NewProgram(model, tea.WithAltScreen())
//	_, err := p.Run()
package tui
