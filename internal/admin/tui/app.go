package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mascotas/mascotas-admin/internal/logging"
	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// PetService is the registry the panel manages. *petapi.Client implements it.
type PetService interface {
	ListPets(ctx context.Context) ([]petapi.Pet, error)
	GetPet(ctx context.Context, id int) (*petapi.Pet, error)
	CreatePet(ctx context.Context, input petapi.PetInput, photo *petapi.Photo) (*petapi.Pet, error)
	UpdatePet(ctx context.Context, id int, input petapi.PetInput) (*petapi.Pet, error)
	DeletePet(ctx context.Context, id int) (*petapi.DeleteResult, error)
}

// State is the controller state
type State int

const (
	// StateIdle shows the list with the form hidden
	StateIdle State = iota
	// StateFormOpen shows the form in create or edit mode
	StateFormOpen
	// StateSubmitting waits for a create or update; submit is disabled
	StateSubmitting
	// StateConfirmingDelete shows the confirmation prompt for PendingDeleteID
	StateConfirmingDelete
	// StateDeleting waits for a delete
	StateDeleting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFormOpen:
		return "form_open"
	case StateSubmitting:
		return "submitting"
	case StateConfirmingDelete:
		return "confirming_delete"
	case StateDeleting:
		return "deleting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures the panel
type Options struct {
	// BaseURL is shown in the header
	BaseURL string

	// AlertTimeout is how long an alert stays visible; zero keeps it until replaced
	AlertTimeout time.Duration

	// Context bounds every request; defaults to context.Background()
	Context context.Context
}

// Messages reporting request results
type (
	petsLoadedMsg struct {
		seq  int
		pets []petapi.Pet
		err  error
	}

	petFetchedMsg struct {
		id  int
		pet *petapi.Pet
		err error
	}

	submitDoneMsg struct {
		mode Mode
		pet  *petapi.Pet
		err  error
	}

	deleteDoneMsg struct {
		id     int
		result *petapi.DeleteResult
		err    error
	}
)

// AppModel is the top-level model: it owns the list, the form and the
// controller state, and talks to the registry through PetService.
type AppModel struct {
	State State

	List ListView
	Form FormModel

	// PendingDeleteID is the record awaiting delete confirmation
	PendingDeleteID int

	// FetchingID is the record whose edit fetch is in flight
	FetchingID int

	Alert *Alert

	Spinner spinner.Model
	Help    help.Model
	Keys    keyMaps

	Width  int
	Height int

	service PetService
	opts    Options
	tick    tickFunc

	loadSeq  int
	alertSeq int
}

// NewAppModel creates the panel. The first load starts with Init.
func NewAppModel(service PetService, opts Options) AppModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return AppModel{
		State:   StateIdle,
		List:    NewListView(),
		Form:    NewFormModel(),
		Spinner: s,
		Help:    help.New(),
		Keys:    newKeyMaps(),
		service: service,
		opts:    opts,
		tick:    tea.Tick,
		loadSeq: 1,
	}
}

// Init starts the spinner and the first load
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, m.loadPetsCmd(m.loadSeq))
}

func (m *AppModel) setState(to State, fields ...zap.Field) {
	if m.State == to {
		return
	}
	logging.LogStateTransition(m.State.String(), to.String(), fields...)
	m.State = to
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.List.SetSize(msg.Width-6, msg.Height-14)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case alertExpiredMsg:
		m.expireAlert(msg.id)
		return m, nil

	case petsLoadedMsg:
		return m.handleLoaded(msg)

	case petFetchedMsg:
		return m.handleFetched(msg)

	case submitDoneMsg:
		return m.handleSubmitted(msg)

	case deleteDoneMsg:
		return m.handleDeleted(msg)

	case previewMsg:
		m.Form.applyPreview(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	// Cursor blink and other input-level messages
	if m.State == StateFormOpen {
		var cmd tea.Cmd
		m.Form, cmd = m.Form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateIdle:
		return m.updateIdle(msg)
	case StateFormOpen:
		return m.updateForm(msg)
	case StateConfirmingDelete:
		return m.updateConfirm(msg)
	default:
		// Submitting and Deleting ignore input until the request returns
		return m, nil
	}
}

func (m AppModel) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Keys.List

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Reload):
		cmd := m.Load()
		return m, cmd

	case key.Matches(msg, keys.New):
		cmd := m.New()
		return m, cmd

	case key.Matches(msg, keys.Edit):
		id, ok := m.List.SelectedID()
		if !ok {
			return m, nil
		}
		cmd := m.Edit(id)
		return m, cmd

	case key.Matches(msg, keys.Delete):
		id, ok := m.List.SelectedID()
		if !ok {
			return m, nil
		}
		m.RequestDelete(id)
		return m, nil
	}

	var cmd tea.Cmd
	m.List.Table, cmd = m.List.Table.Update(msg)
	return m, cmd
}

func (m AppModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Keys.Form

	switch {
	case key.Matches(msg, keys.Cancel):
		m.CancelForm()
		return m, nil

	case key.Matches(msg, keys.Submit):
		cmd := m.Submit()
		return m, cmd

	case msg.Type == tea.KeyEnter:
		if m.Form.OnLastField() {
			cmd := m.Submit()
			return m, cmd
		}
		cmd := m.Form.NextField()
		return m, cmd

	case key.Matches(msg, keys.Next):
		cmd := m.Form.NextField()
		return m, cmd

	case key.Matches(msg, keys.Prev):
		cmd := m.Form.PrevField()
		return m, cmd
	}

	var cmd tea.Cmd
	m.Form, cmd = m.Form.Update(msg)
	return m, cmd
}

func (m AppModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Confirm.Confirm):
		cmd := m.ConfirmDelete()
		return m, cmd
	case key.Matches(msg, m.Keys.Confirm.Cancel):
		m.CancelDelete()
	}
	return m, nil
}

// Load shows the loading row and fetches the list. Results of earlier
// loads that arrive afterwards are discarded.
func (m *AppModel) Load() tea.Cmd {
	m.loadSeq++
	m.List.RenderLoading()
	return m.loadPetsCmd(m.loadSeq)
}

func (m AppModel) loadPetsCmd(seq int) tea.Cmd {
	svc, ctx := m.service, m.opts.Context
	return func() tea.Msg {
		pets, err := svc.ListPets(ctx)
		return petsLoadedMsg{seq: seq, pets: pets, err: err}
	}
}

func (m AppModel) handleLoaded(msg petsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		logging.Debug("Discarding superseded list result",
			zap.Int("seq", msg.seq),
			zap.Int("current", m.loadSeq),
		)
		return m, nil
	}

	if msg.err != nil {
		logging.Error("Failed to load pets", zap.Error(msg.err))
		m.List.RenderError(msg.err)
		cmd := m.showAlert(AlertError, "Could not load pets: "+petapi.GetShortErrorMessage(msg.err))
		return m, cmd
	}

	m.List.RenderList(msg.pets)
	return m, nil
}

// New opens an empty form in create mode
func (m *AppModel) New() tea.Cmd {
	cmd := m.Form.PrepareCreate()
	m.List.Table.Blur()
	m.setState(StateFormOpen, zap.String("mode", ModeCreate.String()))
	return cmd
}

// Edit fetches the record; the form opens only if the fetch succeeds
func (m *AppModel) Edit(id int) tea.Cmd {
	m.FetchingID = id
	svc, ctx := m.service, m.opts.Context
	return func() tea.Msg {
		pet, err := svc.GetPet(ctx, id)
		return petFetchedMsg{id: id, pet: pet, err: err}
	}
}

func (m AppModel) handleFetched(msg petFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.FetchingID {
		return m, nil
	}
	m.FetchingID = 0

	if msg.err != nil {
		logging.Error("Failed to fetch pet", zap.Int("id", msg.id), zap.Error(msg.err))
		cmd := m.showAlert(AlertError, fmt.Sprintf("Could not open pet #%d: %s", msg.id, petapi.GetShortErrorMessage(msg.err)))
		return m, cmd
	}

	// The user moved on while the fetch was in flight
	if m.State != StateIdle {
		return m, nil
	}

	pet := *msg.pet
	if pet.ID == 0 {
		pet.ID = msg.id
	}
	m.Form.Populate(pet)
	cmd := m.Form.PrepareEdit()
	m.List.Table.Blur()
	m.setState(StateFormOpen, zap.String("mode", ModeEdit.String()), zap.Int("id", pet.ID))
	return m, cmd
}

// Submit validates the form and, when valid, sends the create or update
func (m *AppModel) Submit() tea.Cmd {
	if m.State != StateFormOpen {
		return nil
	}

	// A path typed and submitted without leaving the field still gets previewed
	var preview tea.Cmd
	if m.Form.Mode == ModeCreate {
		preview = m.Form.RequestPreview()
	}

	if errs := m.Form.Validate(); len(errs) > 0 {
		names := make([]string, 0, len(errs))
		for _, err := range errs {
			if fe, ok := err.(*petapi.FetchError); ok && fe.Field != "" {
				names = append(names, fe.Field)
			}
		}
		logging.Debug("Form validation failed", zap.Strings("fields", names))
		return tea.Batch(preview, m.showAlert(AlertWarning, "Complete the required fields: "+strings.Join(names, ", ")))
	}

	input := m.Form.ReadForm()
	mode := m.Form.Mode
	id := m.Form.EditingID
	photoPath := m.Form.PhotoPath()
	svc, ctx := m.service, m.opts.Context

	m.setState(StateSubmitting, zap.String("mode", mode.String()))

	return tea.Batch(preview, func() tea.Msg {
		if mode == ModeEdit {
			pet, err := svc.UpdatePet(ctx, id, input)
			return submitDoneMsg{mode: mode, pet: pet, err: err}
		}

		var photo *petapi.Photo
		if photoPath != "" {
			p, err := petapi.LoadPhoto(photoPath)
			if err != nil {
				return submitDoneMsg{mode: mode, err: err}
			}
			photo = p
		}
		pet, err := svc.CreatePet(ctx, input, photo)
		return submitDoneMsg{mode: mode, pet: pet, err: err}
	})
}

func (m AppModel) handleSubmitted(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if m.State != StateSubmitting {
		return m, nil
	}

	if msg.err != nil {
		m.setState(StateFormOpen)
		if petapi.IsValidationError(msg.err) {
			m.Form.MarkInvalid("foto")
			cmd := m.showAlert(AlertWarning, petapi.GetShortErrorMessage(msg.err))
			return m, cmd
		}
		logging.Error("Failed to save pet", zap.String("mode", msg.mode.String()), zap.Error(msg.err))
		cmd := m.showAlert(AlertError, "Could not save pet: "+petapi.GetShortErrorMessage(msg.err))
		return m, cmd
	}

	text := "Pet created"
	if msg.mode == ModeEdit {
		text = "Pet updated"
	}
	if msg.pet != nil && msg.pet.ID != 0 {
		text = fmt.Sprintf("%s (#%d %s)", text, msg.pet.ID, msg.pet.Nombre)
	}

	m.Form.Cancel()
	m.List.Table.Focus()
	m.setState(StateIdle)
	cmd := tea.Batch(m.showAlert(AlertSuccess, text), m.Load())
	return m, cmd
}

// CancelForm discards the form and returns to the list
func (m *AppModel) CancelForm() {
	m.Form.Cancel()
	m.List.Table.Focus()
	m.setState(StateIdle)
}

// RequestDelete remembers id and asks for confirmation
func (m *AppModel) RequestDelete(id int) {
	m.PendingDeleteID = id
	m.setState(StateConfirmingDelete, zap.Int("id", id))
}

// CancelDelete forgets the pending id without calling the registry
func (m *AppModel) CancelDelete() {
	m.PendingDeleteID = 0
	m.setState(StateIdle)
}

// ConfirmDelete sends the delete for the pending id
func (m *AppModel) ConfirmDelete() tea.Cmd {
	if m.State != StateConfirmingDelete || m.PendingDeleteID == 0 {
		return nil
	}

	id := m.PendingDeleteID
	svc, ctx := m.service, m.opts.Context
	m.setState(StateDeleting, zap.Int("id", id))

	return func() tea.Msg {
		result, err := svc.DeletePet(ctx, id)
		return deleteDoneMsg{id: id, result: result, err: err}
	}
}

func (m AppModel) handleDeleted(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	// The prompt is dismissed whatever the outcome
	m.PendingDeleteID = 0
	m.setState(StateIdle)

	if msg.err != nil {
		logging.Error("Failed to delete pet", zap.Int("id", msg.id), zap.Error(msg.err))
		cmd := m.showAlert(AlertError, fmt.Sprintf("Could not delete pet #%d: %s", msg.id, petapi.GetShortErrorMessage(msg.err)))
		return m, cmd
	}

	text := fmt.Sprintf("Pet #%d deleted", msg.id)
	if msg.result != nil && msg.result.Message != "" {
		text += ": " + msg.result.Message
	}
	cmd := tea.Batch(m.showAlert(AlertSuccess, text), m.Load())
	return m, cmd
}

// View renders the panel
func (m AppModel) View() string {
	var b strings.Builder

	if a := renderAlert(m.Alert, m.contentWidth()); a != "" {
		b.WriteString(a)
		b.WriteString("\n")
	}

	switch m.State {
	case StateFormOpen, StateSubmitting:
		b.WriteString(m.Form.View(m.State == StateSubmitting))
		if m.State == StateSubmitting {
			b.WriteString("\n")
			b.WriteString(m.Spinner.View() + " Saving...")
		}
	default:
		b.WriteString(m.listView())
	}

	return RenderApplicationContainer(b.String(), m.helpView(), m.opts.BaseURL, m.Width, m.Height)
}

func (m AppModel) listView() string {
	var b strings.Builder

	title := "Pets"
	if m.List.Status == ListReady {
		title = fmt.Sprintf("Pets (%d)", len(m.List.Pets))
	}
	b.WriteString(RenderTitle(title))
	if m.List.Status == ListLoading || m.FetchingID != 0 {
		b.WriteString(" " + m.Spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(m.List.Table.View())
	b.WriteString("\n")

	switch m.State {
	case StateConfirmingDelete:
		b.WriteString("\n")
		b.WriteString(ConfirmBoxStyle.Render(fmt.Sprintf("Delete pet #%d? This cannot be undone. [y/N]", m.PendingDeleteID)))
	case StateDeleting:
		b.WriteString("\n")
		b.WriteString(m.Spinner.View() + fmt.Sprintf(" Deleting pet #%d...", m.PendingDeleteID))
	}

	return b.String()
}

func (m AppModel) helpView() string {
	switch m.State {
	case StateFormOpen:
		return m.Help.View(m.Keys.Form)
	case StateConfirmingDelete:
		return m.Help.View(m.Keys.Confirm)
	case StateSubmitting, StateDeleting:
		return m.Help.View(m.Keys.Busy)
	default:
		return m.Help.View(m.Keys.List)
	}
}

func (m AppModel) contentWidth() int {
	if m.Width <= 0 {
		return defaultWidth
	}
	return m.Width
}
