package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// fakeService is an in-memory PetService that records calls
type fakeService struct {
	mu     sync.Mutex
	pets   []petapi.Pet
	nextID int

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	calls      []string
	lastPhoto  *petapi.Photo
	lastCreate petapi.PetInput
}

func newFakeService(pets ...petapi.Pet) *fakeService {
	next := 1
	for _, p := range pets {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return &fakeService{pets: pets, nextID: next}
}

func (s *fakeService) record(call string) {
	s.calls = append(s.calls, call)
}

func (s *fakeService) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *fakeService) ListPets(ctx context.Context) ([]petapi.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("list")
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]petapi.Pet{}, s.pets...), nil
}

func (s *fakeService) GetPet(ctx context.Context, id int) (*petapi.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("get")
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, p := range s.pets {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, petapi.NewHTTPError(petapi.OpGet, 404, "404 Not Found", "")
}

func (s *fakeService) CreatePet(ctx context.Context, input petapi.PetInput, photo *petapi.Photo) (*petapi.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("create")
	s.lastPhoto = photo
	s.lastCreate = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	pet := petapi.Pet{ID: s.nextID, Nombre: input.Nombre, Tipo: input.Tipo, Raza: input.Raza,
		Edad: input.Edad, Direccion: input.Direccion, Propietario: input.Propietario}
	s.nextID++
	s.pets = append(s.pets, pet)
	return &pet, nil
}

func (s *fakeService) UpdatePet(ctx context.Context, id int, input petapi.PetInput) (*petapi.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("update")
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	for i, p := range s.pets {
		if p.ID == id {
			s.pets[i] = petapi.Pet{ID: id, Nombre: input.Nombre, Tipo: input.Tipo, Raza: input.Raza,
				Edad: input.Edad, Direccion: input.Direccion, Propietario: input.Propietario}
			out := s.pets[i]
			return &out, nil
		}
	}
	return nil, petapi.NewHTTPError(petapi.OpUpdate, 404, "404 Not Found", "")
}

func (s *fakeService) DeletePet(ctx context.Context, id int) (*petapi.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("delete")
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	for i, p := range s.pets {
		if p.ID == id {
			s.pets = append(s.pets[:i], s.pets[i+1:]...)
			return &petapi.DeleteResult{Message: "Mascota eliminada"}, nil
		}
	}
	return nil, petapi.NewHTTPError(petapi.OpDelete, 404, "404 Not Found", "")
}

func samplePets() []petapi.Pet {
	return []petapi.Pet{
		{ID: 1, Nombre: "Luna", Tipo: "Perro", Raza: "Mestizo", Edad: "3", Direccion: "Calle 1", Propietario: "Ana"},
		{ID: 2, Nombre: "Milo", Tipo: "Gato", Raza: "Siames", Edad: "2", Direccion: "Av 9", Propietario: "Leo",
			FotoURL: "https://cdn.example/2.jpg"},
	}
}

// newTestModel builds a model whose alerts never expire on their own
func newTestModel(svc PetService) AppModel {
	m := NewAppModel(svc, Options{AlertTimeout: time.Hour})
	m.tick = func(time.Duration, func(time.Time) tea.Msg) tea.Cmd { return nil }
	return m
}

// run executes cmd, feeding every produced message back into the model
// until no more arrive. Commands that do not finish promptly (cursor
// blinks) are abandoned.
func run(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()

	pending := []tea.Cmd{cmd}
	for round := 0; len(pending) > 0; round++ {
		if round > 20 {
			t.Fatal("command chain did not settle")
		}

		msgs := collect(pending)
		pending = nil
		for _, msg := range msgs {
			updated, next := m.Update(msg)
			m = updated.(AppModel)
			if next != nil {
				pending = append(pending, next)
			}
		}
	}
	return m
}

func collect(cmds []tea.Cmd) []tea.Msg {
	var flat []tea.Cmd
	for _, c := range cmds {
		if c != nil {
			flat = append(flat, c)
		}
	}

	results := make(chan tea.Msg, len(flat))
	for _, c := range flat {
		go func(c tea.Cmd) {
			results <- c()
		}(c)
	}

	var msgs []tea.Msg
	deadline := time.After(200 * time.Millisecond)
	for received := 0; received < len(flat); received++ {
		select {
		case msg := <-results:
			if batch, ok := msg.(tea.BatchMsg); ok {
				msgs = append(msgs, collect(batch)...)
				continue
			}
			if msg != nil {
				msgs = append(msgs, msg)
			}
		case <-deadline:
			return msgs
		}
	}
	return msgs
}

func press(t *testing.T, m AppModel, keys ...string) AppModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, cmd := m.Update(msg)
		m = run(t, updated.(AppModel), cmd)
	}
	return m
}

// loaded returns a model after its initial load completed
func loaded(t *testing.T, svc PetService) AppModel {
	t.Helper()
	m := newTestModel(svc)
	return run(t, m, m.loadPetsCmd(m.loadSeq))
}

func fillForm(m *AppModel, in petapi.PetInput) {
	m.Form.Inputs[fieldNombre].SetValue(in.Nombre)
	m.Form.Inputs[fieldTipo].SetValue(in.Tipo)
	m.Form.Inputs[fieldRaza].SetValue(in.Raza)
	m.Form.Inputs[fieldEdad].SetValue(string(in.Edad))
	m.Form.Inputs[fieldDireccion].SetValue(in.Direccion)
	m.Form.Inputs[fieldPropietario].SetValue(in.Propietario)
}

func validPetInput() petapi.PetInput {
	return petapi.PetInput{Nombre: "Rocky", Tipo: "Perro", Raza: "Boxer", Edad: "5",
		Direccion: "Calle 8", Propietario: "Sol"}
}

func TestInitialLoad(t *testing.T) {
	m := loaded(t, newFakeService(samplePets()...))

	if m.State != StateIdle {
		t.Errorf("State = %v, want idle", m.State)
	}
	if m.List.Status != ListReady || len(m.List.Pets) != 2 {
		t.Fatalf("list = %v with %d pets", m.List.Status, len(m.List.Pets))
	}
	if id, ok := m.List.SelectedID(); !ok || id != 1 {
		t.Errorf("SelectedID() = %d, %v", id, ok)
	}
}

func TestEmptyListShowsPlaceholder(t *testing.T) {
	m := loaded(t, newFakeService())

	rows := m.List.Table.Rows()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want exactly one placeholder row", len(rows))
	}
	if rows[0][1] != EmptyListText {
		t.Errorf("placeholder = %q", rows[0][1])
	}
	if m.Alert != nil {
		t.Errorf("empty list is not an error, got alert %+v", m.Alert)
	}
	if _, ok := m.List.SelectedID(); ok {
		t.Error("placeholder row must not be selectable for edit/delete")
	}
}

func TestLoadFailure(t *testing.T) {
	svc := newFakeService()
	svc.listErr = petapi.NewHTTPError(petapi.OpList, 500, "500 Internal Server Error", "boom")

	m := loaded(t, svc)

	if m.List.Status != ListFailed {
		t.Errorf("Status = %v, want failed", m.List.Status)
	}
	if rows := m.List.Table.Rows(); len(rows) != 1 || !strings.Contains(rows[0][1], "HTTP 500") {
		t.Errorf("rows = %v, want one inline error row", rows)
	}
	if m.Alert == nil || m.Alert.Kind != AlertError {
		t.Errorf("Alert = %+v, want error alert", m.Alert)
	}
	if m.State != StateIdle {
		t.Errorf("State = %v, want idle", m.State)
	}

	// Reload recovers once the registry answers
	svc.mu.Lock()
	svc.listErr = nil
	svc.pets = samplePets()
	svc.mu.Unlock()

	m = press(t, m, "r")
	if m.List.Status != ListReady || len(m.List.Pets) != 2 {
		t.Errorf("reload should recover, got %v with %d pets", m.List.Status, len(m.List.Pets))
	}
}

func TestStaleLoadDiscarded(t *testing.T) {
	m := newTestModel(newFakeService())
	m.Load() // seq 2
	m.Load() // seq 3

	updated, _ := m.Update(petsLoadedMsg{seq: 2, pets: samplePets()})
	m = updated.(AppModel)
	if m.List.Status != ListLoading {
		t.Fatalf("superseded result should be dropped, status = %v", m.List.Status)
	}

	updated, _ = m.Update(petsLoadedMsg{seq: 3, pets: samplePets()[:1]})
	m = updated.(AppModel)
	if len(m.List.Pets) != 1 {
		t.Errorf("latest result should render, got %d pets", len(m.List.Pets))
	}
}

func TestCreateWithoutPhoto(t *testing.T) {
	svc := newFakeService(samplePets()...)
	m := loaded(t, svc)

	m = press(t, m, "n")
	if m.State != StateFormOpen || m.Form.Mode != ModeCreate || !m.Form.Visible {
		t.Fatalf("State = %v mode = %v visible = %v", m.State, m.Form.Mode, m.Form.Visible)
	}

	fillForm(&m, validPetInput())
	m = press(t, m, "ctrl+s")

	if m.State != StateIdle {
		t.Fatalf("State = %v, want idle after create", m.State)
	}
	if m.Form.Visible || m.Form.Mode != ModeCreate {
		t.Error("form should be hidden and back in create mode")
	}
	if m.Alert == nil || m.Alert.Kind != AlertSuccess {
		t.Errorf("Alert = %+v, want success", m.Alert)
	}
	if svc.lastPhoto != nil {
		t.Error("no photo was selected")
	}
	if len(m.List.Pets) != 3 || m.List.Pets[2].ID != 3 {
		t.Errorf("reloaded list should contain the new record with id 3: %+v", m.List.Pets)
	}

	calls := svc.Calls()
	if calls[len(calls)-2] != "create" || calls[len(calls)-1] != "list" {
		t.Errorf("calls = %v, want create followed by a reload", calls)
	}
}

func TestCreateWithPhoto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocky.png")
	if err := os.WriteFile(path, pngBytes(t), 0600); err != nil {
		t.Fatal(err)
	}

	svc := newFakeService()
	m := loaded(t, svc)
	m = press(t, m, "n")
	fillForm(&m, validPetInput())
	m.Form.Inputs[fieldFoto].SetValue(path)

	// Enter on the last field submits
	m.Form.focus(fieldFoto)
	m = press(t, m, "enter")

	if svc.lastPhoto == nil {
		t.Fatal("photo should be uploaded")
	}
	if svc.lastPhoto.ContentType != "image/png" || svc.lastPhoto.Filename != "rocky.png" {
		t.Errorf("photo = %s %s", svc.lastPhoto.Filename, svc.lastPhoto.ContentType)
	}
	if m.State != StateIdle {
		t.Errorf("State = %v, want idle", m.State)
	}
}

func TestCreateWithUnreadablePhoto(t *testing.T) {
	svc := newFakeService()
	m := loaded(t, svc)
	m = press(t, m, "n")
	fillForm(&m, validPetInput())
	m.Form.Inputs[fieldFoto].SetValue(filepath.Join(t.TempDir(), "missing.jpg"))

	m = press(t, m, "ctrl+s")

	if m.State != StateFormOpen {
		t.Errorf("State = %v, want form to stay open", m.State)
	}
	if !m.Form.Invalid["foto"] {
		t.Error("photo field should be flagged")
	}
	for _, c := range svc.Calls() {
		if c == "create" {
			t.Error("no create should be sent with an unreadable photo")
		}
	}
}

func TestSubmitPreviewsTypedPhotoPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("not an image"), 0600); err != nil {
		t.Fatal(err)
	}

	svc := newFakeService()
	m := loaded(t, svc)
	m = press(t, m, "n")
	fillForm(&m, validPetInput())
	m.Form.Inputs[fieldFoto].SetValue(path)

	// Submitted with enter, so the field is never left
	m.Form.focus(fieldFoto)
	m = press(t, m, "enter")

	if m.State != StateFormOpen {
		t.Fatalf("State = %v, want form to stay open", m.State)
	}
	if m.Form.Preview.Err == nil || m.Form.Preview.Path != path {
		t.Errorf("Preview = %+v, want the read error for %s", m.Form.Preview, path)
	}
	if !m.Form.Invalid["foto"] {
		t.Error("photo field should be flagged")
	}
}

func TestSubmitInvalidSendsNothing(t *testing.T) {
	tests := []struct {
		name  string
		blank func(*petapi.PetInput)
		field string
	}{
		{"nombre", func(in *petapi.PetInput) { in.Nombre = "" }, "nombre"},
		{"tipo", func(in *petapi.PetInput) { in.Tipo = "   " }, "tipo"},
		{"edad", func(in *petapi.PetInput) { in.Edad = "" }, "edad"},
		{"propietario", func(in *petapi.PetInput) { in.Propietario = "" }, "propietario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService()
			m := loaded(t, svc)
			before := len(svc.Calls())

			m = press(t, m, "n")
			in := validPetInput()
			tt.blank(&in)
			fillForm(&m, in)
			m = press(t, m, "ctrl+s")

			if got := len(svc.Calls()); got != before {
				t.Errorf("invalid submit issued %d requests", got-before)
			}
			if m.State != StateFormOpen {
				t.Errorf("State = %v, want form_open", m.State)
			}
			if m.Alert == nil || m.Alert.Kind != AlertWarning {
				t.Errorf("Alert = %+v, want warning", m.Alert)
			}
			if !m.Form.Invalid[tt.field] {
				t.Errorf("field %s should be marked invalid", tt.field)
			}
		})
	}
}

func TestCreateFailureKeepsFormOpen(t *testing.T) {
	svc := newFakeService()
	svc.createErr = petapi.NewHTTPError(petapi.OpCreate, 400, "400 Bad Request", "edad invalida")
	m := loaded(t, svc)

	m = press(t, m, "n")
	fillForm(&m, validPetInput())
	m = press(t, m, "ctrl+s")

	if m.State != StateFormOpen {
		t.Fatalf("State = %v, want form_open so submit is enabled again", m.State)
	}
	if m.Alert == nil || m.Alert.Kind != AlertError || !strings.Contains(m.Alert.Text, "edad invalida") {
		t.Errorf("Alert = %+v", m.Alert)
	}
	if got := m.Form.ReadForm(); got.Nombre != "Rocky" {
		t.Error("entered values should be kept")
	}

	// The form is still usable: fixing the server side and resubmitting works
	svc.mu.Lock()
	svc.createErr = nil
	svc.mu.Unlock()
	m = press(t, m, "ctrl+s")
	if m.State != StateIdle {
		t.Errorf("State = %v after retry, want idle", m.State)
	}
}

func TestUpdateFailureKeepsFormOpen(t *testing.T) {
	svc := newFakeService(samplePets()...)
	svc.updateErr = petapi.NewHTTPError(petapi.OpUpdate, 500, "500 Internal Server Error", "database unavailable")
	m := loaded(t, svc)

	m = press(t, m, "down", "e")
	m.Form.Inputs[fieldNombre].SetValue("Milo II")
	m = press(t, m, "ctrl+s")

	if m.State != StateFormOpen {
		t.Fatalf("State = %v, want form_open so submit is enabled again", m.State)
	}
	if m.Alert == nil || m.Alert.Kind != AlertError || !strings.Contains(m.Alert.Text, "database unavailable") {
		t.Errorf("Alert = %+v", m.Alert)
	}
	if m.Form.Mode != ModeEdit || m.Form.EditingID != 2 {
		t.Errorf("mode = %v EditingID = %d, want edit of 2", m.Form.Mode, m.Form.EditingID)
	}
	if got := m.Form.ReadForm(); got.Nombre != "Milo II" {
		t.Errorf("Nombre = %q, entered values should be kept", got.Nombre)
	}

	pet, err := svc.GetPet(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if pet.Nombre != "Milo" {
		t.Errorf("stored pet = %+v, want it unchanged", pet)
	}

	svc.mu.Lock()
	svc.updateErr = nil
	svc.mu.Unlock()
	m = press(t, m, "ctrl+s")
	if m.State != StateIdle {
		t.Errorf("State = %v after retry, want idle", m.State)
	}
}

func TestSubmittingIgnoresInput(t *testing.T) {
	m := loaded(t, newFakeService())
	m = press(t, m, "n")
	fillForm(&m, validPetInput())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(AppModel)
	if m.State != StateSubmitting || cmd == nil {
		t.Fatalf("State = %v, want submitting with a pending request", m.State)
	}

	// A second submit while in flight does nothing
	updated, second := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(AppModel)
	if second != nil {
		t.Error("double submit should not issue another request")
	}
	if !strings.Contains(m.View(), "Saving") {
		t.Error("view should show the disabled submit control")
	}
}

func TestEditFlow(t *testing.T) {
	svc := newFakeService(samplePets()...)
	m := loaded(t, svc)

	m = press(t, m, "down", "e")
	if m.State != StateFormOpen || m.Form.Mode != ModeEdit {
		t.Fatalf("State = %v mode = %v", m.State, m.Form.Mode)
	}
	if m.Form.EditingID != 2 {
		t.Errorf("EditingID = %d, want 2", m.Form.EditingID)
	}
	if got := m.Form.ReadForm(); got.Nombre != "Milo" || got.Edad != "2" {
		t.Errorf("form = %+v", got)
	}
	if m.Form.Preview.URL != "https://cdn.example/2.jpg" {
		t.Errorf("Preview = %+v, want the stored photo URL", m.Form.Preview)
	}

	m.Form.Inputs[fieldNombre].SetValue("Milo II")
	m = press(t, m, "ctrl+s")

	if m.State != StateIdle {
		t.Fatalf("State = %v, want idle", m.State)
	}
	pet, err := svc.GetPet(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if pet.Nombre != "Milo II" || pet.ID != 2 {
		t.Errorf("updated pet = %+v", pet)
	}
}

func TestEditNotFound(t *testing.T) {
	svc := newFakeService(samplePets()...)
	svc.getErr = petapi.NewHTTPError(petapi.OpGet, 404, "404 Not Found", "")
	m := loaded(t, svc)

	m = press(t, m, "e")

	if m.State != StateIdle {
		t.Errorf("State = %v, want idle", m.State)
	}
	if m.Form.Visible {
		t.Error("form must not open after a failed fetch")
	}
	if m.Alert == nil || m.Alert.Kind != AlertError || !strings.Contains(m.Alert.Text, "404") {
		t.Errorf("Alert = %+v", m.Alert)
	}
	if m.FetchingID != 0 {
		t.Error("fetch indicator should be cleared")
	}
}

func TestCancelForm(t *testing.T) {
	m := loaded(t, newFakeService(samplePets()...))
	m = press(t, m, "e")
	m = press(t, m, "esc")

	if m.State != StateIdle || m.Form.Visible {
		t.Errorf("State = %v visible = %v", m.State, m.Form.Visible)
	}
	if m.Form.Mode != ModeCreate || m.Form.EditingID != 0 {
		t.Error("cancel should revert to create mode and clear the id")
	}
	if m.Form.ReadForm().Nombre != "" {
		t.Error("cancel should clear the fields")
	}
}

func TestDeleteFlow(t *testing.T) {
	svc := newFakeService(samplePets()...)
	m := loaded(t, svc)

	m = press(t, m, "d")
	if m.State != StateConfirmingDelete || m.PendingDeleteID != 1 {
		t.Fatalf("State = %v pending = %d", m.State, m.PendingDeleteID)
	}
	if !strings.Contains(m.View(), "Delete pet #1?") {
		t.Error("confirmation prompt should be shown")
	}

	m = press(t, m, "y")

	if m.State != StateIdle || m.PendingDeleteID != 0 {
		t.Errorf("State = %v pending = %d", m.State, m.PendingDeleteID)
	}
	for _, p := range m.List.Pets {
		if p.ID == 1 {
			t.Error("deleted pet should be gone after reload")
		}
	}
	if m.Alert == nil || m.Alert.Kind != AlertSuccess {
		t.Errorf("Alert = %+v", m.Alert)
	}
}

func TestDeleteCancel(t *testing.T) {
	for _, k := range []string{"n", "esc"} {
		t.Run(k, func(t *testing.T) {
			svc := newFakeService(samplePets()...)
			m := loaded(t, svc)
			before := len(svc.Calls())

			m = press(t, m, "d", k)

			if m.State != StateIdle || m.PendingDeleteID != 0 {
				t.Errorf("State = %v pending = %d", m.State, m.PendingDeleteID)
			}
			if len(svc.Calls()) != before {
				t.Error("cancel must not call the registry")
			}
		})
	}
}

func TestDeleteFailure(t *testing.T) {
	svc := newFakeService(samplePets()...)
	svc.deleteErr = petapi.NewHTTPError(petapi.OpDelete, 500, "500 Internal Server Error", "")
	m := loaded(t, svc)

	m = press(t, m, "d", "y")

	if m.State != StateIdle || m.PendingDeleteID != 0 {
		t.Errorf("State = %v pending = %d, want idle with the id cleared", m.State, m.PendingDeleteID)
	}
	if m.Alert == nil || m.Alert.Kind != AlertError {
		t.Errorf("Alert = %+v", m.Alert)
	}

	// Still interactive
	m = press(t, m, "n")
	if m.State != StateFormOpen {
		t.Errorf("State = %v, want form_open", m.State)
	}
}

func TestAlertExpiry(t *testing.T) {
	m := newTestModel(newFakeService())

	var scheduled []int
	m.tick = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		if d != time.Hour {
			t.Errorf("alert timeout = %v", d)
		}
		scheduled = append(scheduled, fn(time.Now()).(alertExpiredMsg).id)
		return nil
	}

	m.showAlert(AlertInfo, "first")
	m.showAlert(AlertError, "second")

	// Expiry of the replaced alert leaves the newer one alone
	updated, _ := m.Update(alertExpiredMsg{id: scheduled[0]})
	m = updated.(AppModel)
	if m.Alert == nil || m.Alert.Text != "second" {
		t.Fatalf("Alert = %+v, want second", m.Alert)
	}

	updated, _ = m.Update(alertExpiredMsg{id: scheduled[1]})
	m = updated.(AppModel)
	if m.Alert != nil {
		t.Errorf("Alert = %+v, want dismissed", m.Alert)
	}
}

func TestQuit(t *testing.T) {
	m := loaded(t, newFakeService())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit from idle")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}

	// In the form, q is text
	m = press(t, m, "n")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(AppModel)
	if m.State != StateFormOpen || m.Form.Inputs[fieldNombre].Value() != "q" {
		t.Errorf("q in the form should be typed, got %q", m.Form.Inputs[fieldNombre].Value())
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should always quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce tea.QuitMsg")
	}
}

func TestViewRenders(t *testing.T) {
	m := loaded(t, newFakeService(samplePets()...))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(AppModel)

	view := m.View()
	for _, want := range []string{AppName, "Pets (2)", "Luna", "Milo"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
