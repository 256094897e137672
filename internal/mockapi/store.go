package mockapi

import (
	"errors"
	"sort"
	"sync"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

// ErrNotFound is returned for an id the store does not hold.
var ErrNotFound = errors.New("not found")

// Store keeps the registry in memory. Ids are assigned sequentially from 1
// and never reused.
type Store struct {
	mu     sync.RWMutex
	nextID int
	pets   map[int]petapi.Pet
	photos map[int]*petapi.Photo
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		pets:   make(map[int]petapi.Pet),
		photos: make(map[int]*petapi.Photo),
	}
}

// List returns every record ordered by id.
func (s *Store) List() []petapi.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]petapi.Pet, 0, len(s.pets))
	for _, p := range s.pets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id int) (petapi.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pets[id]
	if !ok {
		return petapi.Pet{}, ErrNotFound
	}
	return p, nil
}

// Create stores a new record. photoURL is called with the assigned id when a
// photo is attached and its result is saved as the record's photo URL.
func (s *Store) Create(input petapi.PetInput, photo *petapi.Photo, photoURL func(id int) string) petapi.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	p := petFromInput(id, input)
	if photo != nil {
		s.photos[id] = photo
		if photoURL != nil {
			p.FotoURL = photoURL(id)
			p.Thumbnail = p.FotoURL
		}
	}
	s.pets[id] = p
	return p
}

// Update replaces the editable fields of a record. The photo is kept.
func (s *Store) Update(id int, input petapi.PetInput) (petapi.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.pets[id]
	if !ok {
		return petapi.Pet{}, ErrNotFound
	}

	p := petFromInput(id, input)
	p.FotoURL = current.FotoURL
	p.Thumbnail = current.Thumbnail
	s.pets[id] = p
	return p, nil
}

// Delete removes a record and its photo.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[id]; !ok {
		return ErrNotFound
	}
	delete(s.pets, id)
	delete(s.photos, id)
	return nil
}

// Photo returns the uploaded photo of a record.
func (s *Store) Photo(id int) (*petapi.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ph, ok := s.photos[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ph, nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pets)
}

func petFromInput(id int, in petapi.PetInput) petapi.Pet {
	return petapi.Pet{
		ID:          id,
		Nombre:      in.Nombre,
		Tipo:        in.Tipo,
		Raza:        in.Raza,
		Edad:        in.Edad,
		Direccion:   in.Direccion,
		Propietario: in.Propietario,
	}
}
