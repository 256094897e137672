package mockapi

import (
	"errors"
	"testing"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	in := SampleInputs()[0]

	first := s.Create(in, nil, nil)
	second := s.Create(SampleInputs()[1], &petapi.Photo{Filename: "r.png", ContentType: "image/png", Data: []byte{1}},
		func(id int) string { return "http://mock/fotos/2" })

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}
	if first.HasPhoto() || second.FotoURL != "http://mock/fotos/2" {
		t.Errorf("photo urls = %q, %q", first.FotoURL, second.FotoURL)
	}

	updated, err := s.Update(2, petapi.PetInput{Nombre: "Rocky II", Tipo: "Perro", Raza: "Boxer", Edad: "6", Direccion: "x", Propietario: "y"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Nombre != "Rocky II" || updated.FotoURL == "" {
		t.Errorf("update should change fields and keep the photo, got %+v", updated)
	}

	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(deleted) error = %v", err)
	}

	// Ids are not reused after a delete
	if third := s.Create(in, nil, nil); third.ID != 3 {
		t.Errorf("next id = %d, want 3", third.ID)
	}

	list := s.List()
	if len(list) != 2 || list[0].ID != 2 || list[1].ID != 3 {
		t.Errorf("List() = %+v", list)
	}
}

func TestStoreNotFound(t *testing.T) {
	s := NewStore()
	if _, err := s.Update(9, petapi.PetInput{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v", err)
	}
	if err := s.Delete(9); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v", err)
	}
	if _, err := s.Photo(9); !errors.Is(err, ErrNotFound) {
		t.Errorf("Photo() error = %v", err)
	}
}

func TestSeed(t *testing.T) {
	s := NewStore()
	if n := s.Seed(SampleInputs()); n != 3 || s.Len() != 3 {
		t.Errorf("Seed() = %d, Len() = %d", n, s.Len())
	}
	for _, in := range SampleInputs() {
		if errs := petapi.ValidatePet(in); len(errs) != 0 {
			t.Errorf("sample %q is invalid: %v", in.Nombre, errs)
		}
	}
}
