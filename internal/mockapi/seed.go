package mockapi

import "github.com/mascotas/mascotas-admin/internal/petapi"

// SampleInputs returns a few records for a demo registry.
func SampleInputs() []petapi.PetInput {
	return []petapi.PetInput{
		{Nombre: "Luna", Tipo: "Gato", Raza: "Siames", Edad: "3", Direccion: "Calle Mayor 1", Propietario: "Ana Ruiz"},
		{Nombre: "Rocky", Tipo: "Perro", Raza: "Boxer", Edad: "5", Direccion: "Av. del Puerto 22", Propietario: "Luis Gil"},
		{Nombre: "Kiwi", Tipo: "Ave", Raza: "Periquito", Edad: "1", Direccion: "Plaza Sol 3", Propietario: "Marta Sanz"},
	}
}

// Seed stores every input without a photo and returns how many were added.
func (s *Store) Seed(inputs []petapi.PetInput) int {
	for _, in := range inputs {
		s.Create(in, nil, nil)
	}
	return len(inputs)
}
