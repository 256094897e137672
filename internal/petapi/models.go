package petapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Pet is a record of the registry.
type Pet struct {
	// ID is assigned by the server on creation and never changes
	ID int `json:"id"`

	Nombre      string `json:"nombre"`
	Tipo        string `json:"tipo"`
	Raza        string `json:"raza"`
	Edad        Age    `json:"edad"`
	Direccion   string `json:"direccion"`
	Propietario string `json:"propietario"`

	// FotoURL is set by the server after a photo upload
	FotoURL string `json:"foto_url,omitempty"`

	// Thumbnail is the name the public listing reads the photo from
	Thumbnail string `json:"thumbnail,omitempty"`
}

// PhotoURL returns the record's photo, preferring foto_url over thumbnail.
// An empty result means the record has no photo.
func (p Pet) PhotoURL() string {
	if u := strings.TrimSpace(p.FotoURL); u != "" {
		return u
	}
	return strings.TrimSpace(p.Thumbnail)
}

// HasPhoto reports whether the record carries a photo URL.
func (p Pet) HasPhoto() bool {
	return p.PhotoURL() != ""
}

// Input returns the editable fields of the record.
func (p Pet) Input() PetInput {
	return PetInput{
		Nombre:      p.Nombre,
		Tipo:        p.Tipo,
		Raza:        p.Raza,
		Edad:        p.Edad,
		Direccion:   p.Direccion,
		Propietario: p.Propietario,
	}
}

// PetInput is what the client sends on create and update.
// It never carries the id or the photo.
type PetInput struct {
	Nombre      string `json:"nombre" validate:"required,max=100"`
	Tipo        string `json:"tipo" validate:"required,max=50"`
	Raza        string `json:"raza" validate:"required,max=50"`
	Edad        Age    `json:"edad" validate:"required,max=30"`
	Direccion   string `json:"direccion" validate:"required,max=200"`
	Propietario string `json:"propietario" validate:"required,max=100"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (in PetInput) Normalize() PetInput {
	return PetInput{
		Nombre:      strings.TrimSpace(in.Nombre),
		Tipo:        strings.TrimSpace(in.Tipo),
		Raza:        strings.TrimSpace(in.Raza),
		Edad:        Age(strings.TrimSpace(string(in.Edad))),
		Direccion:   strings.TrimSpace(in.Direccion),
		Propietario: strings.TrimSpace(in.Propietario),
	}
}

// FormField is a name/value pair of a multipart body.
type FormField struct {
	Name  string
	Value string
}

// FormFields returns the fields in the order they are written to a multipart body.
func (in PetInput) FormFields() []FormField {
	return []FormField{
		{Name: "nombre", Value: in.Nombre},
		{Name: "tipo", Value: in.Tipo},
		{Name: "raza", Value: in.Raza},
		{Name: "edad", Value: string(in.Edad)},
		{Name: "direccion", Value: in.Direccion},
		{Name: "propietario", Value: in.Propietario},
	}
}

// Age is the "edad" field. The registry has stored it both as a JSON string
// and as a number; Age accepts either and sends a number whenever the text is
// a whole number.
type Age string

// UnmarshalJSON accepts a string, a number or null.
func (a *Age) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Age(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("edad: expected string or number, got %s", data)
	}
	*a = Age(n.String())
	return nil
}

// MarshalJSON writes whole numbers as JSON numbers and anything else as a string.
func (a Age) MarshalJSON() ([]byte, error) {
	s := strings.TrimSpace(string(a))
	if n, err := strconv.Atoi(s); err == nil {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(s)
}

// Int returns the age as an integer when it is one.
func (a Age) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(a)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// String implements fmt.Stringer
func (a Age) String() string {
	return string(a)
}

// DeleteResult is the server's acknowledgment of a delete.
type DeleteResult struct {
	// Message is the acknowledgment text, if the server sent one
	Message string

	// Raw is the undecoded response body
	Raw json.RawMessage
}

// Photo is an image attached to a create request.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the photo size in bytes.
func (p *Photo) Size() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}
