package mockapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mascotas/mascotas-admin/internal/petapi"
	"github.com/mascotas/mascotas-admin/internal/urls"
)

// maxBodySize caps request bodies: the largest photo plus room for the fields.
const maxBodySize = petapi.MaxPhotoSize + 1<<20

type errorResponse struct {
	Error string `json:"error"`
}

type deleteResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

func (s *Server) listPets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) getPet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := s.store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "pet not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	input, photo, err := decodeInput(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validInput(w, input) {
		return
	}

	p := s.store.Create(input, photo, func(id int) string {
		return photoURL(r, s.config.PhotoPath, id)
	})
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	// A photo sent with an update is ignored
	input, _, err := decodeInput(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validInput(w, input) {
		return
	}

	p, err := s.store.Update(id, input)
	if err != nil {
		writeError(w, http.StatusNotFound, "pet not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := s.store.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "pet not found")
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Message: "pet deleted", ID: id})
}

func (s *Server) getPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ph, err := s.store.Photo(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "photo not found")
		return
	}
	w.Header().Set("Content-Type", ph.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(ph.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(ph.Data)
}

// decodeInput reads the record fields from a JSON or multipart body. The
// photo is only present for multipart bodies that carry one.
func decodeInput(w http.ResponseWriter, r *http.Request) (petapi.PetInput, *petapi.Photo, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var in petapi.PetInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return petapi.PetInput{}, nil, fmt.Errorf("invalid json: %v", err)
		}
		return in.Normalize(), nil, nil
	}

	if err := r.ParseMultipartForm(petapi.MaxPhotoSize); err != nil {
		return petapi.PetInput{}, nil, fmt.Errorf("invalid multipart body: %v", err)
	}

	in := petapi.PetInput{
		Nombre:      r.FormValue("nombre"),
		Tipo:        r.FormValue("tipo"),
		Raza:        r.FormValue("raza"),
		Edad:        petapi.Age(r.FormValue("edad")),
		Direccion:   r.FormValue("direccion"),
		Propietario: r.FormValue("propietario"),
	}.Normalize()

	file, header, err := r.FormFile(urls.PhotoFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil, nil
	}
	if err != nil {
		return petapi.PetInput{}, nil, fmt.Errorf("invalid photo part: %v", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, petapi.MaxPhotoSize+1))
	if err != nil {
		return petapi.PetInput{}, nil, fmt.Errorf("failed to read photo: %v", err)
	}
	if len(data) > petapi.MaxPhotoSize {
		return petapi.PetInput{}, nil, fmt.Errorf("photo exceeds %s", petapi.FormatSize(petapi.MaxPhotoSize))
	}

	photo, err := petapi.NewPhoto(header.Filename, data)
	if err != nil {
		return petapi.PetInput{}, nil, err
	}
	return in, photo, nil
}

func validInput(w http.ResponseWriter, in petapi.PetInput) bool {
	errs := petapi.ValidatePet(in)
	if len(errs) == 0 {
		return true
	}

	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		var fe *petapi.FetchError
		if errors.As(err, &fe) {
			msgs = append(msgs, fe.Message)
			continue
		}
		msgs = append(msgs, err.Error())
	}
	writeError(w, http.StatusBadRequest, strings.Join(msgs, "; "))
	return false
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || petapi.ValidateID(id) != nil {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func photoURL(r *http.Request, prefix string, id int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s/%d", scheme, r.Host, prefix, id)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
