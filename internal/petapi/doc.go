// Package petapi provides an HTTP client for the pets ("mascotas") registry.
//
// The registry exposes a small REST surface:
//
//	GET    {base}/mascotas      list every record
//	GET    {base}/mascota/{id}  fetch one record
//	POST   {base}/mascota       create (JSON, or multipart with a "foto" part)
//	PUT    {base}/mascota/{id}  replace the editable fields (JSON)
//	DELETE {base}/mascota/{id}  remove a record
//
// Every Client method performs exactly one request. Failures are returned as
// *FetchError, classified as network, HTTP (non-2xx), parse, validation or
// canceled errors, so callers can branch with IsNotFound, IsNetworkError and
// friends and show GetShortErrorMessage to the user.
//
// # Usage Example
//
//	client := petapi.NewClientWithURL("https://misterio07.alwaysdata.net")
//
//	pets, err := client.ListPets(ctx)
//	if err != nil {
//	    log.Fatal(petapi.GetShortErrorMessage(err))
//	}
//
//	input := petapi.PetInput{Nombre: "Luna", Tipo: "Perro", Raza: "Mestizo",
//	    Edad: "3", Direccion: "Calle 1", Propietario: "Ana"}
//	if errs := petapi.ValidatePet(input); len(errs) > 0 {
//	    log.Fatal(petapi.FormatValidationErrors(errs))
//	}
//
//	photo, err := petapi.LoadPhoto("luna.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	created, err := client.CreatePet(ctx, input, photo)
//
// # Field Rules
//
// All six editable fields are required. ValidatePet enforces this before any
// request is sent; the server remains the authority on anything else.
package petapi
