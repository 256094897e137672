// Package mockapi serves an in-memory pets registry with the same routes and
// payloads as the real one.
//
// It backs the serve-mock command and the end-to-end tests of the client:
//
//	GET    /mascotas         list every record
//	POST   /mascota          create (JSON, or multipart with a "foto" part)
//	GET    /mascota/{id}     fetch one record
//	PUT    /mascota/{id}     replace the editable fields
//	DELETE /mascota/{id}     remove a record
//	GET    /fotos/{id}       the uploaded photo
//
// Errors are JSON objects with an "error" field. Nothing is persisted.
package mockapi
