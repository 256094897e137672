// Package urls builds the endpoint URLs of the pets registry API.
//
// The registry exposes a collection endpoint for listing and a record
// endpoint for everything keyed by id:
//
//	GET    {base}/mascotas
//	GET    {base}/mascota/{id}
//	POST   {base}/mascota
//	PUT    {base}/mascota/{id}
//	DELETE {base}/mascota/{id}
//
// Paths are configurable, so a registry mounted under a prefix still works.
package urls
