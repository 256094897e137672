package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/mascotas/mascotas-admin/internal/urls"
)

// TXT record keys published with an advertised registry
const (
	TxtList    = "list"
	TxtRecord  = "record"
	TxtVersion = "version"
)

// Registry is a pets registry found on the local network
type Registry struct {
	// Instance is the advertised service name (e.g., "mascotas-mock")
	Instance string

	// Hostname is the mDNS hostname (e.g., "laptop.local.")
	Hostname string

	// IP is the address the registry answered from, IPv4 when available
	IP string

	// Port is the HTTP port
	Port int

	// Metadata holds the TXT record, e.g. "list=/mascotas"
	Metadata map[string]string

	DiscoveredAt time.Time
}

// String returns a human-readable description
func (r *Registry) String() string {
	return fmt.Sprintf("%s (%s) at %s", r.Instance, r.Hostname, r.BaseURL())
}

// BaseURL returns the HTTP base URL of the registry
func (r *Registry) BaseURL() string {
	return "http://" + net.JoinHostPort(r.IP, strconv.Itoa(r.Port))
}

// Endpoints returns the advertised paths, falling back to the defaults
func (r *Registry) Endpoints() urls.Endpoints {
	ep := urls.DefaultEndpoints()
	if p := r.GetMetadata(TxtList); p != "" {
		ep.List = p
	}
	if p := r.GetMetadata(TxtRecord); p != "" {
		ep.Record = p
	}
	return ep
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (r *Registry) GetMetadata(key string) string {
	if r.Metadata == nil {
		return ""
	}
	return r.Metadata[key]
}
