package urls

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the public pets registry.
const DefaultBaseURL = "https://misterio07.alwaysdata.net"

// Default endpoint paths
const (
	DefaultListPath   = "/mascotas"
	DefaultRecordPath = "/mascota"
)

// PhotoFormField is the multipart part name the registry reads the photo from.
const PhotoFormField = "foto"

// Endpoints holds the collection and record paths relative to the base URL.
type Endpoints struct {
	List   string `yaml:"list" env:"MASCOTAS_LIST_PATH" env-default:"/mascotas"`
	Record string `yaml:"record" env:"MASCOTAS_RECORD_PATH" env-default:"/mascota"`
}

// DefaultEndpoints returns the paths the public registry uses.
func DefaultEndpoints() Endpoints {
	return Endpoints{List: DefaultListPath, Record: DefaultRecordPath}
}

// Builder joins a base URL with endpoint paths.
type Builder struct {
	base      string
	endpoints Endpoints
}

// NewBuilder creates a builder. Trailing slashes on base are ignored and empty
// endpoint paths fall back to the defaults.
func NewBuilder(base string, endpoints Endpoints) Builder {
	if endpoints.List == "" {
		endpoints.List = DefaultListPath
	}
	if endpoints.Record == "" {
		endpoints.Record = DefaultRecordPath
	}
	return Builder{
		base:      strings.TrimRight(base, "/"),
		endpoints: endpoints,
	}
}

// Base returns the normalized base URL.
func (b Builder) Base() string {
	return b.base
}

// List returns the collection URL, e.g. https://host/mascotas
func (b Builder) List() string {
	return b.base + ensureLeadingSlash(b.endpoints.List)
}

// Create returns the URL new records are posted to.
func (b Builder) Create() string {
	return b.base + ensureLeadingSlash(b.endpoints.Record)
}

// Record returns the URL of a single record, e.g. https://host/mascota/42
func (b Builder) Record(id int) string {
	return b.Create() + "/" + url.PathEscape(strconv.Itoa(id))
}

func ensureLeadingSlash(p string) string {
	p = strings.TrimRight(p, "/")
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

// ValidateBaseURL checks that base is an absolute http(s) URL.
func ValidateBaseURL(base string) error {
	u, err := url.Parse(base)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &url.Error{Op: "parse", URL: base, Err: errScheme}
	}
	if u.Host == "" {
		return &url.Error{Op: "parse", URL: base, Err: errHost}
	}
	return nil
}

type urlErr string

func (e urlErr) Error() string { return string(e) }

const (
	errScheme = urlErr("scheme must be http or https")
	errHost   = urlErr("missing host")
)
