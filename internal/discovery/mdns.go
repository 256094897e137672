package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/mascotas/mascotas-admin/internal/logging"
	"github.com/mascotas/mascotas-admin/internal/urls"
)

const (
	// ServiceType is the mDNS service type registries advertise under
	ServiceType = "_mascotas._tcp"

	// ServiceDomain is the mDNS domain
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is assumed when an entry carries no port
	DefaultPort = 80
)

// Scanner handles mDNS registry discovery
type Scanner struct {
	// Timeout is the maximum time to wait for answers
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan browses the local network until the timeout and returns every
// registry that answered, without duplicates.
func (s *Scanner) Scan(ctx context.Context) ([]*Registry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	var (
		mu      sync.Mutex
		found   = make([]*Registry, 0)
		seen    = make(map[string]bool)
		drained = make(chan struct{})
	)

	go func() {
		defer close(drained)
		for entry := range entries {
			reg := parseServiceEntry(entry)
			if reg == nil {
				continue
			}
			mu.Lock()
			if key := reg.BaseURL(); !seen[key] {
				seen[key] = true
				found = append(found, reg)
				logging.Debug("Registry discovered", zap.String("registry", reg.String()))
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	// The resolver closes entries once the browse context ends
	select {
	case <-drained:
	case <-time.After(time.Second):
	}

	mu.Lock()
	defer mu.Unlock()
	return append([]*Registry(nil), found...), nil
}

// parseServiceEntry converts a zeroconf service entry to a Registry.
// Returns nil for entries without a usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Registry {
	if entry == nil || entry.HostName == "" {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	return &Registry{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// Advertisement is a running mDNS announcement.
type Advertisement struct {
	server *zeroconf.Server
}

// Advertise announces a registry listening on port until Shutdown is called.
func Advertise(instance string, port int, endpoints urls.Endpoints, version string) (*Advertisement, error) {
	paths := urls.NewBuilder("", endpoints)
	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, TxtRecords(paths, version), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to advertise %s: %w", instance, err)
	}
	logging.Info("Advertising registry over mDNS",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)
	return &Advertisement{server: server}, nil
}

// Shutdown withdraws the announcement.
func (a *Advertisement) Shutdown() {
	if a != nil && a.server != nil {
		a.server.Shutdown()
	}
}

// TxtRecords returns the TXT entries describing a registry's paths
func TxtRecords(paths urls.Builder, version string) []string {
	return []string{
		TxtList + "=" + paths.List(),
		TxtRecord + "=" + paths.Create(),
		TxtVersion + "=" + version,
	}
}

// ScanForRegistries is a convenience function to scan with a custom timeout
func ScanForRegistries(ctx context.Context, timeout time.Duration) ([]*Registry, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan(ctx)
}
