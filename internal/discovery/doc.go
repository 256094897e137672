// Package discovery finds pets registries on the local network over mDNS.
//
// A registry started with 'mascotas-admin serve-mock --advertise' announces
// itself as a "_mascotas._tcp" service. The TXT record carries the list and
// record paths, so a discovered registry can be used without further
// configuration:
//
//	regs, err := discovery.ScanForRegistries(ctx, 3*time.Second)
//	if err != nil {
//	    return err
//	}
//	for _, r := range regs {
//	    client := petapi.NewClient(r.BaseURL(), r.Endpoints())
//	    // ...
//	}
//
// Browsing needs multicast on the local interface; on networks that filter
// it nothing is found and Scan returns an empty list, not an error.
package discovery
