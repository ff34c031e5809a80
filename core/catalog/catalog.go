// Package catalog - Authoritative cloud provider catalog
// Regions, zones, service offerings and billing entities per provider.
// Every provider-scoped column value is drawn from here, which is what
// keeps a generated row consistent with its provider.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"focusgen/internal/errors"
)

// Provider identifies a cloud
type Provider string

const (
	AWS   Provider = "AWS"
	Azure Provider = "AZURE"
	GCP   Provider = "GCP"
)

// String returns the provider key
func (p Provider) String() string {
	return string(p)
}

// Lower returns the lowercase form used in file names
func (p Provider) Lower() string {
	return strings.ToLower(string(p))
}

// ParseProvider accepts aws/azure/gcp in any case
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToUpper(strings.TrimSpace(s))) {
	case AWS:
		return AWS, nil
	case Azure:
		return Azure, nil
	case GCP:
		return GCP, nil
	}
	return "", errors.Newf(errors.TypeInput, "unknown cloud provider %q (want aws, azure or gcp)", s)
}

// Providers returns all supported providers in a stable order
func Providers() []Provider {
	return []Provider{AWS, Azure, GCP}
}

// Region is a provider region with its availability zones
type Region struct {
	ID    string
	Name  string
	Zones []string
}

// ProviderEntry is the catalog entry for one provider
type ProviderEntry struct {
	Provider Provider

	// DisplayName is the ProviderName column value
	DisplayName string

	Publishers     []string
	InvoiceIssuers []string
	Regions        []Region

	// Services maps a service category to the provider's offerings
	Services map[string][]string
}

// Region returns the region with the given ID
func (e *ProviderEntry) Region(id string) (Region, bool) {
	for _, r := range e.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// RegionIDs returns the region IDs in registration order
func (e *ProviderEntry) RegionIDs() []string {
	ids := make([]string, len(e.Regions))
	for i, r := range e.Regions {
		ids[i] = r.ID
	}
	return ids
}

// ServicesFor returns the offerings for a category, falling back to the
// provider's "Other" offerings for categories it does not list
func (e *ProviderEntry) ServicesFor(category string) []string {
	if services, ok := e.Services[category]; ok {
		return services
	}
	return e.Services[OtherCategory]
}

// Categories returns the service categories the provider lists
func (e *ProviderEntry) Categories() []string {
	cats := make([]string, 0, len(e.Services))
	for c := range e.Services {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// OfferService reports whether the provider offers a service by name
func (e *ProviderEntry) OfferService(name string) bool {
	for _, services := range e.Services {
		if contains(services, name) {
			return true
		}
	}
	return false
}

// HasZone reports whether any of the provider's regions has the zone
func (e *ProviderEntry) HasZone(zone string) bool {
	for _, r := range e.Regions {
		if contains(r.Zones, zone) {
			return true
		}
	}
	return false
}

// HasPublisher reports whether name is one of the provider's publishers
func (e *ProviderEntry) HasPublisher(name string) bool {
	return contains(e.Publishers, name)
}

// OtherCategory is the fallback service category
const OtherCategory = "Other"

// Catalog is the authoritative provider catalog
type Catalog struct {
	entries map[Provider]*ProviderEntry
}

// NewCatalog creates a new catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[Provider]*ProviderEntry),
	}
}

// Register adds a provider to the catalog
func (c *Catalog) Register(entry ProviderEntry) {
	if _, exists := c.entries[entry.Provider]; exists {
		panic(fmt.Sprintf("provider already registered: %s", entry.Provider))
	}
	c.entries[entry.Provider] = &entry
}

// Get returns a provider entry
func (c *Catalog) Get(p Provider) (*ProviderEntry, bool) {
	entry, ok := c.entries[p]
	return entry, ok
}

// Lookup returns a provider entry or a not-found error
func (c *Catalog) Lookup(p Provider) (*ProviderEntry, error) {
	entry, ok := c.entries[p]
	if !ok {
		return nil, errors.NotFound("provider", string(p))
	}
	return entry, nil
}

// Providers returns the registered providers sorted by key
func (c *Catalog) Providers() []Provider {
	out := make([]Provider, 0, len(c.entries))
	for p := range c.entries {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Stats returns catalog statistics
func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{
		ByProvider: make(map[Provider]ProviderStats),
	}
	for p, entry := range c.entries {
		ps := ProviderStats{Regions: len(entry.Regions)}
		for _, r := range entry.Regions {
			ps.Zones += len(r.Zones)
		}
		for _, services := range entry.Services {
			ps.Services += len(services)
		}
		stats.ByProvider[p] = ps
		stats.Total++
	}
	return stats
}

// CatalogStats holds catalog statistics
type CatalogStats struct {
	Total      int
	ByProvider map[Provider]ProviderStats
}

// ProviderStats holds per-provider statistics
type ProviderStats struct {
	Regions  int
	Zones    int
	Services int
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog with all clouds registered and validated
func Default() *Catalog {
	defaultOnce.Do(func() {
		c := NewCatalog()
		RegisterAWS(c)
		RegisterAzure(c)
		RegisterGCP(c)
		c.MustValidate()
		defaultCatalog = c
	})
	return defaultCatalog
}
