// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
	"strings"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*ProviderEntry) error

// ServicesPerCategory is the number of offerings each category must list
const ServicesPerCategory = 6

// RequiredCategories are the categories the workload distributions weight
var RequiredCategories = []string{
	"Compute",
	"Storage",
	"Databases",
	"Networking",
	"AI and Machine Learning",
	OtherCategory,
}

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateIdentity,
		validateRegionsHaveZones,
		validateZonesBelongToRegion,
		validateServiceCoverage,
	}
}

// Validate checks a catalog against validation rules, including the
// cross-provider rule that no service name is shared between clouds
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error
	for _, p := range c.Providers() {
		entry := c.entries[p]
		for _, rule := range rules {
			if err := rule(entry); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p, err))
			}
		}
	}
	errs = append(errs, c.validateDisjointServices()...)
	return errs
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) > 0 {
		panic(fmt.Sprintf("catalog has %d validation errors: %v", len(errs), errs))
	}
}

func validateIdentity(e *ProviderEntry) error {
	if e.DisplayName == "" {
		return fmt.Errorf("display name is required")
	}
	if len(e.Publishers) == 0 || len(e.InvoiceIssuers) == 0 {
		return fmt.Errorf("publishers and invoice issuers are required")
	}
	return nil
}

func validateRegionsHaveZones(e *ProviderEntry) error {
	if len(e.Regions) == 0 {
		return fmt.Errorf("no regions registered")
	}
	for _, r := range e.Regions {
		if len(r.Zones) == 0 {
			return fmt.Errorf("region %s has no zones", r.ID)
		}
	}
	return nil
}

// validateZonesBelongToRegion ensures zone names are derived from their region
func validateZonesBelongToRegion(e *ProviderEntry) error {
	for _, r := range e.Regions {
		for _, z := range r.Zones {
			if !strings.HasPrefix(z, r.ID) {
				return fmt.Errorf("zone %s is not in region %s", z, r.ID)
			}
		}
	}
	return nil
}

func validateServiceCoverage(e *ProviderEntry) error {
	for _, cat := range RequiredCategories {
		services, ok := e.Services[cat]
		if !ok {
			return fmt.Errorf("missing service category %q", cat)
		}
		if len(services) != ServicesPerCategory {
			return fmt.Errorf("category %q lists %d services, want %d", cat, len(services), ServicesPerCategory)
		}
	}
	return nil
}

func (c *Catalog) validateDisjointServices() []error {
	var errs []error
	owner := make(map[string]Provider)
	for _, p := range c.Providers() {
		for _, services := range c.entries[p].Services {
			for _, s := range services {
				if prev, ok := owner[s]; ok && prev != p {
					errs = append(errs, fmt.Errorf("service %q listed by both %s and %s", s, prev, p))
				}
				owner[s] = p
			}
		}
	}
	return errs
}
