package generator

import (
	"focusgen/core/focus"
)

// LocationGenerator picks a region from the provider catalog and a zone
// from that region
type LocationGenerator struct {
	family
}

// NewLocationGenerator creates the location generator
func NewLocationGenerator() *LocationGenerator {
	return &LocationGenerator{newFamily("location", focus.RegionId, focus.RegionName, focus.AvailabilityZone)}
}

// Generate implements Generator
func (g *LocationGenerator) Generate(ctx *Context) (any, error) {
	if !g.Owns(ctx.Column) {
		return nil, g.unsupported(ctx.Column)
	}
	entry, err := ctx.Params.Entry()
	if err != nil {
		return nil, err
	}
	if ctx.Column == focus.RegionId {
		if chance(ctx.Rand, 0.1) {
			return nil, nil
		}
		return pick(ctx.Rand, entry.RegionIDs()), nil
	}

	regionID := ctx.Row.String(focus.RegionId)
	switch ctx.Column {
	case focus.RegionName:
		if regionID == "" {
			if chance(ctx.Rand, 0.1) {
				return nil, nil
			}
			return "Unknown Region", nil
		}
		region, ok := entry.Region(regionID)
		if !ok {
			return "Region " + regionID, nil
		}
		return region.Name, nil

	default: // AvailabilityZone
		if chance(ctx.Rand, 0.2) || regionID == "" {
			return nil, nil
		}
		region, ok := entry.Region(regionID)
		if !ok {
			return nil, nil
		}
		return pick(ctx.Rand, region.Zones), nil
	}
}
