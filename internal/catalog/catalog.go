// Package catalog holds the marketed regions and property listings,
// and the translations for the portal's three languages. Content is
// compiled in: listings change through deployments, not at runtime.
package catalog

import "github.com/domy-v-italii/portal/models"

// DefaultLanguage is the portal's primary audience language.
const DefaultLanguage = "cs"

// fallbackLanguage is tried when a key has no translation in the
// requested language.
const fallbackLanguage = "en"

type Catalog struct {
	regions    []models.Region
	properties []models.Property
}

// New returns the compiled-in catalog.
func New() *Catalog {
	return &Catalog{
		regions:    regions,
		properties: properties,
	}
}

// Regions lists the marketed regions in presentation order.
func (c *Catalog) Regions() []models.Region {
	return c.regions
}

// Region finds a region by slug.
func (c *Catalog) Region(slug string) (models.Region, bool) {
	for _, region := range c.regions {
		if region.Slug == slug {
			return region, true
		}
	}
	return models.Region{}, false
}

// Properties lists properties, optionally narrowed to one region.
// An empty slug returns everything.
func (c *Catalog) Properties(regionSlug string) []models.Property {
	if regionSlug == "" {
		return c.properties
	}

	var matched []models.Property
	for _, property := range c.properties {
		if property.RegionSlug == regionSlug {
			matched = append(matched, property)
		}
	}
	return matched
}

// Property finds a listing by id.
func (c *Catalog) Property(id string) (models.Property, bool) {
	for _, property := range c.properties {
		if property.ID == id {
			return property, true
		}
	}
	return models.Property{}, false
}

// Translate resolves key in the given language, falling back to
// English and finally to the key itself so missing translations stay
// visible instead of rendering blank.
func (c *Catalog) Translate(language, key string) string {
	if table, ok := translations[language]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if value, ok := translations[fallbackLanguage][key]; ok {
		return value
	}
	return key
}

// Languages lists the supported UI languages.
func (c *Catalog) Languages() []string {
	return []string{"cs", "en", "it"}
}

// HasLanguage reports whether language is supported.
func (c *Catalog) HasLanguage(language string) bool {
	_, ok := translations[language]
	return ok
}
