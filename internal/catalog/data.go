package catalog

import "github.com/domy-v-italii/portal/models"

var regions = []models.Region{
	{Slug: "calabria", NameKey: "region.calabria.name", SummaryKey: "region.calabria.summary", Image: "/images/regions/calabria.jpg"},
	{Slug: "puglia", NameKey: "region.puglia.name", SummaryKey: "region.puglia.summary", Image: "/images/regions/puglia.jpg"},
	{Slug: "abruzzo", NameKey: "region.abruzzo.name", SummaryKey: "region.abruzzo.summary", Image: "/images/regions/abruzzo.jpg"},
	{Slug: "sicilia", NameKey: "region.sicilia.name", SummaryKey: "region.sicilia.summary", Image: "/images/regions/sicilia.jpg"},
	{Slug: "liguria", NameKey: "region.liguria.name", SummaryKey: "region.liguria.summary", Image: "/images/regions/liguria.jpg"},
}

var properties = []models.Property{
	{
		ID:         "prop-cal-001",
		RegionSlug: "calabria",
		Reference:  "CAL-2101",
		Title:      "Apartmán s výhledem na moře, Scalea",
		Town:       "Scalea",
		PriceEUR:   39000,
		Bedrooms:   2,
		AreaM2:     55,
		SeaView:    true,
	},
	{
		ID:         "prop-cal-002",
		RegionSlug: "calabria",
		Reference:  "CAL-214",
		Title:      "Řadový domek v historickém centru, Santa Domenica Talao",
		Town:       "Santa Domenica Talao",
		PriceEUR:   25000,
		Bedrooms:   3,
		AreaM2:     90,
		SeaView:    false,
	},
	{
		ID:         "prop-cal-003",
		RegionSlug: "calabria",
		Reference:  "CAL-287",
		Title:      "Vila s terasou a zahradou, Diamante",
		Town:       "Diamante",
		PriceEUR:   129000,
		Bedrooms:   4,
		AreaM2:     140,
		SeaView:    true,
	},
	{
		ID:         "prop-pug-001",
		RegionSlug: "puglia",
		Reference:  "PUG-118",
		Title:      "Trullo k rekonstrukci, Ostuni",
		Town:       "Ostuni",
		PriceEUR:   58000,
		Bedrooms:   1,
		AreaM2:     48,
		SeaView:    false,
	},
	{
		ID:         "prop-pug-002",
		RegionSlug: "puglia",
		Reference:  "PUG-203",
		Title:      "Byt 300 m od pláže, Monopoli",
		Town:       "Monopoli",
		PriceEUR:   95000,
		Bedrooms:   2,
		AreaM2:     70,
		SeaView:    true,
	},
	{
		ID:         "prop-abr-001",
		RegionSlug: "abruzzo",
		Reference:  "ABR-77",
		Title:      "Kamenný dům v podhůří, Casoli",
		Town:       "Casoli",
		PriceEUR:   42000,
		Bedrooms:   3,
		AreaM2:     110,
		SeaView:    false,
	},
	{
		ID:         "prop-sic-001",
		RegionSlug: "sicilia",
		Reference:  "SIC-9",
		Title:      "Dům za 1 euro + náklady, Sambuca di Sicilia",
		Town:       "Sambuca di Sicilia",
		PriceEUR:   18000,
		Bedrooms:   2,
		AreaM2:     85,
		SeaView:    false,
	},
	{
		ID:         "prop-lig-001",
		RegionSlug: "liguria",
		Reference:  "LIG-45",
		Title:      "Apartmán s balkonem, Sanremo",
		Town:       "Sanremo",
		PriceEUR:   185000,
		Bedrooms:   2,
		AreaM2:     65,
		SeaView:    true,
	},
}
