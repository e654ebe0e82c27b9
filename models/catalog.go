package models

// Region is a marketed Italian region. Content is constant, compiled
// into the binary; names and summaries are translation keys resolved
// per request language.
type Region struct {
	Slug       string `json:"slug"`
	NameKey    string `json:"name_key"`
	SummaryKey string `json:"summary_key"`
	Image      string `json:"image"`
}

// Property is a single listed property. PriceEUR is the asking price in
// whole euros; Reference is the short human code agents quote on the
// phone.
type Property struct {
	ID         string `json:"id"`
	RegionSlug string `json:"region_slug"`
	Reference  string `json:"reference"`
	Title      string `json:"title"`
	Town       string `json:"town"`
	PriceEUR   int64  `json:"price_eur"`
	Bedrooms   int    `json:"bedrooms"`
	AreaM2     int    `json:"area_m2"`
	SeaView    bool   `json:"sea_view"`
}
