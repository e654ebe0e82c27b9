package catalog

// translations is keyed by language, then by translation key. Czech is
// the complete set; English and Italian cover the public pages.
var translations = map[string]map[string]string{
	"cs": {
		"region.calabria.name":    "Kalábrie",
		"region.calabria.summary": "Nejdostupnější přímořské bydlení v Itálii, dlouhé písčité pláže a pomalý jih.",
		"region.puglia.name":      "Apulie",
		"region.puglia.summary":   "Bílá města, trulli a olivové háje na patě italské boty.",
		"region.abruzzo.name":     "Abruzzo",
		"region.abruzzo.summary":  "Hory a moře hodinu od sebe, kamenné vesnice a národní parky.",
		"region.sicilia.name":     "Sicílie",
		"region.sicilia.summary":  "Největší středomořský ostrov, barokní města a domy od jednoho eura.",
		"region.liguria.name":     "Ligurie",
		"region.liguria.summary":  "Italská riviéra, Sanremo a Cinque Terre do hodiny autem.",

		"nav.catalog":   "Nabídka nemovitostí",
		"nav.dashboard": "Můj účet",
		"nav.club":      "Klub Domy v Itálii",
		"nav.admin":     "Administrace",

		"home.tagline": "Váš dům v Itálii. Česky a bez starostí.",
	},
	"en": {
		"region.calabria.name":    "Calabria",
		"region.calabria.summary": "Italy's most affordable seaside living, long sandy beaches and the slow south.",
		"region.puglia.name":      "Puglia",
		"region.puglia.summary":   "White towns, trulli and olive groves on the heel of the boot.",
		"region.abruzzo.name":     "Abruzzo",
		"region.abruzzo.summary":  "Mountains and sea an hour apart, stone villages and national parks.",
		"region.sicilia.name":     "Sicily",
		"region.sicilia.summary":  "The largest Mediterranean island, baroque towns and one-euro houses.",
		"region.liguria.name":     "Liguria",
		"region.liguria.summary":  "The Italian Riviera, Sanremo and Cinque Terre within an hour.",

		"nav.catalog":   "Property listings",
		"nav.dashboard": "My account",
		"nav.club":      "Domy v Itálii Club",
		"nav.admin":     "Administration",

		"home.tagline": "Your home in Italy, without the hassle.",
	},
	"it": {
		"region.calabria.name": "Calabria",
		"region.puglia.name":   "Puglia",
		"region.abruzzo.name":  "Abruzzo",
		"region.sicilia.name":  "Sicilia",
		"region.liguria.name":  "Liguria",

		"nav.catalog":   "Annunci immobiliari",
		"nav.dashboard": "Il mio account",
		"nav.club":      "Club Domy v Itálii",
		"nav.admin":     "Amministrazione",
	},
}
