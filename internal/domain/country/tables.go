package country

// delegationToCountry maps each 3-letter delegation code in the dataset to
// the 2-letter country code its medals are consolidated under. Many-to-one:
// dissolved delegations map to their primary successor. The table is a fixed
// snapshot of the dataset's known code set, not a general mapping facility.
var delegationToCountry = map[string]string{
	// Straightforward modern delegations
	"USA": "US", "GBR": "GB", "FRA": "FR", "GER": "DE", "CHN": "CN",
	"JPN": "JP", "AUS": "AU", "CAN": "CA", "ITA": "IT", "BRA": "BR",
	"ESP": "ES", "KOR": "KR", "NED": "NL", "SWE": "SE", "NOR": "NO",
	"DEN": "DK", "FIN": "FI", "POL": "PL", "ROU": "RO", "NZL": "NZ",
	"MEX": "MX", "ARG": "AR", "BEL": "BE", "SUI": "CH", "AUT": "AT",
	"GRE": "GR", "CUB": "CU", "POR": "PT", "IND": "IN", "RSA": "ZA",
	"TUR": "TR", "KEN": "KE", "JAM": "JM", "ETH": "ET", "UKR": "UA",
	"CZE": "CZ", "HUN": "HU", "BUL": "BG", "IRL": "IE", "IRI": "IR",
	"EGY": "EG", "PAK": "PK", "NGR": "NG", "CHI": "CL", "COL": "CO",
	"VEN": "VE", "THA": "TH", "MAS": "MY", "SGP": "SG", "PHI": "PH",
	"INA": "ID", "ISR": "IL", "URU": "UY", "MAR": "MA", "ALG": "DZ",
	"PER": "PE", "VIE": "VN", "CRO": "HR", "SLO": "SI", "SRB": "RS",
	"SVK": "SK", "EST": "EE", "LAT": "LV", "LTU": "LT", "GEO": "GE",
	"ARM": "AM", "AZE": "AZ", "KAZ": "KZ", "UZB": "UZ", "BLR": "BY",

	// Dissolved delegations folded into their successor country
	"URS": "RU", // USSR
	"GDR": "DE", // East Germany
	"FRG": "DE", // West Germany
	"TCH": "CZ", // Czechoslovakia
	"YUG": "RS", // Yugoslavia
	"SCG": "RS", // Serbia and Montenegro
	"EUN": "RU", // Unified Team (1992)

	// Special Russian delegations
	"ROC": "RU", // Russian Olympic Committee
	"OAR": "RU", // Olympic Athletes from Russia

	// Remaining modern delegations
	"RUS": "RU", "TPE": "TW", "HKG": "HK", "PRK": "KP",
	"MGL": "MN", "NEP": "NP",
}

// historicalLabels names the dissolved delegations whose medals appear under
// a successor country. Membership here is what makes an output entry
// "historical".
var historicalLabels = map[string]string{
	"URS": "USSR (1952-1988)",
	"GDR": "East Germany (1968-1988)",
	"FRG": "West Germany (1968-1988)",
	"TCH": "Czechoslovakia (1920-1992)",
	"YUG": "Yugoslavia (1920-1992)",
	"SCG": "Serbia and Montenegro (1996-2006)",
	"EUN": "Unified Team (1992)",
}

// countryNames maps country codes to display names. Intentionally partial;
// codes absent here fall back to the code itself.
var countryNames = map[string]string{
	"US": "United States",
	"GB": "Great Britain",
	"FR": "France",
	"DE": "Germany",
	"CN": "China",
	"JP": "Japan",
	"AU": "Australia",
	"CA": "Canada",
	"IT": "Italy",
	"BR": "Brazil",
	"RU": "Russia",
	"ES": "Spain",
	"KR": "South Korea",
	"NL": "Netherlands",
	"SE": "Sweden",
}
