package ui

// RegionOption is one entry in the region selector.
type RegionOption struct {
	Name string
	Code string
}

// Regions lists the selectable countries. Free-form ISO codes passed via the
// query string are still accepted; this list only feeds the dropdown.
var Regions = []RegionOption{
	{"South Korea", "KR"}, {"United States", "US"}, {"Japan", "JP"}, {"United Kingdom", "GB"}, {"Germany", "DE"},
	{"France", "FR"}, {"Canada", "CA"}, {"Australia", "AU"}, {"India", "IN"}, {"Brazil", "BR"},
	{"Mexico", "MX"}, {"Indonesia", "ID"}, {"Russia", "RU"}, {"Italy", "IT"}, {"Spain", "ES"},
	{"Netherlands", "NL"}, {"Sweden", "SE"}, {"Norway", "NO"}, {"Denmark", "DK"}, {"Finland", "FI"},
	{"Poland", "PL"}, {"Turkey", "TR"}, {"Saudi Arabia", "SA"}, {"United Arab Emirates", "AE"}, {"South Africa", "ZA"},
	{"Thailand", "TH"}, {"Vietnam", "VN"}, {"Philippines", "PH"}, {"Malaysia", "MY"}, {"Singapore", "SG"},
	{"Hong Kong", "HK"}, {"Taiwan", "TW"}, {"Argentina", "AR"}, {"Chile", "CL"}, {"Colombia", "CO"},
	{"Peru", "PE"}, {"Portugal", "PT"}, {"Greece", "GR"}, {"Ireland", "IE"}, {"New Zealand", "NZ"},
	{"Belgium", "BE"}, {"Austria", "AT"}, {"Switzerland", "CH"}, {"Czechia", "CZ"}, {"Hungary", "HU"},
	{"Israel", "IL"}, {"Egypt", "EG"}, {"Nigeria", "NG"}, {"Bangladesh", "BD"}, {"Pakistan", "PK"},
}
