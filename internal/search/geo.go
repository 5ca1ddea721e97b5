package search

// Static lookup tables mapping the state values carried on listings to the
// country and full state name used by the location filters. Finite by
// design; unknown states map to "Unknown" and never match a country filter.

var stateCountries = map[string]string{
	"NY": "United States",
	"CA": "United States",
	"TX": "United States",
	"FL": "United States",
	"MA": "United States",

	"Ontario":          "Canada",
	"British Columbia": "Canada",

	"England":  "United Kingdom",
	"Scotland": "United Kingdom",

	"New South Wales": "Australia",
	"Victoria":        "Australia",
}

var stateNames = map[string]string{
	"NY": "New York",
	"CA": "California",
	"TX": "Texas",
	"FL": "Florida",
	"MA": "Massachusetts",
}

// CountryForState resolves a listing's state field to a country.
func CountryForState(state string) string {
	if c, ok := stateCountries[state]; ok {
		return c
	}
	return "Unknown"
}

// StateName expands a state abbreviation to its full name; values that are
// already full names pass through unchanged.
func StateName(state string) string {
	if n, ok := stateNames[state]; ok {
		return n
	}
	return state
}
