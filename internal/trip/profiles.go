package trip

// #region default-profile

// DefaultCityProfile returns a neutral profile for cities without curated data.
func DefaultCityProfile(name string) CityProfile {
	return CityProfile{
		Name:                name,
		NightReliability:    0.7,
		WalkFriendliness:    0.6,
		ComplexInterchanges: nil,
	}
}

// #endregion default-profile

// #region builtin-profiles

// BuiltinProfiles are the curated city profiles compiled into the binary.
// A YAML profile file loaded through internal/config overrides these.
var BuiltinProfiles = map[string]CityProfile{
	"seoul": {
		Name:                "seoul",
		NightReliability:    0.85,
		WalkFriendliness:    0.7,
		ComplexInterchanges: []string{"Sindorim", "Express Bus Terminal", "Dongdaemun History & Culture Park", "Wangsimni"},
	},
	"london": {
		Name:                "london",
		NightReliability:    0.65,
		WalkFriendliness:    0.75,
		ComplexInterchanges: []string{"Bank", "King's Cross St Pancras", "Green Park", "Baker Street"},
	},
	"new york": {
		Name:                "new york",
		NightReliability:    0.75,
		WalkFriendliness:    0.8,
		ComplexInterchanges: []string{"Times Sq-42 St", "Fulton St", "Atlantic Av-Barclays Ctr"},
	},
}

// ProfileFor returns the curated profile for a city, or a neutral default.
func ProfileFor(name string) CityProfile {
	if p, ok := BuiltinProfiles[name]; ok {
		return p
	}
	return DefaultCityProfile(name)
}

// #endregion builtin-profiles
