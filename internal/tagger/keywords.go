package tagger

const (
	DefaultPriceUnit       = "ብር" // birr
	DefaultPriceIntroducer = "ዋጋ" // price
)

// Keywords are the static word lists the cascade consults. Multi-word
// locations are stored pre-joined, since tokens never contain spaces.
type Keywords struct {
	PriceMarkers    []string
	PriceUnit       string
	PriceIntroducer string
	Locations       []string
	Products        []string
}

// DefaultKeywords returns the built-in keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		PriceMarkers:    []string{"ዋጋ", "ብር", "በ"},
		PriceUnit:       DefaultPriceUnit,
		PriceIntroducer: DefaultPriceIntroducer,
		Locations: []string{
			"ድሬዳዋ",
			"መገናኛመሰረትደፋርሞልሁለተኛፎቅ",
			"ጦርሀይሎች",
			"መዚድ",
			"ሜክሲኮ",
			"ኮሜርስ",
		},
		Products: []string{
			"በኤሌክትሪክየሚሰራ",
			"ለመኪና",
			"ለቤትና",
			"የችበስመጥበሻ",
		},
	}
}
