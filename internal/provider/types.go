package provider

// EquityMatch is one candidate from the regional equity-search index.
type EquityMatch struct {
	EntityType string
	NSECode    string
	BSECode    string
}

// QuoteMatch is one candidate from the global symbol search.
type QuoteMatch struct {
	Symbol   string
	Exchange string
}

// ChartSeries is a daily close series with its quote metadata. Closes are
// chronological; null samples have already been dropped.
type ChartSeries struct {
	Currency  string
	LongName  string
	ShortName string
	Closes    []float64
}

// Headline is one news search hit.
type Headline struct {
	Title string
	URL   string
}
