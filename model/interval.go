package model

// IntervalRecord maps an inclusive rank interval to a college label. Records
// are produced by the dataset parser and never mutated afterwards. The parser
// does not enforce RankStart <= RankEnd; an inverted interval simply never
// matches.
type IntervalRecord struct {
	RankStart int    `json:"rankStart" yaml:"rankStart"`
	RankEnd   int    `json:"rankEnd" yaml:"rankEnd"`
	College   string `json:"college" yaml:"college"`
}

// Contains reports whether rank falls within the record's inclusive interval.
func (r *IntervalRecord) Contains(rank int) bool {
	return rank >= r.RankStart && rank <= r.RankEnd
}

// Table is an ordered sequence of interval records; the order is the dataset
// file order. No deduplication, sorting or overlap validation is applied.
type Table []IntervalRecord

// Match scans the table in order and returns the college of the first record
// containing rank. The boolean is false when no record matches.
func (t Table) Match(rank int) (string, bool) {
	for i := range t {
		if t[i].Contains(rank) {
			return t[i].College, true
		}
	}
	return "", false
}
