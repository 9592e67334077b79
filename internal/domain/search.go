package domain

// SearchPageWindow is the fixed lookahead bound, in lines, used by
// paginated search continuation.
const SearchPageWindow = 10000

// SearchOptions are the parameters for one compiled search
type SearchOptions struct {
	Pattern         string `json:"pattern"`
	UseRegex        bool   `json:"use_regex"`
	CaseInsensitive bool   `json:"case_insensitive"`
	StartLine       int    `json:"start_line,omitempty"` // 0 = unbounded
	EndLine         int    `json:"end_line,omitempty"`   // 0 = unbounded
}

// DefaultSearchOptions returns options with regex mode and
// case-insensitive matching on, over the whole file
func DefaultSearchOptions(pattern string) SearchOptions {
	return SearchOptions{
		Pattern:         pattern,
		UseRegex:        true,
		CaseInsensitive: true,
	}
}

// SearchResult is one match within one line. Start and End are character
// offsets into the searched line, not byte offsets.
type SearchResult struct {
	LineNumber  int    `json:"line_number"`
	MatchedText string `json:"matched_text"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
}
