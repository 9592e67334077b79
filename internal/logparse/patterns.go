package logparse

import "regexp"

// Line grammar, most specific first. The standard and simple formats
// overlap, so match order in ParseLine is load-bearing.
var (
	// Standard format: [2026.02.14-03.33.56:070][  0]LogCategory: Verbosity: Message
	patternStandard = regexp.MustCompile(
		`^\[(\d{4}\.\d{2}\.\d{2}-\d{2}\.\d{2}\.\d{2}:\d{3})\]\[\s*(\d+)\](\w+):\s*(\w+):\s*(.*)$`,
	)

	// Simple format: LogCategory: Display: Message
	patternSimple = regexp.MustCompile(`^(\w+):\s*(\w+):\s*(.*)$`)

	// File header: Log file open, 02/14/26 11:33:35
	patternHeader = regexp.MustCompile(`^Log file open,\s*(\d{2}/\d{2}/\d{2}\s+\d{2}:\d{2}:\d{2})`)

	// Single-pass extractors used by the indexer for aggregate counts.
	// These run once per line over potentially millions of lines, so they
	// stay independent of the full classifier.
	extractCategory = regexp.MustCompile(`^\[.*?\]\[\s*\d+\](\w+):|^(\w+):`)
	extractLevel    = regexp.MustCompile(`:\s*(Error|Warning|Display|Verbose|VeryVerbose):`)
)

// Highlight patterns for renderers
var (
	// Windows path: C:\xxx or \\xxx
	HighlightPath = regexp.MustCompile(`[A-Za-z]:\\[^\s:]*|\\\\[^\s:]+`)

	// UUID: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	HighlightUUID = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

	// Integers and decimals
	HighlightNumber = regexp.MustCompile(`\b\d+\.?\d*\b`)
)
