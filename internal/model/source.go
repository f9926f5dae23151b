// Package model defines the data structures shared by the scheme mutator.
package model

// Path represents a file system path.
type Path string

// Blueprint is the name a scheme file uses to identify a build or test target.
type Blueprint string

// SkipToken is the literal value the build tool stores in a skipped attribute.
type SkipToken string

const (
	// SkipYes marks a testable reference as skipped.
	SkipYes SkipToken = "YES"
	// SkipNo marks a testable reference as enabled.
	SkipNo SkipToken = "NO"
)

// MatchPolicy decides what happens when more than one testable reference
// matches the requested blueprint.
type MatchPolicy string

const (
	// MatchFirst mutates the first match in document order and ignores the rest.
	MatchFirst MatchPolicy = "first"
	// MatchUnique fails unless exactly one reference matches.
	MatchUnique MatchPolicy = "unique"
	// MatchAll mutates every match.
	MatchAll MatchPolicy = "all"
)

// ParseMatchPolicy converts a config value into a MatchPolicy.
// An empty value selects MatchFirst.
func ParseMatchPolicy(value string) (MatchPolicy, bool) {
	switch MatchPolicy(value) {
	case "", MatchFirst:
		return MatchFirst, true
	case MatchUnique:
		return MatchUnique, true
	case MatchAll:
		return MatchAll, true
	}

	return "", false
}
