package model

// TestableRef is a read-only view of one testable reference in a scheme file.
type TestableRef struct {
	Scheme    Path      `yaml:"scheme"`
	Blueprint Blueprint `yaml:"blueprint"`
	Skipped   SkipToken `yaml:"skipped,omitempty"` // empty when the attribute is absent
	Position  int       `yaml:"position"`          // 1-based, in document order
}

// IsSkipped reports whether the reference is currently disabled.
func (r TestableRef) IsSkipped() bool {
	return r.Skipped == SkipYes
}

// Change describes the outcome of one mutation of a scheme file.
type Change struct {
	Scheme    Path
	Blueprint Blueprint
	Token     SkipToken
	Matches   int // number of elements whose attribute was set
	Original  []byte
	Updated   []byte
	Written   bool // false for dry runs
}
