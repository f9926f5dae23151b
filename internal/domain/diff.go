package domain

import (
	"github.com/pmezard/go-difflib/difflib"

	m "xcskip.dev/pkg/xcskip/internal/model"
)

// RenderDiff returns a unified diff between the original and updated scheme.
// It is empty when the mutation did not change any byte.
func RenderDiff(change m.Change) (string, error) {
	if string(change.Original) == string(change.Updated) {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(change.Original)),
		B:        difflib.SplitLines(string(change.Updated)),
		FromFile: string(change.Scheme),
		ToFile:   string(change.Scheme) + " (skipped=" + string(change.Token) + ")",
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}
