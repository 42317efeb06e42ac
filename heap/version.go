package heap

import "github.com/Masterminds/semver/v3"

// FormatVersion is the version of this package's observable header byte
// layout: one-word header, own_size low half / pred_size high half,
// word-granularity sizes. It changes only if that layout changes,
// independent of the module's own release version.
const FormatVersion = "1.0.0"

// CheckFormatCompatible reports whether FormatVersion satisfies
// constraint, a semver constraint string (e.g. ">=1.0.0, <2.0.0"). Clients
// that persist a heap's raw bytes or interoperate with another process
// reading them directly can use this to assert they understand the layout
// version before trusting a dump.
func CheckFormatCompatible(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}

	v, err := semver.NewVersion(FormatVersion)
	if err != nil {
		return false, err
	}

	return c.Check(v), nil
}
