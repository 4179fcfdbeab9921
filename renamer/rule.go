package renamer

import (
	"regexp"
)

type (
	// Rule maps an old entry name to a new one. It must be pure and total.
	Rule func(name string) string
)

const (
	// PrefixLen is the length of a YYYY-MM-DD prefix.
	PrefixLen = len("0000-00-00")
)

var (
	datePrefixRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}`)

	dateRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// DatePrefix returns a [Rule] that replaces a leading YYYY-MM-DD prefix with date.
// Names without such a prefix are returned unchanged.
func DatePrefix(date string) Rule {
	return func(name string) string {
		return datePrefixRegex.ReplaceAllLiteralString(name, date)
	}
}

// HasDatePrefix reports whether name starts with YYYY-MM-DD.
func HasDatePrefix(name string) bool {
	return datePrefixRegex.MatchString(name)
}

// IsDate reports whether s is exactly YYYY-MM-DD, digits only.
// The calendar value is not checked.
func IsDate(s string) bool {
	return dateRegex.MatchString(s)
}
