package renamer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatePrefix(t *testing.T) {
	rule := DatePrefix("2022-04-02")

	var tests = []struct {
		name     string
		expected string
	}{
		{"2021-06-15-post.md", "2022-04-02-post.md"},
		{"1999-12-31", "2022-04-02"},
		{"0000-00-00x", "2022-04-02x"},
		{"2021-06-15 2020-01-01.md", "2022-04-02 2020-01-01.md"},
		{"2022-04-02-post.md", "2022-04-02-post.md"},
		{"2021-06-15-$1.md", "2022-04-02-$1.md"},
		{"22-04-02", "22-04-02"},
		{"abcd-04-02file", "abcd-04-02file"},
		{"2021-6-15-post.md", "2021-6-15-post.md"},
		{"2021-06-1", "2021-06-1"},
		{"2021_06_15-post.md", "2021_06_15-post.md"},
		{"x2021-06-15-post.md", "x2021-06-15-post.md"},
		{" 2021-06-15", " 2021-06-15"},
		{"notes.txt", "notes.txt"},
		{"readme", "readme"},
		{"", ""},
		// Non-ASCII digits are not digits here.
		{"٢٠٢١-٠٦-١٥-post.md", "٢٠٢١-٠٦-١٥-post.md"},
		{"２０２１-０６-１５-post.md", "２０２１-０６-１５-post.md"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, rule(test.name), "unexpected new name for %q", test.name)
	}
}

func TestDatePrefixIsLiteral(t *testing.T) {
	rule := DatePrefix("$0-${1}")

	assert.Equal(t, "$0-${1}-post.md", rule("2021-06-15-post.md"), "replacement should not expand regexp templates")
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2022-04-02"))
	assert.True(t, IsDate("9999-99-99"), "calendar values are not checked")
	assert.False(t, IsDate("2022-04-02-post"))
	assert.False(t, IsDate("2022-4-2"))
	assert.False(t, IsDate("2022/04/02"))
	assert.False(t, IsDate(""))
}

func FuzzDatePrefix(f *testing.F) {
	for _, seed := range []string{"2021-06-15-post.md", "2022-04-02", "notes.txt", "22-04-02", "", "0000-00-00\n"} {
		f.Add(seed)
	}

	rule := DatePrefix(DefaultReplacementDate)

	f.Fuzz(func(t *testing.T, name string) {
		once := rule(name)

		assert.Equal(t, once, rule(once), "applying the rule twice should equal applying it once")

		if HasDatePrefix(name) {
			assert.Equal(t, DefaultReplacementDate+name[PrefixLen:], once, "suffix should be kept verbatim")
		} else {
			assert.Equal(t, name, once, "names without a date prefix should be left alone")
		}
	})
}
