// Package filter compiles context filter strings such as
// "app:*,-app:noise svc:beta" into include and exclude matchers.
//
// Tokens are separated by runs of commas and whitespace. A token starting
// with '-' excludes the rest of the token; any other token includes it.
// Within a pattern '*' matches any run of characters, including none, and
// every other character matches itself. Matching is anchored and
// case-sensitive.
package filter

import (
	"regexp"
	"strings"
	"unicode"
)

// Matcher matches a whole context string against one glob pattern.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewMatcher compiles pattern. It cannot fail: every character other than
// '*' is quoted before the expression is built.
func NewMatcher(pattern string) *Matcher {
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	expr := "(?s)^" + strings.Join(parts, ".*") + "$"
	return &Matcher{pattern: pattern, re: regexp.MustCompile(expr)}
}

// Match reports whether context matches the pattern in full.
func (m *Matcher) Match(context string) bool {
	return m.re.MatchString(context)
}

// String returns the source pattern.
func (m *Matcher) String() string { return m.pattern }

// Set is a compiled filter string.
type Set struct {
	Include []*Matcher
	Exclude []*Matcher
}

// Compile turns raw into a Set. An empty raw string yields an empty Set,
// which means no filtering is configured.
func Compile(raw string) Set {
	var set Set
	for _, token := range tokenize(raw) {
		if strings.HasPrefix(token, "-") {
			set.Exclude = append(set.Exclude, NewMatcher(token[1:]))
			continue
		}
		set.Include = append(set.Include, NewMatcher(token))
	}
	return set
}

func tokenize(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// Empty reports whether the set has no patterns at all.
func (s Set) Empty() bool {
	return len(s.Include) == 0 && len(s.Exclude) == 0
}

// Match decides context against the set. Excludes win over includes, and a
// set without includes matches nothing.
func (s Set) Match(context string) bool {
	for _, m := range s.Exclude {
		if m.Match(context) {
			return false
		}
	}
	for _, m := range s.Include {
		if m.Match(context) {
			return true
		}
	}
	return false
}

// String renders the set back into filter syntax.
func (s Set) String() string {
	tokens := make([]string, 0, len(s.Include)+len(s.Exclude))
	for _, m := range s.Include {
		tokens = append(tokens, m.pattern)
	}
	for _, m := range s.Exclude {
		tokens = append(tokens, "-"+m.pattern)
	}
	return strings.Join(tokens, ",")
}
