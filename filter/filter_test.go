package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patterns(ms []*Matcher) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.String())
	}
	return out
}

func TestCompile(t *testing.T) {
	tt := []struct {
		name    string
		raw     string
		include []string
		exclude []string
	}{
		{name: "empty", raw: ""},
		{name: "only separators", raw: " , ,\t\n"},
		{
			name:    "mixed separators",
			raw:     "app:*,-app:noise, svc:beta",
			include: []string{"app:*", "svc:beta"},
			exclude: []string{"app:noise"},
		},
		{
			name:    "whitespace only",
			raw:     "a  b\tc\n-d",
			include: []string{"a", "b", "c"},
			exclude: []string{"d"},
		},
		{
			name:    "leading and trailing separators",
			raw:     ",,app:*,,",
			include: []string{"app:*"},
		},
		{
			name:    "bare dash excludes empty pattern",
			raw:     "-",
			exclude: []string{""},
		},
		{
			name:    "only the first dash marks exclusion",
			raw:     "--double",
			exclude: []string{"-double"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			set := Compile(tc.raw)
			assert.Equal(t, len(tc.include), len(set.Include))
			assert.Equal(t, len(tc.exclude), len(set.Exclude))
			if len(tc.include) > 0 {
				assert.Equal(t, tc.include, patterns(set.Include))
			}
			if len(tc.exclude) > 0 {
				assert.Equal(t, tc.exclude, patterns(set.Exclude))
			}
			assert.Equal(t, len(tc.include)+len(tc.exclude) == 0, set.Empty())
		})
	}
}

func TestCompileDeterministic(t *testing.T) {
	raw := "app:*,-app:noise svc:beta"
	a, b := Compile(raw), Compile(raw)
	assert.Equal(t, patterns(a.Include), patterns(b.Include))
	assert.Equal(t, patterns(a.Exclude), patterns(b.Exclude))
	assert.Equal(t, "app:*,svc:beta,-app:noise", a.String())
}

func TestMatcherWildcard(t *testing.T) {
	m := NewMatcher("svc:*")
	for _, ctx := range []string{"svc:", "svc:beta", "svc:beta:sub"} {
		assert.True(t, m.Match(ctx), ctx)
	}
	for _, ctx := range []string{"service:beta", "svc", "xsvc:beta", "SVC:beta"} {
		assert.False(t, m.Match(ctx), ctx)
	}
}

func TestMatcherLiteral(t *testing.T) {
	tt := []struct {
		pattern string
		context string
		want    bool
	}{
		{"app.core", "app.core", true},
		{"app.core", "appXcore", false},
		{"a+b", "a+b", true},
		{"a+b", "aab", false},
		{"(x)[y]{z}", "(x)[y]{z}", true},
		{"^$|?\\", "^$|?\\", true},
		{"app", "app:core", false},
		{"core", "app:core", false},
		{"*", "", true},
		{"*", "anything at all", true},
		{"*", "multi\nline", true},
		{"a*b*c", "abc", true},
		{"a*b*c", "a--b--c", true},
		{"a*b*c", "a--c", false},
		{"", "", true},
		{"", "x", false},
	}
	for _, tc := range tt {
		assert.Equal(t, tc.want, NewMatcher(tc.pattern).Match(tc.context), "%q vs %q", tc.pattern, tc.context)
	}
}

func TestSetMatch(t *testing.T) {
	set := Compile("app:*,-app:noise,svc:beta")
	require.False(t, set.Empty())

	assert.True(t, set.Match("app:core"))
	assert.False(t, set.Match("app:noise"))
	assert.True(t, set.Match("svc:beta"))
	assert.False(t, set.Match("other:x"))
}

func TestSetMatchExcludesOnly(t *testing.T) {
	set := Compile("-app:noise")
	require.False(t, set.Empty())

	assert.False(t, set.Match("app:noise"))
	assert.False(t, set.Match("app:core"))
}

func TestCache(t *testing.T) {
	c := NewCache(2)
	a := c.Compile("app:*")
	b := c.Compile("app:*")
	require.Len(t, a.Include, 1)
	assert.Same(t, a.Include[0], b.Include[0])
	assert.Equal(t, 1, c.Len())

	c.Compile("svc:*")
	c.Compile("db:*")
	assert.Equal(t, 2, c.Len())

	empty := c.Compile("")
	assert.True(t, empty.Empty())
}

func TestCacheNil(t *testing.T) {
	var c *Cache
	set := c.Compile("app:*")
	assert.True(t, set.Match("app:x"))
	assert.Equal(t, 0, c.Len())

	assert.NotNil(t, NewCache(0))
}
