package directive

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of compiled patterns a Matcher keeps.
const DefaultCacheSize = 256

var literalName = regexp.MustCompile(`^[a-zA-Z]+-[a-zA-Z]+$`)

// IsLiteral reports whether pattern is an exact Verb-Noun name rather than
// a regular expression.
func IsLiteral(pattern string) bool {
	return literalName.MatchString(pattern)
}

// Matcher evaluates directive patterns against command display names.
// Compiled regular expressions are cached; a Matcher is safe for
// concurrent use. The zero value and a nil *Matcher compile on every call.
type Matcher struct {
	cache *lru.Cache[string, *regexp.Regexp]
}

// NewMatcher creates a Matcher caching up to size compiled patterns.
func NewMatcher(size int) (*Matcher, error) {
	cache, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		return nil, err
	}

	return &Matcher{cache: cache}, nil
}

// Matches reports whether the display name is selected by pattern.
// Literal patterns compare case-insensitively against the whole name;
// other patterns need only match part of it. A pattern that does not
// compile matches nothing.
func (m *Matcher) Matches(pattern, name string) bool {
	if IsLiteral(pattern) {
		return strings.EqualFold(pattern, name)
	}

	re, err := m.compile(pattern)
	if err != nil {
		return false
	}

	return re.MatchString(name)
}

func (m *Matcher) compile(pattern string) (*regexp.Regexp, error) {
	if m == nil || m.cache == nil {
		return regexp.Compile(pattern)
	}

	if re, ok := m.cache.Get(pattern); ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	m.cache.Add(pattern, re)

	return re, nil
}
