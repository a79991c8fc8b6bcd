package highlight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
)

// Default theme names used when none is configured.
const (
	DefaultLight = "github"
	DefaultDark  = "monokai"
)

// maxSuggestions bounds the number of close matches offered for a typo.
const maxSuggestions = 3

// aliases maps normalized names people commonly type (including the names
// of popular TextMate/Sublime themes) to registered chroma styles.
var aliases = map[string]string{
	"inspiredgithub":     "github",
	"githublight":        "github",
	"solarized":          "solarized-dark",
	"base16oceandark":    "nord",
	"base16oceanlight":   "github",
	"base16eightiesdark": "monokai",
	"base16mochadark":    "dracula",
	"oceandark":          "nord",
	"oceanlight":         "github",
}

// Names returns every registered theme name, sorted case-insensitively.
func Names() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a == b {
			return names[i] < names[j]
		}
		return a < b
	})
	return names
}

// Resolve maps a user-supplied theme name to its canonical registered name.
// Matching is tried in order: exact, case-insensitive, normalized (letters
// and digits only), then aliases. Returns ErrUnknownTheme if nothing matches.
func Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownTheme)
	}

	if _, ok := styles.Registry[name]; ok {
		return name, nil
	}

	names := Names()
	lower := strings.ToLower(name)
	for _, n := range names {
		if strings.ToLower(n) == lower {
			return n, nil
		}
	}

	norm := normalize(name)
	for _, n := range names {
		if normalize(n) == norm {
			return n, nil
		}
	}

	if target, ok := aliases[norm]; ok {
		if _, registered := styles.Registry[target]; registered {
			return target, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Suggest returns up to three registered names close to name, best first.
func Suggest(name string) []string {
	norm := normalize(name)
	if norm == "" {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, n := range Names() {
		nn := normalize(n)
		d := levenshtein(norm, nn)
		if strings.HasPrefix(nn, norm) || strings.HasPrefix(norm, nn) {
			d = 0
		}
		if d <= 3 {
			candidates = append(candidates, candidate{name: n, dist: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	var out []string
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.name)
	}
	return out
}

// normalize lowercases s and drops everything but ASCII letters and digits.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
