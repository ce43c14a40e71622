package classifier

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
)

// tokenRe keeps censor symbols inside tokens so obfuscated forms like
// "f***" or "ch##tiya" survive into normalization as a single token.
var tokenRe = regexp.MustCompile(`[a-z0-9@#*$%&^_]+`)

// symbolSubstitutions maps censor symbols to their most likely intended
// letter; symbols without a plausible letter are elided. Applied in a single
// pass, fixed order.
var symbolSubstitutions = strings.NewReplacer(
	"@", "a",
	"$", "s",
	"0", "o",
	"*", "",
	"#", "",
	"%", "",
	"^", "",
	"&", "",
	"_", "",
)

const trimPunctuation = ".,!?-:;'\"()[]{}"

// tokenize splits text into candidate tokens. Word tokens are lowercased
// runs of letters, digits and censor symbols; every emoji is emitted as its
// own token so a bare emoji submission still reaches the emoji check.
func tokenize(text string) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)
	for _, e := range gomoji.CollectAll(text) {
		tokens = append(tokens, e.Character)
	}
	return tokens
}

// normalize produces the canonical form of a token: lowercase, censor
// symbols substituted or elided, runs of 3+ identical letters collapsed to
// exactly 2, leading/trailing punctuation stripped. Total and deterministic,
// malformed input degrades to an empty or partial string.
func normalize(token string) string {
	res := symbolSubstitutions.Replace(strings.ToLower(token))
	res = collapseRepeats(res)
	return strings.Trim(res, trimPunctuation)
}

// collapseRepeats allows at most two consecutive identical runes, so
// "goooood" becomes "good" while legitimately doubled letters survive.
func collapseRepeats(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
		} else {
			prev, count = r, 1
		}
		if count <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
