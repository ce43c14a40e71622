// Package classifier implements the feedback classification engine. It
// labels a submission as abusive or clean and scores sentiment for clean
// feedback, resisting simple evasion: censor-symbol substitution ("f@ck",
// "f***"), repeated-character elongation ("goooood") and emoji-based abuse.
package classifier

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/feedguard/feedguard/lib/feedback"
)

const defaultSimilarityThreshold = 0.8

// Config is a set of parameters for Classifier.
type Config struct {
	SimilarityThreshold float64  // fuzzy match threshold for sentiment scoring, 0.0 - 1.0
	AbusivePrefixes     []string // roots for the abusive trie and obfuscation patterns, curated defaults if empty
	SafeWords           []string // tokens excluded from abuse matching, curated defaults if empty
	AbusiveEmojis       []string // emoji characters treated as abusive, curated defaults if empty
}

// Classifier labels feedback submissions. Construct with NewClassifier and
// load lexicons with LoadLexicons before the first Classify call; after
// that every store is read-only and the classifier is safe for concurrent
// use without locking.
type Classifier struct {
	Config

	trie          *prefixTrie
	patterns      []*regexp.Regexp
	safeWords     map[string]struct{}
	abusiveEmojis map[string]struct{}

	stopWords lexicon
	positive  lexicon
	negative  lexicon
}

// NewClassifier makes a new Classifier with the given config, filling
// curated defaults for empty fields. An empty abusive prefix list is a
// configuration error because it would silently disable abuse detection.
func NewClassifier(cfg Config) (*Classifier, error) {
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = defaultSimilarityThreshold
	}
	if len(cfg.AbusivePrefixes) == 0 {
		cfg.AbusivePrefixes = defaultAbusivePrefixes
	}
	if len(cfg.SafeWords) == 0 {
		cfg.SafeWords = defaultSafeWords
	}
	if len(cfg.AbusiveEmojis) == 0 {
		cfg.AbusiveEmojis = defaultAbusiveEmojis
	}
	if cfg.SimilarityThreshold > 1 {
		return nil, fmt.Errorf("similarity threshold %v out of range", cfg.SimilarityThreshold)
	}

	res := &Classifier{
		Config:        cfg,
		trie:          newPrefixTrie(cfg.AbusivePrefixes...),
		patterns:      compileObfuscationPatterns(cfg.AbusivePrefixes),
		safeWords:     map[string]struct{}{},
		abusiveEmojis: map[string]struct{}{},
	}
	for _, w := range cfg.SafeWords {
		res.safeWords[normalize(w)] = struct{}{}
	}
	for _, e := range cfg.AbusiveEmojis {
		res.abusiveEmojis[e] = struct{}{}
	}

	if res.trie.len() == 0 {
		return nil, errors.New("empty abusive prefix trie")
	}
	return res, nil
}

// Classify labels a single feedback submission. Pure and deterministic,
// never fails: malformed input degrades to the empty-feedback sentinel.
func (c *Classifier) Classify(req feedback.Request) feedback.Result {
	tokens := tokenize(req.Text)
	if len(tokens) == 0 {
		return feedback.Result{Classification: feedback.Empty}
	}

	abusive, checks := c.isAbusive(tokens)
	if abusive {
		return feedback.Result{Classification: feedback.Abusive, Checks: checks}
	}
	return feedback.Result{
		Classification: feedback.Clean,
		Sentiment:      c.scoreSentiment(tokens),
		Checks:         checks,
	}
}

// isAbusive runs the abuse checks in order, short-circuiting on the first
// positive signal. All checks are exact-structural (trie, regex, set), no
// fuzzy matching: false positives here are higher-cost than in sentiment
// scoring.
func (c *Classifier) isAbusive(tokens []string) (abusive bool, cr []feedback.Check) {
	checks := []func([]string) feedback.Check{
		c.checkTrie,
		c.checkObfuscation,
		c.checkEmoji,
	}
	for _, check := range checks {
		res := check(tokens)
		cr = append(cr, res)
		if res.Abusive {
			return true, cr
		}
	}
	return false, cr
}

// checkTrie matches normalized tokens against the abusive prefix trie.
// A token normalizing to a safe word is skipped, the false-positive guard
// takes precedence over a trie hit.
func (c *Classifier) checkTrie(tokens []string) feedback.Check {
	for _, token := range tokens {
		norm := normalize(token)
		if norm == "" || c.isSafeWord(norm) {
			continue
		}
		if c.trie.hasPrefixMatch(norm) {
			return feedback.Check{Name: "prefix", Abusive: true, Details: fmt.Sprintf("token %q", token)}
		}
	}
	return feedback.Check{Name: "prefix", Abusive: false, Details: "no match"}
}

// checkObfuscation matches raw tokens against the precompiled obfuscation
// patterns, catching substitutions the trie walk misses, e.g. "f@ck".
func (c *Classifier) checkObfuscation(tokens []string) feedback.Check {
	for _, token := range tokens {
		if c.isSafeWord(normalize(token)) {
			continue
		}
		for _, pattern := range c.patterns {
			if pattern.MatchString(token) {
				return feedback.Check{Name: "obfuscation", Abusive: true, Details: fmt.Sprintf("token %q", token)}
			}
		}
	}
	return feedback.Check{Name: "obfuscation", Abusive: false, Details: "no match"}
}

// checkEmoji matches emoji tokens against the abusive emoji set.
func (c *Classifier) checkEmoji(tokens []string) feedback.Check {
	count := 0
	for _, token := range tokens {
		if isEmojiToken(token) {
			count++
		}
		if _, ok := c.abusiveEmojis[token]; ok {
			return feedback.Check{Name: "emoji", Abusive: true, Details: fmt.Sprintf("emoji %q", token)}
		}
	}
	return feedback.Check{Name: "emoji", Abusive: false, Details: fmt.Sprintf("%d emojis, none abusive", count)}
}

func (c *Classifier) isSafeWord(norm string) bool {
	_, ok := c.safeWords[norm]
	return ok
}
