package classifier

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// lexicon is an immutable set of lowercase words
type lexicon map[string]struct{}

func (l lexicon) has(word string) bool {
	_, ok := l[word]
	return ok
}

// LoadResult reports the number of entries loaded into each store.
type LoadResult struct {
	StopWords     int // number of stop words
	PositiveWords int // number of positive lexicon entries
	NegativeWords int // number of negative lexicon entries
}

// LoadLexicons reads the three line-delimited word lists. Must be called
// once before the first Classify; after that the stores are read-only.
// An empty store is a configuration error, not a valid "match nothing"
// state, and all empty stores are reported together.
func (c *Classifier) LoadLexicons(stopWords, positive, negative io.Reader) (LoadResult, error) {
	c.stopWords = readLexicon(stopWords)
	c.positive = readLexicon(positive)
	c.negative = readLexicon(negative)

	res := LoadResult{
		StopWords:     len(c.stopWords),
		PositiveWords: len(c.positive),
		NegativeWords: len(c.negative),
	}

	var merr *multierror.Error
	if len(c.stopWords) == 0 {
		merr = multierror.Append(merr, errors.New("empty stop words lexicon"))
	}
	if len(c.positive) == 0 {
		merr = multierror.Append(merr, errors.New("empty positive lexicon"))
	}
	if len(c.negative) == 0 {
		merr = multierror.Append(merr, errors.New("empty negative lexicon"))
	}
	return res, merr.ErrorOrNil()
}

// readLexicon parses a reader into a word set, one word per line
func readLexicon(r io.Reader) lexicon {
	res := lexicon{}
	if r == nil {
		return res
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.Trim(scanner.Text(), " \n\r\t"))
		if word != "" {
			res[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[WARN] failed to read lexicon, error=%v", err)
	}
	return res
}
