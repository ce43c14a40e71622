// Package feedback defines the types shared between the classification
// engine and its callers: the request, the classification result and the
// per-check outcomes collected on the way to the verdict.
package feedback

import (
	"fmt"
	"strings"
)

// Request is a request to classify a single feedback submission.
type Request struct {
	Text string `json:"text"` // feedback text to classify
}

func (r *Request) String() string {
	return fmt.Sprintf("text:%q", r.Text)
}

// Classification is the top-level verdict for a feedback submission.
type Classification string

// classification verdicts
const (
	Abusive Classification = "Abusive"
	Clean   Classification = "Clean"
	// Empty is the sentinel verdict for input with no usable tokens,
	// i.e. empty or whitespace-only text. Not an error.
	Empty Classification = "Please give meaningful feedback"
)

// Sentiment is assigned to clean feedback only.
type Sentiment string

// sentiment verdicts
const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
)

// Check is a result of a single abuse check.
type Check struct {
	Name    string `json:"name"`    // name of the check
	Abusive bool   `json:"abusive"` // true if the check fired
	Details string `json:"details"` // details of the check
}

func (c *Check) String() string {
	verdict := "clean"
	if c.Abusive {
		verdict = "abusive"
	}
	return fmt.Sprintf("%s: %s, %s", c.Name, verdict, c.Details)
}

// Result is a result of feedback classification. Sentiment is set only for
// clean feedback.
type Result struct {
	Classification Classification `json:"classification"`
	Sentiment      Sentiment      `json:"sentiment,omitempty"`
	Checks         []Check        `json:"checks,omitempty"`
}

func (r *Result) String() string {
	if r.Sentiment == "" {
		return string(r.Classification)
	}
	return fmt.Sprintf("%s (%s)", r.Classification, r.Sentiment)
}

// ChecksToString converts a slice of checks to a string
func ChecksToString(checks []Check) string {
	elems := make([]string, 0, len(checks))
	for i := range checks {
		elems = append(elems, "{"+checks[i].String()+"}")
	}
	return fmt.Sprintf("[%s]", strings.Join(elems, ", "))
}
