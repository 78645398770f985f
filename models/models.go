package models

import (
	"errors"
	"strings"
)

// ErrDocumentNotFound is returned when the source document does not exist
var ErrDocumentNotFound = errors.New("document not found")

// ErrUnsupportedFormat is returned for document extensions the loader cannot read
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrSessionNotFound is returned when a session id is unknown to the store
var ErrSessionNotFound = errors.New("session not found")

// Rating is an ordinal quality grade assigned by the oracle to one answer.
type Rating string

const (
	RatingLow    Rating = "low"
	RatingMedium Rating = "medium"
	RatingHigh   Rating = "high"
)

// ParseRating normalizes a free-text oracle grade. Anything unrecognized
// collapses to medium so a malformed judgment can never block a turn.
func ParseRating(s string) Rating {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "poor", "weak":
		return RatingLow
	case "high", "strong":
		return RatingHigh
	default:
		return RatingMedium
	}
}

// Judgment is the oracle's structured evaluation of one question/answer pair.
type Judgment struct {
	Relevance   Rating `json:"relevance"`
	Specificity Rating `json:"specificity"`
	Commentary  string `json:"commentary"`
}

// NeutralJudgment is the documented fallback used when scoring fails.
func NeutralJudgment() Judgment {
	return Judgment{Relevance: RatingMedium, Specificity: RatingMedium}
}

// Topic is one named interview category with its direction statement and
// ordered example questions.
type Topic struct {
	Name             string   `json:"name"`
	Direction        string   `json:"direction"`
	ExampleQuestions []string `json:"example_questions"`
}

// TopicPlan is the ordered interview strategy. It is built once and never
// mutated afterwards; runtime queues are seeded by copying out of it.
type TopicPlan struct {
	Topics []Topic `json:"topics"`
}

// Lookup returns the topic with the given name, if present.
func (p TopicPlan) Lookup(name string) (Topic, bool) {
	for _, t := range p.Topics {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

// Names returns the topic names in plan order.
func (p TopicPlan) Names() []string {
	names := make([]string, 0, len(p.Topics))
	for _, t := range p.Topics {
		names = append(names, t.Name)
	}
	return names
}

// Empty reports whether the plan carries no topics at all.
func (p TopicPlan) Empty() bool { return len(p.Topics) == 0 }

// Exchange is one completed turn: the question asked and the answer given.
type Exchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Evaluation pairs an exchange with the oracle's judgment of it. The
// evaluation log is index-aligned with the conversation log.
type Evaluation struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Judgment Judgment `json:"judgment"`
}

// ReportRecord is one line of the final report.
type ReportRecord struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Relevance   Rating `json:"relevance"`
	Specificity Rating `json:"specificity"`
	Commentary  string `json:"commentary"`
}

// Report is the final snapshot handed to whatever renders the interview.
type Report struct {
	Summary  string         `json:"summary"`
	Keywords []string       `json:"keywords"`
	Records  []ReportRecord `json:"records"`
}
