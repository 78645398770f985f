package interview

import (
	"fmt"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

const (
	// fallbackGreeting opens the interview when the plan yields no question.
	fallbackGreeting = "Please introduce yourself."
	// fallbackTopic labels the session when no plan topic could be selected.
	fallbackTopic = "General"
	// closingMessage is shown when the session terminates.
	closingMessage = "That concludes the interview. Thank you for your time."
	// fallbackProbe replaces a blank draft from the oracle.
	fallbackProbe = "Could you expand on your previous answer with a concrete example and the reasoning behind it?"
)

func genericOpener(topic string) string {
	return fmt.Sprintf("Let's move on to %s. Walk me through your experience in this area.", topic)
}

// State is the mutable record of one interview run. It has single-writer
// ownership: only the loop driver mutates it, one turn at a time. All fields
// serialize to JSON so a snapshot can be parked in a session store between
// turns.
type State struct {
	ID         string   `json:"id"`
	SourceText string   `json:"source_text"`
	Summary    string   `json:"summary"`
	Keywords   []string `json:"keywords"`

	// Plan is read-only after Build; runtime queues are copies of its
	// contents, the plan itself is never consumed.
	Plan models.TopicPlan `json:"plan"`

	CurrentTopic    string `json:"current_topic"`
	CurrentQuestion string `json:"current_question"`
	CurrentAnswer   string `json:"current_answer"`

	// QuestionQueue holds the remaining example questions of the current
	// topic. Pop-from-front only; it never regains an item.
	QuestionQueue []string `json:"question_queue"`
	// RemainingTopics holds topics not yet started. Pop-from-front only.
	RemainingTopics []string `json:"remaining_topics"`
	// ProbeCount resets to 0 on every topic transition and increments once
	// per drafted depth probe.
	ProbeCount int `json:"probe_count"`

	Conversation []models.Exchange   `json:"conversation"`
	Evaluations  []models.Evaluation `json:"evaluations"`

	Next Action `json:"next"`
}

// Turns returns the number of completed turns.
func (s *State) Turns() int { return len(s.Conversation) }

// Done reports whether the session has terminated.
func (s *State) Done() bool { return s.Next == ActionSummarize }

// LastJudgment returns the most recent evaluation's judgment, if any.
func (s *State) LastJudgment() (models.Judgment, bool) {
	if len(s.Evaluations) == 0 {
		return models.Judgment{}, false
	}
	return s.Evaluations[len(s.Evaluations)-1].Judgment, true
}
