package interview

import (
	"log"
)

// Advancer moves the session to the next queued question or the next topic.
type Advancer struct {
	logger *log.Logger
}

// NewAdvancer creates an advancer.
func NewAdvancer() *Advancer {
	return &Advancer{logger: log.New(log.Writer(), "[ADVANCE] ", log.LstdFlags)}
}

// Apply consumes an advance-question or advance-topic action. The queue is
// drained before any topic transition; if both the queue and the remaining
// topics are already empty (which router precedence should prevent) the
// session is forced to summarize instead of failing.
func (a *Advancer) Apply(st *State, action Action) {
	switch action {
	case ActionAdvanceQuestion, ActionAdvanceTopic:
	default:
		return
	}

	if len(st.QuestionQueue) > 0 {
		st.CurrentQuestion = st.QuestionQueue[0]
		st.QuestionQueue = st.QuestionQueue[1:]
		st.CurrentAnswer = ""
		st.Next = ActionEvaluate
		return
	}

	if len(st.RemainingTopics) > 0 {
		name := st.RemainingTopics[0]
		st.RemainingTopics = st.RemainingTopics[1:]
		st.CurrentTopic = name
		st.ProbeCount = 0
		st.CurrentAnswer = ""
		st.Next = ActionEvaluate

		topic, ok := st.Plan.Lookup(name)
		if !ok || len(topic.ExampleQuestions) == 0 {
			st.CurrentQuestion = genericOpener(name)
			st.QuestionQueue = nil
			return
		}
		st.CurrentQuestion = topic.ExampleQuestions[0]
		st.QuestionQueue = append([]string(nil), topic.ExampleQuestions[1:]...)
		a.logger.Printf("topic transition to %q with %d queued questions", name, len(st.QuestionQueue))
		return
	}

	a.logger.Printf("nothing left to advance into, forcing summarize")
	st.Next = ActionSummarize
	st.CurrentQuestion = closingMessage
}
