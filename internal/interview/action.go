package interview

// Action is the pending decision of the turn router. The zero-ish default
// ActionEvaluate means a question is on screen and the session is suspended
// until the candidate answers.
type Action string

const (
	ActionEvaluate        Action = "evaluate"
	ActionProbe           Action = "probe"
	ActionAdvanceQuestion Action = "advance_question"
	ActionAdvanceTopic    Action = "advance_topic"
	ActionSummarize       Action = "summarize"
)
