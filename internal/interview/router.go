package interview

import (
	"context"
	"log"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

// Advisor optionally corroborates the probe-or-advance choice when the most
// recent judgment is borderline (one rating low, the other high). Its answer
// can only steer between probing and advancing; the hard cap and queue/topic
// exhaustion are structural facts it can never override.
type Advisor interface {
	Corroborate(ctx context.Context, st *State) (Action, error)
}

// Router is the turn-decision state machine. Given the session state after
// an evaluation it selects the next action under a strict precedence:
//
//  1. hard turn cap        -> summarize
//  2. low-rated answer     -> probe
//  3. question queue left  -> advance to the next queued question
//  4. topics left          -> advance to the next topic
//  5. everything exhausted -> summarize
type Router struct {
	maxTurns int
	advisor  Advisor // may be nil
	logger   *log.Logger
}

// NewRouter creates a router with the configured hard turn cap.
func NewRouter(maxTurns int, advisor Advisor) *Router {
	return &Router{
		maxTurns: maxTurns,
		advisor:  advisor,
		logger:   log.New(log.Writer(), "[ROUTER] ", log.LstdFlags),
	}
}

// Decide returns the next action. It never mutates the state.
func (r *Router) Decide(ctx context.Context, st *State) Action {
	if st.Turns() >= r.maxTurns {
		return ActionSummarize
	}

	if j, ok := st.LastJudgment(); ok && lowRated(j) {
		if r.advisor != nil && borderline(j) {
			if action, err := r.advisor.Corroborate(ctx, st); err == nil {
				switch action {
				case ActionAdvanceQuestion:
					if len(st.QuestionQueue) > 0 {
						r.logger.Printf("advisor steered borderline judgment to %s", action)
						return action
					}
				case ActionAdvanceTopic:
					if len(st.QuestionQueue) == 0 && len(st.RemainingTopics) > 0 {
						r.logger.Printf("advisor steered borderline judgment to %s", action)
						return action
					}
				}
			} else {
				r.logger.Printf("advisor consult failed, keeping deterministic choice: %v", err)
			}
		}
		return ActionProbe
	}

	// Queue continuation beats topic transition: the current topic's
	// prepared questions are exhausted before moving on.
	if len(st.QuestionQueue) > 0 {
		return ActionAdvanceQuestion
	}
	if len(st.RemainingTopics) > 0 {
		return ActionAdvanceTopic
	}
	return ActionSummarize
}

func lowRated(j models.Judgment) bool {
	return j.Relevance == models.RatingLow || j.Specificity == models.RatingLow
}

func borderline(j models.Judgment) bool {
	high := j.Relevance == models.RatingHigh || j.Specificity == models.RatingHigh
	return lowRated(j) && high
}
