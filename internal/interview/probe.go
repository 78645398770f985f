package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/withoutsultang/Interview-agent-aivle/oracle"
)

// Prober drafts a fresh, non-repeating question that escalates in difficulty
// with each consecutive probe on the same topic.
type Prober struct {
	oracle oracle.Oracle
	logger *log.Logger
}

// NewProber creates a prober.
func NewProber(o oracle.Oracle) *Prober {
	return &Prober{
		oracle: o,
		logger: log.New(log.Writer(), "[PROBE] ", log.LstdFlags),
	}
}

// Probe increments the probe counter, drafts the next depth question from
// the accumulated transcript and installs it as the current question. A
// failed or blank draft falls back to a fixed escalation question so the
// current question is never left empty.
func (p *Prober) Probe(ctx context.Context, st *State) {
	st.ProbeCount++

	question, err := p.oracle.DraftQuestion(ctx, st.Summary, transcript(st), escalationInstruction(st.ProbeCount))
	if err != nil {
		p.logger.Printf("draft_question failed, using fallback probe: %v", err)
	}
	question = strings.TrimSpace(question)
	if question == "" {
		question = fallbackProbe
	}

	st.CurrentQuestion = question
	st.CurrentAnswer = ""
	st.Next = ActionEvaluate
}

// escalationInstruction keys the requested depth off the probe counter.
func escalationInstruction(count int) string {
	switch {
	case count <= 1:
		return "Fill the gaps left by the most recent answer, or verify the candidate's technical understanding in more depth."
	case count == 2:
		return "Test the logic and the concreteness of the answers so far with a harder question; a pressure-test framing is acceptable."
	default:
		return "Synthesize all answers so far into a high-difficulty question that probes the candidate's reasoning, problem solving and values."
	}
}

// transcript renders the aligned conversation and evaluation logs into a
// chronological block the oracle can read.
func transcript(st *State) string {
	var sb strings.Builder
	for i, exch := range st.Conversation {
		fmt.Fprintf(&sb, "\n--- Question %d ---\n", i+1)
		fmt.Fprintf(&sb, "Q: %s\n", exch.Question)
		fmt.Fprintf(&sb, "A: %s\n", exch.Answer)
		if i < len(st.Evaluations) {
			j, _ := json.Marshal(st.Evaluations[i].Judgment)
			fmt.Fprintf(&sb, "Judgment: %s\n", j)
		}
	}
	return sb.String()
}
