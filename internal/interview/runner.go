package interview

import (
	"context"
	"log"
	"strings"

	"github.com/withoutsultang/Interview-agent-aivle/config"
	"github.com/withoutsultang/Interview-agent-aivle/internal/telemetry"
	"github.com/withoutsultang/Interview-agent-aivle/oracle"
)

// Runner drives one interview session through its turn loop. It owns no
// session itself: the caller holds the State and passes it back each turn,
// which keeps single-writer ownership with whatever surface (CLI, HTTP)
// hosts the session and suspends between turns while the candidate types.
type Runner struct {
	strategy  *StrategyBuilder
	evaluator *Evaluator
	router    *Router
	advancer  *Advancer
	prober    *Prober
	logger    *log.Logger
}

// NewRunner wires the turn components around one oracle.
func NewRunner(cfg config.InterviewConfig, o oracle.Oracle) *Runner {
	return &Runner{
		strategy:  NewStrategyBuilder(o, cfg),
		evaluator: NewEvaluator(o),
		router:    NewRouter(cfg.MaxTurns, nil),
		advancer:  NewAdvancer(),
		prober:    NewProber(o),
		logger:    log.New(log.Writer(), "[RUNNER] ", log.LstdFlags),
	}
}

// Begin builds the strategy and returns the initialized session state with
// the first question installed.
func (r *Runner) Begin(ctx context.Context, sourceText string) *State {
	st := r.strategy.Build(ctx, sourceText)
	telemetry.SessionsActive.Inc()
	return st
}

// Submit records the candidate's answer for the current question and runs
// one full evaluate-route-apply cycle. It returns true when the session
// has terminated.
func (r *Runner) Submit(ctx context.Context, st *State, answer string) bool {
	if st.Done() {
		return true
	}

	st.CurrentAnswer = strings.TrimSpace(answer)
	r.evaluator.EvaluateTurn(ctx, st)
	telemetry.TurnsTotal.Inc()

	action := r.router.Decide(ctx, st)
	r.logger.Printf("turn %d: %s", st.Turns(), action)

	switch action {
	case ActionProbe:
		r.prober.Probe(ctx, st)
	case ActionAdvanceQuestion, ActionAdvanceTopic:
		r.advancer.Apply(st, action)
	case ActionSummarize:
		st.Next = ActionSummarize
		st.CurrentQuestion = closingMessage
	}

	if st.Done() {
		telemetry.SessionsActive.Dec()
	}
	return st.Done()
}
