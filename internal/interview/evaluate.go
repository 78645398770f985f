package interview

import (
	"context"
	"log"

	"github.com/withoutsultang/Interview-agent-aivle/models"
	"github.com/withoutsultang/Interview-agent-aivle/oracle"
)

// Evaluator scores the most recent question/answer pair and appends to the
// session logs.
type Evaluator struct {
	oracle oracle.Oracle
	logger *log.Logger
}

// NewEvaluator creates an evaluator.
func NewEvaluator(o oracle.Oracle) *Evaluator {
	return &Evaluator{
		oracle: o,
		logger: log.New(log.Writer(), "[EVALUATE] ", log.LstdFlags),
	}
}

// EvaluateTurn records the current exchange and its judgment. The exchange
// is appended unconditionally; a failed scoring call is replaced with the
// neutral judgment so evaluation can never block the interview. The two
// logs stay index-aligned.
func (e *Evaluator) EvaluateTurn(ctx context.Context, st *State) {
	st.Conversation = append(st.Conversation, models.Exchange{
		Question: st.CurrentQuestion,
		Answer:   st.CurrentAnswer,
	})

	judgment, err := e.oracle.ScoreAnswer(ctx, st.CurrentQuestion, st.CurrentAnswer)
	if err != nil {
		e.logger.Printf("score_answer failed, recording neutral judgment: %v", err)
		judgment = models.NeutralJudgment()
	}

	st.Evaluations = append(st.Evaluations, models.Evaluation{
		Question: st.CurrentQuestion,
		Answer:   st.CurrentAnswer,
		Judgment: judgment,
	})
}
