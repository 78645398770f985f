package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

func TestEvaluateTurnAppendsAlignedLogs(t *testing.T) {
	stub := newStubOracle()
	stub.judgments = []models.Judgment{judgment(models.RatingHigh, models.RatingLow)}
	st := &State{CurrentQuestion: "q1", CurrentAnswer: "a1"}

	NewEvaluator(stub).EvaluateTurn(context.Background(), st)

	if len(st.Conversation) != 1 || len(st.Evaluations) != 1 {
		t.Fatalf("logs out of alignment: %d conversation, %d evaluations",
			len(st.Conversation), len(st.Evaluations))
	}
	if st.Conversation[0].Question != "q1" || st.Conversation[0].Answer != "a1" {
		t.Fatalf("unexpected exchange: %+v", st.Conversation[0])
	}
	got := st.Evaluations[0].Judgment
	if got.Relevance != models.RatingHigh || got.Specificity != models.RatingLow {
		t.Fatalf("unexpected judgment: %+v", got)
	}
}

func TestEvaluateTurnNeutralOnScoreFailure(t *testing.T) {
	stub := newStubOracle()
	stub.scoreErr = errors.New("oracle down")
	st := &State{CurrentQuestion: "q1", CurrentAnswer: "a1"}

	NewEvaluator(stub).EvaluateTurn(context.Background(), st)

	if len(st.Conversation) != 1 || len(st.Evaluations) != 1 {
		t.Fatalf("logs must stay aligned on failure: %d / %d",
			len(st.Conversation), len(st.Evaluations))
	}
	if st.Evaluations[0].Judgment != models.NeutralJudgment() {
		t.Fatalf("expected neutral judgment, got %+v", st.Evaluations[0].Judgment)
	}
}
