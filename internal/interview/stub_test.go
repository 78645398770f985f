package interview

import (
	"context"
	"fmt"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

// stubOracle is a scripted oracle for state machine tests. Judgments are
// consumed in order, the last one repeating; drafts likewise.
type stubOracle struct {
	summary  string
	keywords []string
	plan     models.TopicPlan

	judgments []models.Judgment
	drafts    []string

	summarizeErr error
	keywordsErr  error
	planErr      error
	scoreErr     error
	draftErr     error

	calls        map[string]int
	instructions []string
	transcripts  []string
}

func newStubOracle() *stubOracle {
	return &stubOracle{calls: make(map[string]int)}
}

func (s *stubOracle) Summarize(_ context.Context, _ string) (string, error) {
	s.calls["summarize"]++
	return s.summary, s.summarizeErr
}

func (s *stubOracle) ExtractKeywords(_ context.Context, _ string, _ int) ([]string, error) {
	s.calls["extract_keywords"]++
	return s.keywords, s.keywordsErr
}

func (s *stubOracle) PlanStrategy(_ context.Context, _ string, _ []string) (models.TopicPlan, error) {
	s.calls["plan_strategy"]++
	return s.plan, s.planErr
}

func (s *stubOracle) ScoreAnswer(_ context.Context, _, _ string) (models.Judgment, error) {
	n := s.calls["score_answer"]
	s.calls["score_answer"]++
	if s.scoreErr != nil {
		return models.Judgment{}, s.scoreErr
	}
	if len(s.judgments) == 0 {
		return models.NeutralJudgment(), nil
	}
	if n >= len(s.judgments) {
		n = len(s.judgments) - 1
	}
	return s.judgments[n], nil
}

func (s *stubOracle) DraftQuestion(_ context.Context, _, transcript, instruction string) (string, error) {
	n := s.calls["draft_question"]
	s.calls["draft_question"]++
	s.instructions = append(s.instructions, instruction)
	s.transcripts = append(s.transcripts, transcript)
	if s.draftErr != nil {
		return "", s.draftErr
	}
	if len(s.drafts) == 0 {
		return fmt.Sprintf("drafted question %d", n+1), nil
	}
	if n >= len(s.drafts) {
		n = len(s.drafts) - 1
	}
	return s.drafts[n], nil
}

func judgment(relevance, specificity models.Rating) models.Judgment {
	return models.Judgment{Relevance: relevance, Specificity: specificity}
}

func planOf(topics ...models.Topic) models.TopicPlan {
	return models.TopicPlan{Topics: topics}
}
