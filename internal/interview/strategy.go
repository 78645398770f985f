package interview

import (
	"context"
	"log"
	"strings"

	"github.com/withoutsultang/Interview-agent-aivle/config"
	"github.com/withoutsultang/Interview-agent-aivle/oracle"
)

// StrategyBuilder derives the topic plan from the candidate document and
// seeds the session's initial queues.
type StrategyBuilder struct {
	oracle oracle.Oracle
	cfg    config.InterviewConfig
	logger *log.Logger
}

// NewStrategyBuilder creates a strategy builder.
func NewStrategyBuilder(o oracle.Oracle, cfg config.InterviewConfig) *StrategyBuilder {
	return &StrategyBuilder{
		oracle: o,
		cfg:    cfg,
		logger: log.New(log.Writer(), "[STRATEGY] ", log.LstdFlags),
	}
}

// Build creates the initial session state. An empty source text yields a
// degenerate plan with no oracle calls. Oracle failures during planning are
// absorbed: the session still starts, with the fallback greeting and empty
// queues, so the interview can always make forward progress.
func (b *StrategyBuilder) Build(ctx context.Context, sourceText string) *State {
	st := &State{
		SourceText:      sourceText,
		CurrentTopic:    fallbackTopic,
		CurrentQuestion: fallbackGreeting,
		Next:            ActionEvaluate,
	}

	if strings.TrimSpace(sourceText) == "" {
		b.logger.Printf("no source text, starting with degenerate plan")
		return st
	}

	summary, err := b.oracle.Summarize(ctx, sourceText)
	if err != nil {
		b.logger.Printf("summarize failed: %v", err)
	}
	st.Summary = summary

	keywords, err := b.oracle.ExtractKeywords(ctx, sourceText, b.cfg.KeywordCount)
	if err != nil {
		b.logger.Printf("extract_keywords failed: %v", err)
	}
	st.Keywords = keywords

	plan, err := b.oracle.PlanStrategy(ctx, summary, keywords)
	if err != nil {
		b.logger.Printf("plan_strategy failed, proceeding without a plan: %v", err)
	}
	st.Plan = plan
	st.RemainingTopics = plan.Names()

	if plan.Empty() {
		b.logger.Printf("plan has zero topics, session will run on the fallback question only")
		return st
	}

	first := b.cfg.FirstTopic
	if _, ok := plan.Lookup(first); !ok {
		first = plan.Topics[0].Name
	}

	topic, _ := plan.Lookup(first)
	st.CurrentTopic = first
	st.ProbeCount = 0
	if len(topic.ExampleQuestions) > 0 {
		st.CurrentQuestion = topic.ExampleQuestions[0]
		st.QuestionQueue = append([]string(nil), topic.ExampleQuestions[1:]...)
	}
	st.RemainingTopics = removeName(st.RemainingTopics, first)

	b.logger.Printf("strategy ready: %d topics, first %q, %d queued questions",
		len(plan.Topics), first, len(st.QuestionQueue))
	return st
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
