package oracle

import (
	"context"
	"errors"
	"os"

	"github.com/withoutsultang/Interview-agent-aivle/config"
	"github.com/withoutsultang/Interview-agent-aivle/models"
	openai_oracle "github.com/withoutsultang/Interview-agent-aivle/oracle/openai"
)

// Client represents different oracle providers
type Client string

const (
	OpenAI Client = "openai"
)

// Oracle is the language-model capability the interview loop consults.
// Every call is blocking request/response; implementations return typed
// errors rather than partial results.
type Oracle interface {
	// Summarize condenses the candidate document into a few lines.
	Summarize(ctx context.Context, text string) (string, error)
	// ExtractKeywords pulls the count most important keywords, in order.
	ExtractKeywords(ctx context.Context, text string, count int) ([]string, error)
	// PlanStrategy derives the ordered topic plan from summary and keywords.
	PlanStrategy(ctx context.Context, summary string, keywords []string) (models.TopicPlan, error)
	// ScoreAnswer grades one question/answer pair.
	ScoreAnswer(ctx context.Context, question, answer string) (models.Judgment, error)
	// DraftQuestion writes a fresh follow-up question from the transcript,
	// steered by an escalation instruction.
	DraftQuestion(ctx context.Context, summary, transcript, instruction string) (string, error)
}

// New creates an oracle client based on the provided configuration
func New(cfg config.LLMConfig) (Oracle, error) {
	switch Client(cfg.Provider) {
	case OpenAI:
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY not set")
		}
		return openai_oracle.NewClient(openai_oracle.Options{
			APIKey:       apiKey,
			BaseURL:      cfg.BaseURL,
			Model:        cfg.Model,
			Temperature:  cfg.Temperature,
			MaxTokens:    cfg.MaxTokens,
			Timeout:      cfg.Timeout,
			MaxRetries:   cfg.MaxRetries,
			RetryBackoff: cfg.RetryBackoff,
		}), nil
	default:
		return nil, errors.New("unsupported oracle provider")
	}
}
