package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/withoutsultang/Interview-agent-aivle/models"
	"github.com/withoutsultang/Interview-agent-aivle/oracle"
)

var (
	// TurnsTotal counts completed interview turns across all sessions.
	TurnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "interview_turns_total",
		Help: "Completed interview turns",
	})

	// SessionsActive tracks sessions that have begun but not yet summarized.
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "interview_sessions_active",
		Help: "Interview sessions currently in progress",
	})

	oracleRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oracle_requests_total",
		Help: "Oracle calls by capability",
	}, []string{"capability"})

	oracleFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oracle_failures_total",
		Help: "Failed oracle calls by capability",
	}, []string{"capability"})

	oracleLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "oracle_request_seconds",
		Help:    "Oracle call latency by capability",
		Buckets: prometheus.DefBuckets,
	}, []string{"capability"})
)

// Oracle wraps an oracle with request/failure/latency instrumentation.
func Oracle(inner oracle.Oracle) oracle.Oracle {
	return &instrumentedOracle{inner: inner}
}

type instrumentedOracle struct {
	inner oracle.Oracle
}

func observe(capability string, start time.Time, err error) {
	oracleRequests.WithLabelValues(capability).Inc()
	oracleLatency.WithLabelValues(capability).Observe(time.Since(start).Seconds())
	if err != nil {
		oracleFailures.WithLabelValues(capability).Inc()
	}
}

func (o *instrumentedOracle) Summarize(ctx context.Context, text string) (string, error) {
	start := time.Now()
	out, err := o.inner.Summarize(ctx, text)
	observe("summarize", start, err)
	return out, err
}

func (o *instrumentedOracle) ExtractKeywords(ctx context.Context, text string, count int) ([]string, error) {
	start := time.Now()
	out, err := o.inner.ExtractKeywords(ctx, text, count)
	observe("extract_keywords", start, err)
	return out, err
}

func (o *instrumentedOracle) PlanStrategy(ctx context.Context, summary string, keywords []string) (models.TopicPlan, error) {
	start := time.Now()
	out, err := o.inner.PlanStrategy(ctx, summary, keywords)
	observe("plan_strategy", start, err)
	return out, err
}

func (o *instrumentedOracle) ScoreAnswer(ctx context.Context, question, answer string) (models.Judgment, error) {
	start := time.Now()
	out, err := o.inner.ScoreAnswer(ctx, question, answer)
	observe("score_answer", start, err)
	return out, err
}

func (o *instrumentedOracle) DraftQuestion(ctx context.Context, summary, transcript, instruction string) (string, error) {
	start := time.Now()
	out, err := o.inner.DraftQuestion(ctx, summary, transcript, instruction)
	observe("draft_question", start, err)
	return out, err
}
