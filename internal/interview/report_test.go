package interview

import (
	"strings"
	"testing"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

func TestBuildReportMirrorsEvaluations(t *testing.T) {
	st := &State{
		Summary:  "a go engineer",
		Keywords: []string{"go", "grpc"},
		Evaluations: []models.Evaluation{
			{
				Question: "q1",
				Answer:   "a1",
				Judgment: models.Judgment{
					Relevance:   models.RatingHigh,
					Specificity: models.RatingMedium,
					Commentary:  "direct and reasonably concrete",
				},
			},
		},
	}

	rep := BuildReport(st)

	if rep.Summary != "a go engineer" {
		t.Fatalf("unexpected summary: %q", rep.Summary)
	}
	if len(rep.Records) != 1 {
		t.Fatalf("expected one record, got %d", len(rep.Records))
	}
	rec := rep.Records[0]
	if rec.Question != "q1" || rec.Relevance != models.RatingHigh || rec.Specificity != models.RatingMedium {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestRenderReportLayout(t *testing.T) {
	rep := models.Report{
		Summary:  "a go engineer",
		Keywords: []string{"go", "grpc"},
		Records: []models.ReportRecord{
			{Question: "q1", Answer: "a1", Relevance: models.RatingHigh, Specificity: models.RatingLow, Commentary: "thin"},
		},
	}

	var sb strings.Builder
	RenderReport(&sb, rep)
	out := sb.String()

	for _, want := range []string{
		"[Interview Feedback Report]",
		"a go engineer",
		"go, grpc",
		"--- [Question 1] ---",
		"relevance:   high",
		"specificity: low",
		"--- [Interview Finished] ---",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var sb strings.Builder
	RenderReport(&sb, models.Report{})
	out := sb.String()

	if !strings.Contains(out, "no summary available") {
		t.Fatalf("missing empty-summary notice:\n%s", out)
	}
	if !strings.Contains(out, "no interview record") {
		t.Fatalf("missing empty-record notice:\n%s", out)
	}
}
