package interview

import (
	"fmt"
	"io"
	"strings"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

// BuildReport snapshots the finished session into the final report.
func BuildReport(st *State) models.Report {
	rep := models.Report{
		Summary:  st.Summary,
		Keywords: append([]string(nil), st.Keywords...),
	}
	for _, ev := range st.Evaluations {
		rep.Records = append(rep.Records, models.ReportRecord{
			Question:    ev.Question,
			Answer:      ev.Answer,
			Relevance:   ev.Judgment.Relevance,
			Specificity: ev.Judgment.Specificity,
			Commentary:  ev.Judgment.Commentary,
		})
	}
	return rep
}

// RenderReport writes the report in the terminal layout.
func RenderReport(w io.Writer, rep models.Report) {
	fmt.Fprintln(w, "\n--- [Interview Feedback Report] ---")

	fmt.Fprintln(w, "\n[Candidate Summary]")
	if rep.Summary == "" {
		fmt.Fprintln(w, "no summary available")
	} else {
		fmt.Fprintln(w, rep.Summary)
	}

	fmt.Fprintln(w, "\n[Key Keywords]")
	fmt.Fprintln(w, strings.Join(rep.Keywords, ", "))

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 40))
	fmt.Fprintln(w, " [Interview Detail and Evaluation]")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	if len(rep.Records) == 0 {
		fmt.Fprintln(w, "\nno interview record")
		return
	}

	for i, rec := range rep.Records {
		fmt.Fprintf(w, "\n--- [Question %d] ---\n", i+1)
		fmt.Fprintf(w, "Q: %s\n", rec.Question)
		fmt.Fprintln(w, "\n[Candidate Answer]")
		fmt.Fprintf(w, "A: %s\n", rec.Answer)
		fmt.Fprintln(w, "\n[Evaluation]")
		fmt.Fprintf(w, "  - relevance:   %s\n", rec.Relevance)
		fmt.Fprintf(w, "  - specificity: %s\n", rec.Specificity)
		fmt.Fprintf(w, "  - commentary:  %s\n", rec.Commentary)
		fmt.Fprintln(w, strings.Repeat("-", 30))
	}

	fmt.Fprintln(w, "\n--- [Interview Finished] ---")
}
