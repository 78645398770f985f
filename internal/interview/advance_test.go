package interview

import (
	"reflect"
	"testing"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

func TestApplyPopsQueueBeforeTopics(t *testing.T) {
	st := &State{
		CurrentTopic:    "Experience",
		CurrentQuestion: "q1",
		CurrentAnswer:   "a1",
		QuestionQueue:   []string{"q2", "q3"},
		RemainingTopics: []string{"Communication"},
		ProbeCount:      2,
	}

	NewAdvancer().Apply(st, ActionAdvanceQuestion)

	if st.CurrentQuestion != "q2" {
		t.Fatalf("expected q2, got %q", st.CurrentQuestion)
	}
	if !reflect.DeepEqual(st.QuestionQueue, []string{"q3"}) {
		t.Fatalf("expected queue shrunk to [q3], got %v", st.QuestionQueue)
	}
	if st.CurrentTopic != "Experience" {
		t.Fatalf("topic must not change on a question advance, got %q", st.CurrentTopic)
	}
	if st.ProbeCount != 2 {
		t.Fatalf("probe counter must survive a question advance, got %d", st.ProbeCount)
	}
	if st.CurrentAnswer != "" {
		t.Fatalf("answer must be cleared, got %q", st.CurrentAnswer)
	}
}

func TestApplyTopicTransitionReseedsAndResets(t *testing.T) {
	st := &State{
		Plan: planOf(
			models.Topic{Name: "Experience", ExampleQuestions: []string{"e1"}},
			models.Topic{Name: "Communication", ExampleQuestions: []string{"c1", "c2", "c3"}},
		),
		CurrentTopic:    "Experience",
		CurrentQuestion: "e1",
		RemainingTopics: []string{"Communication"},
		ProbeCount:      3,
	}

	NewAdvancer().Apply(st, ActionAdvanceTopic)

	if st.CurrentTopic != "Communication" {
		t.Fatalf("expected Communication, got %q", st.CurrentTopic)
	}
	if st.CurrentQuestion != "c1" {
		t.Fatalf("expected c1, got %q", st.CurrentQuestion)
	}
	if !reflect.DeepEqual(st.QuestionQueue, []string{"c2", "c3"}) {
		t.Fatalf("expected reseeded queue, got %v", st.QuestionQueue)
	}
	if len(st.RemainingTopics) != 0 {
		t.Fatalf("expected topic consumed, got %v", st.RemainingTopics)
	}
	if st.ProbeCount != 0 {
		t.Fatalf("probe counter must reset on topic transition, got %d", st.ProbeCount)
	}
}

func TestApplyTopicWithoutExamplesUsesGenericOpener(t *testing.T) {
	st := &State{
		Plan:            planOf(models.Topic{Name: "Values"}),
		CurrentTopic:    "Experience",
		RemainingTopics: []string{"Values"},
	}

	NewAdvancer().Apply(st, ActionAdvanceTopic)

	if st.CurrentQuestion != genericOpener("Values") {
		t.Fatalf("expected generic opener, got %q", st.CurrentQuestion)
	}
	if len(st.QuestionQueue) != 0 {
		t.Fatalf("expected empty queue, got %v", st.QuestionQueue)
	}
}

func TestApplyExhaustedForcesSummarize(t *testing.T) {
	st := &State{CurrentTopic: "Experience", Next: ActionEvaluate}

	NewAdvancer().Apply(st, ActionAdvanceTopic)

	if !st.Done() {
		t.Fatal("expected forced summarize when nothing is left to advance into")
	}
	if st.CurrentQuestion != closingMessage {
		t.Fatalf("expected closing message, got %q", st.CurrentQuestion)
	}
}

func TestApplyIgnoresNonAdvanceActions(t *testing.T) {
	st := &State{CurrentQuestion: "q1", QuestionQueue: []string{"q2"}}

	NewAdvancer().Apply(st, ActionProbe)

	if st.CurrentQuestion != "q1" || len(st.QuestionQueue) != 1 {
		t.Fatalf("probe action must not mutate queues: %q %v", st.CurrentQuestion, st.QuestionQueue)
	}
}
