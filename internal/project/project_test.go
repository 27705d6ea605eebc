package project

import (
	"reflect"
	"testing"

	"github.com/minhdangit/detinai/internal/model"
)

func question(id, typ string, options ...string) model.ExamQuestion {
	if options == nil {
		options = []string{}
	}
	return model.ExamQuestion{ID: id, Text: "text " + id, Type: typ, Options: options}
}

func TestProjectVariants(t *testing.T) {
	questions := []model.ExamQuestion{
		question("Q1", model.TypeMultipleChoice, "A. Paris", "B. London"),
		question("Q2", model.TypeTrueFalse),
		question("Q3", model.TypeShortAnswer),
	}
	answers := []model.ExamAnswer{
		{QuestionID: "Q1", Answer: "A. Paris"},
		{QuestionID: "Q2", Answer: "Đúng"},
		{QuestionID: "Q3", Answer: "HTML"},
	}

	got := Project(questions, answers)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	mc, ok := got[0].(model.MultipleChoice)
	if !ok {
		t.Fatalf("got[0] is %T, want MultipleChoice", got[0])
	}
	if mc.Answer != "A. Paris" {
		t.Errorf("mc.Answer = %q", mc.Answer)
	}
	// Options pass through verbatim; prefix stripping is a rendering rule.
	if !reflect.DeepEqual(mc.Options, []string{"A. Paris", "B. London"}) {
		t.Errorf("mc.Options = %v", mc.Options)
	}
	// The displayed option and the answer agree once both are stripped.
	if model.StripOptionPrefix(mc.Options[0]) != model.StripOptionPrefix(mc.Answer) {
		t.Errorf("stripped option %q does not match stripped answer %q",
			model.StripOptionPrefix(mc.Options[0]), model.StripOptionPrefix(mc.Answer))
	}

	tf, ok := got[1].(model.TrueFalse)
	if !ok {
		t.Fatalf("got[1] is %T, want TrueFalse", got[1])
	}
	if !tf.Answer {
		t.Error("tf.Answer = false, want true for Đúng")
	}

	sa, ok := got[2].(model.ShortAnswer)
	if !ok {
		t.Fatalf("got[2] is %T, want ShortAnswer", got[2])
	}
	if sa.Answer != "HTML" {
		t.Errorf("sa.Answer = %q", sa.Answer)
	}
}

func TestProjectTrueFalseTokens(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"Đúng", true},
		{"false", false},
		{"Sai", false},
		{"maybe", false}, // unrecognized text resolves to false
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got := Project(
				[]model.ExamQuestion{question("Q1", model.TypeTrueFalse)},
				[]model.ExamAnswer{{QuestionID: "Q1", Answer: tt.answer}},
			)
			if len(got) != 1 {
				t.Fatalf("len = %d, want 1", len(got))
			}
			if tf := got[0].(model.TrueFalse); tf.Answer != tt.want {
				t.Errorf("answer %q projected to %v, want %v", tt.answer, tf.Answer, tt.want)
			}
		})
	}
}

func TestProjectDropsAndOrder(t *testing.T) {
	questions := []model.ExamQuestion{
		question("Q1", model.TypeShortAnswer),
		question("Q2", model.TypeShortAnswer), // no answer-key entry
		question("Q3", "ESSAY"),               // unknown type
		question("Q4", model.TypeShortAnswer),
	}
	answers := []model.ExamAnswer{
		{QuestionID: "Q1", Answer: "a1"},
		{QuestionID: "Q3", Answer: "a3"},
		{QuestionID: "Q4", Answer: "a4"},
	}

	got := Project(questions, answers)
	if len(got) > len(questions) {
		t.Fatalf("output longer than input: %d > %d", len(got), len(questions))
	}
	want := []string{"text Q1", "text Q4"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, dq := range got {
		if sa := dq.(model.ShortAnswer); sa.Prompt != want[i] {
			t.Errorf("got[%d].Prompt = %q, want %q (order must be preserved)", i, sa.Prompt, want[i])
		}
	}
}

func TestProjectDuplicateAnswerLastWins(t *testing.T) {
	got := Project(
		[]model.ExamQuestion{question("Q1", model.TypeShortAnswer)},
		[]model.ExamAnswer{
			{QuestionID: "Q1", Answer: "first"},
			{QuestionID: "Q1", Answer: "second"},
		},
	)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if sa := got[0].(model.ShortAnswer); sa.Answer != "second" {
		t.Errorf("answer = %q, want %q", sa.Answer, "second")
	}
}

func TestProjectEmpty(t *testing.T) {
	if got := Project(nil, nil); len(got) != 0 {
		t.Errorf("Project(nil, nil) = %v, want empty", got)
	}
}
