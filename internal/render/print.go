// Package render turns a sanitized exam into its two document forms: a
// standalone print-oriented HTML page and a document tree for DOCX export.
// Both backends share the section order, section enablement and
// option-prefix rules, so the printed and exported artifacts always carry
// the same content.
package render

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"log/slog"

	"github.com/minhdangit/detinai/internal/i18n"
	"github.com/minhdangit/detinai/internal/model"
)

//go:embed print.html.tmpl
var printTmplSrc string

var printTmpl = template.Must(template.New("print").Parse(printTmplSrc))

type printData struct {
	Title                string
	HeadingMatrix        string
	HeadingSpecification string
	HeadingExam          string
	HeadingAnswerKey     string
	ExplanationLabel     string

	ShowMatrix        bool
	ShowSpecification bool
	ShowExam          bool
	ShowAnswers       bool

	// The provider is trusted to emit well-formed table markup here; the
	// renderer wraps it with a heading and nothing else.
	Matrix        template.HTML
	Specification template.HTML

	Questions []printQuestion
	Answers   []printAnswer
}

type printQuestion struct {
	Label          string
	Text           string
	MultipleChoice bool
	Options        []string
}

type printAnswer struct {
	Label       string
	Text        string
	Explanation string
}

// Printable renders the enabled sections into a complete print-ready HTML
// document. It returns the empty string when the exam is absent or no
// section is enabled.
func Printable(ctx context.Context, exam *model.Exam, sections model.Sections) string {
	if exam == nil || sections.None() {
		return ""
	}

	data := printData{
		Title:                i18n.T(ctx, "PrintTitle"),
		HeadingMatrix:        i18n.T(ctx, "HeadingMatrix"),
		HeadingSpecification: i18n.T(ctx, "HeadingSpecification"),
		HeadingExam:          i18n.T(ctx, "HeadingExam"),
		HeadingAnswerKey:     i18n.T(ctx, "HeadingAnswerKey"),
		ExplanationLabel:     i18n.T(ctx, "ExplanationLabel"),
		ShowMatrix:           sections.Matrix,
		ShowSpecification:    sections.Specification,
		ShowExam:             sections.Exam,
		ShowAnswers:          sections.Answers,
		Matrix:               template.HTML(exam.Matrix),
		Specification:        template.HTML(exam.Specification),
	}

	for i, q := range exam.Questions {
		pq := printQuestion{
			Label:          i18n.Td(ctx, "QuestionN", map[string]any{"N": i + 1}),
			Text:           q.Text,
			MultipleChoice: q.Type == model.TypeMultipleChoice,
		}
		// The list supplies fresh A/B/C markers, so embedded ones go.
		for _, opt := range q.Options {
			pq.Options = append(pq.Options, model.StripOptionPrefix(opt))
		}
		data.Questions = append(data.Questions, pq)
	}

	for i, a := range exam.AnswerKey {
		data.Answers = append(data.Answers, printAnswer{
			Label:       i18n.Td(ctx, "QuestionN", map[string]any{"N": i + 1}),
			Text:        a.Answer,
			Explanation: a.Explanation,
		})
	}

	var buf bytes.Buffer
	if err := printTmpl.Execute(&buf, data); err != nil {
		slog.Error("render print document", "error", err)
		return ""
	}
	return buf.String()
}
