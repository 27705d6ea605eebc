package render

import (
	"context"

	"github.com/minhdangit/detinai/internal/docx"
	"github.com/minhdangit/detinai/internal/i18n"
	"github.com/minhdangit/detinai/internal/model"
)

// BuildDocument assembles the document tree for DOCX export. Section order,
// enablement, ordinals and option-prefix stripping match Printable exactly;
// the matrix and specification table strings are parsed into a cell grid
// because the target format cannot embed raw markup. Returns nil when the
// exam is absent or no section is enabled.
func BuildDocument(ctx context.Context, exam *model.Exam, sections model.Sections) *docx.Document {
	if exam == nil || sections.None() {
		return nil
	}

	doc := &docx.Document{}

	if sections.Matrix {
		doc.Blocks = append(doc.Blocks, docx.Heading{Text: i18n.T(ctx, "HeadingMatrix")})
		if tbl := parseTableGrid(exam.Matrix); tbl != nil {
			doc.Blocks = append(doc.Blocks, *tbl)
		}
		doc.Blocks = append(doc.Blocks, docx.Text(""))
	}

	if sections.Specification {
		doc.Blocks = append(doc.Blocks, docx.Heading{Text: i18n.T(ctx, "HeadingSpecification")})
		if tbl := parseTableGrid(exam.Specification); tbl != nil {
			doc.Blocks = append(doc.Blocks, *tbl)
		}
		doc.Blocks = append(doc.Blocks, docx.Text(""))
	}

	if sections.Exam {
		doc.Blocks = append(doc.Blocks, docx.Heading{
			Text:            i18n.T(ctx, "HeadingExam"),
			PageBreakBefore: sections.Matrix || sections.Specification,
		})
		for i, q := range exam.Questions {
			doc.Blocks = append(doc.Blocks, docx.Paragraph{Runs: []docx.Run{
				{Text: i18n.Td(ctx, "QuestionN", map[string]any{"N": i + 1}) + ": ", Bold: true},
				{Text: q.Text},
			}})
			if q.Type == model.TypeMultipleChoice {
				for oi, opt := range q.Options {
					letter := string(rune('A' + oi))
					doc.Blocks = append(doc.Blocks, docx.Paragraph{
						Style: "options",
						Runs:  []docx.Run{{Text: letter + ". " + model.StripOptionPrefix(opt)}},
					})
				}
			}
			doc.Blocks = append(doc.Blocks, docx.Text(""))
		}
	}

	if sections.Answers {
		doc.Blocks = append(doc.Blocks, docx.Heading{
			Text:            i18n.T(ctx, "HeadingAnswerKey"),
			PageBreakBefore: sections.Exam,
		})
		for i, a := range exam.AnswerKey {
			doc.Blocks = append(doc.Blocks, docx.Paragraph{Runs: []docx.Run{
				{Text: i18n.Td(ctx, "QuestionN", map[string]any{"N": i + 1}) + ": ", Bold: true},
				{Text: a.Answer},
			}})
			if a.Explanation != "" {
				doc.Blocks = append(doc.Blocks, docx.Paragraph{Runs: []docx.Run{
					{Text: i18n.T(ctx, "ExplanationLabel") + ": " + a.Explanation, Italic: true},
				}})
			}
		}
	}

	return doc
}
