// Package project derives display-ready question variants from a sanitized
// exam and its answer key.
package project

import (
	"log/slog"
	"strings"

	"github.com/minhdangit/detinai/internal/model"
)

// trueTokenVI is the affirmative answer text the provider emits for
// Vietnamese true/false questions.
const trueTokenVI = "Đúng"

// Project pairs each question with its answer-key entry and maps it onto one
// of the display variants. Questions without an answer and questions with an
// unrecognized type tag are dropped with a diagnostic; output preserves the
// input order of the survivors.
func Project(questions []model.ExamQuestion, answers []model.ExamAnswer) []model.DisplayQuestion {
	// Last write wins on duplicate ids, matching the provider contract that
	// ids are unique; duplicates are a data-quality problem, not an error.
	answerByID := make(map[string]string, len(answers))
	for _, a := range answers {
		answerByID[a.QuestionID] = a.Answer
	}

	out := make([]model.DisplayQuestion, 0, len(questions))
	for _, q := range questions {
		answer, ok := answerByID[q.ID]
		if !ok {
			slog.Warn("no answer found for question", "question_id", q.ID)
			continue
		}

		switch q.Type {
		case model.TypeMultipleChoice:
			out = append(out, model.MultipleChoice{
				Prompt:  q.Text,
				Options: q.Options,
				Answer:  answer,
			})
		case model.TypeTrueFalse:
			out = append(out, model.TrueFalse{
				Prompt: q.Text,
				Answer: isTrue(answer),
			})
		case model.TypeShortAnswer:
			out = append(out, model.ShortAnswer{
				Prompt: q.Text,
				Answer: answer,
			})
		default:
			slog.Warn("unknown question type", "question_id", q.ID, "type", q.Type)
		}
	}
	return out
}

// isTrue recognizes the English and Vietnamese affirmative tokens. Anything
// else, including malformed answer text, resolves to false.
func isTrue(answer string) bool {
	return strings.ToLower(answer) == "true" || answer == trueTokenVI
}
