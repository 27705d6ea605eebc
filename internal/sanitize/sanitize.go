// Package sanitize rebuilds the untrusted provider response into a
// shape-guaranteed exam. It is total: any decoded JSON value, including nil,
// scalars and deeply malformed objects, produces a valid model.Exam. Fields
// default rather than fail, so a degraded response yields a smaller exam,
// never an error.
package sanitize

import (
	"encoding/json"
	"strconv"

	"github.com/minhdangit/detinai/internal/model"
)

// Sanitize coerces a decoded provider response into a model.Exam.
//
// String fields pass through only when they are strings, arrays only when
// they are arrays. A question or answer entry is kept only when it is an
// object; inside a kept entry every field defaults independently, so one bad
// field never discards the entry. Option lists drop null and non-primitive
// elements and stringify the rest. The returned slices are never nil.
func Sanitize(raw any) model.Exam {
	exam := model.Exam{
		Questions: []model.ExamQuestion{},
		AnswerKey: []model.ExamAnswer{},
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return exam
	}

	exam.Matrix = str(obj["matrix"])
	exam.Specification = str(obj["specification"])

	for _, item := range arr(obj["exam"]) {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		exam.Questions = append(exam.Questions, model.ExamQuestion{
			ID:      str(entry["question_id"]),
			Text:    str(entry["question_text"]),
			Type:    str(entry["question_type"]),
			Options: strSlice(entry["options"]),
		})
	}

	for _, item := range arr(obj["answer_key"]) {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		exam.AnswerKey = append(exam.AnswerKey, model.ExamAnswer{
			QuestionID:  str(entry["question_id"]),
			Answer:      str(entry["answer"]),
			Explanation: str(entry["explanation"]),
		})
	}

	return exam
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func arr(v any) []any {
	a, _ := v.([]any)
	return a
}

// strSlice keeps primitive elements only, stringified the way JSON prints
// them. Objects, arrays and nulls are dropped.
func strSlice(v any) []string {
	out := []string{}
	for _, e := range arr(v) {
		switch t := e.(type) {
		case string:
			out = append(out, t)
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		case json.Number:
			out = append(out, t.String())
		case bool:
			out = append(out, strconv.FormatBool(t))
		}
	}
	return out
}
