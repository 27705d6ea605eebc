package llm

import (
	"fmt"
	"strings"

	"github.com/minhdangit/detinai/internal/model"
)

// buildSystemPrompt describes the assistant's role and the exact JSON shape
// expected back. The schema is spelled out in prose because JSON response
// mode guarantees an object, not a structure.
func buildSystemPrompt() string {
	var sb strings.Builder

	sb.WriteString("You are an expert assistant for creating educational exams in Vietnam.\n")
	sb.WriteString("You must follow the Vietnamese General Education Program 2018 (Chương trình GDPT 2018).\n")
	sb.WriteString("Your task is to generate a complete exam package based on the user's specifications.\n")
	sb.WriteString("All content must be in Vietnamese, appropriate for the specified grade and educational level.\n\n")

	sb.WriteString("Respond with a single JSON object with exactly these fields:\n")
	sb.WriteString(`- "matrix": the exam matrix (ma trận đề kiểm tra) as a complete, valid HTML table string using <table>, <thead>, <tbody>, <tr>, <th> and <td> tags. Use colspan and rowspan where necessary to match the official Vietnamese format. Do not include any CSS styles.` + "\n")
	sb.WriteString(`- "specification": the exam specification (bản đặc tả đề kiểm tra) as an HTML table string in the same format as the matrix.` + "\n")
	sb.WriteString(`- "exam": an array of question objects, each with "question_id" (unique, e.g. "Q1"), "question_text", "question_type" (one of "MULTIPLE_CHOICE", "TRUE_FALSE", "SHORT_ANSWER") and, for multiple choice only, "options": an array of option texts without any "A.", "B." prefixes.` + "\n")
	sb.WriteString(`- "answer_key": an array of objects with "question_id" (matching a question), "answer" (the option text for multiple choice, "Đúng" or "Sai" for true/false) and an optional "explanation".` + "\n")

	return sb.String()
}

// buildUserPrompt lays out the teacher's request as labeled lines.
func buildUserPrompt(params model.GenerationParams) string {
	var sb strings.Builder

	sb.WriteString("Please generate an exam with the following specifications:\n")
	fmt.Fprintf(&sb, "- Subject: %s\n", params.Subject)
	fmt.Fprintf(&sb, "- Grade: %s\n", params.Grade)
	fmt.Fprintf(&sb, "- Educational Level: %s\n", params.Level)
	fmt.Fprintf(&sb, "- Exam Period: %s\n", params.Period)
	fmt.Fprintf(&sb, "- Duration: %d minutes\n", params.Duration)

	lessons := params.Lessons
	if lessons == "" {
		lessons = "Not specified"
	}
	fmt.Fprintf(&sb, "- Lessons to focus on: %s\n", lessons)

	plan := params.LessonPlan
	if plan == "" {
		plan = "None provided."
	}
	fmt.Fprintf(&sb, "- Content from lesson plans provided by user:\n%s\n", plan)

	if len(params.Images) > 0 {
		sb.WriteString("- The user has also provided images. Please analyze them and create relevant questions if applicable.\n")
	}

	extra := params.Prompt
	if extra == "" {
		extra = "None"
	}
	fmt.Fprintf(&sb, "- Additional requirements: %s\n", extra)

	return sb.String()
}
