package model

import "regexp"

// Question type tags as the provider emits them. Unknown tags are kept at the
// exam layer and only rejected during projection.
const (
	TypeMultipleChoice = "MULTIPLE_CHOICE"
	TypeTrueFalse      = "TRUE_FALSE"
	TypeShortAnswer    = "SHORT_ANSWER"
)

// Exam is the sanitized exam package. Every field is always present and
// correctly typed; the sanitizer guarantees this for arbitrary provider
// output. Matrix and Specification hold HTML table strings.
type Exam struct {
	Matrix        string         `json:"matrix"`
	Specification string         `json:"specification"`
	Questions     []ExamQuestion `json:"exam"`
	AnswerKey     []ExamAnswer   `json:"answer_key"`
}

// ExamQuestion is one sanitized question entry.
type ExamQuestion struct {
	ID      string   `json:"question_id"`
	Text    string   `json:"question_text"`
	Type    string   `json:"question_type"`
	Options []string `json:"options"`
}

// ExamAnswer is one sanitized answer-key entry.
type ExamAnswer struct {
	QuestionID  string `json:"question_id"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// DisplayQuestion is the closed set of question variants shown in the exam
// tab. Exactly MultipleChoice, TrueFalse and ShortAnswer implement it.
type DisplayQuestion interface {
	displayQuestion()
}

// MultipleChoice is a question with lettered options.
type MultipleChoice struct {
	Prompt  string
	Options []string
	Answer  string
}

// TrueFalse is a question answered Đúng/Sai.
type TrueFalse struct {
	Prompt string
	Answer bool
}

// ShortAnswer is a free-text question.
type ShortAnswer struct {
	Prompt string
	Answer string
}

func (MultipleChoice) displayQuestion() {}
func (TrueFalse) displayQuestion()      {}
func (ShortAnswer) displayQuestion()    {}

// Sections selects which parts of the exam package go into a rendered
// document. Both renderers and the handler's enablement checks share it.
type Sections struct {
	Matrix        bool
	Specification bool
	Exam          bool
	Answers       bool
}

// AllSections returns the default selection with every part enabled.
func AllSections() Sections {
	return Sections{Matrix: true, Specification: true, Exam: true, Answers: true}
}

// None reports whether no section is selected. Export and print are disabled
// in that case.
func (s Sections) None() bool {
	return !s.Matrix && !s.Specification && !s.Exam && !s.Answers
}

// ImagePart is one uploaded image forwarded to the provider.
type ImagePart struct {
	MIMEType string
	Data     string // base64, no data-URL prefix
}

// GenerationParams is the full provider request input assembled from the form.
type GenerationParams struct {
	Level      string
	Grade      string
	Period     string
	Subject    string
	Duration   int
	Lessons    string
	LessonPlan string
	Prompt     string
	Images     []ImagePart
}

// Option texts may arrive with their own letter markers even though the
// prompt forbids them. Renderers generate fresh ordinals, so a leading
// letter-dot prefix is stripped first. Đ covers the Vietnamese alphabet.
var optionPrefixRe = regexp.MustCompile(`^[A-ZĐ]\.\s*`)

// StripOptionPrefix removes a leading "A. "-style marker from an option text.
func StripOptionPrefix(s string) string {
	return optionPrefixRe.ReplaceAllString(s, "")
}
