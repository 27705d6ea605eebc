package handler

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/minhdangit/detinai/internal/curriculum"
	"github.com/minhdangit/detinai/internal/i18n"
	"github.com/minhdangit/detinai/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// views renders the application pages. Templates are parsed once at startup
// with a translation function bound to the application language.
type views struct {
	ctx  context.Context
	tmpl *template.Template
}

func newViews(ctx context.Context) (*views, error) {
	funcs := template.FuncMap{
		"T": func(id string) string { return i18n.T(ctx, id) },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &views{ctx: ctx, tmpl: tmpl}, nil
}

// snapshot is the handler state copied under lock for rendering.
type snapshot struct {
	status    status
	exam      *model.Exam
	questions []model.DisplayQuestion
	errMsg    string
}

type tabView struct {
	ID     string
	Label  string
	Active bool
}

type optionView struct {
	Letter string
	Text   string
}

type questionView struct {
	Label   string
	Prompt  string
	Options []optionView
	Answer  string
}

type answerView struct {
	Label       string
	Answer      string
	Explanation string
}

type formView struct {
	Levels []curriculum.Option
	// gradesJSON and periodsJSON feed the level-change script so the grade
	// and period selects follow the chosen level without a round trip.
	GradesJSON    template.JS
	PeriodsJSON   template.JS
	DefaultLevel  string
	DefaultGrades []string
	Periods       []curriculum.Option
	Durations     []int
}

type pageData struct {
	State     string
	Error     string
	ActiveTab string
	Tabs      []tabView

	Form formView

	Matrix        template.HTML
	Specification template.HTML
	Questions     []questionView
	Answers       []answerView
}

var durations = []int{35, 45, 60, 90}

func (v *views) renderIndex(w io.Writer, ctx context.Context, snap snapshot, tab string) error {
	data := pageData{
		State:     stateName(snap.status),
		Error:     snap.errMsg,
		ActiveTab: normalizeTab(tab),
		Form:      buildFormView(),
	}

	data.Tabs = []tabView{
		{ID: "exam", Label: i18n.T(ctx, "TabExam")},
		{ID: "answers", Label: i18n.T(ctx, "TabAnswers")},
		{ID: "matrix", Label: i18n.T(ctx, "TabMatrix")},
		{ID: "specification", Label: i18n.T(ctx, "TabSpecification")},
	}
	for i := range data.Tabs {
		data.Tabs[i].Active = data.Tabs[i].ID == data.ActiveTab
	}

	if snap.exam != nil {
		data.Matrix = template.HTML(snap.exam.Matrix)
		data.Specification = template.HTML(snap.exam.Specification)
		data.Questions = buildQuestionViews(ctx, snap.questions)
		data.Answers = buildAnswerViews(ctx, snap.exam.AnswerKey)
	}

	return v.tmpl.ExecuteTemplate(w, "index.html.tmpl", data)
}

func stateName(s status) string {
	switch s {
	case statusLoading:
		return "loading"
	case statusReady:
		return "ready"
	case statusFailed:
		return "failed"
	}
	return "idle"
}

func normalizeTab(tab string) string {
	switch tab {
	case "answers", "matrix", "specification":
		return tab
	}
	return "exam"
}

func buildFormView() formView {
	grades := make(map[string][]string)
	periods := make(map[string][]curriculum.Option)
	for _, l := range curriculum.Levels() {
		grades[l.Value] = curriculum.GradesForLevel(l.Value)
		periods[l.Value] = curriculum.PeriodsForLevel(l.Value)
	}
	gradesJSON, _ := json.Marshal(grades)
	periodsJSON, _ := json.Marshal(periods)

	defaultLevel := curriculum.LevelSecondary
	return formView{
		Levels:        curriculum.Levels(),
		GradesJSON:    template.JS(gradesJSON),
		PeriodsJSON:   template.JS(periodsJSON),
		DefaultLevel:  defaultLevel,
		DefaultGrades: curriculum.GradesForLevel(defaultLevel),
		Periods:       curriculum.PeriodsForLevel(defaultLevel),
		Durations:     durations,
	}
}

func buildQuestionViews(ctx context.Context, questions []model.DisplayQuestion) []questionView {
	var out []questionView
	for i, q := range questions {
		qv := questionView{Label: i18n.Td(ctx, "QuestionN", map[string]any{"N": i + 1})}
		switch v := q.(type) {
		case model.MultipleChoice:
			qv.Prompt = v.Prompt
			qv.Answer = model.StripOptionPrefix(v.Answer)
			for oi, opt := range v.Options {
				qv.Options = append(qv.Options, optionView{
					Letter: string(rune('A' + oi)),
					Text:   model.StripOptionPrefix(opt),
				})
			}
		case model.TrueFalse:
			qv.Prompt = v.Prompt
			if v.Answer {
				qv.Answer = i18n.T(ctx, "AnswerTrue")
			} else {
				qv.Answer = i18n.T(ctx, "AnswerFalse")
			}
		case model.ShortAnswer:
			qv.Prompt = v.Prompt
			qv.Answer = v.Answer
		}
		out = append(out, qv)
	}
	return out
}

func buildAnswerViews(ctx context.Context, answers []model.ExamAnswer) []answerView {
	var out []answerView
	for i, a := range answers {
		out = append(out, answerView{
			Label:       i18n.Td(ctx, "QuestionN", map[string]any{"N": i + 1}),
			Answer:      a.Answer,
			Explanation: a.Explanation,
		})
	}
	return out
}
