// Package handler serves the exam generator UI: the criteria form, the
// tabbed result view and the document export endpoints. The application is
// single-user, so the current exam lives in memory behind a mutex rather
// than in a store.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/minhdangit/detinai/internal/curriculum"
	"github.com/minhdangit/detinai/internal/docx"
	"github.com/minhdangit/detinai/internal/i18n"
	"github.com/minhdangit/detinai/internal/model"
	"github.com/minhdangit/detinai/internal/project"
	"github.com/minhdangit/detinai/internal/render"
	"github.com/minhdangit/detinai/internal/sanitize"
	"github.com/minhdangit/detinai/internal/upload"
)

// Generator produces a raw exam payload from generation parameters. The
// concrete implementation is the LLM client; tests inject fakes.
type Generator interface {
	GenerateExam(ctx context.Context, params model.GenerationParams) (any, error)
}

type status int

const (
	statusIdle status = iota
	statusLoading
	statusReady
	statusFailed
)

const (
	maxUploadBytes  = 32 << 20
	generateTimeout = 5 * time.Minute
)

// Handler holds shared dependencies and the current exam state.
type Handler struct {
	gen Generator
	// baseCtx carries the application-language localizer for work that
	// outlives a request, like the background generation goroutine.
	baseCtx context.Context
	views   *views

	mu sync.Mutex
	// generation counts started generations. A finished goroutine compares
	// its own number against the current one and discards a stale result.
	generation  int
	status      status
	exam        *model.Exam
	questions   []model.DisplayQuestion
	errMsg      string
	downloading bool
	printing    bool
}

// New creates a Handler rendering in the given language.
func New(gen Generator, lang string) (*Handler, error) {
	baseCtx := i18n.WithLocalizer(context.Background(), i18n.NewLocalizer(lang))
	v, err := newViews(baseCtx)
	if err != nil {
		return nil, err
	}
	return &Handler{gen: gen, baseCtx: baseCtx, views: v}, nil
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/generate", h.handleGenerate)
	r.Post("/download", h.handleDownload)
	r.Get("/print", h.handlePrint)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snap := snapshot{
		status:    h.status,
		exam:      h.exam,
		questions: h.questions,
		errMsg:    h.errMsg,
	}
	h.mu.Unlock()

	tab := r.URL.Query().Get("tab")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.renderIndex(w, r.Context(), snap, tab); err != nil {
		slog.Error("render error", "error", err)
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, i18n.T(r.Context(), "ErrBadForm"), http.StatusBadRequest)
		return
	}

	params, ok := h.paramsFromForm(r)
	if !ok {
		http.Error(w, i18n.T(r.Context(), "ErrBadForm"), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	if h.status == statusLoading {
		h.mu.Unlock()
		http.Error(w, i18n.T(r.Context(), "ErrBusyGenerate"), http.StatusConflict)
		return
	}
	h.generation++
	gen := h.generation
	h.status = statusLoading
	h.exam = nil
	h.questions = nil
	h.errMsg = ""
	h.mu.Unlock()

	slog.Info("starting exam generation",
		"generation", gen,
		"grade", params.Grade,
		"period", params.Period,
		"duration", params.Duration,
		"images", len(params.Images))
	go h.generate(gen, params)

	// Relative so the app works when mounted under a base path.
	http.Redirect(w, r, "./", http.StatusSeeOther)
}

// paramsFromForm validates the form against the curriculum tables and fills
// in derived fields: the lesson list for the grade and the extracted upload
// materials.
func (h *Handler) paramsFromForm(r *http.Request) (model.GenerationParams, bool) {
	level := r.FormValue("level")
	grade := r.FormValue("grade")
	period := r.FormValue("period")
	if !curriculum.ValidGrade(level, grade) || !curriculum.ValidPeriod(level, period) {
		return model.GenerationParams{}, false
	}

	duration, err := strconv.Atoi(r.FormValue("duration"))
	if err != nil || duration <= 0 || duration > 180 {
		return model.GenerationParams{}, false
	}

	params := model.GenerationParams{
		Level:    optionLabel(curriculum.Levels(), level),
		Grade:    grade,
		Period:   optionLabel(curriculum.PeriodsForLevel(level), period),
		Subject:  curriculum.Subject,
		Duration: duration,
		Lessons: "Toàn bộ chương trình học, bao gồm các chủ đề: " +
			strings.Join(curriculum.LessonsForGrade(grade), ", "),
		Prompt: strings.TrimSpace(r.FormValue("prompt")),
	}

	if r.MultipartForm != nil {
		params.LessonPlan, params.Images = upload.ReadMaterials(r.MultipartForm.File["materials"])
	}
	return params, true
}

func optionLabel(opts []curriculum.Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// generate runs in its own goroutine. The result is published only if no
// newer generation has started since.
func (h *Handler) generate(gen int, params model.GenerationParams) {
	ctx, cancel := context.WithTimeout(h.baseCtx, generateTimeout)
	defer cancel()

	raw, err := h.gen.GenerateExam(ctx, params)

	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.generation {
		slog.Info("discarding stale generation result", "generation", gen, "current", h.generation)
		return
	}

	if err != nil {
		slog.Error("exam generation failed", "generation", gen, "error", err)
		h.status = statusFailed
		h.errMsg = i18n.Td(h.baseCtx, "ErrGenerate", map[string]any{"Error": err.Error()})
		return
	}

	exam := sanitize.Sanitize(raw)
	h.exam = &exam
	h.questions = project.Project(exam.Questions, exam.AnswerKey)
	h.status = statusReady
	slog.Info("exam generation finished",
		"generation", gen,
		"questions", len(exam.Questions),
		"answers", len(exam.AnswerKey))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, i18n.T(r.Context(), "ErrBadForm"), http.StatusBadRequest)
		return
	}
	sections := sectionsFromForm(r.Form.Has)
	if sections.None() {
		http.Error(w, i18n.T(r.Context(), "ErrNoSections"), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	if h.exam == nil {
		h.mu.Unlock()
		http.Error(w, i18n.T(r.Context(), "ErrNoExam"), http.StatusConflict)
		return
	}
	if h.downloading {
		h.mu.Unlock()
		http.Error(w, i18n.T(r.Context(), "ErrDownloadBusy"), http.StatusConflict)
		return
	}
	h.downloading = true
	exam := h.exam
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		h.downloading = false
		h.mu.Unlock()
	}()

	doc := render.BuildDocument(r.Context(), exam, sections)
	data, err := docx.Encode(doc)
	if err != nil {
		slog.Error("DOCX encoding failed", "error", err)
		http.Error(w, i18n.Td(r.Context(), "ErrDocx", map[string]any{"Error": err.Error()}),
			http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="de-kiem-tra.docx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		slog.Error("write DOCX response", "error", err)
	}
}

func (h *Handler) handlePrint(w http.ResponseWriter, r *http.Request) {
	sections := sectionsFromForm(r.URL.Query().Has)
	if sections.None() {
		http.Error(w, i18n.T(r.Context(), "ErrNoSections"), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	if h.exam == nil {
		h.mu.Unlock()
		http.Redirect(w, r, "./", http.StatusSeeOther)
		return
	}
	if h.printing {
		h.mu.Unlock()
		http.Error(w, i18n.T(r.Context(), "ErrPrintBusy"), http.StatusConflict)
		return
	}
	h.printing = true
	exam := h.exam
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		h.printing = false
		h.mu.Unlock()
	}()

	page := render.Printable(r.Context(), exam, sections)
	if page == "" {
		http.Redirect(w, r, "./", http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(page)); err != nil {
		slog.Error("write print response", "error", err)
	}
}

// sectionsFromForm reads the section checkboxes. Checkbox semantics: a
// checked box sends its name, an unchecked one sends nothing.
func sectionsFromForm(has func(string) bool) model.Sections {
	return model.Sections{
		Matrix:        has("matrix"),
		Specification: has("specification"),
		Exam:          has("exam"),
		Answers:       has("answers"),
	}
}
