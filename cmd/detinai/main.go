package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/minhdangit/detinai/internal/docx"
	"github.com/minhdangit/detinai/internal/handler"
	appI18n "github.com/minhdangit/detinai/internal/i18n"
	"github.com/minhdangit/detinai/internal/llm"
	"github.com/minhdangit/detinai/internal/model"
	"github.com/minhdangit/detinai/internal/render"
	"github.com/minhdangit/detinai/internal/sanitize"
)

const defaultLLMURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "detinai",
		Short: "AI-assisted informatics exam generator for Vietnamese schools",
	}

	serve := serveCmd()
	root.AddCommand(serve, renderCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `detinai --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP exam generator server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":8080", "HTTP listen address")
	f.String("llm-url", defaultLLMURL, "OpenAI-compatible API base URL")
	f.String("llm-key", "", "API key for LLM (or set DETINAI_LLM_KEY)")
	f.String("llm-model", "gemini-2.5-flash", "LLM model name")
	f.StringP("lang", "l", "vi", "UI language (vi, en)")
	f.String("base-path", "", "URL prefix for sub-path deployments (e.g. /detinai)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a saved exam JSON file as DOCX or print HTML",
		RunE:  runRender,
	}
	f := cmd.Flags()
	f.StringP("input", "i", "", "Exam JSON file path (required)")
	f.StringP("format", "f", "docx", "Output format (docx, html)")
	f.String("sections", "matrix,specification,exam,answers", "Comma-separated sections to include")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.StringP("lang", "l", "vi", "Document language (vi, en)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("DETINAI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("detinai")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/detinai")
	v.AddConfigPath("/etc/detinai")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}

	apiKey := v.GetString("llm-key")
	if apiKey == "" {
		return fmt.Errorf("LLM API key is required: set --llm-key flag or DETINAI_LLM_KEY env var")
	}
	llmClient := llm.New(
		v.GetString("llm-url"),
		apiKey,
		v.GetString("llm-model"),
	)

	h, err := handler.New(llmClient, lang)
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	// Normalize base path. Views use relative URLs, so mounting the routes
	// under a prefix is all a sub-path deployment needs.
	basePath := strings.TrimRight(v.GetString("base-path"), "/")
	if basePath != "" && !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appI18n.Middleware(lang))

	if basePath != "" {
		r.Route(basePath, func(sub chi.Router) {
			h.Routes(sub)
		})
		r.Get(basePath, func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, basePath+"/", http.StatusMovedPermanently)
		})
	} else {
		h.Routes(r)
	}

	addr := v.GetString("addr")
	slog.Info("starting server",
		"addr", addr,
		"model", v.GetString("llm-model"),
		"llm_url", v.GetString("llm-url"),
		"lang", lang,
		"base_path", basePath,
	)
	return http.ListenAndServe(addr, r)
}

func runRender(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}
	ctx := appI18n.WithLocalizer(context.Background(), appI18n.NewLocalizer(lang))

	data, err := os.ReadFile(v.GetString("input"))
	if err != nil {
		return fmt.Errorf("read exam file: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("parse exam file: %w", err)
	}
	exam := sanitize.Sanitize(raw)

	sections, err := parseSections(v.GetString("sections"))
	if err != nil {
		return err
	}

	var out []byte
	switch format := strings.ToLower(v.GetString("format")); format {
	case "docx":
		doc := render.BuildDocument(ctx, &exam, sections)
		out, err = docx.Encode(doc)
		if err != nil {
			return fmt.Errorf("encode DOCX: %w", err)
		}
	case "html":
		page := render.Printable(ctx, &exam, sections)
		if page == "" {
			return fmt.Errorf("nothing to render")
		}
		out = []byte(page)
	default:
		return fmt.Errorf("unknown format %q (want docx or html)", format)
	}

	outPath := v.GetString("output")
	if outPath == "" || outPath == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("rendered exam", "output", outPath, "bytes", len(out))
	return nil
}

func parseSections(s string) (model.Sections, error) {
	var sections model.Sections
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "matrix":
			sections.Matrix = true
		case "specification":
			sections.Specification = true
		case "exam":
			sections.Exam = true
		case "answers":
			sections.Answers = true
		case "":
		default:
			return model.Sections{}, fmt.Errorf("unknown section %q", name)
		}
	}
	if sections.None() {
		return model.Sections{}, fmt.Errorf("no sections selected")
	}
	return sections, nil
}
