package llm

import (
	"strings"
	"testing"

	"github.com/minhdangit/detinai/internal/model"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding space", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"no closing fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	p := buildSystemPrompt()
	for _, want := range []string{
		"Chương trình GDPT 2018",
		`"matrix"`, `"specification"`, `"exam"`, `"answer_key"`,
		"MULTIPLE_CHOICE", "TRUE_FALSE", "SHORT_ANSWER",
		"colspan", "rowspan",
		`"Đúng" or "Sai"`,
	} {
		if !strings.Contains(p, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildUserPrompt(t *testing.T) {
	params := model.GenerationParams{
		Level:      "THCS",
		Grade:      "8",
		Period:     "Giữa học kỳ 1",
		Subject:    "Tin học",
		Duration:   45,
		Lessons:    "Bài 1, Bài 2",
		LessonPlan: "Nội dung giáo án",
		Prompt:     "Tập trung vào thực hành",
		Images:     []model.ImagePart{{MIMEType: "image/png", Data: "aGVsbG8="}},
	}

	p := buildUserPrompt(params)
	for _, want := range []string{
		"Subject: Tin học",
		"Grade: 8",
		"Duration: 45 minutes",
		"Bài 1, Bài 2",
		"Nội dung giáo án",
		"provided images",
		"Tập trung vào thực hành",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestBuildUserPromptDefaults(t *testing.T) {
	p := buildUserPrompt(model.GenerationParams{Subject: "Tin học", Duration: 90})
	for _, want := range []string{"Not specified", "None provided.", "Additional requirements: None"} {
		if !strings.Contains(p, want) {
			t.Errorf("user prompt missing default %q", want)
		}
	}
	if strings.Contains(p, "provided images") {
		t.Error("image note present without images")
	}
}
