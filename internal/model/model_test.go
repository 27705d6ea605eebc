package model

import "testing"

func TestStripOptionPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin letter", "A. Paris", "Paris"},
		{"vietnamese letter", "Đ. Hà Nội", "Hà Nội"},
		{"no space after dot", "B.London", "London"},
		{"no prefix", "Paris", "Paris"},
		{"lowercase not stripped", "a. paris", "a. paris"},
		{"mid-text marker untouched", "Chọn A. hoặc B.", "Chọn A. hoặc B."},
		{"empty", "", ""},
		{"prefix only", "C. ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripOptionPrefix(tt.in); got != tt.want {
				t.Errorf("StripOptionPrefix(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSectionsNone(t *testing.T) {
	if AllSections().None() {
		t.Error("AllSections().None() = true, want false")
	}
	if !(Sections{}).None() {
		t.Error("zero Sections.None() = false, want true")
	}
	if (Sections{Answers: true}).None() {
		t.Error("Sections{Answers}.None() = true, want false")
	}
}
