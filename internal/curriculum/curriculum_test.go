package curriculum

import "testing"

func TestGradesForLevel(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{LevelPrimary, []string{"3", "4", "5"}},
		{LevelSecondary, []string{"6", "7", "8", "9"}},
		{LevelHighSchool, []string{"10", "11"}},
		{"KINDERGARTEN", nil},
	}
	for _, tt := range tests {
		got := GradesForLevel(tt.level)
		if len(got) != len(tt.want) {
			t.Errorf("GradesForLevel(%q) = %v, want %v", tt.level, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("GradesForLevel(%q)[%d] = %q, want %q", tt.level, i, got[i], tt.want[i])
			}
		}
	}
}

func TestPeriodsForLevel(t *testing.T) {
	if got := PeriodsForLevel(LevelPrimary); len(got) != 2 {
		t.Errorf("primary periods = %d, want 2", len(got))
	}
	if got := PeriodsForLevel(LevelSecondary); len(got) != 4 {
		t.Errorf("secondary periods = %d, want 4", len(got))
	}
	if ValidPeriod(LevelPrimary, PeriodMidTerm1) {
		t.Error("mid-term 1 should not be valid for primary")
	}
	if !ValidPeriod(LevelPrimary, PeriodEndTerm2) {
		t.Error("end-term 2 should be valid for primary")
	}
	if !ValidPeriod(LevelHighSchool, PeriodMidTerm2) {
		t.Error("mid-term 2 should be valid for high school")
	}
}

func TestValidGrade(t *testing.T) {
	if !ValidGrade(LevelSecondary, "7") {
		t.Error("grade 7 should be valid for secondary")
	}
	if ValidGrade(LevelPrimary, "7") {
		t.Error("grade 7 should not be valid for primary")
	}
	if ValidGrade("NOPE", "3") {
		t.Error("unknown level should validate nothing")
	}
}

func TestLessonsForGrade(t *testing.T) {
	for _, grade := range []string{"3", "4", "5", "6", "7", "8", "9", "10", "11"} {
		if len(LessonsForGrade(grade)) == 0 {
			t.Errorf("no lessons for grade %s", grade)
		}
	}
	if LessonsForGrade("12") != nil {
		t.Error("grade 12 is not in the tables")
	}
}
