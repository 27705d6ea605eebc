// Package curriculum holds the static tables of the Vietnamese General
// Education Program 2018 informatics curriculum that drive the exam form:
// educational levels, grades per level, exam periods and lesson topics.
package curriculum

// Subject is fixed: the application authors informatics exams only.
const Subject = "Tin học"

// Educational level values.
const (
	LevelPrimary    = "PRIMARY"
	LevelSecondary  = "SECONDARY"
	LevelHighSchool = "HIGH_SCHOOL"
)

// Exam period values.
const (
	PeriodMidTerm1 = "MID_TERM_1"
	PeriodEndTerm1 = "END_TERM_1"
	PeriodMidTerm2 = "MID_TERM_2"
	PeriodEndTerm2 = "END_TERM_2"
)

// Option is a value with its Vietnamese display label.
type Option struct {
	Value string
	Label string
}

// Levels lists the selectable educational levels in display order.
func Levels() []Option {
	return []Option{
		{LevelPrimary, "Tiểu học"},
		{LevelSecondary, "Trung học cơ sở"},
		{LevelHighSchool, "Trung học phổ thông"},
	}
}

var gradesByLevel = map[string][]string{
	LevelPrimary:    {"3", "4", "5"},
	LevelSecondary:  {"6", "7", "8", "9"},
	LevelHighSchool: {"10", "11"},
}

// GradesForLevel returns the grades taught at the given level, or nil for an
// unknown level.
func GradesForLevel(level string) []string {
	return gradesByLevel[level]
}

// PeriodsForLevel returns the exam periods valid at the given level. Primary
// school only holds end-of-term exams.
func PeriodsForLevel(level string) []Option {
	if level == LevelPrimary {
		return []Option{
			{PeriodEndTerm1, "Cuối học kì 1"},
			{PeriodEndTerm2, "Cuối học kì 2"},
		}
	}
	return []Option{
		{PeriodMidTerm1, "Giữa học kì 1"},
		{PeriodEndTerm1, "Cuối học kì 1"},
		{PeriodMidTerm2, "Giữa học kì 2"},
		{PeriodEndTerm2, "Cuối học kì 2"},
	}
}

// Lesson topics per grade, after the current textbook editions.
var lessonsByGrade = map[string][]string{
	"3": {
		"Chủ đề A: Máy tính và em",
		"Chủ đề B: Mạng máy tính và Internet",
		"Chủ đề C: Tổ chức lưu trữ, tìm kiếm và trao đổi thông tin",
		"Chủ đề D: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề E: Ứng dụng tin học",
		"Chủ đề F: Giải quyết vấn đề với sự trợ giúp của máy tính",
	},
	"4": {
		"Chủ đề A: Máy tính và em",
		"Chủ đề B: Mạng máy tính và Internet",
		"Chủ đề C: Tổ chức lưu trữ, tìm kiếm và trao đổi thông tin",
		"Chủ đề D: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề E: Ứng dụng tin học",
		"Chủ đề F: Giải quyết vấn đề với sự trợ giúp của máy tính",
	},
	"5": {
		"Chủ đề A: Máy tính và em",
		"Chủ đề B: Mạng máy tính và Internet",
		"Chủ đề C: Tổ chức lưu trữ, tìm kiếm và trao đổi thông tin",
		"Chủ đề D: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề E: Ứng dụng tin học",
		"Chủ đề F: Giải quyết vấn đề với sự trợ giúp của máy tính",
	},
	"6": {
		"Chủ đề 1: Máy tính và cộng đồng",
		"Chủ đề 2: Mạng máy tính và Internet",
		"Chủ đề 3: Tổ chức lưu trữ, tìm kiếm và trao đổi thông tin",
		"Chủ đề 4: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề 5: Ứng dụng tin học",
		"Chủ đề 6: Giải quyết vấn đề với sự trợ giúp của máy tính",
	},
	"7": {
		"Chủ đề 1: Máy tính và cộng đồng",
		"Chủ đề 2: Tổ chức lưu trữ, tìm kiếm và trao đổi thông tin",
		"Chủ đề 3: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề 4: Ứng dụng tin học",
		"Chủ đề 5: Giải quyết vấn đề với sự trợ giúp của máy tính",
	},
	"8": {
		"Chủ đề 1: Máy tính và cộng đồng",
		"Chủ đề 2: Tổ chức lưu trữ, tìm kiếm và trao đổi thông tin",
		"Chủ đề 3: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề 4: Ứng dụng tin học",
		"Chủ đề 5: Giải quyết vấn đề với sự trợ giúp của máy tính",
		"Chủ đề 6: Hướng nghiệp với Tin học",
	},
	"9": {
		"Chủ đề 1: Máy tính và cộng đồng",
		"Chủ đề 2: Tổ chức lưu trữ, tìm kiếm và trao đổi thông tin",
		"Chủ đề 3: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề 4: Ứng dụng tin học",
		"Chủ đề 5: Giải quyết vấn đề với sự trợ giúp của máy tính",
		"Chủ đề 6: Hướng nghiệp với tin học",
	},
	"10": {
		"Chủ đề 1: Máy tính và xã hội tri thức",
		"Chủ đề 2: Mạng máy tính và Internet",
		"Chủ đề 3: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề 4: Ứng dụng tin học",
		"Chủ đề 5: Giải quyết vấn đề với sự trợ giúp của máy tính",
		"Chủ đề 6: Hướng nghiệp với Tin học",
	},
	"11": {
		"Chủ đề 1: Máy tính và xã hội tri thức",
		"Chủ đề 2: Tổ chức lưu trữ, tìm kiếm và trao đổi thông tin",
		"Chủ đề 3: Đạo đức, pháp luật và văn hoá trong môi trường số",
		"Chủ đề 4: Giới thiệu các hệ cơ sở dữ liệu",
		"Chủ đề 5: Hướng nghiệp với tin học",
		"Chủ đề 6: Thực hành tạo và khai thác cơ sở dữ liệu",
		"Chủ đề 7: Phần mềm chỉnh sửa ảnh và làm video",
	},
}

// LessonsForGrade returns the lesson topics for a grade, or nil for an
// unknown grade.
func LessonsForGrade(grade string) []string {
	return lessonsByGrade[grade]
}

// ValidGrade reports whether the grade belongs to the level.
func ValidGrade(level, grade string) bool {
	for _, g := range gradesByLevel[level] {
		if g == grade {
			return true
		}
	}
	return false
}

// ValidPeriod reports whether the period is offered at the level.
func ValidPeriod(level, period string) bool {
	for _, p := range PeriodsForLevel(level) {
		if p.Value == period {
			return true
		}
	}
	return false
}
