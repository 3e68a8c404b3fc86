package util

import "testing"

func TestGradeFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "S"},
		{99.9, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{80, "A"},
		{79.9, "B+"},
		{70, "B+"},
		{69.9, "B"},
		{60, "B"},
		{59.9, "C+"},
		{50, "C+"},
		{49.9, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := GradeFromScore(tt.score); got != tt.want {
			t.Errorf("GradeFromScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestGradeForAttempt(t *testing.T) {
	tests := []struct {
		score int
		total int
		want  string
	}{
		{20, 20, "S"},
		{18, 20, "S"},   // 90%
		{17, 20, "A+"},  // 85%
		{16, 20, "A"},   // 80%
		{15, 20, "B+"},  // 75%
		{14, 20, "B"},   // 70%
		{12, 20, "C+"},  // 60%
		{11, 20, "F"},   // 55%
		{0, 20, "F"},
		{0, 0, "F"}, // 空测验直接 F
	}

	for _, tt := range tests {
		if got := GradeForAttempt(tt.score, tt.total); got != tt.want {
			t.Errorf("GradeForAttempt(%d, %d) = %q, want %q", tt.score, tt.total, got, tt.want)
		}
	}
}

// 两套等级表阈值不同，92 分在统计侧是 A+，在答题结算侧是 S。
// 这个差异是刻意保留的，测试锁住它防止被“顺手统一”。
func TestGradeScalesDiverge(t *testing.T) {
	if got := GradeFromScore(92); got != "A+" {
		t.Errorf("GradeFromScore(92) = %q, want A+", got)
	}
	if got := GradeForAttempt(92, 100); got != "S" {
		t.Errorf("GradeForAttempt(92, 100) = %q, want S", got)
	}
}
