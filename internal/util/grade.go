package util

// GradeOrder 等级从高到低的固定顺序
var GradeOrder = []string{"S", "A+", "A", "B+", "B", "C+", "F"}

// GradeRank 等级排序权重，数字越小等级越高
var GradeRank = map[string]int{
	"S":  1,
	"A+": 2,
	"A":  3,
	"B+": 4,
	"B":  5,
	"C+": 6,
	"F":  7,
}

// GradeFromScore 统计与排行榜使用的等级表。
// 与 GradeForAttempt 的阈值并不一致，两套标准是历史遗留，
// 在产品侧澄清之前保持各自原样，不要合并。
func GradeFromScore(score float64) string {
	switch {
	case score == 100:
		return "S"
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B+"
	case score >= 60:
		return "B"
	case score >= 50:
		return "C+"
	default:
		return "F"
	}
}

// GradeForAttempt 答题结束时展示给用户的等级表（原前端 calculateGrade）
func GradeForAttempt(score, total int) string {
	if total == 0 {
		return "F"
	}

	percentage := float64(score) / float64(total) * 100

	switch {
	case percentage >= 90:
		return "S"
	case percentage >= 85:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 75:
		return "B+"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C+"
	default:
		return "F"
	}
}
