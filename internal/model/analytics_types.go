package model

import "time"

// DifficultyDistribution 初阶/进阶测验次数分布
type DifficultyDistribution struct {
	Beginner           int64 `json:"beginner"`
	Advanced           int64 `json:"advanced"`
	BeginnerPercentage int   `json:"beginnerPercentage"`
}

// MostPopularBook 参与次数最多的书籍
type MostPopularBook struct {
	Book  string `json:"book"`
	Count int64  `json:"count"`
}

// AnalyticsSummary 统计摘要
type AnalyticsSummary struct {
	TotalUsers             int64                  `json:"totalUsers"`
	TotalQuizzes           int64                  `json:"totalQuizzes"`
	DifficultyDistribution DifficultyDistribution `json:"difficultyDistribution"`
	AvgCorrectRate         float64                `json:"avgCorrectRate"`
	AvgGrade               string                 `json:"avgGrade"`
	MostPopularBook        *MostPopularBook       `json:"mostPopularBook"`
}

// GradeBucket 等级分布中的一项，name 为等级，value 为记录数
type GradeBucket struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// BookBucket 书籍参与分布中的一项
type BookBucket struct {
	Name  string `gorm:"column:name" json:"name"`
	Value int64  `gorm:"column:value" json:"value"`
}

// WrongQuestion 错题排行榜中的一项
type WrongQuestion struct {
	QuestionID     string  `json:"questionId"`
	Question       string  `json:"question"`
	Book           string  `json:"book"`
	TotalAnswers   int     `json:"totalAnswers"`
	CorrectAnswers int     `json:"correctAnswers"`
	CorrectRate    float64 `json:"correctRate"`
}

// QuestionStat 单题作答统计，按需计算，不入库
type QuestionStat struct {
	QuestionID       string  `json:"questionId"`
	TotalAnswers     int     `json:"totalAnswers"`
	CorrectAnswers   int     `json:"correctAnswers"`
	IncorrectAnswers int     `json:"incorrectAnswers"`
	CorrectRate      float64 `json:"correctRate"`
}

// AnalyticsOverview 综合概览：四个聚合的组合载荷，整体进出缓存
type AnalyticsOverview struct {
	Summary           *AnalyticsSummary `json:"summary"`
	GradeDistribution []GradeBucket     `json:"gradeDistribution"`
	BookDistribution  []BookBucket      `json:"bookDistribution"`
	WrongQuestions    []WrongQuestion   `json:"wrongQuestions"`
}

// LeaderboardEntry 排行榜中的一条记录
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	UserID       string    `json:"userId"`
	Book         string    `json:"book"`
	Difficulty   string    `json:"difficulty"`
	Score        int       `json:"score"`
	CorrectCount int       `json:"correctCount"`
	Grade        string    `json:"grade"`
	CreatedAt    time.Time `json:"createdAt"`
}
