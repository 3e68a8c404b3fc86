package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyBeginner = "beginner"
	DifficultyAdvanced = "advanced"
)

// QuizQuestionCount 每次测验固定 20 题，answerBitmap 的位宽与之一致
const QuizQuestionCount = 20

// Quiz 一次完成的测验记录。创建后不再修改。
// book 为单本书名；组合模式下为逗号拼接的多本书名。
type Quiz struct {
	ID           string      `gorm:"primaryKey;type:char(24)" json:"id"`
	UserID       string      `gorm:"index;type:varchar(64)" json:"userId"`
	Book         string      `gorm:"index;type:varchar(255)" json:"book"`
	Difficulty   string      `gorm:"index;type:varchar(16)" json:"difficulty"`
	Questions    StringArray `gorm:"type:json" json:"questions"`
	AnswerBitmap string      `gorm:"type:char(20)" json:"answerBitmap"`
	TotalScore   int         `json:"totalScore"`
	CorrectCount int         `json:"correctCount"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == "" {
		q.ID = NewObjectID()
	}
	return
}

// AnswerPair 题目与作答结果的显式配对，替代按下标读 bitmap 的隐式耦合
type AnswerPair struct {
	QuestionID string
	Correct    bool
}

// AnswerPairs 把 questions 与 answerBitmap 按位配对。
// bitmap 长度不是 20、或与题目数不一致的记录视为不可用，
// 返回 ok=false，调用方直接跳过（历史脏数据的容忍策略，不报错）。
func (q *Quiz) AnswerPairs() ([]AnswerPair, bool) {
	if len(q.AnswerBitmap) != QuizQuestionCount || len(q.Questions) != len(q.AnswerBitmap) {
		return nil, false
	}
	pairs := make([]AnswerPair, len(q.Questions))
	for i, qid := range q.Questions {
		pairs[i] = AnswerPair{
			QuestionID: qid,
			Correct:    q.AnswerBitmap[i] == '1',
		}
	}
	return pairs, true
}
