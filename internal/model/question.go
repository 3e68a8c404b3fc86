package model

const (
	QuestionTypeChoice = "choice"
	QuestionTypeCloze  = "cloze"
)

// Question 题库中的题目
type Question struct {
	ObjectIDBase
	Question   string      `gorm:"type:text;not null" json:"question"`
	Book       string      `gorm:"index;type:varchar(100);not null" json:"book"`
	Difficulty string      `gorm:"index;type:varchar(16);not null" json:"difficulty"`
	Type       string      `gorm:"type:varchar(16);default:choice" json:"type"`
	Options    StringArray `gorm:"type:json" json:"options"`
	Answer     string      `gorm:"type:varchar(255);not null" json:"answer"`
}

func (Question) TableName() string {
	return "questions"
}
