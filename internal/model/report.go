package model

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)

// Report 题目纠错回报
type Report struct {
	ObjectIDBase
	QuestionID string `gorm:"index;type:char(24);not null" json:"questionId"`
	Reason     string `gorm:"type:varchar(1000);not null" json:"reason"`
	Status     string `gorm:"index;type:varchar(16);default:pending" json:"status"`
	AdminNote  string `gorm:"type:varchar(1000)" json:"adminNote,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
