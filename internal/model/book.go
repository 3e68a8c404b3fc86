package model

// Book 可出题的书籍
type Book struct {
	ObjectIDBase
	Name     string `gorm:"uniqueIndex;type:varchar(100);not null" json:"name"`
	CoverURL string `gorm:"type:varchar(255)" json:"coverUrl,omitempty"`
}

func (Book) TableName() string {
	return "books"
}
