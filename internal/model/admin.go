package model

import "time"

// Admin 后台管理员
type Admin struct {
	ObjectIDBase
	Username    string     `gorm:"uniqueIndex;type:varchar(50);not null" json:"username"`
	Password    string     `gorm:"type:varchar(100);not null" json:"-"`
	Note        string     `gorm:"type:varchar(1000)" json:"note"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func (Admin) TableName() string {
	return "admins"
}

// AdminBasic 管理员公开信息（仅用户名与笔记）
type AdminBasic struct {
	Username string `json:"username"`
	Note     string `json:"note"`
}
