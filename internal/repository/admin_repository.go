package repository

import (
	"book_quiz_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) Create(admin *model.Admin) error {
	return r.DB.Create(admin).Error
}

func (r *AdminRepository) FindByID(id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.DB.First(&admin, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.DB.First(&admin, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListBasic 仅返回用户名与笔记
func (r *AdminRepository) ListBasic() ([]model.AdminBasic, error) {
	var admins []model.AdminBasic
	err := r.DB.Model(&model.Admin{}).
		Select("username", "note").
		Scan(&admins).Error
	return admins, err
}

func (r *AdminRepository) UpdatePassword(id, hashed string) error {
	return r.DB.Model(&model.Admin{}).Where("id = ?", id).Update("password", hashed).Error
}

func (r *AdminRepository) UpdateNote(id, note string) error {
	return r.DB.Model(&model.Admin{}).Where("id = ?", id).Update("note", note).Error
}

func (r *AdminRepository) TouchLastLogin(id string) error {
	now := time.Now()
	return r.DB.Model(&model.Admin{}).Where("id = ?", id).Update("last_login_at", &now).Error
}
