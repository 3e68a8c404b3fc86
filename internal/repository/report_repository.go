package repository

import (
	"book_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(report *model.Report) error {
	return r.DB.Create(report).Error
}

func (r *ReportRepository) FindByID(id string) (*model.Report, error) {
	var report model.Report
	err := r.DB.First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) List(status string, page, limit int) ([]model.Report, int64, error) {
	db := r.DB.Model(&model.Report{})
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.Report
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reports).Error
	return reports, total, err
}

func (r *ReportRepository) Update(report *model.Report) error {
	return r.DB.Save(report).Error
}

func (r *ReportRepository) Delete(id string) error {
	return r.DB.Delete(&model.Report{}, "id = ?", id).Error
}
