package repository

import (
	"book_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	err := r.DB.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) List(book, difficulty string, page, limit int) ([]model.Question, int64, error) {
	db := r.DB.Model(&model.Question{})
	if book != "" {
		db = db.Where("book = ?", book)
	}
	if difficulty != "" {
		db = db.Where("difficulty = ?", difficulty)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&questions).Error
	return questions, total, err
}

// FindRandom 随机抽题，books 为空时不按书籍过滤
func (r *QuestionRepository) FindRandom(books []string, difficulty string, count int) ([]model.Question, error) {
	db := r.DB.Model(&model.Question{})
	if len(books) > 0 {
		db = db.Where("book IN ?", books)
	}
	if difficulty != "" {
		db = db.Where("difficulty = ?", difficulty)
	}

	var questions []model.Question
	err := db.Order("RAND()").Limit(count).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Delete(&model.Question{}, "id = ?", id).Error
}

func (r *QuestionRepository) CountByBook(book string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("book = ?", book).Count(&count).Error
	return count, err
}
