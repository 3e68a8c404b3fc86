package repository

import (
	"book_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type BookRepository struct {
	DB *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{DB: db}
}

func (r *BookRepository) Create(book *model.Book) error {
	return r.DB.Create(book).Error
}

func (r *BookRepository) FindByID(id string) (*model.Book, error) {
	var book model.Book
	err := r.DB.First(&book, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepository) FindByName(name string) (*model.Book, error) {
	var book model.Book
	err := r.DB.First(&book, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepository) List() ([]model.Book, error) {
	var books []model.Book
	err := r.DB.Order("created_at DESC").Find(&books).Error
	return books, err
}

func (r *BookRepository) Update(book *model.Book) error {
	return r.DB.Save(book).Error
}

func (r *BookRepository) Delete(id string) error {
	return r.DB.Delete(&model.Book{}, "id = ?", id).Error
}
