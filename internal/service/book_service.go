package service

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/repository"
	"book_quiz_backend/internal/util"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"
)

type BookService struct {
	BookRepo     *repository.BookRepository
	QuestionRepo *repository.QuestionRepository
	Storage      *StorageService
}

func NewBookService(bookRepo *repository.BookRepository, questionRepo *repository.QuestionRepository, storage *StorageService) *BookService {
	return &BookService{
		BookRepo:     bookRepo,
		QuestionRepo: questionRepo,
		Storage:      storage,
	}
}

func (s *BookService) List() ([]model.Book, error) {
	return s.BookRepo.List()
}

func (s *BookService) Create(name string) (*model.Book, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.New("书籍名称为必填")
	}
	if len([]rune(trimmed)) > 100 {
		return nil, errors.New("书籍名称不能超过 100 字符")
	}

	if _, err := s.BookRepo.FindByName(trimmed); err == nil {
		return nil, util.ErrBookExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	book := &model.Book{Name: trimmed}
	if err := s.BookRepo.Create(book); err != nil {
		return nil, err
	}
	return book, nil
}

// Delete 删除书籍。还有题目挂在该书下时拒绝删除，先清题库再删书。
func (s *BookService) Delete(id string) error {
	book, err := s.BookRepo.FindByID(id)
	if err != nil {
		return util.ErrBookNotFound
	}

	count, err := s.QuestionRepo.CountByBook(book.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("book still has %d questions, delete them first", count)
	}

	return s.BookRepo.Delete(id)
}

// UploadCover 上传封面并回写 URL
func (s *BookService) UploadCover(ctx context.Context, id string, reader io.Reader, size int64, filename, contentType string) (string, error) {
	book, err := s.BookRepo.FindByID(id)
	if err != nil {
		return "", util.ErrBookNotFound
	}

	objectName := fmt.Sprintf("covers/%s_%d%s", book.ID, time.Now().Unix(), filepath.Ext(filename))
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	book.CoverURL = url
	if err := s.BookRepo.Update(book); err != nil {
		return "", err
	}
	return url, nil
}
