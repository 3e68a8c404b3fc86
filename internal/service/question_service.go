package service

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/repository"
	"book_quiz_backend/internal/util"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	BookRepo     *repository.BookRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, bookRepo *repository.BookRepository) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		BookRepo:     bookRepo,
	}
}

// QuestionInput 新增/更新题目的请求体
type QuestionInput struct {
	Question   string   `json:"question" binding:"required"`
	Book       string   `json:"book" binding:"required"`
	Difficulty string   `json:"difficulty" binding:"required"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer" binding:"required"`
}

func (s *QuestionService) validate(input *QuestionInput) error {
	if input.Difficulty != model.DifficultyBeginner && input.Difficulty != model.DifficultyAdvanced {
		return fmt.Errorf("difficulty must be %q or %q", model.DifficultyBeginner, model.DifficultyAdvanced)
	}

	if input.Type == "" {
		input.Type = model.QuestionTypeChoice
	}
	if input.Type != model.QuestionTypeChoice && input.Type != model.QuestionTypeCloze {
		return errors.New("unknown question type")
	}
	if input.Type == model.QuestionTypeChoice && len(input.Options) < 2 {
		return errors.New("choice question needs at least 2 options")
	}

	if _, err := s.BookRepo.FindByName(strings.TrimSpace(input.Book)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrBookNotFound
		}
		return err
	}
	return nil
}

func (s *QuestionService) Create(input *QuestionInput) (*model.Question, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	question := &model.Question{
		Question:   strings.TrimSpace(input.Question),
		Book:       strings.TrimSpace(input.Book),
		Difficulty: input.Difficulty,
		Type:       input.Type,
		Options:    model.StringArray(input.Options),
		Answer:     input.Answer,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) GetByID(id string) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}
	return question, nil
}

func (s *QuestionService) List(book, difficulty string, page, limit int) ([]model.Question, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.QuestionRepo.List(book, difficulty, page, limit)
}

func (s *QuestionService) Update(id string, input *QuestionInput) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}

	if err := s.validate(input); err != nil {
		return nil, err
	}

	question.Question = strings.TrimSpace(input.Question)
	question.Book = strings.TrimSpace(input.Book)
	question.Difficulty = input.Difficulty
	question.Type = input.Type
	question.Options = model.StringArray(input.Options)
	question.Answer = input.Answer

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(id string) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		return util.ErrQuestionNotFound
	}
	return s.QuestionRepo.Delete(id)
}
