package service

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/repository"
	"book_quiz_backend/internal/util"
	"errors"
	"strings"
)

type ReportService struct {
	ReportRepo   *repository.ReportRepository
	QuestionRepo *repository.QuestionRepository
}

func NewReportService(reportRepo *repository.ReportRepository, questionRepo *repository.QuestionRepository) *ReportService {
	return &ReportService{
		ReportRepo:   reportRepo,
		QuestionRepo: questionRepo,
	}
}

func (s *ReportService) Create(questionID, reason string) (*model.Report, error) {
	if !model.IsValidObjectID(questionID) {
		return nil, errors.New("invalid question id format")
	}
	if _, err := s.QuestionRepo.FindByID(questionID); err != nil {
		return nil, util.ErrQuestionNotFound
	}

	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return nil, errors.New("回报原因为必填")
	}

	report := &model.Report{
		QuestionID: questionID,
		Reason:     trimmed,
		Status:     model.ReportStatusPending,
	}
	if err := s.ReportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) List(status string, page, limit int) ([]model.Report, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.ReportRepo.List(status, page, limit)
}

// Resolve 标记处理完成，可附处理说明
func (s *ReportService) Resolve(id, adminNote string) (*model.Report, error) {
	report, err := s.ReportRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrReportNotFound
	}

	report.Status = model.ReportStatusResolved
	report.AdminNote = strings.TrimSpace(adminNote)
	if err := s.ReportRepo.Update(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) Delete(id string) error {
	if _, err := s.ReportRepo.FindByID(id); err != nil {
		return util.ErrReportNotFound
	}
	return s.ReportRepo.Delete(id)
}
