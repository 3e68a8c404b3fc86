package service

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/repository"
	"book_quiz_backend/internal/util"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, questionRepo *repository.QuestionRepository) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
	}
}

// SubmitQuizInput 一次测验的提交内容
type SubmitQuizInput struct {
	UserID       string   `json:"userId"`
	Book         string   `json:"book" binding:"required"`
	Difficulty   string   `json:"difficulty" binding:"required"`
	Questions    []string `json:"questions" binding:"required"`
	AnswerBitmap string   `json:"answerBitmap" binding:"required"`
}

// ValidateSubmission 提交内容校验，返回的错误信息可直接回给客户端
func ValidateSubmission(input *SubmitQuizInput) error {
	if input.Difficulty != model.DifficultyBeginner && input.Difficulty != model.DifficultyAdvanced {
		return fmt.Errorf("difficulty must be %q or %q", model.DifficultyBeginner, model.DifficultyAdvanced)
	}
	if len(input.Questions) != model.QuizQuestionCount {
		return fmt.Errorf("questions must contain exactly %d ids", model.QuizQuestionCount)
	}
	for _, id := range input.Questions {
		if !model.IsValidObjectID(id) {
			return fmt.Errorf("invalid question id: %s", id)
		}
	}
	if len(input.AnswerBitmap) != model.QuizQuestionCount {
		return fmt.Errorf("answerBitmap must be %d characters", model.QuizQuestionCount)
	}
	for i := 0; i < len(input.AnswerBitmap); i++ {
		if c := input.AnswerBitmap[i]; c != '0' && c != '1' {
			return errors.New("answerBitmap may only contain '0' and '1'")
		}
	}
	return nil
}

// CountCorrect bitmap 中 '1' 的个数
func CountCorrect(bitmap string) int {
	return strings.Count(bitmap, "1")
}

// Submit 落库一条测验记录并返回展示用等级。
// 分数与答对数由服务端从 bitmap 重新推导，不信任客户端。
func (s *QuizService) Submit(input *SubmitQuizInput) (*model.Quiz, string, error) {
	if err := ValidateSubmission(input); err != nil {
		return nil, "", err
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		// 匿名答题分配一次性 ID，同一次会话内前端会带回
		userID = uuid.NewString()
	}

	correctCount := CountCorrect(input.AnswerBitmap)
	quiz := &model.Quiz{
		UserID:       userID,
		Book:         strings.TrimSpace(input.Book),
		Difficulty:   input.Difficulty,
		Questions:    model.StringArray(input.Questions),
		AnswerBitmap: input.AnswerBitmap,
		CorrectCount: correctCount,
		TotalScore:   correctCount * (100 / model.QuizQuestionCount),
	}

	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, "", err
	}

	grade := util.GradeForAttempt(correctCount, model.QuizQuestionCount)
	return quiz, grade, nil
}

// QuestionView 出题给前端时隐藏答案
type QuestionView struct {
	ID         string            `json:"id"`
	Question   string            `json:"question"`
	Book       string            `json:"book"`
	Difficulty string            `json:"difficulty"`
	Type       string            `json:"type"`
	Options    model.StringArray `json:"options"`
}

// DrawQuestions 为新一局测验随机抽题
func (s *QuizService) DrawQuestions(books []string, difficulty string, count int) ([]QuestionView, error) {
	if count <= 0 {
		count = model.QuizQuestionCount
	}

	questions, err := s.QuestionRepo.FindRandom(books, difficulty, count)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{
			ID:         q.ID,
			Question:   q.Question,
			Book:       q.Book,
			Difficulty: q.Difficulty,
			Type:       q.Type,
			Options:    q.Options,
		}
	}
	return views, nil
}
