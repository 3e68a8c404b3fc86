package repository

import (
	"book_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

// CountDistinctUsers 去重后的答题用户数
func (r *QuizRepository) CountDistinctUsers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Quiz{}).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

// CountByDifficulty 按难度分组的测验次数
func (r *QuizRepository) CountByDifficulty() (map[string]int64, error) {
	var rows []struct {
		Difficulty string
		Count      int64
	}
	err := r.DB.Model(&model.Quiz{}).
		Select("difficulty, COUNT(*) AS count").
		Group("difficulty").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Difficulty] = row.Count
	}
	return counts, nil
}

// AverageCorrectCount 答对题数均值；没有任何记录时 ok 为 false
func (r *QuizRepository) AverageCorrectCount() (float64, bool, error) {
	var avg *float64
	err := r.DB.Model(&model.Quiz{}).
		Select("AVG(correct_count)").
		Scan(&avg).Error
	if err != nil {
		return 0, false, err
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

// CountByBook 按 book 原始值分组，次数降序。
// 组合模式的逗号拼接值是独立的一组，不拆成单本书。
func (r *QuizRepository) CountByBook() ([]model.BookBucket, error) {
	var buckets []model.BookBucket
	err := r.DB.Model(&model.Quiz{}).
		Select("book AS name, COUNT(*) AS value").
		Group("book").
		Order("value DESC").
		Scan(&buckets).Error
	return buckets, err
}

// CountByGrade 按 totalScore 分级计数。
// 100 分单独一个分支放在最前，否则会落进 >= 90 的 A+。
func (r *QuizRepository) CountByGrade() (map[string]int64, error) {
	var rows []struct {
		Name  string
		Value int64
	}
	err := r.DB.Model(&model.Quiz{}).
		Select(`CASE
			WHEN total_score = 100 THEN 'S'
			WHEN total_score >= 90 THEN 'A+'
			WHEN total_score >= 80 THEN 'A'
			WHEN total_score >= 70 THEN 'B+'
			WHEN total_score >= 60 THEN 'B'
			WHEN total_score >= 50 THEN 'C+'
			ELSE 'F'
		END AS name, COUNT(*) AS value`).
		Group("name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Name] = row.Value
	}
	return counts, nil
}

// FindAllForScoring 错题聚合用：只取题目序列与 bitmap
func (r *QuizRepository) FindAllForScoring() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Model(&model.Quiz{}).
		Select("id", "questions", "answer_bitmap").
		Find(&quizzes).Error
	return quizzes, err
}

// FindContainingQuestions 包含任一指定题目的测验记录
func (r *QuizRepository) FindContainingQuestions(questionIDs []string) ([]model.Quiz, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}

	db := r.DB.Model(&model.Quiz{}).Select("id", "questions", "answer_bitmap")
	cond := r.DB.Where("JSON_CONTAINS(questions, JSON_QUOTE(?))", questionIDs[0])
	for _, id := range questionIDs[1:] {
		cond = cond.Or("JSON_CONTAINS(questions, JSON_QUOTE(?))", id)
	}

	var quizzes []model.Quiz
	err := db.Where(cond).Find(&quizzes).Error
	return quizzes, err
}

// BookFilterCombined 只看多本书组合测验的排行榜
const BookFilterCombined = "combined"

// FindForLeaderboard 排行榜候选记录。
// book 为空表示不过滤；BookFilterCombined 只取多本书组合的记录（book 含逗号）。
func (r *QuizRepository) FindForLeaderboard(book string) ([]model.Quiz, error) {
	db := r.DB.Model(&model.Quiz{}).
		Select("user_id", "book", "difficulty", "total_score", "correct_count", "created_at")

	switch book {
	case "":
	case BookFilterCombined:
		db = db.Where("book LIKE ?", "%,%")
	default:
		db = db.Where("book = ?", book)
	}

	var quizzes []model.Quiz
	err := db.Find(&quizzes).Error
	return quizzes, err
}
