package service

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/repository"
	"book_quiz_backend/internal/util"
	"sort"
)

type LeaderboardService struct {
	QuizRepo *repository.QuizRepository
}

func NewLeaderboardService(quizRepo *repository.QuizRepository) *LeaderboardService {
	return &LeaderboardService{QuizRepo: quizRepo}
}

// difficultyRank 进阶优先于初阶，未知难度垫底
var difficultyRank = map[string]int{
	model.DifficultyAdvanced: 1,
	model.DifficultyBeginner: 2,
}

// GetLeaderboard 高分排行榜。
// book 为空不过滤，为 repository.BookFilterCombined 时只取多本书组合的记录。
func (s *LeaderboardService) GetLeaderboard(book string, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	quizzes, err := s.QuizRepo.FindForLeaderboard(book)
	if err != nil {
		return nil, err
	}

	return rankQuizzes(quizzes, limit), nil
}

// rankQuizzes 排序：等级 > 难度（进阶在前）> 提交时间（早者在前），
// 稳定排序，截断后按最终位置赋 1 起始的名次。
func rankQuizzes(quizzes []model.Quiz, limit int) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, len(quizzes))
	for i, q := range quizzes {
		entries[i] = model.LeaderboardEntry{
			UserID:       q.UserID,
			Book:         q.Book,
			Difficulty:   q.Difficulty,
			Score:        q.TotalScore,
			CorrectCount: q.CorrectCount,
			Grade:        util.GradeFromScore(float64(q.TotalScore)),
			CreatedAt:    q.CreatedAt,
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		gi, gj := util.GradeRank[entries[i].Grade], util.GradeRank[entries[j].Grade]
		if gi != gj {
			return gi < gj
		}

		di, ok := difficultyRank[entries[i].Difficulty]
		if !ok {
			di = 999
		}
		dj, ok := difficultyRank[entries[j].Difficulty]
		if !ok {
			dj = 999
		}
		if di != dj {
			return di < dj
		}

		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
