package service

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/repository"
	"book_quiz_backend/internal/util"
	"book_quiz_backend/pkg/cache"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

type AnalyticsService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	Cache        cache.Store
}

func NewAnalyticsService(quizRepo *repository.QuizRepository, questionRepo *repository.QuestionRepository, cacheStore cache.Store) *AnalyticsService {
	return &AnalyticsService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		Cache:        cacheStore,
	}
}

// TruncateRate 正确率百分比，无条件舍去到小数点后一位。
// 1/3 -> 33.3，不是 33.33 也不是 33。
func TruncateRate(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Floor(float64(correct)/float64(total)*1000) / 10
}

// InvalidQuestionIDs 返回格式不合法的题目 ID，合法时为空。
// 批量接口先整体校验再计算，任何一个非法 ID 都会让整批被拒绝。
func InvalidQuestionIDs(ids []string) []string {
	var invalid []string
	for _, id := range ids {
		if !model.IsValidObjectID(id) {
			invalid = append(invalid, id)
		}
	}
	return invalid
}

// ComputeSummary 统计摘要
func (s *AnalyticsService) ComputeSummary() (*model.AnalyticsSummary, error) {
	totalUsers, err := s.QuizRepo.CountDistinctUsers()
	if err != nil {
		return nil, err
	}

	difficultyCounts, err := s.QuizRepo.CountByDifficulty()
	if err != nil {
		return nil, err
	}

	avgCorrect, hasRecords, err := s.QuizRepo.AverageCorrectCount()
	if err != nil {
		return nil, err
	}

	buckets, err := s.QuizRepo.CountByBook()
	if err != nil {
		return nil, err
	}

	return buildSummary(totalUsers, difficultyCounts, avgCorrect, hasRecords, buckets), nil
}

// buildSummary 从各聚合查询结果组装摘要。没有任何记录时
// 各项为 0、avgGrade 为 F、mostPopularBook 为 null。
func buildSummary(totalUsers int64, difficultyCounts map[string]int64, avgCorrect float64, hasRecords bool, buckets []model.BookBucket) *model.AnalyticsSummary {
	beginnerCount := difficultyCounts[model.DifficultyBeginner]
	advancedCount := difficultyCounts[model.DifficultyAdvanced]
	totalQuizzes := beginnerCount + advancedCount

	avgCorrectRate := 0.0
	if hasRecords {
		avgCorrectRate = truncateAvgRate(avgCorrect)
	}

	var mostPopular *model.MostPopularBook
	if len(buckets) > 0 {
		mostPopular = &model.MostPopularBook{
			Book:  buckets[0].Name,
			Count: buckets[0].Value,
		}
	}

	return &model.AnalyticsSummary{
		TotalUsers:   totalUsers,
		TotalQuizzes: totalQuizzes,
		DifficultyDistribution: model.DifficultyDistribution{
			Beginner:           beginnerCount,
			Advanced:           advancedCount,
			BeginnerPercentage: beginnerPercentage(beginnerCount, totalQuizzes),
		},
		AvgCorrectRate:  avgCorrectRate,
		AvgGrade:        util.GradeFromScore(avgCorrectRate),
		MostPopularBook: mostPopular,
	}
}

// beginnerPercentage 初阶占比，四舍五入取整；没有记录时为 0
func beginnerPercentage(beginner, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(beginner) / float64(total) * 100))
}

// truncateAvgRate 平均答对题数换算为百分比后舍去到一位小数
func truncateAvgRate(avgCorrectCount float64) float64 {
	return math.Floor(avgCorrectCount/float64(model.QuizQuestionCount)*1000) / 10
}

// ComputeGradeDistribution 等级分布，固定输出 7 个等级，缺失的计 0
func (s *AnalyticsService) ComputeGradeDistribution() ([]model.GradeBucket, error) {
	counts, err := s.QuizRepo.CountByGrade()
	if err != nil {
		return nil, err
	}
	return gradeBuckets(counts), nil
}

// gradeBuckets 按固定等级顺序零填充
func gradeBuckets(counts map[string]int64) []model.GradeBucket {
	buckets := make([]model.GradeBucket, 0, len(util.GradeOrder))
	for _, grade := range util.GradeOrder {
		buckets = append(buckets, model.GradeBucket{
			Name:  grade,
			Value: counts[grade],
		})
	}
	return buckets
}

// ComputeBookDistribution 书籍参与比例，次数降序
func (s *AnalyticsService) ComputeBookDistribution() ([]model.BookBucket, error) {
	buckets, err := s.QuizRepo.CountByBook()
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		buckets = []model.BookBucket{}
	}
	return buckets, nil
}

// ComputeWrongQuestions 错题排行榜：正确率最低的题目排在最前
func (s *AnalyticsService) ComputeWrongQuestions(limit int) ([]model.WrongQuestion, error) {
	if limit <= 0 {
		limit = 10
	}

	quizzes, err := s.QuizRepo.FindAllForScoring()
	if err != nil {
		return nil, err
	}

	tallies := tallyAnswers(quizzes, nil)
	ids := make([]string, 0, len(tallies))
	for id := range tallies {
		ids = append(ids, id)
	}

	questions, err := s.QuestionRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	meta := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		meta[q.ID] = q
	}

	return rankWrongQuestions(tallies, meta, limit), nil
}

type answerTally struct {
	total   int
	correct int
}

// tallyAnswers 汇总每题的作答次数与答对次数。
// only 非空时仅统计其中的题目；bitmap 不可用的记录整条跳过。
func tallyAnswers(quizzes []model.Quiz, only map[string]bool) map[string]*answerTally {
	tallies := make(map[string]*answerTally)
	for i := range quizzes {
		pairs, ok := quizzes[i].AnswerPairs()
		if !ok {
			continue
		}
		for _, pair := range pairs {
			if only != nil && !only[pair.QuestionID] {
				continue
			}
			t := tallies[pair.QuestionID]
			if t == nil {
				t = &answerTally{}
				tallies[pair.QuestionID] = t
			}
			t.total++
			if pair.Correct {
				t.correct++
			}
		}
	}
	return tallies
}

// rankWrongQuestions 正确率升序，其次作答次数降序：
// 同样难的题里，被答过更多次的排得更靠前。
// 题库中已不存在的题目直接丢弃。
func rankWrongQuestions(tallies map[string]*answerTally, meta map[string]model.Question, limit int) []model.WrongQuestion {
	results := make([]model.WrongQuestion, 0, len(tallies))
	for id, t := range tallies {
		q, ok := meta[id]
		if !ok {
			continue
		}
		results = append(results, model.WrongQuestion{
			QuestionID:     id,
			Question:       q.Question,
			Book:           q.Book,
			TotalAnswers:   t.total,
			CorrectAnswers: t.correct,
			CorrectRate:    TruncateRate(t.correct, t.total),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].CorrectRate != results[j].CorrectRate {
			return results[i].CorrectRate < results[j].CorrectRate
		}
		if results[i].TotalAnswers != results[j].TotalAnswers {
			return results[i].TotalAnswers > results[j].TotalAnswers
		}
		return results[i].QuestionID < results[j].QuestionID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// GetQuestionStats 单题统计；题目不存在时返回 util.ErrQuestionNotFound
func (s *AnalyticsService) GetQuestionStats(questionID string) (*model.QuestionStat, error) {
	if _, err := s.QuestionRepo.FindByID(questionID); err != nil {
		return nil, util.ErrQuestionNotFound
	}

	quizzes, err := s.QuizRepo.FindContainingQuestions([]string{questionID})
	if err != nil {
		return nil, err
	}

	stat := buildSingleQuestionStat(quizzes, questionID)
	return &stat, nil
}

// buildSingleQuestionStat 单题统计，一条记录最多计一次：
// 题目在记录里重复出现时只取首个位置的作答结果。
// 批量统计按出现次数累计，两者的历史行为不同，保持原样。
func buildSingleQuestionStat(quizzes []model.Quiz, questionID string) model.QuestionStat {
	total, correct := 0, 0
	for i := range quizzes {
		pairs, ok := quizzes[i].AnswerPairs()
		if !ok {
			continue
		}
		for _, pair := range pairs {
			if pair.QuestionID != questionID {
				continue
			}
			total++
			if pair.Correct {
				correct++
			}
			break
		}
	}
	return model.QuestionStat{
		QuestionID:       questionID,
		TotalAnswers:     total,
		CorrectAnswers:   correct,
		IncorrectAnswers: total - correct,
		CorrectRate:      TruncateRate(correct, total),
	}
}

// GetBatchQuestionStats 批量统计，按输入顺序返回；
// 调用方必须先用 InvalidQuestionIDs 校验全部 ID
func (s *AnalyticsService) GetBatchQuestionStats(questionIDs []string) ([]model.QuestionStat, error) {
	quizzes, err := s.QuizRepo.FindContainingQuestions(questionIDs)
	if err != nil {
		return nil, err
	}
	return buildQuestionStats(quizzes, questionIDs), nil
}

// buildQuestionStats 按输入顺序构建统计结果，没有作答记录的题目全部计 0
func buildQuestionStats(quizzes []model.Quiz, questionIDs []string) []model.QuestionStat {
	only := make(map[string]bool, len(questionIDs))
	for _, id := range questionIDs {
		only[id] = true
	}

	tallies := tallyAnswers(quizzes, only)

	stats := make([]model.QuestionStat, 0, len(questionIDs))
	for _, id := range questionIDs {
		t := tallies[id]
		if t == nil {
			t = &answerTally{}
		}
		stats = append(stats, model.QuestionStat{
			QuestionID:       id,
			TotalAnswers:     t.total,
			CorrectAnswers:   t.correct,
			IncorrectAnswers: t.total - t.correct,
			CorrectRate:      TruncateRate(t.correct, t.total),
		})
	}
	return stats
}

// GetOverview 综合概览。四个聚合整体进出缓存，
// 命中时完全跳过重新计算，返回值与当次缓存写入的内容一致。
func (s *AnalyticsService) GetOverview(ctx context.Context, limit int) (*model.AnalyticsOverview, bool, error) {
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("analytics:overview:%d", limit)
	if raw, ok := s.Cache.Get(ctx, cacheKey); ok {
		var cached model.AnalyticsOverview
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, true, nil
		}
		// 载荷损坏视同过期，清掉后重新聚合
		s.Cache.Delete(ctx, cacheKey)
	}

	overview := &model.AnalyticsOverview{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.ComputeSummary()
		overview.Summary = summary
		return err
	})
	g.Go(func() error {
		grades, err := s.ComputeGradeDistribution()
		overview.GradeDistribution = grades
		return err
	})
	g.Go(func() error {
		books, err := s.ComputeBookDistribution()
		overview.BookDistribution = books
		return err
	})
	g.Go(func() error {
		wrong, err := s.ComputeWrongQuestions(limit)
		overview.WrongQuestions = wrong
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	if raw, err := json.Marshal(overview); err == nil {
		s.Cache.Set(ctx, cacheKey, raw)
	}

	return overview, false, nil
}
