package service

import (
	"book_quiz_backend/internal/model"
	"fmt"
	"strings"
	"testing"
)

func qid(n int) string {
	return fmt.Sprintf("%024x", n)
}

func qids(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = qid(i + 1)
	}
	return ids
}

func makeQuiz(ids []string, bitmap string) model.Quiz {
	return model.Quiz{
		Questions:    model.StringArray(ids),
		AnswerBitmap: bitmap,
	}
}

func TestTruncateRate(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    float64
	}{
		{1, 3, 33.3}, // 33.333... 舍去而非四舍五入
		{2, 3, 66.6},
		{1, 1, 100},
		{0, 5, 0},
		{0, 0, 0},
		{19, 20, 95},
		{1, 6, 16.6},
	}

	for _, tt := range tests {
		if got := TruncateRate(tt.correct, tt.total); got != tt.want {
			t.Errorf("TruncateRate(%d, %d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestInvalidQuestionIDs(t *testing.T) {
	ids := []string{
		"000000000000000000000000",
		"not-an-id",
		qid(7),
		"too-short",
	}

	invalid := InvalidQuestionIDs(ids)
	if len(invalid) != 2 {
		t.Fatalf("len(invalid) = %d, want 2: %v", len(invalid), invalid)
	}
	if invalid[0] != "not-an-id" || invalid[1] != "too-short" {
		t.Errorf("invalid = %v, want [not-an-id too-short]", invalid)
	}

	if got := InvalidQuestionIDs([]string{qid(1), qid(2)}); got != nil {
		t.Errorf("InvalidQuestionIDs(valid ids) = %v, want nil", got)
	}
}

func TestTallyAnswers(t *testing.T) {
	ids := qids(model.QuizQuestionCount)

	// 两条正常记录：第 1 题一共答了两次，对一次
	bitmapA := "1" + strings.Repeat("0", 19)
	bitmapB := strings.Repeat("0", 20)
	quizzes := []model.Quiz{
		makeQuiz(ids, bitmapA),
		makeQuiz(ids, bitmapB),
	}

	tallies := tallyAnswers(quizzes, nil)
	if len(tallies) != model.QuizQuestionCount {
		t.Fatalf("len(tallies) = %d, want %d", len(tallies), model.QuizQuestionCount)
	}
	first := tallies[ids[0]]
	if first.total != 2 || first.correct != 1 {
		t.Errorf("question 1 tally = {total:%d correct:%d}, want {total:2 correct:1}", first.total, first.correct)
	}
}

func TestTallyAnswersSkipsMalformedBitmap(t *testing.T) {
	ids := qids(model.QuizQuestionCount)
	quizzes := []model.Quiz{
		makeQuiz(ids, strings.Repeat("1", 20)),
		makeQuiz(ids, strings.Repeat("1", 19)), // 位宽不对，整条跳过
		makeQuiz(ids[:19], strings.Repeat("1", 20)),
	}

	tallies := tallyAnswers(quizzes, nil)
	for _, id := range ids {
		tally := tallies[id]
		if tally == nil || tally.total != 1 {
			t.Fatalf("question %s counted from malformed records", id)
		}
	}
}

func TestTallyAnswersOnlyFilter(t *testing.T) {
	ids := qids(model.QuizQuestionCount)
	quizzes := []model.Quiz{makeQuiz(ids, strings.Repeat("1", 20))}

	only := map[string]bool{ids[3]: true}
	tallies := tallyAnswers(quizzes, only)
	if len(tallies) != 1 {
		t.Fatalf("len(tallies) = %d, want 1", len(tallies))
	}
	if tallies[ids[3]] == nil {
		t.Fatal("filtered question missing from tallies")
	}
}

func TestRankWrongQuestions(t *testing.T) {
	tallies := map[string]*answerTally{
		qid(1): {total: 10, correct: 9}, // 90%
		qid(2): {total: 10, correct: 2}, // 20%
		qid(3): {total: 20, correct: 4}, // 20%，作答更多，应排在 qid(2) 前
		qid(4): {total: 5, correct: 0},  // 0%
	}
	meta := map[string]model.Question{
		qid(1): {Question: "q1", Book: "西游记"},
		qid(2): {Question: "q2", Book: "西游记"},
		qid(3): {Question: "q3", Book: "红楼梦"},
		qid(4): {Question: "q4", Book: "红楼梦"},
	}

	got := rankWrongQuestions(tallies, meta, 10)
	wantOrder := []string{qid(4), qid(3), qid(2), qid(1)}
	if len(got) != len(wantOrder) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].QuestionID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].QuestionID, want)
		}
	}

	if got[1].CorrectRate != 20 || got[1].TotalAnswers != 20 {
		t.Errorf("qid(3) entry = {rate:%v total:%d}, want {rate:20 total:20}", got[1].CorrectRate, got[1].TotalAnswers)
	}
}

func TestRankWrongQuestionsLimitAndMissingMeta(t *testing.T) {
	tallies := map[string]*answerTally{
		qid(1): {total: 4, correct: 1},
		qid(2): {total: 4, correct: 2},
		qid(3): {total: 4, correct: 3},
	}
	// qid(3) 已从题库删除
	meta := map[string]model.Question{
		qid(1): {Question: "q1"},
		qid(2): {Question: "q2"},
	}

	got := rankWrongQuestions(tallies, meta, 1)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].QuestionID != qid(1) {
		t.Errorf("top entry = %s, want %s", got[0].QuestionID, qid(1))
	}
}

func TestRankWrongQuestionsTieBreakByID(t *testing.T) {
	tallies := map[string]*answerTally{
		qid(2): {total: 10, correct: 5},
		qid(1): {total: 10, correct: 5},
	}
	meta := map[string]model.Question{
		qid(1): {Question: "q1"},
		qid(2): {Question: "q2"},
	}

	got := rankWrongQuestions(tallies, meta, 10)
	if got[0].QuestionID != qid(1) || got[1].QuestionID != qid(2) {
		t.Errorf("tie break order = [%s %s], want [%s %s]", got[0].QuestionID, got[1].QuestionID, qid(1), qid(2))
	}
}

func TestBuildSingleQuestionStat(t *testing.T) {
	ids := qids(model.QuizQuestionCount)
	quizzes := []model.Quiz{
		makeQuiz(ids, "1"+strings.Repeat("0", 19)),
		makeQuiz(ids, strings.Repeat("0", 20)),
		makeQuiz(ids, strings.Repeat("1", 19)), // 位宽不对，整条跳过
	}

	stat := buildSingleQuestionStat(quizzes, ids[0])
	if stat.TotalAnswers != 2 || stat.CorrectAnswers != 1 || stat.IncorrectAnswers != 1 {
		t.Errorf("stat = %+v, want {total:2 correct:1 incorrect:1}", stat)
	}
	if stat.CorrectRate != 50 {
		t.Errorf("CorrectRate = %v, want 50", stat.CorrectRate)
	}

	missing := buildSingleQuestionStat(quizzes, qid(999))
	if missing.TotalAnswers != 0 || missing.CorrectRate != 0 {
		t.Errorf("missing = %+v, want zeroed entry", missing)
	}
}

func TestBuildSingleQuestionStatDuplicateInRecord(t *testing.T) {
	ids := qids(model.QuizQuestionCount)
	// 同一题在一条记录里出现两次，首个位置答对、第二个位置答错
	ids[1] = ids[0]
	quizzes := []model.Quiz{
		makeQuiz(ids, "10"+strings.Repeat("0", 18)),
	}

	// 单题口径：一条记录最多计一次，取首个位置
	stat := buildSingleQuestionStat(quizzes, ids[0])
	if stat.TotalAnswers != 1 {
		t.Fatalf("TotalAnswers = %d, want 1", stat.TotalAnswers)
	}
	if stat.CorrectAnswers != 1 || stat.CorrectRate != 100 {
		t.Errorf("stat = %+v, want first occurrence counted as correct", stat)
	}

	// 批量口径按出现次数累计，保持不变
	batch := buildQuestionStats(quizzes, []string{ids[0]})
	if batch[0].TotalAnswers != 2 || batch[0].CorrectAnswers != 1 {
		t.Errorf("batch stat = %+v, want {total:2 correct:1}", batch[0])
	}
}

func TestBuildQuestionStats(t *testing.T) {
	ids := qids(model.QuizQuestionCount)
	quizzes := []model.Quiz{
		makeQuiz(ids, "110"+strings.Repeat("0", 17)),
		makeQuiz(ids, "100"+strings.Repeat("0", 17)),
	}

	// 查询顺序与题目在测验中的顺序无关，输出必须按输入顺序
	query := []string{ids[2], ids[0], qid(999)}
	stats := buildQuestionStats(quizzes, query)
	if len(stats) != 3 {
		t.Fatalf("len(stats) = %d, want 3", len(stats))
	}

	if stats[0].QuestionID != ids[2] || stats[0].TotalAnswers != 2 || stats[0].CorrectAnswers != 0 {
		t.Errorf("stats[0] = %+v, want question %s with 2 answers 0 correct", stats[0], ids[2])
	}
	if stats[1].QuestionID != ids[0] || stats[1].CorrectAnswers != 2 || stats[1].CorrectRate != 100 {
		t.Errorf("stats[1] = %+v, want question %s fully correct", stats[1], ids[0])
	}
	// 没有任何作答记录的题目全部计 0
	if stats[2].TotalAnswers != 0 || stats[2].CorrectRate != 0 || stats[2].IncorrectAnswers != 0 {
		t.Errorf("stats[2] = %+v, want zeroed entry", stats[2])
	}
}

func TestBeginnerPercentage(t *testing.T) {
	tests := []struct {
		beginner int64
		total    int64
		want     int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67}, // 四舍五入，不是舍去
		{5, 10, 50},
		{10, 10, 100},
	}

	for _, tt := range tests {
		if got := beginnerPercentage(tt.beginner, tt.total); got != tt.want {
			t.Errorf("beginnerPercentage(%d, %d) = %d, want %d", tt.beginner, tt.total, got, tt.want)
		}
	}
}

func TestBuildSummaryEmptyStore(t *testing.T) {
	got := buildSummary(0, map[string]int64{}, 0, false, nil)

	if got.TotalUsers != 0 || got.TotalQuizzes != 0 {
		t.Errorf("totals = {users:%d quizzes:%d}, want zeroes", got.TotalUsers, got.TotalQuizzes)
	}
	d := got.DifficultyDistribution
	if d.Beginner != 0 || d.Advanced != 0 || d.BeginnerPercentage != 0 {
		t.Errorf("difficulty = %+v, want zeroes", d)
	}
	if got.AvgCorrectRate != 0 || got.AvgGrade != "F" {
		t.Errorf("avg = {rate:%v grade:%s}, want {rate:0 grade:F}", got.AvgCorrectRate, got.AvgGrade)
	}
	if got.MostPopularBook != nil {
		t.Errorf("MostPopularBook = %+v, want nil", got.MostPopularBook)
	}
}

func TestBuildSummary(t *testing.T) {
	counts := map[string]int64{
		model.DifficultyBeginner: 2,
		model.DifficultyAdvanced: 1,
	}
	buckets := []model.BookBucket{
		{Name: "西游记", Value: 2},
		{Name: "红楼梦", Value: 1},
	}

	got := buildSummary(3, counts, 15, true, buckets)

	if got.TotalUsers != 3 || got.TotalQuizzes != 3 {
		t.Errorf("totals = {users:%d quizzes:%d}, want {3 3}", got.TotalUsers, got.TotalQuizzes)
	}
	d := got.DifficultyDistribution
	if d.Beginner != 2 || d.Advanced != 1 || d.BeginnerPercentage != 67 {
		t.Errorf("difficulty = %+v, want {beginner:2 advanced:1 pct:67}", d)
	}
	// 平均答对 15 题 => 75%，落在 B+ 档
	if got.AvgCorrectRate != 75 || got.AvgGrade != "B+" {
		t.Errorf("avg = {rate:%v grade:%s}, want {rate:75 grade:B+}", got.AvgCorrectRate, got.AvgGrade)
	}
	if got.MostPopularBook == nil || got.MostPopularBook.Book != "西游记" || got.MostPopularBook.Count != 2 {
		t.Errorf("MostPopularBook = %+v, want 西游记 x2", got.MostPopularBook)
	}
}

func TestGradeBucketsZeroFill(t *testing.T) {
	wantOrder := []string{"S", "A+", "A", "B+", "B", "C+", "F"}

	got := gradeBuckets(map[string]int64{"S": 3, "B": 1})
	if len(got) != len(wantOrder) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(wantOrder))
	}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("bucket %d = %s, want %s", i, got[i].Name, name)
		}
	}
	if got[0].Value != 3 || got[4].Value != 1 {
		t.Errorf("counts = {S:%d B:%d}, want {S:3 B:1}", got[0].Value, got[4].Value)
	}
	for _, i := range []int{1, 2, 3, 5, 6} {
		if got[i].Value != 0 {
			t.Errorf("bucket %s = %d, want 0", got[i].Name, got[i].Value)
		}
	}

	// 没有任何记录时仍然是完整的等级序列
	empty := gradeBuckets(nil)
	if len(empty) != len(wantOrder) {
		t.Fatalf("len(empty) = %d, want %d", len(empty), len(wantOrder))
	}
	for _, b := range empty {
		if b.Value != 0 {
			t.Errorf("empty bucket %s = %d, want 0", b.Name, b.Value)
		}
	}
}

func TestTruncateAvgRate(t *testing.T) {
	tests := []struct {
		avg  float64
		want float64
	}{
		{10, 50},
		{20, 100},
		{6.666666, 33.3},
		{0, 0},
	}

	for _, tt := range tests {
		if got := truncateAvgRate(tt.avg); got != tt.want {
			t.Errorf("truncateAvgRate(%v) = %v, want %v", tt.avg, got, tt.want)
		}
	}
}
