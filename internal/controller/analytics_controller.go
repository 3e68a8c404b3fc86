package controller

import (
	"book_quiz_backend/internal/config"
	"book_quiz_backend/internal/service"
	"book_quiz_backend/internal/util"
	"book_quiz_backend/pkg/monitoring"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService   *service.AnalyticsService
	LeaderboardService *service.LeaderboardService
	Cfg                *config.AnalyticsConfig
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, leaderboardService *service.LeaderboardService, cfg *config.AnalyticsConfig) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsService:   analyticsService,
		LeaderboardService: leaderboardService,
		Cfg:                cfg,
	}
}

// Summary godoc
// @Summary 统计摘要
// @Description 参与人数、测验次数、难度占比、平均正确率与最热门书籍
// @Tags 统计
// @Produce  json
// @Success 200 {object} util.Response{data=model.AnalyticsSummary}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/analytics/summary [get]
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	summary, err := c.AnalyticsService.ComputeSummary()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// GradeDistribution godoc
// @Summary 等级分布
// @Description 七个等级各自的测验次数，始终返回完整的等级序列
// @Tags 统计
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.GradeBucket}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/analytics/grade-distribution [get]
func (c *AnalyticsController) GradeDistribution(ctx *gin.Context) {
	buckets, err := c.AnalyticsService.ComputeGradeDistribution()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, buckets)
}

// BookDistribution godoc
// @Summary 书籍分布
// @Description 各书籍被测验的次数，按次数降序
// @Tags 统计
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.BookBucket}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/analytics/book-distribution [get]
func (c *AnalyticsController) BookDistribution(ctx *gin.Context) {
	buckets, err := c.AnalyticsService.ComputeBookDistribution()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, buckets)
}

// WrongQuestions godoc
// @Summary 错题排行榜
// @Description 正确率最低的题目，正确率相同按作答次数降序
// @Tags 统计
// @Produce  json
// @Param   limit query int false "返回数量" default(10)
// @Success 200 {object} util.Response{data=[]model.WrongQuestion}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/analytics/wrong-questions [get]
func (c *AnalyticsController) WrongQuestions(ctx *gin.Context) {
	limit := c.wrongQuestionLimit(ctx)

	results, err := c.AnalyticsService.ComputeWrongQuestions(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// QuestionStats godoc
// @Summary 单题作答统计
// @Tags 统计
// @Produce  json
// @Param   questionId path string true "题目 ID"
// @Success 200 {object} util.Response{data=model.QuestionStat}
// @Failure 400 {object} util.Response "ID 格式不合法"
// @Failure 404 {object} util.Response "题目不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/analytics/questions/{questionId}/stats [get]
func (c *AnalyticsController) QuestionStats(ctx *gin.Context) {
	questionID := ctx.Param("questionId")
	if invalid := service.InvalidQuestionIDs([]string{questionID}); len(invalid) > 0 {
		util.BadRequest(ctx, "Invalid question ID format")
		return
	}

	stat, err := c.AnalyticsService.GetQuestionStats(questionID)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, stat)
}

// BatchQuestionStatsRequest 批量统计请求
type BatchQuestionStatsRequest struct {
	QuestionIDs []string `json:"questionIds" binding:"required"`
}

// BatchQuestionStats godoc
// @Summary 批量题目作答统计
// @Description 任何一个 ID 非法则整批拒绝，响应顶层带 invalidIds
// @Tags 统计
// @Accept  json
// @Produce  json
// @Param   body body BatchQuestionStatsRequest true "题目 ID 列表"
// @Success 200 {object} util.Response{data=[]model.QuestionStat}
// @Failure 400 {object} util.Response "存在非法 ID"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/analytics/questions/stats [post]
func (c *AnalyticsController) BatchQuestionStats(ctx *gin.Context) {
	var req BatchQuestionStatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(req.QuestionIDs) == 0 {
		util.BadRequest(ctx, "questionIds must not be empty")
		return
	}

	if invalid := service.InvalidQuestionIDs(req.QuestionIDs); len(invalid) > 0 {
		util.ErrorWithInvalidIDs(ctx, 400, "Invalid question ID format", invalid)
		return
	}

	stats, err := c.AnalyticsService.GetBatchQuestionStats(req.QuestionIDs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Overview godoc
// @Summary 统计综合概览
// @Description 摘要、等级分布、书籍分布与错题排行一次返回，短 TTL 缓存
// @Tags 统计
// @Produce  json
// @Param   limit query int false "错题排行数量" default(10)
// @Success 200 {object} util.Response{data=model.AnalyticsOverview}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/analytics/overview [get]
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	limit := c.wrongQuestionLimit(ctx)

	overview, hit, err := c.AnalyticsService.GetOverview(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	cacheState := "miss"
	if hit {
		cacheState = "hit"
	}
	monitoring.OverviewCacheCounter.WithLabelValues(cacheState).Inc()

	util.SuccessWithMeta(ctx, overview, gin.H{
		"cache": cacheState,
		"ttlMs": c.Cfg.OverviewCacheTTL().Milliseconds(),
	})
}

// Leaderboard godoc
// @Summary 高分排行榜
// @Description 等级优先，同级进阶在前，再按提交时间先后
// @Tags 统计
// @Produce  json
// @Param   book  query string false "书籍过滤，combined 表示多书组合测验"
// @Param   limit query int false "返回数量" default(10)
// @Success 200 {object} util.Response{data=[]model.LeaderboardEntry}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/leaderboard [get]
func (c *AnalyticsController) Leaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.LeaderboardService.GetLeaderboard(ctx.Query("book"), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

func (c *AnalyticsController) wrongQuestionLimit(ctx *gin.Context) int {
	fallback := c.Cfg.WrongQuestionLimit
	if fallback <= 0 {
		fallback = 10
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || limit <= 0 {
		limit = fallback
	}
	return limit
}
