package app

import (
	"book_quiz_backend/docs"
	"book_quiz_backend/internal/config"
	"book_quiz_backend/internal/middleware"
	"book_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/auth/verify", c.auth.Verify)

		// 答题端
		public.GET("/books", c.book.List)
		public.GET("/quizzes/draw", c.quiz.Draw)
		public.POST("/quizzes", c.quiz.Submit)
		public.POST("/reports", c.report.Create)

		// 题目详情（答题端复查用，公开）
		public.GET("/questions/:id", c.question.Get)

		// 统计端（公开只读）
		analytics := public.Group("/analytics")
		{
			analytics.GET("/summary", c.analytics.Summary)
			analytics.GET("/grade-distribution", c.analytics.GradeDistribution)
			analytics.GET("/book-distribution", c.analytics.BookDistribution)
			analytics.GET("/wrong-questions", c.analytics.WrongQuestions)
			analytics.GET("/overview", c.analytics.Overview)
			analytics.POST("/questions/stats", c.analytics.BatchQuestionStats)
			analytics.GET("/questions/:questionId/stats", c.analytics.QuestionStats)
			analytics.GET("/leaderboard", c.analytics.Leaderboard)
		}

		public.GET("/leaderboard", c.analytics.Leaderboard)
	}

	// 2. 管理端路由
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		admin.POST("/auth/logout", c.auth.Logout)
		admin.GET("/auth/me", c.auth.Me)
		admin.PUT("/auth/password", c.auth.ChangePassword)
		admin.GET("/auth/admins", c.auth.ListAdmins)
		admin.PUT("/auth/note", c.auth.UpdateNote)

		admin.POST("/questions", c.question.Create)
		admin.GET("/questions", c.question.List)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)

		admin.POST("/books", c.book.Create)
		admin.DELETE("/books/:id", c.book.Delete)
		admin.POST("/books/:id/cover", c.book.UploadCover)

		admin.GET("/reports", c.report.List)
		admin.PUT("/reports/:id/resolve", c.report.Resolve)
		admin.DELETE("/reports/:id", c.report.Delete)
	}
}
