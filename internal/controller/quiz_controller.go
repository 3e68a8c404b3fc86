package controller

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/service"
	"book_quiz_backend/internal/util"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// Submit godoc
// @Summary 提交测验
// @Description 服务端根据 bitmap 重新计分，返回记录与展示用等级
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   body body service.SubmitQuizInput true "测验提交内容"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "提交内容不合法"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/quizzes [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req service.SubmitQuizInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, grade, err := c.QuizService.Submit(&req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, "Quiz submitted", gin.H{
		"id":           quiz.ID,
		"userId":       quiz.UserID,
		"correctCount": quiz.CorrectCount,
		"totalScore":   quiz.TotalScore,
		"grade":        grade,
	})
}

// Draw godoc
// @Summary 随机抽题
// @Description 按书籍与难度抽取一局题目，不含答案
// @Tags 测验
// @Produce  json
// @Param   books      query string true "书籍名，多本用逗号分隔"
// @Param   difficulty query string true "难度 beginner/advanced"
// @Param   count      query int false "题目数量" default(20)
// @Success 200 {object} util.Response{data=[]service.QuestionView}
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/quizzes/draw [get]
func (c *QuizController) Draw(ctx *gin.Context) {
	rawBooks := ctx.Query("books")
	if rawBooks == "" {
		util.BadRequest(ctx, "books is required")
		return
	}
	difficulty := ctx.Query("difficulty")
	if difficulty != model.DifficultyBeginner && difficulty != model.DifficultyAdvanced {
		util.BadRequest(ctx, "difficulty must be beginner or advanced")
		return
	}

	var books []string
	for _, b := range strings.Split(rawBooks, ",") {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			books = append(books, trimmed)
		}
	}

	count, _ := strconv.Atoi(ctx.DefaultQuery("count", strconv.Itoa(model.QuizQuestionCount)))

	questions, err := c.QuizService.DrawQuestions(books, difficulty, count)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}
