package controller

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/service"
	"book_quiz_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// Create godoc
// @Summary 新增题目
// @Tags 题库
// @Accept  json
// @Produce  json
// @Param   body body service.QuestionInput true "题目内容"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "书籍不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Security BearerAuth
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(&req)
	if err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Created(ctx, "Question created", question)
}

// Get godoc
// @Summary 题目详情
// @Tags 题库
// @Produce  json
// @Param   id path string true "题目 ID"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response "ID 格式不合法"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if !model.IsValidObjectID(id) {
		util.BadRequest(ctx, "Invalid question ID format")
		return
	}

	question, err := c.QuestionService.GetByID(id)
	if err != nil {
		util.NotFound(ctx, "Question not found")
		return
	}
	util.Success(ctx, question)
}

// List godoc
// @Summary 题目列表
// @Tags 题库
// @Produce  json
// @Param   book       query string false "按书籍过滤"
// @Param   difficulty query string false "按难度过滤"
// @Param   page       query int false "页码" default(1)
// @Param   limit      query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Security BearerAuth
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	questions, total, err := c.QuestionService.List(ctx.Query("book"), ctx.Query("difficulty"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.SuccessWithMeta(ctx, questions, gin.H{
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Update godoc
// @Summary 更新题目
// @Tags 题库
// @Accept  json
// @Produce  json
// @Param   id path string true "题目 ID"
// @Param   body body service.QuestionInput true "题目内容"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "题目不存在"
// @Security BearerAuth
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if !model.IsValidObjectID(id) {
		util.BadRequest(ctx, "Invalid question ID format")
		return
	}

	var req service.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, "Question not found")
		case errors.Is(err, util.ErrBookNotFound):
			util.NotFound(ctx, "Book not found")
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, question)
}

// Delete godoc
// @Summary 删除题目
// @Tags 题库
// @Produce  json
// @Param   id path string true "题目 ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "ID 格式不合法"
// @Failure 404 {object} util.Response "题目不存在"
// @Security BearerAuth
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if !model.IsValidObjectID(id) {
		util.BadRequest(ctx, "Invalid question ID format")
		return
	}

	if err := c.QuestionService.Delete(id); err != nil {
		util.NotFound(ctx, "Question not found")
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
