package controller

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/service"
	"book_quiz_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// CreateReportRequest 题目回报请求
type CreateReportRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// Create godoc
// @Summary 回报题目问题
// @Tags 回报
// @Accept  json
// @Produce  json
// @Param   body body CreateReportRequest true "回报内容"
// @Success 201 {object} util.Response{data=model.Report}
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/reports [post]
func (c *ReportController) Create(ctx *gin.Context) {
	var req CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.ReportService.Create(req.QuestionID, req.Reason)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Created(ctx, "Report submitted", report)
}

// List godoc
// @Summary 回报列表
// @Tags 回报
// @Produce  json
// @Param   status query string false "状态过滤 pending/resolved"
// @Param   page   query int false "页码" default(1)
// @Param   limit  query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=[]model.Report}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Security BearerAuth
// @Router /api/reports [get]
func (c *ReportController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	reports, total, err := c.ReportService.List(ctx.Query("status"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.SuccessWithMeta(ctx, reports, gin.H{
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// ResolveReportRequest 处理回报请求
type ResolveReportRequest struct {
	AdminNote string `json:"adminNote"`
}

// Resolve godoc
// @Summary 处理回报
// @Tags 回报
// @Accept  json
// @Produce  json
// @Param   id   path string true "回报 ID"
// @Param   body body ResolveReportRequest false "处理说明"
// @Success 200 {object} util.Response{data=model.Report}
// @Failure 404 {object} util.Response "回报不存在"
// @Security BearerAuth
// @Router /api/reports/{id}/resolve [put]
func (c *ReportController) Resolve(ctx *gin.Context) {
	id := ctx.Param("id")
	if !model.IsValidObjectID(id) {
		util.BadRequest(ctx, "Invalid report ID format")
		return
	}

	var req ResolveReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.ReportService.Resolve(id, req.AdminNote)
	if err != nil {
		if errors.Is(err, util.ErrReportNotFound) {
			util.NotFound(ctx, "Report not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, report)
}

// Delete godoc
// @Summary 删除回报
// @Tags 回报
// @Produce  json
// @Param   id path string true "回报 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "回报不存在"
// @Security BearerAuth
// @Router /api/reports/{id} [delete]
func (c *ReportController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if !model.IsValidObjectID(id) {
		util.BadRequest(ctx, "Invalid report ID format")
		return
	}

	if err := c.ReportService.Delete(id); err != nil {
		util.NotFound(ctx, "Report not found")
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
