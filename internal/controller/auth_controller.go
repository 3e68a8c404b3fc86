package controller

import (
	"book_quiz_backend/internal/service"
	"book_quiz_backend/internal/util"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest 管理员登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 管理员登录
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, admin, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, "用户名或密码错误")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

// Verify godoc
// @Summary 校验 token
// @Description 前端刷新页面时确认登录状态
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response "token 无效或已过期"
// @Router /api/auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		util.Unauthorized(ctx)
		return
	}

	claims, err := c.AuthService.Verify(token)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"id":       claims.AdminID,
		"username": claims.Username,
	})
}

// Logout godoc
// @Summary 登出
// @Description token 无状态，登出即客户端丢弃 token，服务端仅确认
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	util.Success(ctx, gin.H{"loggedOut": true})
}

// Me godoc
// @Summary 当前管理员信息
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=model.Admin}
// @Failure 401 {object} util.Response "未登录"
// @Security BearerAuth
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	admin := c.AuthService.GetCurrentAdmin(ctx)
	if admin == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, admin)
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePassword godoc
// @Summary 修改密码
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body ChangePasswordRequest true "新旧密码"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "参数错误"
// @Failure 401 {object} util.Response "旧密码错误"
// @Security BearerAuth
// @Router /api/auth/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ChangePassword(claims.AdminID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, "旧密码错误")
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, gin.H{"changed": true})
}

// ListAdmins godoc
// @Summary 管理员列表
// @Description 仅返回基础信息，不含密码哈希
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.AdminBasic}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Security BearerAuth
// @Router /api/auth/admins [get]
func (c *AuthController) ListAdmins(ctx *gin.Context) {
	admins, err := c.AuthService.ListBasic()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, admins)
}

// UpdateNoteRequest 更新备注请求
type UpdateNoteRequest struct {
	Note string `json:"note"`
}

// UpdateNote godoc
// @Summary 更新管理员备注
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body UpdateNoteRequest true "备注内容"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "备注过长"
// @Security BearerAuth
// @Router /api/auth/note [put]
func (c *AuthController) UpdateNote(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.UpdateNote(claims.AdminID, req.Note); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"updated": true})
}
