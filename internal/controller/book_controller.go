package controller

import (
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/service"
	"book_quiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// 封面图最大 5MB
const maxCoverSize = 5 << 20

type BookController struct {
	BookService *service.BookService
}

func NewBookController(bookService *service.BookService) *BookController {
	return &BookController{BookService: bookService}
}

// List godoc
// @Summary 书籍列表
// @Tags 书籍
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Book}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/books [get]
func (c *BookController) List(ctx *gin.Context) {
	books, err := c.BookService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, books)
}

// CreateBookRequest 新增书籍请求
type CreateBookRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create godoc
// @Summary 新增书籍
// @Tags 书籍
// @Accept  json
// @Produce  json
// @Param   body body CreateBookRequest true "书籍名称"
// @Success 201 {object} util.Response{data=model.Book}
// @Failure 400 {object} util.Response "参数错误"
// @Failure 409 {object} util.Response "书籍已存在"
// @Security BearerAuth
// @Router /api/books [post]
func (c *BookController) Create(ctx *gin.Context) {
	var req CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	book, err := c.BookService.Create(req.Name)
	if err != nil {
		if errors.Is(err, util.ErrBookExists) {
			util.Conflict(ctx, "Book already exists")
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Created(ctx, "Book created", book)
}

// Delete godoc
// @Summary 删除书籍
// @Tags 书籍
// @Produce  json
// @Param   id path string true "书籍 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "书籍不存在"
// @Failure 409 {object} util.Response "书籍下仍有题目"
// @Security BearerAuth
// @Router /api/books/{id} [delete]
func (c *BookController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if !model.IsValidObjectID(id) {
		util.BadRequest(ctx, "Invalid book ID format")
		return
	}

	if err := c.BookService.Delete(id); err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.Conflict(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// UploadCover godoc
// @Summary 上传书籍封面
// @Tags 书籍
// @Accept  multipart/form-data
// @Produce  json
// @Param   id   path string true "书籍 ID"
// @Param   file formData file true "封面图片"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "文件不合法"
// @Failure 404 {object} util.Response "书籍不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Security BearerAuth
// @Router /api/books/{id}/cover [post]
func (c *BookController) UploadCover(ctx *gin.Context) {
	id := ctx.Param("id")
	if !model.IsValidObjectID(id) {
		util.BadRequest(ctx, "Invalid book ID format")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > maxCoverSize {
		util.BadRequest(ctx, "file too large, max 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.BookService.UploadCover(
		ctx.Request.Context(),
		id,
		file,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"coverUrl": url})
}
