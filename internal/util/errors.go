package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrBookExists         = errors.New("此书籍已存在")
	ErrReportNotFound     = errors.New("report not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrNoteTooLong        = errors.New("note 长度不可超过 1000")
)
