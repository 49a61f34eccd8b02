package database

import "errors"

// 服务层统一错误分类，调用方用 errors.Is 判断
var (
	// ErrConstraintViolation 约束冲突：缺少必需关联、唯一键重复等
	ErrConstraintViolation = errors.New("约束冲突")
	// ErrNotFound 引用的记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrPermissionDenied 非管理员执行管理操作
	ErrPermissionDenied = errors.New("权限不足")
)
