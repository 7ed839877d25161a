package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/service"
	pkgerrors "uniadmin/pkg/errors"
	"uniadmin/pkg/response"
)

// handleCommonError 处理各模块共用的错误：必填项、日期格式、数据库约束与语句失败。
// 数据库驱动原文放入 details 原样返回。
func handleCommonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequiredField), errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, response.CodeRequiredField, err.Error())
	case errors.Is(err, pkgerrors.ErrUniqueViolation):
		response.Conflict(c, response.CodeConflict, pkgerrors.ErrUniqueViolation.Error(), pkgerrors.Detail(err))
	case errors.Is(err, pkgerrors.ErrForeignKeyViolation):
		constraintError(c, pkgerrors.ErrForeignKeyViolation, err)
	case errors.Is(err, pkgerrors.ErrCheckViolation):
		constraintError(c, pkgerrors.ErrCheckViolation, err)
	case errors.Is(err, pkgerrors.ErrNotNullViolation):
		constraintError(c, pkgerrors.ErrNotNullViolation, err)
	case errors.Is(err, pkgerrors.ErrInvalidInput):
		constraintError(c, pkgerrors.ErrInvalidInput, err)
	case errors.Is(err, pkgerrors.ErrStatementFailed):
		response.ErrorWithDetails(c, http.StatusInternalServerError, response.CodeStatementFailed,
			pkgerrors.ErrStatementFailed.Error(), pkgerrors.Detail(err))
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, response.CodeInternal,
			"服务器内部错误", err.Error())
	}
}

func constraintError(c *gin.Context, kind, err error) {
	response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeConstraint, kind.Error(), pkgerrors.Detail(err))
}

// bindFailed 请求体或查询参数格式错误；请求体超过 BodyLimit 时返回 413
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "请求体过大")
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeInvalidParam, "参数校验失败", err.Error())
}
