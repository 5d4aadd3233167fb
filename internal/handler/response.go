package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/validation"
)

// Response 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// EngineError 按错误类别映射 HTTP 状态码后返回错误响应
func EngineError(c *gin.Context, err error) {
	ErrorResponse(c, statusOf(err), err.Error())
}

// statusOf 引擎错误分类
// 未找到 404；所有权 403；状态与守卫 409；校验 400
func statusOf(err error) int {
	switch {
	case errors.Is(err, host.ErrDAONotFound),
		errors.Is(err, host.ErrFundingNotFound),
		errors.Is(err, host.ErrProposalNotFound):
		return http.StatusNotFound

	case errors.Is(err, host.ErrNotOwner):
		return http.StatusForbidden

	case errors.Is(err, host.ErrAlreadyReceived),
		errors.Is(err, host.ErrForeverLive),
		errors.Is(err, host.ErrSolveTasksFirst),
		errors.Is(err, host.ErrWaitFundingStart),
		errors.Is(err, host.ErrWaitFundingEnd),
		errors.Is(err, host.ErrTooLateSetupFunding),
		errors.Is(err, host.ErrWaitVestingStart),
		errors.Is(err, host.ErrWaitVestingEnd),
		errors.Is(err, host.ErrNotFundingPhase),
		errors.Is(err, host.ErrRaiseMaxExceeded),
		errors.Is(err, host.ErrTimeBackwards):
		return http.StatusConflict

	case errors.Is(err, host.ErrNameLength),
		errors.Is(err, host.ErrSymbolLength),
		errors.Is(err, host.ErrSymbolNotUnique),
		errors.Is(err, host.ErrVePeriod),
		errors.Is(err, host.ErrPvPFee),
		errors.Is(err, host.ErrNeedFunding),
		errors.Is(err, validation.ErrInvalidActivityCombination),
		errors.Is(err, validation.ErrSingleBuilderActivity),
		errors.Is(err, validation.ErrTooLateToUpdateFunding),
		errors.Is(err, validation.ErrInvalidFundingArray),
		errors.Is(err, validation.ErrInvalidFundingPeriod),
		errors.Is(err, validation.ErrInvalidFundingRaise),
		errors.Is(err, validation.ErrTooLateToUpdateVesting),
		errors.Is(err, validation.ErrVestingNotAllowed),
		errors.Is(err, validation.ErrNameLength),
		errors.Is(err, validation.ErrZeroValue),
		errors.Is(err, validation.ErrIncorrectVestingStart),
		errors.Is(err, validation.ErrInvalidVestingPeriod),
		errors.Is(err, validation.ErrTotalAllocationTooHigh):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
