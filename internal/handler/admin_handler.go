package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stabilitydao/host/internal/logic"
	"github.com/stabilitydao/host/internal/model"
)

// AdminHandler 管理接口
// 模拟时间推进与平台设置覆盖，仅限受信任的运维入口
type AdminHandler struct {
	daoLogic *logic.DAOLogic
}

// NewAdminHandler 创建管理接口处理器
func NewAdminHandler(daoLogic *logic.DAOLogic) *AdminHandler {
	return &AdminHandler{daoLogic: daoLogic}
}

// WarpDays 推进模拟区块时间
func (h *AdminHandler) WarpDays(c *gin.Context) {
	var req WarpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	timestamp, err := h.daoLogic.WarpDays(req.Days)
	if err != nil {
		EngineError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Time warped", gin.H{"block_timestamp": timestamp})
}

// GetSettings 当前平台设置
func (h *AdminHandler) GetSettings(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", h.daoLogic.Settings())
}

// OverrideSettings 覆盖平台设置
func (h *AdminHandler) OverrideSettings(c *gin.Context) {
	var settings model.HostSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.daoLogic.OverrideSettings(settings)
	SuccessResponse(c, http.StatusOK, "Settings overridden", settings)
}

// GetStatus 引擎状态
func (h *AdminHandler) GetStatus(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"block_timestamp": h.daoLogic.BlockTimestamp(),
		"daos":            len(h.daoLogic.GetDAOs()),
	})
}
