package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stabilitydao/host/internal/chain"
	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/logic"
	"github.com/stabilitydao/host/internal/model"
)

// PlatformHandler 平台级只读接口
type PlatformHandler struct {
	daoLogic *logic.DAOLogic
}

// NewPlatformHandler 创建平台接口处理器
func NewPlatformHandler(daoLogic *logic.DAOLogic) *PlatformHandler {
	return &PlatformHandler{daoLogic: daoLogic}
}

// GetInfo 平台描述与能力清单
func (h *PlatformHandler) GetInfo(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"description": host.HostDescription,
		"features":    host.DAOFeatures,
	})
}

// GetChains 支持的链注册表
func (h *PlatformHandler) GetChains(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", chain.Chains)
}

// GetContracts 合约角色展示信息表
func (h *PlatformHandler) GetContracts(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", model.ContractIndices)
}

// GetUnit 按 ID 在全部 DAO 中查找收益单元
func (h *PlatformHandler) GetUnit(c *gin.Context) {
	daos := h.daoLogic.GetDAOs()
	unitID := c.Param("unit_id")

	unit := host.GetUnit(daos, unitID)
	if unit == nil {
		ErrorResponse(c, http.StatusNotFound, "unit not found: "+unitID)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"unit":      unit,
		"meta_data": host.GetUnitMetaData(daos, unitID),
	})
}
