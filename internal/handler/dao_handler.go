package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/logic"
)

// DAOHandler DAO 相关接口
type DAOHandler struct {
	daoLogic *logic.DAOLogic
}

// NewDAOHandler 创建 DAO 接口处理器
func NewDAOHandler(daoLogic *logic.DAOLogic) *DAOHandler {
	return &DAOHandler{daoLogic: daoLogic}
}

// CreateDAO 创建 DAO
func (h *DAOHandler) CreateDAO(c *gin.Context) {
	var req CreateDAORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dao, err := h.daoLogic.CreateDAO(common.HexToAddress(req.Caller), host.CreateDAOInput{
		Name:             req.Name,
		Symbol:           req.Symbol,
		Activity:         req.Activity,
		Params:           req.Params,
		Funding:          req.Funding,
		MetaDataLocation: req.MetaDataLocation,
	})
	if err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "DAO created", dao)
}

// GetDAOs 获取 DAO 列表
func (h *DAOHandler) GetDAOs(c *gin.Context) {
	daos := h.daoLogic.GetDAOs()
	SuccessResponse(c, http.StatusOK, "", gin.H{"daos": daos, "total": len(daos)})
}

// GetDAO 获取单个 DAO 详情
func (h *DAOHandler) GetDAO(c *gin.Context) {
	dao, err := h.daoLogic.GetDAO(c.Param("symbol"))
	if err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", dao)
}

// GetDaoOwner 解析 DAO 当前所有者
func (h *DAOHandler) GetDaoOwner(c *gin.Context) {
	owner, err := h.daoLogic.GetDaoOwner(c.Param("symbol"))
	if err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"owner": owner})
}

// ChangePhase 推进生命周期阶段，任何人可调用
func (h *DAOHandler) ChangePhase(c *gin.Context) {
	symbol := c.Param("symbol")
	if err := h.daoLogic.ChangePhase(symbol); err != nil {
		EngineError(c, err)
		return
	}

	dao, err := h.daoLogic.GetDAO(symbol)
	if err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Phase changed", gin.H{"phase": dao.Phase})
}

// Fund 注资当前募资轮次
func (h *DAOHandler) Fund(c *gin.Context) {
	var req FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.daoLogic.Fund(c.Param("symbol"), req.Amount); err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Funded", nil)
}

// GetTasks 待办清单
func (h *DAOHandler) GetTasks(c *gin.Context) {
	tasks, err := h.daoLogic.Tasks(c.Param("symbol"))
	if err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"tasks": tasks})
}

// GetRoadmap 阶段时间线
func (h *DAOHandler) GetRoadmap(c *gin.Context) {
	roadmap, err := h.daoLogic.Roadmap(c.Param("symbol"))
	if err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"roadmap": roadmap})
}

// UpdateImages 更新代币图片
func (h *DAOHandler) UpdateImages(c *gin.Context) {
	var req UpdateImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.daoLogic.UpdateImages(common.HexToAddress(req.Caller), c.Param("symbol"), req.Images)
	if err != nil {
		EngineError(c, err)
		return
	}

	h.updateResponse(c, result)
}

// UpdateSocials 更新社区链接
func (h *DAOHandler) UpdateSocials(c *gin.Context) {
	var req UpdateSocialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.daoLogic.UpdateSocials(common.HexToAddress(req.Caller), c.Param("symbol"), req.Socials)
	if err != nil {
		EngineError(c, err)
		return
	}

	h.updateResponse(c, result)
}

// UpdateUnits 更新收益单元
func (h *DAOHandler) UpdateUnits(c *gin.Context) {
	var req UpdateUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.daoLogic.UpdateUnits(
		common.HexToAddress(req.Caller), c.Param("symbol"), req.Units, req.UnitsMetaData)
	if err != nil {
		EngineError(c, err)
		return
	}

	h.updateResponse(c, result)
}

// UpdateFunding 更新募资轮次
func (h *DAOHandler) UpdateFunding(c *gin.Context) {
	var req UpdateFundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.daoLogic.UpdateFunding(common.HexToAddress(req.Caller), c.Param("symbol"), req.Funding)
	if err != nil {
		EngineError(c, err)
		return
	}

	h.updateResponse(c, result)
}

// UpdateVesting 更新归属分配
func (h *DAOHandler) UpdateVesting(c *gin.Context) {
	var req UpdateVestingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.daoLogic.UpdateVesting(common.HexToAddress(req.Caller), c.Param("symbol"), req.Vestings)
	if err != nil {
		EngineError(c, err)
		return
	}

	h.updateResponse(c, result)
}

// GetBridgeTokens 跨链桥聚合视图
func (h *DAOHandler) GetBridgeTokens(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", h.daoLogic.BridgeTokens())
}

// updateResponse 变更请求的统一响应
// 直接应用返回 200，产生提案返回 202 与提案 ID
func (h *DAOHandler) updateResponse(c *gin.Context, result host.UpdateResult) {
	if result.Applied {
		SuccessResponse(c, http.StatusOK, "Applied", result)
		return
	}
	SuccessResponse(c, http.StatusAccepted, "Proposal created", result)
}
