package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stabilitydao/host/internal/logic"
)

// ProposalHandler 治理提案接口
type ProposalHandler struct {
	proposalLogic *logic.ProposalLogic
}

// NewProposalHandler 创建提案接口处理器
func NewProposalHandler(proposalLogic *logic.ProposalLogic) *ProposalHandler {
	return &ProposalHandler{proposalLogic: proposalLogic}
}

// GetProposals 获取提案列表
func (h *ProposalHandler) GetProposals(c *gin.Context) {
	proposals := h.proposalLogic.GetProposals()
	SuccessResponse(c, http.StatusOK, "", gin.H{"proposals": proposals, "total": len(proposals)})
}

// GetProposal 获取提案详情
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.proposalLogic.GetProposal(c.Param("id"))
	if err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", proposal)
}

// ReceiveVotingResults 上报投票结果
// 投票本身由外部投票子系统完成，这里只接收最终结果
func (h *ProposalHandler) ReceiveVotingResults(c *gin.Context) {
	var req VotingResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.proposalLogic.ReceiveVotingResults(c.Param("id"), *req.Succeeded); err != nil {
		EngineError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Voting results received", nil)
}
