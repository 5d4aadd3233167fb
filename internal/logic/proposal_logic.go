package logic

import (
	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/model"
)

// ProposalLogic 治理提案业务逻辑
type ProposalLogic struct {
	engine *Engine
}

// NewProposalLogic 创建提案业务逻辑
func NewProposalLogic(engine *Engine) *ProposalLogic {
	return &ProposalLogic{engine: engine}
}

// GetProposals 获取全部提案
func (l *ProposalLogic) GetProposals() []model.Proposal {
	var proposals []model.Proposal
	_ = l.engine.withLock(func(h *host.Host) error {
		proposals = h.ListProposals()
		return nil
	})
	return proposals
}

// GetProposal 获取提案详情
func (l *ProposalLogic) GetProposal(proposalID string) (model.Proposal, error) {
	var proposal model.Proposal
	err := l.engine.withLock(func(h *host.Host) error {
		var err error
		proposal, err = h.GetProposal(proposalID)
		return err
	})
	return proposal, err
}

// ReceiveVotingResults 上报投票结果并同步审计表
// 决议后的提案状态在锁内取快照，落库在锁外进行
func (l *ProposalLogic) ReceiveVotingResults(proposalID string, succeeded bool) error {
	var proposal model.Proposal
	err := l.engine.withLock(func(h *host.Host) error {
		if err := h.ReceiveVotingResults(proposalID, succeeded); err != nil {
			return err
		}
		var err error
		proposal, err = h.GetProposal(proposalID)
		return err
	})
	if err != nil {
		return err
	}

	l.engine.updateProposalStatus(proposalID, proposal.Status.String())
	return nil
}
