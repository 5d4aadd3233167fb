package host

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/stabilitydao/host/internal/model"
)

// proposeAction 为非 DRAFT 阶段的变更创建治理提案
// 提案 ID 取单调序号；投票权与门槛检查委托给外部投票子系统
func (h *Host) proposeAction(symbol string, payload model.ActionPayload) string {
	// todo 仅允许在 DAO 初始链创建
	// todo 检查提案人投票权与 proposalThreshold

	id := strconv.FormatUint(h.nextProposalID, 10)
	h.nextProposalID++

	h.proposals[id] = &model.Proposal{
		ID:      id,
		Created: h.blockTimestamp,
		Symbol:  symbol,
		Action:  payload.Action(),
		Payload: payload,
		Status:  model.VotingStatusVoting,
	}

	h.emit(symbol, fmt.Sprintf("Proposal %s created: %s", id, payload.Action()))
	return id
}

// ReceiveVotingResults 上报提案投票结果
// 提案必须存在且处于 VOTING 状态；批准时把存储的载荷分发到对应的
// 内部 apply 函数，否决时载荷直接丢弃
func (h *Host) ReceiveVotingResults(proposalID string, succeeded bool) error {
	proposal, ok := h.proposals[proposalID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProposalNotFound, proposalID)
	}
	if proposal.Status != model.VotingStatusVoting {
		return fmt.Errorf("%w: %s is %s", ErrAlreadyReceived, proposalID, proposal.Status)
	}

	if !succeeded {
		proposal.Status = model.VotingStatusRejected
		h.emit(proposal.Symbol, fmt.Sprintf("Proposal %s rejected", proposalID))
		return nil
	}

	dao, err := h.dao(proposal.Symbol)
	if err != nil {
		return err
	}

	proposal.Status = model.VotingStatusApproved

	switch payload := proposal.Payload.(type) {
	case model.ImagesPayload:
		h.applyImages(dao, payload.Images)
	case model.SocialsPayload:
		h.applySocials(dao, payload.Socials)
	case model.UnitsPayload:
		h.applyUnits(dao, payload.Units, payload.UnitsMetaData)
	case model.FundingPayload:
		h.applyFunding(dao, payload.Funding)
	case model.VestingPayload:
		h.applyVesting(dao, payload.Vestings)
	}

	h.emit(proposal.Symbol, fmt.Sprintf("Proposal %s approved", proposalID))
	return nil
}

// GetProposal 按 ID 查询提案
func (h *Host) GetProposal(proposalID string) (model.Proposal, error) {
	proposal, ok := h.proposals[proposalID]
	if !ok {
		return model.Proposal{}, fmt.Errorf("%w: %s", ErrProposalNotFound, proposalID)
	}
	return *proposal, nil
}

// ListProposals 列出全部提案，按创建序号排序
func (h *Host) ListProposals() []model.Proposal {
	r := make([]model.Proposal, 0, len(h.proposals))
	for _, proposal := range h.proposals {
		r = append(r, *proposal)
	}
	sort.Slice(r, func(i, j int) bool {
		a, _ := strconv.ParseUint(r[i].ID, 10, 64)
		b, _ := strconv.ParseUint(r[j].ID, 10, 64)
		return a < b
	})
	return r
}
