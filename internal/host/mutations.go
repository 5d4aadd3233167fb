package host

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/stabilitydao/host/internal/model"
	"github.com/stabilitydao/host/internal/validation"
)

// UpdateResult 变更请求的结果
// DRAFT 阶段直接应用时 Applied 为 true；其余阶段返回待投票的提案 ID
type UpdateResult struct {
	Applied    bool   `json:"applied"`
	ProposalID string `json:"proposal_id,omitempty"`
}

// UpdateImages 更新代币图片
// DRAFT 阶段所有者直接执行，其余阶段创建治理提案
func (h *Host) UpdateImages(caller common.Address, symbol string, images model.DAOImages) (UpdateResult, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return UpdateResult{}, err
	}

	if dao.Phase == model.PhaseDraft {
		if err := h.onlyOwnerOf(caller, symbol); err != nil {
			return UpdateResult{}, err
		}
		h.applyImages(dao, images)
		return UpdateResult{Applied: true}, nil
	}

	id := h.proposeAction(symbol, model.ImagesPayload{Images: images})
	return UpdateResult{ProposalID: id}, nil
}

// UpdateSocials 更新社区链接
func (h *Host) UpdateSocials(caller common.Address, symbol string, socials []string) (UpdateResult, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return UpdateResult{}, err
	}

	if dao.Phase == model.PhaseDraft {
		if err := h.onlyOwnerOf(caller, symbol); err != nil {
			return UpdateResult{}, err
		}
		h.applySocials(dao, socials)
		return UpdateResult{Applied: true}, nil
	}

	id := h.proposeAction(symbol, model.SocialsPayload{Socials: socials})
	return UpdateResult{ProposalID: id}, nil
}

// UpdateUnits 更新收益单元及其元数据
func (h *Host) UpdateUnits(caller common.Address, symbol string, units []model.Unit, unitsMetaData []model.UnitMetaData) (UpdateResult, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return UpdateResult{}, err
	}

	if dao.Phase == model.PhaseDraft {
		if err := h.onlyOwnerOf(caller, symbol); err != nil {
			return UpdateResult{}, err
		}
		h.applyUnits(dao, units, unitsMetaData)
		return UpdateResult{Applied: true}, nil
	}

	id := h.proposeAction(symbol, model.UnitsPayload{Units: units, UnitsMetaData: unitsMetaData})
	return UpdateResult{ProposalID: id}, nil
}

// UpdateFunding 更新单个募资轮次
// 两条路径之前都先做载荷校验
func (h *Host) UpdateFunding(caller common.Address, symbol string, funding model.Funding) (UpdateResult, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return UpdateResult{}, err
	}

	if err := validation.ValidateFunding(dao.Phase, []model.Funding{funding}, h.settings); err != nil {
		return UpdateResult{}, err
	}

	if dao.Phase == model.PhaseDraft {
		if err := h.onlyOwnerOf(caller, symbol); err != nil {
			return UpdateResult{}, err
		}
		h.applyFunding(dao, funding)
		return UpdateResult{Applied: true}, nil
	}

	id := h.proposeAction(symbol, model.FundingPayload{Funding: funding})
	return UpdateResult{ProposalID: id}, nil
}

// UpdateVesting 整体替换归属分配
// 两条路径之前都先做载荷校验
func (h *Host) UpdateVesting(caller common.Address, symbol string, vestings []model.Vesting) (UpdateResult, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return UpdateResult{}, err
	}

	if err := validation.ValidateVesting(dao.Phase, vestings, h.settings, h.tgeData(dao)); err != nil {
		return UpdateResult{}, err
	}

	if dao.Phase == model.PhaseDraft {
		if err := h.onlyOwnerOf(caller, symbol); err != nil {
			return UpdateResult{}, err
		}
		h.applyVesting(dao, vestings)
		return UpdateResult{Applied: true}, nil
	}

	id := h.proposeAction(symbol, model.VestingPayload{Vestings: vestings})
	return UpdateResult{ProposalID: id}, nil
}

// onlyOwnerOf DRAFT 阶段直接变更的所有权检查
func (h *Host) onlyOwnerOf(caller common.Address, symbol string) error {
	owner, err := h.GetDaoOwner(symbol)
	if err != nil {
		return err
	}
	if caller != owner {
		return fmt.Errorf("%w: %s of %s", ErrNotOwner, caller, symbol)
	}
	return nil
}

// 以下 apply 函数是变更的唯一落点，直接路径与提案批准路径共用

func (h *Host) applyImages(dao *model.DAO, images model.DAOImages) {
	dao.Images = images
	h.emit(dao.Symbol, "Action "+model.ActionUpdateImages.String())
}

func (h *Host) applySocials(dao *model.DAO, socials []string) {
	dao.Socials = socials
	h.emit(dao.Symbol, "Action "+model.ActionUpdateSocials.String())
}

func (h *Host) applyUnits(dao *model.DAO, units []model.Unit, unitsMetaData []model.UnitMetaData) {
	dao.Units = units
	dao.UnitsMetaData = unitsMetaData
	h.emit(dao.Symbol, "Action "+model.ActionUpdateUnits.String())
}

// applyFunding 按类型覆盖已有轮次，不存在时追加
func (h *Host) applyFunding(dao *model.DAO, funding model.Funding) {
	replaced := false
	for i := range dao.Funding {
		if dao.Funding[i].Type == funding.Type {
			dao.Funding[i] = funding
			replaced = true
			break
		}
	}
	if !replaced {
		dao.Funding = append(dao.Funding, funding)
	}

	h.emit(dao.Symbol, "Action "+model.ActionUpdateFunding.String())
}

func (h *Host) applyVesting(dao *model.DAO, vestings []model.Vesting) {
	dao.Vesting = vestings
	h.emit(dao.Symbol, "Action "+model.ActionUpdateVesting.String())
}
