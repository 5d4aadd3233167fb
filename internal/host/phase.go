package host

import (
	"fmt"

	"github.com/stabilitydao/host/internal/contract"
	"github.com/stabilitydao/host/internal/model"
)

// SEED 最多允许比计划开始时间晚多少秒启动
// todo 移入 settings.maxSeedStartDelay
const maxSeedStartDelay = 7 * daySeconds

// ChangePhase 推进 DAO 生命周期阶段
// 任何人都可以调用；每次只前进一个阶段；任务清单非空时拒绝。
// 唯一的回退分支是 TGE 失败回到 DEVELOPMENT；SEED_FAILED 与 LIVE 为终态。
func (h *Host) ChangePhase(symbol string) error {
	dao, err := h.dao(symbol)
	if err != nil {
		return err
	}

	tasks, err := h.Tasks(symbol)
	if err != nil {
		return err
	}
	if len(tasks) > 0 {
		return fmt.Errorf("%w: %d tasks of %s", ErrSolveTasksFirst, len(tasks), symbol)
	}

	switch dao.Phase {
	case model.PhaseDraft:
		seedIndex, err := h.fundingIndex(dao, model.FundingSeed)
		if err != nil {
			return err
		}
		seed := dao.Funding[seedIndex]
		if seed.Start > h.blockTimestamp {
			return fmt.Errorf("%w: seed of %s", ErrWaitFundingStart, symbol)
		}
		// SEED 不允许比计划开始晚超过一周，过期必须重新配置募资
		if h.blockTimestamp-seed.Start > maxSeedStartDelay {
			return fmt.Errorf("%w: seed of %s", ErrTooLateSetupFunding, symbol)
		}

		contract.Deploy(dao, h.chainID, model.ContractSeedToken1)
		dao.Phase = model.PhaseSeed

	case model.PhaseSeed:
		seedIndex, err := h.fundingIndex(dao, model.FundingSeed)
		if err != nil {
			return err
		}
		seed := dao.Funding[seedIndex]
		if seed.End > h.blockTimestamp {
			return fmt.Errorf("%w: seed of %s", ErrWaitFundingEnd, symbol)
		}

		if seed.Raised >= seed.MinRaise {
			dao.Phase = model.PhaseDevelopment
		} else {
			// 已募集资金退回出资者（链上效果，超出本引擎范围）
			dao.Phase = model.PhaseSeedFailed
		}

	case model.PhaseDevelopment:
		tgeIndex, err := h.fundingIndex(dao, model.FundingTGE)
		if err != nil {
			return err
		}
		tge := dao.Funding[tgeIndex]
		if tge.Start > h.blockTimestamp {
			return fmt.Errorf("%w: tge of %s", ErrWaitFundingStart, symbol)
		}

		contract.Deploy(dao, h.chainID, model.ContractTgeToken2)
		dao.Phase = model.PhaseTGE

	case model.PhaseTGE:
		tgeIndex, err := h.fundingIndex(dao, model.FundingTGE)
		if err != nil {
			return err
		}
		tge := dao.Funding[tgeIndex]
		if tge.End > h.blockTimestamp {
			return fmt.Errorf("%w: tge of %s", ErrWaitFundingEnd, symbol)
		}

		if tge.Raised >= tge.MinRaise {
			contract.Deploy(dao, h.chainID, model.ContractToken3)
			contract.Deploy(dao, h.chainID, model.ContractXToken4)
			contract.Deploy(dao, h.chainID, model.ContractStaking6)
			contract.Deploy(dao, h.chainID, model.ContractDAOToken5)

			// todo 部署归属合约并分配代币
			// todo 种子代币持有者按预定汇率转换为 xToken 持有者
			// todo 用 TGE 资金按预定价格部署 v2 流动性

			dao.Phase = model.PhaseLiveCliff
		} else {
			// 已募集的 TGE 资金退回出资者，回到开发阶段重新准备
			dao.Phase = model.PhaseDevelopment
		}

	case model.PhaseLiveCliff:
		// 任一归属开始后才能进入归属阶段
		started := false
		for _, v := range dao.Vesting {
			if v.Start < h.blockTimestamp {
				started = true
				break
			}
		}
		if !started {
			return fmt.Errorf("%w: %s", ErrWaitVestingStart, symbol)
		}

		dao.Phase = model.PhaseLiveVesting

	case model.PhaseLiveVesting:
		// 全部归属结束后代币完全分发
		for _, v := range dao.Vesting {
			if v.End > h.blockTimestamp {
				return fmt.Errorf("%w: %s", ErrWaitVestingEnd, symbol)
			}
		}

		dao.Phase = model.PhaseLive

	default:
		// LIVE 永久保持，SEED_FAILED 没有定义后续转换
		return fmt.Errorf("%w: %s at %s", ErrForeverLive, symbol, dao.Phase)
	}

	h.emit(symbol, fmt.Sprintf("Phase changed to %s", dao.Phase))
	return nil
}

// Fund 向 DAO 当前阶段对应的募资轮次注资
// 仅 SEED 与 TGE 阶段可用；注资后达到或超过 maxRaise 时拒绝
func (h *Host) Fund(symbol string, amount float64) error {
	dao, err := h.dao(symbol)
	if err != nil {
		return err
	}

	var fundingType model.FundingType
	switch dao.Phase {
	case model.PhaseSeed:
		fundingType = model.FundingSeed
	case model.PhaseTGE:
		fundingType = model.FundingTGE
	default:
		return fmt.Errorf("%w: %s at %s", ErrNotFundingPhase, symbol, dao.Phase)
	}

	index, err := h.fundingIndex(dao, fundingType)
	if err != nil {
		return err
	}
	funding := dao.Funding[index]
	if funding.Raised+amount >= funding.MaxRaise {
		return fmt.Errorf("%w: %s %s", ErrRaiseMaxExceeded, fundingType, symbol)
	}

	// 兑换资产转入轮次收据代币合约，给出资者铸造收据代币（链上效果）
	dao.Funding[index].Raised += amount

	return nil
}
