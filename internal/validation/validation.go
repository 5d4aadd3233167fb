// Package validation 提供 DAO 数据的纯函数校验
// 所有函数无副作用，由 HostSettings 参数化，不依赖引擎状态
package validation

import (
	"errors"
	"fmt"

	"github.com/stabilitydao/host/internal/model"
)

// 一天的秒数
const daySeconds = 24 * 3600

// 校验错误，调用方总是可以通过修正数据避免，不应重试
var (
	ErrInvalidActivityCombination = errors.New("invalid activity combination")
	ErrSingleBuilderActivity      = errors.New("single builder activity not allowed")
	ErrTooLateToUpdateFunding     = errors.New("too late to update such funding")
	ErrInvalidFundingArray        = errors.New("invalid funding array")
	ErrInvalidFundingPeriod       = errors.New("invalid funding period")
	ErrInvalidFundingRaise        = errors.New("invalid funding raise")
	ErrTooLateToUpdateVesting     = errors.New("too late to update vesting")
	ErrVestingNotAllowed          = errors.New("vesting not allowed")
	ErrNameLength                 = errors.New("name length out of bounds")
	ErrZeroValue                  = errors.New("zero value not allowed")
	ErrIncorrectVestingStart      = errors.New("incorrect vesting start")
	ErrInvalidVestingPeriod       = errors.New("invalid vesting period")
	ErrTotalAllocationTooHigh     = errors.New("total allocation too high")
)

// ValidateActivity 校验活动组合
// 活动不允许重复；只经营 BUILDER 的组织必须搭配至少一个产生收益的活动
func ValidateActivity(activity []model.Activity) error {
	seen := make(map[model.Activity]bool, len(activity))
	for _, a := range activity {
		if seen[a] {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidActivityCombination, a)
		}
		seen[a] = true
	}

	if len(activity) == 1 && activity[0] == model.ActivityBuilder {
		return ErrSingleBuilderActivity
	}

	return nil
}

// ValidateFunding 校验一批募资轮次
// SEED 轮只能在 DRAFT 阶段提交，TGE 轮只能在 DRAFT/SEED/DEVELOPMENT 阶段提交
func ValidateFunding(phase model.LifecyclePhase, fundings []model.Funding, settings model.HostSettings) error {
	seen := make(map[model.FundingType]bool, len(fundings))
	for _, funding := range fundings {
		// 阶段检查
		if funding.Type == model.FundingSeed && phase != model.PhaseDraft {
			return fmt.Errorf("%w: %s at phase %s", ErrTooLateToUpdateFunding, funding.Type, phase)
		}
		if funding.Type == model.FundingTGE &&
			phase != model.PhaseDraft && phase != model.PhaseSeed && phase != model.PhaseDevelopment {
			return fmt.Errorf("%w: %s at phase %s", ErrTooLateToUpdateFunding, funding.Type, phase)
		}

		// 同批次类型不允许重复
		if seen[funding.Type] {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidFundingArray, funding.Type)
		}
		seen[funding.Type] = true

		// 轮次时长上下限，边界值合法
		duration := funding.End - funding.Start
		if duration < settings.MinFundingDuration*daySeconds || duration > settings.MaxFundingDuration*daySeconds {
			return fmt.Errorf("%w: duration %ds", ErrInvalidFundingPeriod, duration)
		}

		// 募资目标上下限
		if funding.MinRaise >= funding.MaxRaise ||
			funding.MinRaise < settings.MinFundingRaise ||
			funding.MaxRaise > settings.MaxFundingRaise {
			return fmt.Errorf("%w: min %.0f max %.0f", ErrInvalidFundingRaise, funding.MinRaise, funding.MaxRaise)
		}

		// 开始时间的延迟不在此检查
	}

	return nil
}

// ValidateVesting 校验一批归属分配
// 分发开始后（LIVE_CLIFF 及以后）归属不可变；无 TGE claim 时不允许任何归属；
// 所有条目单独通过后，分配总和必须严格小于 100
func ValidateVesting(phase model.LifecyclePhase, vestings []model.Vesting, settings model.HostSettings, tge *model.Funding) error {
	if phase.IsLive() {
		return fmt.Errorf("%w: phase %s", ErrTooLateToUpdateVesting, phase)
	}

	if tge == nil || tge.Claim == 0 {
		if len(vestings) != 0 {
			return ErrVestingNotAllowed
		}
		return nil
	}

	var totalAllocation float64
	for _, vesting := range vestings {
		if err := validateVestingEntry(vesting, settings, tge); err != nil {
			return err
		}
		totalAllocation += vesting.Allocation
	}

	// 总和恰好 100 同样拒绝
	if totalAllocation >= 100 {
		return fmt.Errorf("%w: %.2f", ErrTotalAllocationTooHigh, totalAllocation)
	}

	return nil
}

// validateVestingEntry 校验单条归属分配
func validateVestingEntry(vesting model.Vesting, settings model.HostSettings, tge *model.Funding) error {
	if len(vesting.Name) < settings.MinVestingNameLen || len(vesting.Name) > settings.MaxVestingNameLen {
		return fmt.Errorf("%w: %d", ErrNameLength, len(vesting.Name))
	}

	if vesting.Allocation == 0 {
		return fmt.Errorf("%w: allocation of %s", ErrZeroValue, vesting.Name)
	}

	// 开始时间不得早于 claim + 最小锁定期，恰好等于边界合法
	if vesting.Start < tge.Claim+settings.MinCliff*daySeconds {
		return fmt.Errorf("%w: %s", ErrIncorrectVestingStart, vesting.Name)
	}

	duration := vesting.End - vesting.Start
	if duration < settings.MinVestingDuration*daySeconds || duration > settings.MaxVestingDuration*daySeconds {
		return fmt.Errorf("%w: %s duration %ds", ErrInvalidVestingPeriod, vesting.Name, duration)
	}

	return nil
}
