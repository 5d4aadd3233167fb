package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stabilitydao/host/internal/model"
)

func testSettings() model.HostSettings {
	return model.DefaultHostSettings()
}

func TestValidateActivity(t *testing.T) {
	assert.NoError(t, ValidateActivity(nil))
	assert.NoError(t, ValidateActivity([]model.Activity{model.ActivityDefi}))
	assert.NoError(t, ValidateActivity([]model.Activity{model.ActivityBuilder, model.ActivityDefi}))
	assert.NoError(t, ValidateActivity([]model.Activity{model.ActivityDefi, model.ActivityMev}))

	err := ValidateActivity([]model.Activity{model.ActivityDefi, model.ActivityDefi})
	assert.ErrorIs(t, err, ErrInvalidActivityCombination)

	err = ValidateActivity([]model.Activity{model.ActivityBuilder})
	assert.ErrorIs(t, err, ErrSingleBuilderActivity)
}

func TestValidateFundingPhaseGates(t *testing.T) {
	settings := testSettings()
	seed := model.Funding{
		Type:     model.FundingSeed,
		Start:    1000,
		End:      1000 + 10*daySeconds,
		MinRaise: 1000,
		MaxRaise: 10000,
	}
	tge := model.Funding{
		Type:     model.FundingTGE,
		Start:    1000,
		End:      1000 + 10*daySeconds,
		MinRaise: 1000,
		MaxRaise: 10000,
	}

	// SEED 轮只能在 DRAFT 阶段提交
	assert.NoError(t, ValidateFunding(model.PhaseDraft, []model.Funding{seed}, settings))
	err := ValidateFunding(model.PhaseSeed, []model.Funding{seed}, settings)
	assert.ErrorIs(t, err, ErrTooLateToUpdateFunding)
	err = ValidateFunding(model.PhaseDevelopment, []model.Funding{seed}, settings)
	assert.ErrorIs(t, err, ErrTooLateToUpdateFunding)

	// TGE 轮允许到 DEVELOPMENT 为止
	assert.NoError(t, ValidateFunding(model.PhaseDraft, []model.Funding{tge}, settings))
	assert.NoError(t, ValidateFunding(model.PhaseSeed, []model.Funding{tge}, settings))
	assert.NoError(t, ValidateFunding(model.PhaseDevelopment, []model.Funding{tge}, settings))
	err = ValidateFunding(model.PhaseTGE, []model.Funding{tge}, settings)
	assert.ErrorIs(t, err, ErrTooLateToUpdateFunding)
}

func TestValidateFundingDuplicateType(t *testing.T) {
	settings := testSettings()
	seed := model.Funding{
		Type:     model.FundingSeed,
		Start:    1000,
		End:      1000 + 10*daySeconds,
		MinRaise: 1000,
		MaxRaise: 10000,
	}

	err := ValidateFunding(model.PhaseDraft, []model.Funding{seed, seed}, settings)
	assert.ErrorIs(t, err, ErrInvalidFundingArray)
}

func TestValidateFundingDurationBounds(t *testing.T) {
	settings := testSettings()

	base := model.Funding{
		Type:     model.FundingSeed,
		Start:    1000,
		MinRaise: 1000,
		MaxRaise: 10000,
	}

	// 边界值合法
	atMin := base
	atMin.End = atMin.Start + settings.MinFundingDuration*daySeconds
	assert.NoError(t, ValidateFunding(model.PhaseDraft, []model.Funding{atMin}, settings))

	atMax := base
	atMax.End = atMax.Start + settings.MaxFundingDuration*daySeconds
	assert.NoError(t, ValidateFunding(model.PhaseDraft, []model.Funding{atMax}, settings))

	tooShort := base
	tooShort.End = tooShort.Start + settings.MinFundingDuration*daySeconds - 1
	err := ValidateFunding(model.PhaseDraft, []model.Funding{tooShort}, settings)
	assert.ErrorIs(t, err, ErrInvalidFundingPeriod)

	tooLong := base
	tooLong.End = tooLong.Start + settings.MaxFundingDuration*daySeconds + 1
	err = ValidateFunding(model.PhaseDraft, []model.Funding{tooLong}, settings)
	assert.ErrorIs(t, err, ErrInvalidFundingPeriod)
}

func TestValidateFundingRaiseBounds(t *testing.T) {
	settings := testSettings()

	base := model.Funding{
		Type:  model.FundingSeed,
		Start: 1000,
		End:   1000 + 10*daySeconds,
	}

	minEqualsMax := base
	minEqualsMax.MinRaise = 5000
	minEqualsMax.MaxRaise = 5000
	err := ValidateFunding(model.PhaseDraft, []model.Funding{minEqualsMax}, settings)
	assert.ErrorIs(t, err, ErrInvalidFundingRaise)

	belowFloor := base
	belowFloor.MinRaise = settings.MinFundingRaise - 1
	belowFloor.MaxRaise = 10000
	err = ValidateFunding(model.PhaseDraft, []model.Funding{belowFloor}, settings)
	assert.ErrorIs(t, err, ErrInvalidFundingRaise)

	aboveCeiling := base
	aboveCeiling.MinRaise = 1000
	aboveCeiling.MaxRaise = settings.MaxFundingRaise + 1
	err = ValidateFunding(model.PhaseDraft, []model.Funding{aboveCeiling}, settings)
	assert.ErrorIs(t, err, ErrInvalidFundingRaise)
}

func tgeWithClaim(claim int64) *model.Funding {
	return &model.Funding{
		Type:     model.FundingTGE,
		Start:    claim - 20*daySeconds,
		End:      claim - 2*daySeconds,
		MinRaise: 1000,
		MaxRaise: 10000,
		Claim:    claim,
	}
}

func validVesting(claim int64, settings model.HostSettings) model.Vesting {
	start := claim + settings.MinCliff*daySeconds
	return model.Vesting{
		Name:       "team",
		Allocation: 20,
		Start:      start,
		End:        start + 30*daySeconds,
	}
}

func TestValidateVestingPhaseGate(t *testing.T) {
	settings := testSettings()
	claim := int64(100 * daySeconds)
	tge := tgeWithClaim(claim)
	vestings := []model.Vesting{validVesting(claim, settings)}

	assert.NoError(t, ValidateVesting(model.PhaseDraft, vestings, settings, tge))
	assert.NoError(t, ValidateVesting(model.PhaseDevelopment, vestings, settings, tge))

	// 分发开始后归属不可变
	for _, phase := range []model.LifecyclePhase{model.PhaseLiveCliff, model.PhaseLiveVesting, model.PhaseLive} {
		err := ValidateVesting(phase, vestings, settings, tge)
		assert.ErrorIs(t, err, ErrTooLateToUpdateVesting, string(phase))
	}
}

func TestValidateVestingRequiresClaim(t *testing.T) {
	settings := testSettings()
	claim := int64(100 * daySeconds)
	vestings := []model.Vesting{validVesting(claim, settings)}

	// 无 TGE 或无 claim 时不允许任何归属，空列表合法
	err := ValidateVesting(model.PhaseDraft, vestings, settings, nil)
	assert.ErrorIs(t, err, ErrVestingNotAllowed)

	noClaim := tgeWithClaim(claim)
	noClaim.Claim = 0
	err = ValidateVesting(model.PhaseDraft, vestings, settings, noClaim)
	assert.ErrorIs(t, err, ErrVestingNotAllowed)

	assert.NoError(t, ValidateVesting(model.PhaseDraft, nil, settings, nil))
	assert.NoError(t, ValidateVesting(model.PhaseDraft, []model.Vesting{}, settings, noClaim))
}

func TestValidateVestingCliffBoundary(t *testing.T) {
	settings := testSettings()
	claim := int64(100 * daySeconds)
	tge := tgeWithClaim(claim)

	// 恰好等于 claim + minCliff 合法
	exact := validVesting(claim, settings)
	exact.Start = claim + settings.MinCliff*daySeconds
	exact.End = exact.Start + 30*daySeconds
	assert.NoError(t, ValidateVesting(model.PhaseDraft, []model.Vesting{exact}, settings, tge))

	early := exact
	early.Start--
	early.End--
	err := ValidateVesting(model.PhaseDraft, []model.Vesting{early}, settings, tge)
	assert.ErrorIs(t, err, ErrIncorrectVestingStart)
}

func TestValidateVestingEntryBounds(t *testing.T) {
	settings := testSettings()
	claim := int64(100 * daySeconds)
	tge := tgeWithClaim(claim)

	noName := validVesting(claim, settings)
	noName.Name = ""
	err := ValidateVesting(model.PhaseDraft, []model.Vesting{noName}, settings, tge)
	assert.ErrorIs(t, err, ErrNameLength)

	longName := validVesting(claim, settings)
	longName.Name = "a vesting allocation name far over limit"
	err = ValidateVesting(model.PhaseDraft, []model.Vesting{longName}, settings, tge)
	assert.ErrorIs(t, err, ErrNameLength)

	zeroAllocation := validVesting(claim, settings)
	zeroAllocation.Allocation = 0
	err = ValidateVesting(model.PhaseDraft, []model.Vesting{zeroAllocation}, settings, tge)
	assert.ErrorIs(t, err, ErrZeroValue)

	tooShort := validVesting(claim, settings)
	tooShort.End = tooShort.Start + settings.MinVestingDuration*daySeconds - 1
	err = ValidateVesting(model.PhaseDraft, []model.Vesting{tooShort}, settings, tge)
	assert.ErrorIs(t, err, ErrInvalidVestingPeriod)

	tooLong := validVesting(claim, settings)
	tooLong.End = tooLong.Start + settings.MaxVestingDuration*daySeconds + 1
	err = ValidateVesting(model.PhaseDraft, []model.Vesting{tooLong}, settings, tge)
	assert.ErrorIs(t, err, ErrInvalidVestingPeriod)
}

func TestValidateVestingTotalAllocation(t *testing.T) {
	settings := testSettings()
	claim := int64(100 * daySeconds)
	tge := tgeWithClaim(claim)

	a := validVesting(claim, settings)
	a.Name = "team"
	a.Allocation = 50
	b := validVesting(claim, settings)
	b.Name = "investors"
	b.Allocation = 49.99

	require.NoError(t, ValidateVesting(model.PhaseDraft, []model.Vesting{a, b}, settings, tge))

	// 总和恰好 100 同样拒绝
	b.Allocation = 50
	err := ValidateVesting(model.PhaseDraft, []model.Vesting{a, b}, settings, tge)
	assert.ErrorIs(t, err, ErrTotalAllocationTooHigh)
}
