package host

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stabilitydao/host/internal/model"
)

// completeDraftTasks 完成 DRAFT 阶段的全部待办
func completeDraftTasks(t *testing.T, h *Host, symbol string) {
	t.Helper()

	res, err := h.UpdateImages(testDeployer, symbol, model.DAOImages{
		SeedToken: "tokens/seed.png",
		Token:     "tokens/token.png",
	})
	require.NoError(t, err)
	require.True(t, res.Applied)

	res, err = h.UpdateSocials(testDeployer, symbol, []string{
		"https://x.com/testorg",
		"https://t.me/testorg",
	})
	require.NoError(t, err)
	require.True(t, res.Applied)

	res, err = h.UpdateUnits(testDeployer, symbol,
		[]model.Unit{{UnitID: "testorg:core"}},
		[]model.UnitMetaData{{
			Name:         "core",
			Status:       model.UnitStatusBuilding,
			Type:         model.UnitTypeDefiProtocol,
			RevenueShare: 100,
		}})
	require.NoError(t, err)
	require.True(t, res.Applied)

	tasks, err := h.Tasks(symbol)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

// approveProposal 批准一个刚创建的变更提案
func approveProposal(t *testing.T, h *Host, res UpdateResult) {
	t.Helper()
	require.False(t, res.Applied)
	require.NotEmpty(t, res.ProposalID)
	require.NoError(t, h.ReceiveVotingResults(res.ProposalID, true))
}

func TestLifecycleToLive(t *testing.T) {
	h := newTestHost()

	_, err := h.CreateDAO(testDeployer, draftInput("LIF"))
	require.NoError(t, err)
	completeDraftTasks(t, h, "LIF")

	// SEED 轮尚未开始
	err = h.ChangePhase("LIF")
	assert.ErrorIs(t, err, ErrWaitFundingStart)

	h.WarpDays(1)
	require.NoError(t, h.ChangePhase("LIF"))

	dao, err := h.GetDAO("LIF")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseSeed, dao.Phase)
	seedToken := dao.Deployments["146"][model.ContractSeedToken1]
	assert.NotEqual(t, (common.Address{}), seedToken)

	// SEED 阶段所有权移交给种子代币合约
	owner, err := h.GetDaoOwner("LIF")
	require.NoError(t, err)
	assert.Equal(t, seedToken, owner)

	// 注资不得达到 maxRaise
	err = h.Fund("LIF", 20000)
	assert.ErrorIs(t, err, ErrRaiseMaxExceeded)
	require.NoError(t, h.Fund("LIF", 2000))

	err = h.ChangePhase("LIF")
	assert.ErrorIs(t, err, ErrWaitFundingEnd)

	h.WarpDays(10)
	require.NoError(t, h.ChangePhase("LIF"))
	dao, _ = h.GetDAO("LIF")
	assert.Equal(t, model.PhaseDevelopment, dao.Phase)

	// DEVELOPMENT 阶段的变更走治理提案
	res, err := h.UpdateImages(testDeployer, "LIF", model.DAOImages{
		SeedToken: "tokens/seed.png",
		TgeToken:  "tokens/tge.png",
		Token:     "tokens/token.png",
		XToken:    "tokens/x.png",
		DAOToken:  "tokens/dao.png",
	})
	require.NoError(t, err)
	approveProposal(t, h, res)

	res, err = h.UpdateVesting(testDeployer, "LIF", []model.Vesting{{
		Name:       "team",
		Allocation: 40,
		Start:      testBase + 70*daySeconds,
		End:        testBase + 100*daySeconds,
	}})
	require.NoError(t, err)
	approveProposal(t, h, res)

	res, err = h.UpdateUnits(testDeployer, "LIF",
		[]model.Unit{{UnitID: "testorg:core", ChainIDs: []string{"146"}}},
		[]model.UnitMetaData{{
			Name:         "core",
			Status:       model.UnitStatusLive,
			Type:         model.UnitTypeDefiProtocol,
			RevenueShare: 100,
		}})
	require.NoError(t, err)
	approveProposal(t, h, res)

	tasks, err := h.Tasks("LIF")
	require.NoError(t, err)
	require.Empty(t, tasks)

	// TGE 轮尚未开始
	err = h.ChangePhase("LIF")
	assert.ErrorIs(t, err, ErrWaitFundingStart)

	h.WarpDays(30)
	require.NoError(t, h.ChangePhase("LIF"))
	dao, _ = h.GetDAO("LIF")
	assert.Equal(t, model.PhaseTGE, dao.Phase)

	require.NoError(t, h.Fund("LIF", 5000))
	err = h.ChangePhase("LIF")
	assert.ErrorIs(t, err, ErrWaitFundingEnd)

	h.WarpDays(10)
	require.NoError(t, h.ChangePhase("LIF"))
	dao, _ = h.GetDAO("LIF")
	assert.Equal(t, model.PhaseLiveCliff, dao.Phase)

	// TGE 成功后部署全套代币合约
	for _, index := range []model.ContractIndex{
		model.ContractToken3,
		model.ContractXToken4,
		model.ContractDAOToken5,
		model.ContractStaking6,
	} {
		assert.NotEqual(t, (common.Address{}), dao.Deployments["146"][index])
	}

	// LIVE 系列阶段所有权属于治理代币合约
	owner, err = h.GetDaoOwner("LIF")
	require.NoError(t, err)
	assert.Equal(t, dao.Deployments["146"][model.ContractDAOToken5], owner)

	// 归属尚未开始
	err = h.ChangePhase("LIF")
	assert.ErrorIs(t, err, ErrWaitVestingStart)

	h.WarpDays(20)
	require.NoError(t, h.ChangePhase("LIF"))
	dao, _ = h.GetDAO("LIF")
	assert.Equal(t, model.PhaseLiveVesting, dao.Phase)

	err = h.ChangePhase("LIF")
	assert.ErrorIs(t, err, ErrWaitVestingEnd)

	h.WarpDays(29)
	require.NoError(t, h.ChangePhase("LIF"))
	dao, _ = h.GetDAO("LIF")
	assert.Equal(t, model.PhaseLive, dao.Phase)

	// LIVE 为终态
	err = h.ChangePhase("LIF")
	assert.ErrorIs(t, err, ErrForeverLive)
}

func TestChangePhaseBlockedByTasks(t *testing.T) {
	h := newTestHost()

	_, err := h.CreateDAO(testDeployer, draftInput("BLK"))
	require.NoError(t, err)

	h.WarpDays(1)
	err = h.ChangePhase("BLK")
	assert.ErrorIs(t, err, ErrSolveTasksFirst)
}

func TestChangePhaseSeedTooLate(t *testing.T) {
	h := newTestHost()

	_, err := h.CreateDAO(testDeployer, draftInput("LTE"))
	require.NoError(t, err)
	completeDraftTasks(t, h, "LTE")

	// SEED 计划开始一周后仍未启动，必须重新配置募资
	h.WarpDays(9)
	err = h.ChangePhase("LTE")
	assert.ErrorIs(t, err, ErrTooLateSetupFunding)

	res, err := h.UpdateFunding(testDeployer, "LTE", model.Funding{
		Type:     model.FundingSeed,
		Start:    h.BlockTimestamp(),
		End:      h.BlockTimestamp() + 10*daySeconds,
		MinRaise: 1000,
		MaxRaise: 10000,
	})
	require.NoError(t, err)
	require.True(t, res.Applied)

	require.NoError(t, h.ChangePhase("LTE"))
	dao, _ := h.GetDAO("LTE")
	assert.Equal(t, model.PhaseSeed, dao.Phase)
}

func TestSeedFailure(t *testing.T) {
	h := newTestHost()

	_, err := h.CreateDAO(testDeployer, draftInput("FLD"))
	require.NoError(t, err)
	completeDraftTasks(t, h, "FLD")

	h.WarpDays(1)
	require.NoError(t, h.ChangePhase("FLD"))

	// 不注资，等到轮次结束
	h.WarpDays(10)
	require.NoError(t, h.ChangePhase("FLD"))

	dao, _ := h.GetDAO("FLD")
	assert.Equal(t, model.PhaseSeedFailed, dao.Phase)

	// SEED_FAILED 没有后续转换
	err = h.ChangePhase("FLD")
	assert.ErrorIs(t, err, ErrForeverLive)
}

func TestTGEFailureReturnsToDevelopment(t *testing.T) {
	h := newTestHost()

	_, err := h.CreateDAO(testDeployer, draftInput("TGF"))
	require.NoError(t, err)
	completeDraftTasks(t, h, "TGF")

	h.WarpDays(1)
	require.NoError(t, h.ChangePhase("TGF"))
	require.NoError(t, h.Fund("TGF", 2000))
	h.WarpDays(10)
	require.NoError(t, h.ChangePhase("TGF"))

	res, err := h.UpdateImages(testDeployer, "TGF", model.DAOImages{
		SeedToken: "tokens/seed.png",
		TgeToken:  "tokens/tge.png",
		Token:     "tokens/token.png",
		XToken:    "tokens/x.png",
		DAOToken:  "tokens/dao.png",
	})
	require.NoError(t, err)
	approveProposal(t, h, res)

	res, err = h.UpdateVesting(testDeployer, "TGF", []model.Vesting{{
		Name:       "team",
		Allocation: 40,
		Start:      testBase + 70*daySeconds,
		End:        testBase + 100*daySeconds,
	}})
	require.NoError(t, err)
	approveProposal(t, h, res)

	res, err = h.UpdateUnits(testDeployer, "TGF",
		[]model.Unit{{UnitID: "testorg:core"}},
		[]model.UnitMetaData{{
			Name:         "core",
			Status:       model.UnitStatusLive,
			Type:         model.UnitTypeDefiProtocol,
			RevenueShare: 100,
		}})
	require.NoError(t, err)
	approveProposal(t, h, res)

	h.WarpDays(30)
	require.NoError(t, h.ChangePhase("TGF"))

	// TGE 不注资，轮次结束后回到 DEVELOPMENT
	h.WarpDays(10)
	require.NoError(t, h.ChangePhase("TGF"))

	dao, _ := h.GetDAO("TGF")
	assert.Equal(t, model.PhaseDevelopment, dao.Phase)
	_, deployed := dao.Deployments["146"][model.ContractToken3]
	assert.False(t, deployed)
}

func TestFundGuards(t *testing.T) {
	h := newTestHost()

	_, err := h.CreateDAO(testDeployer, draftInput("FND"))
	require.NoError(t, err)

	// DRAFT 阶段没有进行中的募资轮次
	err = h.Fund("FND", 100)
	assert.ErrorIs(t, err, ErrNotFundingPhase)

	err = h.Fund("NOPE", 100)
	assert.ErrorIs(t, err, ErrDAONotFound)
}

func TestDraftUpdateRequiresOwner(t *testing.T) {
	h := newTestHost()

	_, err := h.CreateDAO(testDeployer, draftInput("OWN"))
	require.NoError(t, err)

	stranger := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	_, err = h.UpdateSocials(stranger, "OWN", []string{"https://x.com/other"})
	assert.ErrorIs(t, err, ErrNotOwner)
}
