package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stabilitydao/host/internal/model"
	"github.com/stabilitydao/host/internal/validation"
)

// developmentDAO 一个已过 DRAFT 的 DAO，变更只能走治理提案
func developmentDAO(symbol string) model.DAO {
	return model.DAO{
		Symbol:   symbol,
		Name:     "Gov " + symbol,
		Phase:    model.PhaseDevelopment,
		Activity: []model.Activity{model.ActivityDefi},
		Socials:  []string{"https://x.com/gov"},
		Params: model.DAOParameters{
			VePeriod:    180,
			PvPFee:      50,
			TotalSupply: 1e9,
		},
		Funding: []model.Funding{
			{
				Type:     model.FundingSeed,
				Start:    testBase - 20*daySeconds,
				End:      testBase - 10*daySeconds,
				MinRaise: 1000,
				MaxRaise: 10000,
				Raised:   2000,
			},
			{
				Type:     model.FundingTGE,
				Start:    testBase + 41*daySeconds,
				End:      testBase + 51*daySeconds,
				MinRaise: 1000,
				MaxRaise: 10000,
				Claim:    testBase + 52*daySeconds,
			},
		},
		InitialChain: "Sonic",
		Deployer:     testDeployer,
	}
}

func TestProposalLifecycle(t *testing.T) {
	h := newTestHost()
	require.NoError(t, h.AddLiveDAO(developmentDAO("GOV")))

	res, err := h.UpdateSocials(testDeployer, "GOV", []string{"https://x.com/new"})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Equal(t, "1", res.ProposalID)

	proposal, err := h.GetProposal("1")
	require.NoError(t, err)
	assert.Equal(t, "GOV", proposal.Symbol)
	assert.Equal(t, model.ActionUpdateSocials, proposal.Action)
	assert.Equal(t, model.VotingStatusVoting, proposal.Status)
	assert.Equal(t, testBase, proposal.Created)

	// 否决：载荷丢弃，数据不变
	require.NoError(t, h.ReceiveVotingResults("1", false))
	proposal, _ = h.GetProposal("1")
	assert.Equal(t, model.VotingStatusRejected, proposal.Status)

	dao, _ := h.GetDAO("GOV")
	assert.Equal(t, []string{"https://x.com/gov"}, dao.Socials)

	// 批准：载荷分发到对应的变更落点
	res, err = h.UpdateSocials(testDeployer, "GOV", []string{"https://x.com/new"})
	require.NoError(t, err)
	assert.Equal(t, "2", res.ProposalID)

	require.NoError(t, h.ReceiveVotingResults("2", true))
	proposal, _ = h.GetProposal("2")
	assert.Equal(t, model.VotingStatusApproved, proposal.Status)

	dao, _ = h.GetDAO("GOV")
	assert.Equal(t, []string{"https://x.com/new"}, dao.Socials)
}

func TestProposalFundingUpsert(t *testing.T) {
	h := newTestHost()
	require.NoError(t, h.AddLiveDAO(developmentDAO("GOV")))

	// DEVELOPMENT 阶段仍可重新配置 TGE 轮
	updated := model.Funding{
		Type:     model.FundingTGE,
		Start:    testBase + 60*daySeconds,
		End:      testBase + 70*daySeconds,
		MinRaise: 2000,
		MaxRaise: 20000,
		Claim:    testBase + 71*daySeconds,
	}
	res, err := h.UpdateFunding(testDeployer, "GOV", updated)
	require.NoError(t, err)
	require.NoError(t, h.ReceiveVotingResults(res.ProposalID, true))

	dao, _ := h.GetDAO("GOV")
	require.Len(t, dao.Funding, 2)
	assert.Equal(t, updated, dao.Funding[1])

	// SEED 轮在 DEVELOPMENT 阶段已不可变更
	_, err = h.UpdateFunding(testDeployer, "GOV", model.Funding{
		Type:     model.FundingSeed,
		Start:    testBase,
		End:      testBase + 10*daySeconds,
		MinRaise: 1000,
		MaxRaise: 10000,
	})
	assert.ErrorIs(t, err, validation.ErrTooLateToUpdateFunding)
}

func TestReceiveVotingResultsGuards(t *testing.T) {
	h := newTestHost()
	require.NoError(t, h.AddLiveDAO(developmentDAO("GOV")))

	err := h.ReceiveVotingResults("42", true)
	assert.ErrorIs(t, err, ErrProposalNotFound)

	res, err := h.UpdateSocials(testDeployer, "GOV", []string{"https://x.com/new"})
	require.NoError(t, err)

	require.NoError(t, h.ReceiveVotingResults(res.ProposalID, true))

	// 结果只能上报一次
	err = h.ReceiveVotingResults(res.ProposalID, true)
	assert.ErrorIs(t, err, ErrAlreadyReceived)
	err = h.ReceiveVotingResults(res.ProposalID, false)
	assert.ErrorIs(t, err, ErrAlreadyReceived)
}

func TestListProposalsOrdered(t *testing.T) {
	h := newTestHost()
	require.NoError(t, h.AddLiveDAO(developmentDAO("GOV")))

	for i := 0; i < 3; i++ {
		_, err := h.UpdateSocials(testDeployer, "GOV", []string{"https://x.com/new"})
		require.NoError(t, err)
	}

	proposals := h.ListProposals()
	require.Len(t, proposals, 3)
	assert.Equal(t, "1", proposals[0].ID)
	assert.Equal(t, "2", proposals[1].ID)
	assert.Equal(t, "3", proposals[2].ID)
}
