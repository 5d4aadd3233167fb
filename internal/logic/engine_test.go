package logic

import (
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/model"
)

const testBase = int64(1_700_000_000)

var testDeployer = common.HexToAddress("0x0000000000000000000000000000000000000001")

// newTestEngine 无数据库的引擎封装，事件落库被跳过
func newTestEngine() *Engine {
	h := host.New("146", testBase, model.DefaultHostSettings(), nil)
	return NewEngine(h, nil)
}

func createInput(symbol string) host.CreateDAOInput {
	return host.CreateDAOInput{
		Name:     "Logic " + symbol,
		Symbol:   symbol,
		Activity: []model.Activity{model.ActivityDefi},
		Params: model.DAOParameters{
			VePeriod:    180,
			PvPFee:      50,
			TotalSupply: 1e9,
		},
		Funding: []model.Funding{{
			Type:     model.FundingSeed,
			Start:    testBase + daySeconds,
			End:      testBase + 11*daySeconds,
			MinRaise: 1000,
			MaxRaise: 10000,
		}},
	}
}

const daySeconds = 24 * 3600

func TestDAOLogicRoundTrip(t *testing.T) {
	engine := newTestEngine()
	daoLogic := NewDAOLogic(engine)

	dao, err := daoLogic.CreateDAO(testDeployer, createInput("LGC"))
	require.NoError(t, err)
	assert.Equal(t, model.PhaseDraft, dao.Phase)

	got, err := daoLogic.GetDAO("LGC")
	require.NoError(t, err)
	assert.Equal(t, dao.Symbol, got.Symbol)

	owner, err := daoLogic.GetDaoOwner("LGC")
	require.NoError(t, err)
	assert.Equal(t, testDeployer, owner)

	assert.Len(t, daoLogic.GetDAOs(), 1)

	tasks, err := daoLogic.Tasks("LGC")
	require.NoError(t, err)
	assert.NotEmpty(t, tasks)

	assert.Equal(t, testBase, daoLogic.BlockTimestamp())

	warped, err := daoLogic.WarpDays(3)
	require.NoError(t, err)
	assert.Equal(t, testBase+3*daySeconds, warped)

	_, err = daoLogic.WarpDays(-1)
	assert.ErrorIs(t, err, host.ErrTimeBackwards)
	assert.Equal(t, testBase+3*daySeconds, daoLogic.BlockTimestamp())
}

func TestDAOLogicSettings(t *testing.T) {
	engine := newTestEngine()
	daoLogic := NewDAOLogic(engine)

	settings := daoLogic.Settings()
	assert.Equal(t, model.DefaultHostSettings(), settings)

	settings.MaxSymbolLength = 10
	daoLogic.OverrideSettings(settings)
	assert.Equal(t, 10, daoLogic.Settings().MaxSymbolLength)
}

// developmentDAO 处于 DEVELOPMENT 阶段的记录，变更只能走治理提案
func developmentDAO(symbol string) model.DAO {
	return model.DAO{
		Symbol:   symbol,
		Name:     "Logic " + symbol,
		Phase:    model.PhaseDevelopment,
		Activity: []model.Activity{model.ActivityDefi},
		Params: model.DAOParameters{
			VePeriod: 180,
			PvPFee:   50,
		},
		Funding: []model.Funding{{
			Type:     model.FundingSeed,
			Start:    testBase - 20*daySeconds,
			End:      testBase - 10*daySeconds,
			MinRaise: 1000,
			MaxRaise: 10000,
			Raised:   2000,
		}},
		InitialChain: "Sonic",
		Deployer:     testDeployer,
	}
}

func TestProposalLogicRoundTrip(t *testing.T) {
	engine := newTestEngine()
	daoLogic := NewDAOLogic(engine)
	proposalLogic := NewProposalLogic(engine)

	require.NoError(t, daoLogic.AddLiveDAO(developmentDAO("GOV")))

	res, err := daoLogic.UpdateSocials(testDeployer, "GOV", []string{"https://x.com/gov"})
	require.NoError(t, err)
	require.False(t, res.Applied)

	proposals := proposalLogic.GetProposals()
	require.Len(t, proposals, 1)
	assert.Equal(t, res.ProposalID, proposals[0].ID)

	require.NoError(t, proposalLogic.ReceiveVotingResults(res.ProposalID, true))

	proposal, err := proposalLogic.GetProposal(res.ProposalID)
	require.NoError(t, err)
	assert.Equal(t, model.VotingStatusApproved, proposal.Status)

	got, err := daoLogic.GetDAO("GOV")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.com/gov"}, got.Socials)
}

func TestEngineSerializesAccess(t *testing.T) {
	engine := newTestEngine()
	daoLogic := NewDAOLogic(engine)

	_, err := daoLogic.CreateDAO(testDeployer, createInput("CNC"))
	require.NoError(t, err)

	// 并发读写经过引擎锁，竞态检测器不应报警
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = daoLogic.GetDAO("CNC")
				_ = daoLogic.GetDAOs()
				_, _ = daoLogic.Tasks("CNC")
			}
		}()
	}
	wg.Wait()
}

// auditDB 指向不可达地址的 gorm 连接
// 打开时跳过 ping，审计落库路径会真实执行并吞掉连接错误
func auditDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "host=127.0.0.1 port=1 user=audit dbname=audit sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestAuditMirrorConcurrency(t *testing.T) {
	h := host.New("146", testBase, model.DefaultHostSettings(), nil)
	engine := NewEngine(h, auditDB(t))
	daoLogic := NewDAOLogic(engine)
	proposalLogic := NewProposalLogic(engine)

	require.NoError(t, daoLogic.AddLiveDAO(developmentDAO("AUD")))

	// 提案创建与决议并发进行，审计镜像用的快照必须在引擎锁内取得
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				res, err := daoLogic.UpdateSocials(testDeployer, "AUD", []string{"https://x.com/aud"})
				if err != nil {
					continue
				}
				_ = proposalLogic.ReceiveVotingResults(res.ProposalID, (worker+j)%2 == 0)
				_, _ = daoLogic.GetDAO("AUD")
			}
		}(i)
	}
	wg.Wait()

	proposals := proposalLogic.GetProposals()
	require.Len(t, proposals, 100)
	for _, p := range proposals {
		assert.NotEqual(t, model.VotingStatusVoting, p.Status)
	}
}
