// Package storage 提供启动时加载的内置 DAO 数据集
// 这是一份不可变的外部数据，核心引擎只负责整体载入，不负责生成
package storage

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/stabilitydao/host/internal/assets"
	"github.com/stabilitydao/host/internal/contract"
	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/model"
)

// 固定数据集内的时间点
const (
	hostSeedStart = 1775001600 // 2026-04-01
	hostSeedEnd   = 1780272000 // 2026-06-01
	hostTgeStart  = 1793577600 // 2026-11-02
	hostTgeEnd    = 1794182399 // 2026-11-08 23:59:59
	hostTgeClaim  = 1794268800 // 2026-11-10
)

// FixtureDAOs 内置 DAO 记录
func FixtureDAOs() []model.DAO {
	return []model.DAO{
		hostDAO(),
		stabilityDAO(),
	}
}

// Load 将内置数据集整体载入引擎，并注册 LIVE DAO 的代币元数据
func Load(h *host.Host) error {
	for _, dao := range FixtureDAOs() {
		if err := h.AddLiveDAO(dao); err != nil {
			return err
		}

		// LIVE DAO 的主代币与 VE 代币进入代币清单，供桥聚合视图交叉引用
		if dao.Phase.IsLive() {
			naming := host.GetTokensNaming(dao.Name, dao.Symbol)
			for chainID, byIndex := range dao.Deployments {
				if address, ok := byIndex[model.ContractToken3]; ok {
					assets.RegisterToken(assets.TokenData{
						ChainID: chainID, Address: address,
						Symbol: naming.TokenSym, Name: naming.TokenName, Decimals: 18,
					})
				}
				if address, ok := byIndex[model.ContractXToken4]; ok {
					assets.RegisterToken(assets.TokenData{
						ChainID: chainID, Address: address,
						Symbol: naming.XSymbol, Name: naming.XName, Decimals: 18,
					})
				}
			}
		}
	}
	return nil
}

// hostDAO Host 平台自身的 DAO，处于 DRAFT 阶段
func hostDAO() model.DAO {
	return model.DAO{
		Phase:   model.PhaseDraft,
		Name:    "DAO Host",
		Symbol:  "HOST",
		Socials: []string{"https://x.com/dao__host", "https://t.me/dao_host"},
		Activity: []model.Activity{
			model.ActivityBuilder,
			model.ActivityDefi,
		},
		Images: model.DAOImages{
			Token: "/HOST.png",
		},
		Deployments: model.Deployments{},
		ChainSettings: model.ChainSettings{
			"1": {BBRate: 20},
		},
		InitialChain: "Ethereum",
		Units: []model.Unit{
			{UnitID: "core"},
		},
		UnitsMetaData: []model.UnitMetaData{
			{Name: "Core", Status: model.UnitStatusBuilding, Type: model.UnitTypeDefiProtocol, RevenueShare: 100},
		},
		Params: model.DAOParameters{
			VePeriod:    180,
			PvPFee:      100,
			TotalSupply: 10_000_000e18,
		},
		Funding: []model.Funding{
			{
				Type:     model.FundingSeed,
				Start:    hostSeedStart,
				End:      hostSeedEnd,
				MinRaise: 40000,
				MaxRaise: 500000,
			},
			{
				Type:     model.FundingTGE,
				Start:    hostTgeStart,
				End:      hostTgeEnd,
				Claim:    hostTgeClaim,
				MinRaise: 400000,
				MaxRaise: 1200000,
			},
		},
		Vesting:            []model.Vesting{},
		GovernanceSettings: model.GovernanceSettings{},
		Deployer:           common.HexToAddress("0x0"),
		MetaDataLocation:   "local",
	}
}

// stabilityDAO 已上线并桥接到两条链的 DAO
func stabilityDAO() model.DAO {
	symbol := "STBL"

	deployments := model.Deployments{}
	for _, chainID := range []string{"146", "1"} {
		deployments[chainID] = map[model.ContractIndex]common.Address{
			model.ContractToken3:       contract.ManagedAddress(chainID, symbol, model.ContractToken3, ""),
			model.ContractXToken4:      contract.ManagedAddress(chainID, symbol, model.ContractXToken4, ""),
			model.ContractDAOToken5:    contract.ManagedAddress(chainID, symbol, model.ContractDAOToken5, ""),
			model.ContractStaking6:     contract.ManagedAddress(chainID, symbol, model.ContractStaking6, ""),
			model.ContractTokenBridge8: contract.ManagedAddress(chainID, symbol, model.ContractTokenBridge8, ""),
			model.ContractXTokenBridge9: contract.ManagedAddress(
				chainID, symbol, model.ContractXTokenBridge9, ""),
		}
	}

	return model.DAO{
		Phase:   model.PhaseLive,
		Name:    "Stability",
		Symbol:  symbol,
		Socials: []string{"https://x.com/stabilitydao", "https://t.me/stabilitydao"},
		Activity: []model.Activity{
			model.ActivityDefi,
			model.ActivityMev,
		},
		Images: model.DAOImages{
			SeedToken: "/seedSTBL.png",
			TgeToken:  "/saleSTBL.png",
			Token:     "/STBL.png",
			XToken:    "/xSTBL.png",
			DAOToken:  "/STBL_DAO.png",
		},
		Deployments: deployments,
		ChainSettings: model.ChainSettings{
			"146": {BBRate: 50},
			"1":   {BBRate: 30},
		},
		InitialChain: "Sonic",
		Units: []model.Unit{
			{UnitID: "stability:farm", ChainIDs: []string{"146"}},
		},
		UnitsMetaData: []model.UnitMetaData{
			{Name: "Farming", Status: model.UnitStatusLive, Type: model.UnitTypeDefiProtocol, RevenueShare: 100, Emoji: "🌾"},
		},
		Params: model.DAOParameters{
			VePeriod:    365,
			PvPFee:      50,
			TotalSupply: 1_000_000_000e18,
		},
		Funding: []model.Funding{
			{
				Type:     model.FundingSeed,
				Start:    1739577600,
				End:      1742428800,
				MinRaise: 100000,
				MaxRaise: 1000000,
				Raised:   350000,
			},
			{
				Type:     model.FundingTGE,
				Start:    1746057600,
				End:      1746662400,
				Claim:    1747267200,
				MinRaise: 500000,
				MaxRaise: 5000000,
				Raised:   1200000,
			},
		},
		Vesting: []model.Vesting{
			{
				Name:       "Team",
				Allocation: 15,
				Start:      1748822400,
				End:        1780358400,
			},
			{
				Name:       "Community",
				Allocation: 30,
				Start:      1748822400,
				End:        1764547200,
			},
		},
		GovernanceSettings: model.GovernanceSettings{},
		Deployer:           common.HexToAddress("0x88888887C3ebD4a33E34a15Db4254C74C75E5D4A"),
	}
}
