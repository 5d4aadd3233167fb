package model

import (
	"github.com/ethereum/go-ethereum/common"
)

// DAO 运行在 Host 上的去中心化组织
// 以 symbol 作为全局唯一主键，注册表中的记录只能通过 host 引擎变更
type DAO struct {
	// 基本信息
	Symbol string `json:"symbol"` // 可交易跨链 ERC-20 代币符号，小写后用作 slug
	Name   string `json:"name"`   // 组织名称，用于代币命名，不含 DAO 字样
	UID    string `json:"uid,omitempty"`

	// 生命周期
	Phase LifecyclePhase `json:"phase"`

	// 部署信息: chainId -> 合约角色 -> 合约地址
	Deployments Deployments `json:"deployments"`

	// 各链参数
	ChainSettings ChainSettings `json:"chain_settings"`

	// 代币经济学与收益分配参数
	Params DAOParameters `json:"params"`

	// 初始部署链
	InitialChain string `json:"initial_chain"`

	// 社区链接，通过 Host.UpdateSocials 更新
	Socials []string `json:"socials"`

	// 组织经营的活动类型
	Activity []Activity `json:"activity"`

	// 代币图片，绝对路径或相对路径
	Images DAOImages `json:"images"`

	// 组织拥有的收益单元
	Units []Unit `json:"units"`

	// 募资轮次
	Funding []Funding `json:"funding"`

	// 归属分配
	Vesting []Vesting `json:"vesting"`

	// 治理设置
	GovernanceSettings GovernanceSettings `json:"governance_settings"`

	// 部署者，仅在 DRAFT 阶段拥有权限
	Deployer common.Address `json:"deployer"`

	// 确定性合约地址盐值: chainId -> 合约角色 -> salt
	Salts map[string]map[ContractIndex]string `json:"salts,omitempty"`

	// 链下自定义元数据位置: "local" 或 "https://..."
	MetaDataLocation string `json:"meta_data_location,omitempty"`

	// 单元元数据（链下发射数据，与 Units 平行）
	UnitsMetaData []UnitMetaData `json:"units_meta_data"`
}

// LifecyclePhase DAO 生命周期阶段，代表代币经济学所处的时期
type LifecyclePhase string

const (
	// PhaseDraft 刚创建
	PhaseDraft LifecyclePhase = "DRAFT"
	// PhaseSeed 初始募资，SEED 开始后组织成为真正的 DAO
	PhaseSeed LifecyclePhase = "SEED"
	// PhaseSeedFailed 种子轮失败，已募集资金退回
	PhaseSeedFailed LifecyclePhase = "SEED_FAILED"
	// PhaseDevelopment 使用种子资金开发 MVP / 收益单元
	PhaseDevelopment LifecyclePhase = "DEVELOPMENT"
	// PhaseTGE 代币生成事件，为流动性与后续开发募资
	PhaseTGE LifecyclePhase = "TGE"
	// PhaseLiveCliff 归属开始前的锁定期
	PhaseLiveCliff LifecyclePhase = "LIVE_CLIFF"
	// PhaseLiveVesting 归属释放进行中
	PhaseLiveVesting LifecyclePhase = "LIVE_VESTING"
	// PhaseLive 归属结束，代币完全分发
	PhaseLive LifecyclePhase = "LIVE"
)

// IsLive 是否处于 LIVE 系列阶段
func (p LifecyclePhase) IsLive() bool {
	switch p {
	case PhaseLiveCliff, PhaseLiveVesting, PhaseLive:
		return true
	}
	return false
}

// Activity 组织活动类型
type Activity string

const (
	ActivityBuilder Activity = "BUILDER" // 自我开发活动
	ActivityDefi    Activity = "DEFI"    // 去中心化金融
	ActivityMev     Activity = "MEV"     // MEV 机会搜索
)

// DAOImages 代币图片槽位
type DAOImages struct {
	SeedToken string `json:"seed_token,omitempty"`
	TgeToken  string `json:"tge_token,omitempty"`
	Token     string `json:"token,omitempty"`
	XToken    string `json:"x_token,omitempty"`
	DAOToken  string `json:"dao_token,omitempty"`
}

// DAOParameters VE 代币经济学与收益分配参数
type DAOParameters struct {
	VePeriod      int64   `json:"ve_period"`                // 投票托管期，天
	PvPFee        float64 `json:"pvp_fee"`                  // 即时退出费率，百分比
	MinPower      float64 `json:"min_power,omitempty"`      // 成为持有者的最小质押量
	RecoveryShare float64 `json:"recovery_share,omitempty"` // 用于事故赔付的收入份额，百分比
	TotalSupply   float64 `json:"total_supply"`             // DAO 代币总供应量，TGE 开始前可修改
}

// ChainSettings DAO 在各链上的设置: chainId -> 设置
type ChainSettings map[string]ChainSetting

// ChainSetting 单链设置
type ChainSetting struct {
	BBRate int `json:"bb_rate"` // 该链的 buyback 比例
}

// GovernanceSettings DAO 治理设置
type GovernanceSettings struct {
	ProposalThreshold float64 `json:"proposal_threshold,omitempty"` // 创建提案所需的最小投票权
	TTBribe           float64 `json:"tt_bribe,omitempty"`           // 金库交易贿赂份额，百分比
}

// Deployments DAO 已部署合约: chainId -> 合约角色 -> 地址
type Deployments map[string]map[ContractIndex]common.Address
