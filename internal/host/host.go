// Package host 实现 DAO 生命周期引擎
// 引擎持有 DAO 注册表、阶段状态机、变更门控（直接执行或治理提案）
// 以及派生视图（任务清单、路线图）。
//
// 引擎是单线程同步模型：每个公开操作都运行到结束才返回，内部不加锁，
// 嵌入方必须对同一实例的调用做串行化（见 logic 层）。
// 模拟区块时间只通过显式管理调用推进，引擎内部从不读取墙上时钟。
package host

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/stabilitydao/host/internal/chain"
	"github.com/stabilitydao/host/internal/messenger"
	"github.com/stabilitydao/host/internal/model"
	"github.com/stabilitydao/host/internal/validation"
)

// HostDescription Host 平台描述
const HostDescription = "Where True DAOs Live & Work"

// DAOFeatures Host 上 DAO 的能力清单
var DAOFeatures = []string{
	"True DAO: only holders owns, manage and earn whole value",
	"Inter-chain setup with bridging",
	"Decentralized fundraising",
	"Self-developing via Builder activity",
	"Tokenomics constructor",
	"Proper token launch flow to get cg/cmc and wallets listings",
	"Deterministic managed contract addresses",
}

// Event 引擎发射的事件
type Event struct {
	Symbol         string `json:"symbol,omitempty"`
	Name           string `json:"name"`
	BlockTimestamp int64  `json:"block_timestamp"`
}

// EventSink 事件外部接收器，引擎每次发射事件时同步调用
type EventSink interface {
	Append(event Event)
}

// Host 部署在单条链上的 Host 实例
type Host struct {
	// 实例部署链 ID
	chainID string

	// 模拟区块时间戳，秒，只通过 WarpDays/SetBlockTimestamp 推进
	blockTimestamp int64

	// 本地 DAO 注册表: symbol -> 记录
	daos map[string]*model.DAO

	// 全链已占用的 DAO 符号，永不释放
	usedSymbols map[string]bool

	// 已发射事件日志，只追加
	events []Event

	// 治理提案注册表，仅 DAO 初始链可创建
	proposals map[string]*model.Proposal

	// 单调提案序号
	nextProposalID uint64

	// 平台设置
	settings model.HostSettings

	// 跨链消息出站端口
	messenger messenger.Messenger

	// 可选的事件外部接收器
	sink EventSink
}

// New 创建 Host 实例
// initialTimestamp 为初始模拟区块时间；msgr 为空时丢弃跨链消息
func New(chainID string, initialTimestamp int64, settings model.HostSettings, msgr messenger.Messenger) *Host {
	if msgr == nil {
		msgr = messenger.Nop{}
	}
	return &Host{
		chainID:        chainID,
		blockTimestamp: initialTimestamp,
		daos:           make(map[string]*model.DAO),
		usedSymbols:    make(map[string]bool),
		proposals:      make(map[string]*model.Proposal),
		nextProposalID: 1,
		settings:       settings,
		messenger:      msgr,
	}
}

// SetEventSink 设置事件外部接收器
func (h *Host) SetEventSink(sink EventSink) {
	h.sink = sink
}

// ChainID 实例部署链
func (h *Host) ChainID() string {
	return h.chainID
}

// Settings 当前平台设置
func (h *Host) Settings() model.HostSettings {
	return h.settings
}

// OverrideSettings 管理员覆盖平台设置
func (h *Host) OverrideSettings(settings model.HostSettings) {
	h.settings = settings
}

// BlockTimestamp 当前模拟区块时间
func (h *Host) BlockTimestamp() int64 {
	return h.blockTimestamp
}

// WarpDays 推进模拟区块时间指定天数，只允许向前
func (h *Host) WarpDays(days int64) error {
	if days < 0 {
		return fmt.Errorf("%w: %d days", ErrTimeBackwards, days)
	}
	h.blockTimestamp += days * daySeconds
	return nil
}

// SetBlockTimestamp 设置模拟区块时间，只允许向前
func (h *Host) SetBlockTimestamp(timestamp int64) error {
	if timestamp < h.blockTimestamp {
		return fmt.Errorf("%w: %d < %d", ErrTimeBackwards, timestamp, h.blockTimestamp)
	}
	h.blockTimestamp = timestamp
	return nil
}

// CreateDAOInput 创建 DAO 的输入
type CreateDAOInput struct {
	Name             string
	Symbol           string
	Activity         []model.Activity
	Params           model.DAOParameters
	Funding          []model.Funding
	MetaDataLocation string
}

// CreateDAO 创建新 DAO
// 通过全部校验后写入注册表并占用符号，初始阶段为 DRAFT
func (h *Host) CreateDAO(caller common.Address, in CreateDAOInput) (model.DAO, error) {
	instanceChain, err := chain.ByID(h.chainID)
	if err != nil {
		return model.DAO{}, err
	}

	dao := &model.DAO{
		Phase:    model.PhaseDraft,
		Name:     in.Name,
		Symbol:   in.Symbol,
		Activity: in.Activity,
		Socials:  []string{},
		Images:   model.DAOImages{},
		Units:    []model.Unit{},
		Params:   in.Params,
		ChainSettings: model.ChainSettings{
			h.chainID: {BBRate: 50},
		},
		InitialChain:       string(instanceChain.Name),
		Funding:            in.Funding,
		Vesting:            []model.Vesting{},
		GovernanceSettings: model.GovernanceSettings{},
		Deployer:           caller,
		Deployments:        model.Deployments{},
		MetaDataLocation:   in.MetaDataLocation,
		UnitsMetaData:      []model.UnitMetaData{},
	}

	if err := h.validate(dao); err != nil {
		return model.DAO{}, err
	}

	h.daos[dao.Symbol] = dao
	h.usedSymbols[dao.Symbol] = true
	h.emit(dao.Symbol, "DAO created")
	h.messenger.Send(messenger.Message{Type: messenger.MessageNewDAOSymbol, Symbol: dao.Symbol})

	return dao.Clone(), nil
}

// AddLiveDAO 批量引导插入一个已处于后期阶段的 DAO
// 绕过 DRAFT 所有权门控，仅限可信校验方调用
func (h *Host) AddLiveDAO(dao model.DAO) error {
	d := dao.Clone()
	if err := h.validate(&d); err != nil {
		return err
	}

	h.daos[d.Symbol] = &d
	h.usedSymbols[d.Symbol] = true
	h.emit(d.Symbol, "DAO created")
	h.messenger.Send(messenger.Message{Type: messenger.MessageNewDAOSymbol, Symbol: d.Symbol})

	return nil
}

// GetDAO 按符号查询 DAO，返回副本
func (h *Host) GetDAO(symbol string) (model.DAO, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return model.DAO{}, err
	}
	return dao.Clone(), nil
}

// ListDAOs 列出全部 DAO，返回副本
func (h *Host) ListDAOs() []model.DAO {
	r := make([]model.DAO, 0, len(h.daos))
	for _, dao := range h.daos {
		r = append(r, dao.Clone())
	}
	return r
}

// GetDaoOwner 解析 DAO 当前的所有者
// DRAFT 阶段为部署者；SEED/DEVELOPMENT/TGE 为初始链上的种子代币合约；
// 之后为本实例链上的治理代币合约。控制权随募资进程从单一部署者移交给持有者。
func (h *Host) GetDaoOwner(symbol string) (common.Address, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return common.Address{}, err
	}

	if dao.Phase == model.PhaseDraft {
		return dao.Deployer, nil
	}

	switch dao.Phase {
	case model.PhaseSeed, model.PhaseDevelopment, model.PhaseTGE:
		initial, err := chain.ByName(chain.ChainName(dao.InitialChain))
		if err != nil {
			return common.Address{}, err
		}
		return dao.Deployments[initial.ChainID][model.ContractSeedToken1], nil
	}

	return dao.Deployments[h.chainID][model.ContractDAOToken5], nil
}

// Events 已发射事件日志
func (h *Host) Events() []Event {
	return append([]Event(nil), h.events...)
}

// TokensNaming DAO 代币族命名
type TokensNaming struct {
	SeedName   string `json:"seed_name"`
	SeedSymbol string `json:"seed_symbol"`
	TgeName    string `json:"tge_name"`
	TgeSymbol  string `json:"tge_symbol"`
	TokenName  string `json:"token_name"`
	TokenSym   string `json:"token_symbol"`
	XName      string `json:"x_name"`
	XSymbol    string `json:"x_symbol"`
	DAOName    string `json:"dao_name"`
	DAOSymbol  string `json:"dao_symbol"`
}

// GetTokensNaming 由名称与符号派生 DAO 代币族命名
func GetTokensNaming(name, symbol string) TokensNaming {
	return TokensNaming{
		SeedName:   name + " SEED",
		SeedSymbol: "seed" + symbol,
		TgeName:    name + " PRESALE",
		TgeSymbol:  "sale" + symbol,
		TokenName:  name,
		TokenSym:   symbol,
		XName:      "x" + name,
		XSymbol:    "x" + symbol,
		DAOName:    name + " DAO",
		DAOSymbol:  symbol + "_DAO",
	}
}

// validate 创建时的严格校验
// 名称/符号长度与唯一性、VE 周期与退出费边界、至少一轮募资，
// 活动组合校验委托给 validation 包
func (h *Host) validate(dao *model.DAO) error {
	if len(dao.Name) < h.settings.MinNameLength || len(dao.Name) > h.settings.MaxNameLength {
		return fmt.Errorf("%w: %d", ErrNameLength, len(dao.Name))
	}

	if len(dao.Symbol) < h.settings.MinSymbolLength || len(dao.Symbol) > h.settings.MaxSymbolLength {
		return fmt.Errorf("%w: %d", ErrSymbolLength, len(dao.Symbol))
	}
	if h.usedSymbols[dao.Symbol] {
		return fmt.Errorf("%w: %s", ErrSymbolNotUnique, dao.Symbol)
	}

	if dao.Params.VePeriod < h.settings.MinVePeriod || dao.Params.VePeriod > h.settings.MaxVePeriod {
		return fmt.Errorf("%w: %d", ErrVePeriod, dao.Params.VePeriod)
	}

	if dao.Params.PvPFee < h.settings.MinPvPFee || dao.Params.PvPFee > h.settings.MaxPvPFee {
		return fmt.Errorf("%w: %.2f", ErrPvPFee, dao.Params.PvPFee)
	}

	if len(dao.Funding) == 0 {
		return ErrNeedFunding
	}

	return validation.ValidateActivity(dao.Activity)
}

// dao 取注册表内的记录
func (h *Host) dao(symbol string) (*model.DAO, error) {
	if dao, ok := h.daos[symbol]; ok {
		return dao, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrDAONotFound, symbol)
}

// fundingIndex 查找 DAO 某类型募资轮次的下标
func (h *Host) fundingIndex(dao *model.DAO, fundingType model.FundingType) (int, error) {
	for i := range dao.Funding {
		if dao.Funding[i].Type == fundingType {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s of %s", ErrFundingNotFound, fundingType, dao.Symbol)
}

// tgeData 取 DAO 的 TGE 轮次，不存在时为 nil
func (h *Host) tgeData(dao *model.DAO) *model.Funding {
	for i := range dao.Funding {
		if dao.Funding[i].Type == model.FundingTGE {
			return &dao.Funding[i]
		}
	}
	return nil
}

// emit 追加事件到日志并通知接收器
func (h *Host) emit(symbol, name string) {
	event := Event{Symbol: symbol, Name: name, BlockTimestamp: h.blockTimestamp}
	h.events = append(h.events, event)
	if h.sink != nil {
		h.sink.Append(event)
	}
}

const daySeconds = 24 * 3600
