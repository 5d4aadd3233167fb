package logic

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/model"
)

// DAOLogic DAO 业务逻辑
type DAOLogic struct {
	engine *Engine
}

// NewDAOLogic 创建 DAO 业务逻辑
func NewDAOLogic(engine *Engine) *DAOLogic {
	return &DAOLogic{engine: engine}
}

// CreateDAO 创建 DAO
func (l *DAOLogic) CreateDAO(caller common.Address, in host.CreateDAOInput) (model.DAO, error) {
	var dao model.DAO
	err := l.engine.withLock(func(h *host.Host) error {
		var err error
		dao, err = h.CreateDAO(caller, in)
		return err
	})
	return dao, err
}

// AddLiveDAO 可信方批量引导插入
func (l *DAOLogic) AddLiveDAO(dao model.DAO) error {
	return l.engine.withLock(func(h *host.Host) error {
		return h.AddLiveDAO(dao)
	})
}

// GetDAOs 获取全部 DAO
func (l *DAOLogic) GetDAOs() []model.DAO {
	var daos []model.DAO
	_ = l.engine.withLock(func(h *host.Host) error {
		daos = h.ListDAOs()
		return nil
	})
	return daos
}

// GetDAO 获取 DAO 详情
func (l *DAOLogic) GetDAO(symbol string) (model.DAO, error) {
	var dao model.DAO
	err := l.engine.withLock(func(h *host.Host) error {
		var err error
		dao, err = h.GetDAO(symbol)
		return err
	})
	return dao, err
}

// GetDaoOwner 解析 DAO 当前所有者
func (l *DAOLogic) GetDaoOwner(symbol string) (common.Address, error) {
	var owner common.Address
	err := l.engine.withLock(func(h *host.Host) error {
		var err error
		owner, err = h.GetDaoOwner(symbol)
		return err
	})
	return owner, err
}

// ChangePhase 推进生命周期阶段
func (l *DAOLogic) ChangePhase(symbol string) error {
	return l.engine.withLock(func(h *host.Host) error {
		return h.ChangePhase(symbol)
	})
}

// Fund 注资当前募资轮次
func (l *DAOLogic) Fund(symbol string, amount float64) error {
	return l.engine.withLock(func(h *host.Host) error {
		return h.Fund(symbol, amount)
	})
}

// Tasks 待办清单
func (l *DAOLogic) Tasks(symbol string) ([]host.Task, error) {
	var tasks []host.Task
	err := l.engine.withLock(func(h *host.Host) error {
		var err error
		tasks, err = h.Tasks(symbol)
		return err
	})
	return tasks, err
}

// Roadmap 阶段时间线
func (l *DAOLogic) Roadmap(symbol string) ([]host.RoadmapItem, error) {
	var roadmap []host.RoadmapItem
	err := l.engine.withLock(func(h *host.Host) error {
		var err error
		roadmap, err = h.Roadmap(symbol)
		return err
	})
	return roadmap, err
}

// UpdateImages 更新代币图片
func (l *DAOLogic) UpdateImages(caller common.Address, symbol string, images model.DAOImages) (host.UpdateResult, error) {
	return l.update(func(h *host.Host) (host.UpdateResult, error) {
		return h.UpdateImages(caller, symbol, images)
	})
}

// UpdateSocials 更新社区链接
func (l *DAOLogic) UpdateSocials(caller common.Address, symbol string, socials []string) (host.UpdateResult, error) {
	return l.update(func(h *host.Host) (host.UpdateResult, error) {
		return h.UpdateSocials(caller, symbol, socials)
	})
}

// UpdateUnits 更新收益单元
func (l *DAOLogic) UpdateUnits(caller common.Address, symbol string, units []model.Unit, unitsMetaData []model.UnitMetaData) (host.UpdateResult, error) {
	return l.update(func(h *host.Host) (host.UpdateResult, error) {
		return h.UpdateUnits(caller, symbol, units, unitsMetaData)
	})
}

// UpdateFunding 更新募资轮次
func (l *DAOLogic) UpdateFunding(caller common.Address, symbol string, funding model.Funding) (host.UpdateResult, error) {
	return l.update(func(h *host.Host) (host.UpdateResult, error) {
		return h.UpdateFunding(caller, symbol, funding)
	})
}

// UpdateVesting 更新归属分配
func (l *DAOLogic) UpdateVesting(caller common.Address, symbol string, vestings []model.Vesting) (host.UpdateResult, error) {
	return l.update(func(h *host.Host) (host.UpdateResult, error) {
		return h.UpdateVesting(caller, symbol, vestings)
	})
}

// update 变更类调用的公共路径，产生提案时写审计表
// 提案快照必须在锁内取得，落库在锁外进行
func (l *DAOLogic) update(fn func(h *host.Host) (host.UpdateResult, error)) (host.UpdateResult, error) {
	var result host.UpdateResult
	var proposal model.Proposal
	err := l.engine.withLock(func(h *host.Host) error {
		var err error
		result, err = fn(h)
		if err != nil {
			return err
		}
		if result.ProposalID != "" {
			proposal, err = h.GetProposal(result.ProposalID)
		}
		return err
	})
	if err != nil {
		return host.UpdateResult{}, err
	}

	if result.ProposalID != "" {
		l.engine.recordProposal(proposal)
	}
	return result, nil
}

// BridgeTokens 跨链桥聚合视图
func (l *DAOLogic) BridgeTokens() map[string][]host.BridgingToken {
	var r map[string][]host.BridgingToken
	_ = l.engine.withLock(func(h *host.Host) error {
		r = h.BridgeTokens()
		return nil
	})
	return r
}

// WarpDays 管理员推进模拟区块时间
func (l *DAOLogic) WarpDays(days int64) (int64, error) {
	var timestamp int64
	err := l.engine.withLock(func(h *host.Host) error {
		if err := h.WarpDays(days); err != nil {
			return err
		}
		timestamp = h.BlockTimestamp()
		return nil
	})
	return timestamp, err
}

// OverrideSettings 管理员覆盖平台设置
func (l *DAOLogic) OverrideSettings(settings model.HostSettings) {
	_ = l.engine.withLock(func(h *host.Host) error {
		h.OverrideSettings(settings)
		return nil
	})
}

// Settings 当前平台设置
func (l *DAOLogic) Settings() model.HostSettings {
	var settings model.HostSettings
	_ = l.engine.withLock(func(h *host.Host) error {
		settings = h.Settings()
		return nil
	})
	return settings
}

// BlockTimestamp 当前模拟区块时间
func (l *DAOLogic) BlockTimestamp() int64 {
	var timestamp int64
	_ = l.engine.withLock(func(h *host.Host) error {
		timestamp = h.BlockTimestamp()
		return nil
	})
	return timestamp
}
