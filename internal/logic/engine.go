// Package logic 是 HTTP 层与引擎之间的业务逻辑层
// 引擎本身不加锁，这里是嵌入应用的全局串行化点：
// 同一 Host 实例的所有调用都经过同一把互斥锁
package logic

import (
	"encoding/json"
	"sync"

	"gorm.io/gorm"

	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/logger"
	"github.com/stabilitydao/host/internal/model"
)

// Engine 串行化的引擎封装
type Engine struct {
	mu   sync.Mutex
	host *host.Host
	db   *gorm.DB // 可为空，此时不落库
}

// NewEngine 创建引擎封装并接管事件落库
func NewEngine(h *host.Host, db *gorm.DB) *Engine {
	e := &Engine{host: h, db: db}
	h.SetEventSink(e)
	return e
}

// Append 实现 host.EventSink，把引擎事件镜像到审计表
// 引擎发射事件时同步调用，调用点已持有引擎锁
func (e *Engine) Append(event host.Event) {
	if e.db == nil {
		return
	}

	record := model.EventRecord{
		Symbol:         event.Symbol,
		Event:          event.Name,
		BlockTimestamp: event.BlockTimestamp,
		ChainID:        e.host.ChainID(),
	}
	if err := e.db.Create(&record).Error; err != nil {
		logger.Error("Failed to persist engine event %q: %v", event.Name, err)
	}
}

// withLock 串行执行引擎调用
func (e *Engine) withLock(fn func(h *host.Host) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.host)
}

// recordProposal 提案创建后写入审计表
// 接收在引擎锁内取得的提案快照，本身不读引擎状态
func (e *Engine) recordProposal(proposal model.Proposal) {
	if e.db == nil {
		return
	}

	payload, _ := json.Marshal(proposal.Payload)
	record := model.ProposalRecord{
		ProposalID: proposal.ID,
		Symbol:     proposal.Symbol,
		Action:     proposal.Action.String(),
		Status:     proposal.Status.String(),
		Payload:    string(payload),
		Created:    proposal.Created,
	}
	if err := e.db.Create(&record).Error; err != nil {
		logger.Error("Failed to persist proposal %s: %v", proposal.ID, err)
	}
}

// updateProposalStatus 投票结果上报后更新审计表状态
// 状态是在引擎锁内取得的快照，本身不读引擎状态
func (e *Engine) updateProposalStatus(proposalID, status string) {
	if e.db == nil {
		return
	}

	err := e.db.Model(&model.ProposalRecord{}).
		Where("proposal_id = ?", proposalID).
		Update("status", status).Error
	if err != nil {
		logger.Error("Failed to update proposal %s status: %v", proposalID, err)
	}
}
