// Package messenger 提供跨链通知的出站端口
// 发送是 fire-and-forget，没有确认、重试或顺序保证，
// 真正的投递语义属于外部消息子系统
package messenger

import (
	"encoding/json"

	"github.com/panjf2000/ants/v2"

	"github.com/stabilitydao/host/internal/logger"
)

// MessageType 跨链消息类型
type MessageType int

const (
	MessageNewDAOSymbol MessageType = iota
	MessageDAORenameSymbol
	MessageDAOBridged
)

// String 消息类型名称
func (t MessageType) String() string {
	switch t {
	case MessageNewDAOSymbol:
		return "NEW_DAO_SYMBOL"
	case MessageDAORenameSymbol:
		return "DAO_RENAME_SYMBOL"
	case MessageDAOBridged:
		return "DAO_BRIDGED"
	}
	return "UNKNOWN"
}

// Message 跨链消息
type Message struct {
	Type   MessageType `json:"type"`
	Symbol string      `json:"symbol"`
}

// Messenger 出站消息接口，引擎只调用不等待
type Messenger interface {
	Send(msg Message)
}

// Nop 丢弃所有消息
type Nop struct{}

// Send 实现 Messenger
func (Nop) Send(Message) {}

// Pool 基于协程池的消息分发器
type Pool struct {
	pool *ants.Pool
}

// NewPool 创建消息分发器
func NewPool(size int) (*Pool, error) {
	if size <= 0 {
		size = 8
	}
	p, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: p}, nil
}

// Send 提交消息到协程池，池满或已关闭时丢弃
func (p *Pool) Send(msg Message) {
	err := p.pool.Submit(func() {
		// 外部消息子系统的桩实现，仅记录
		data, _ := json.Marshal(msg)
		logger.Info("Cross-chain message dispatched: %s %s", msg.Type, string(data))
	})
	if err != nil {
		logger.Warn("Cross-chain message dropped: %s %s: %v", msg.Type, msg.Symbol, err)
	}
}

// Release 关闭协程池
func (p *Pool) Release() {
	p.pool.Release()
}
