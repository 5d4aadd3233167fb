package model

import (
	"time"

	"gorm.io/gorm"
)

// EventRecord 引擎事件审计记录
// 引擎内存事件日志的落库镜像，只追加不修改
type EventRecord struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	Symbol         string `json:"symbol" gorm:"index"`          // 关联 DAO，可为空
	Event          string `json:"event" gorm:"not null"`        // 事件描述
	BlockTimestamp int64  `json:"block_timestamp" gorm:"index"` // 发生时的模拟区块时间
	ChainID        string `json:"chain_id"`                     // Host 实例所在链
}

// TableName 指定表名
func (EventRecord) TableName() string {
	return "host_event"
}

// ProposalRecord 治理提案审计记录
// 提案创建与投票结果上报时由 logic 层写入
type ProposalRecord struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	ProposalID string `json:"proposal_id" gorm:"uniqueIndex;not null"`
	Symbol     string `json:"symbol" gorm:"index;not null"`
	Action     string `json:"action" gorm:"not null"`
	Status     string `json:"status" gorm:"not null"`
	Payload    string `json:"payload" gorm:"type:text"` // 载荷 JSON 快照
	Created    int64  `json:"created"`                  // 引擎内创建时间戳
}

// TableName 指定表名
func (ProposalRecord) TableName() string {
	return "host_proposal"
}
