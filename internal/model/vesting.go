package model

import "github.com/ethereum/go-ethereum/common"

// Vesting 归属分配数据
// 约束: 当 TGE 设有 claim 时，单个 DAO 所有分配比例之和必须严格小于 100
type Vesting struct {
	Name        string `json:"name"`                  // 分配的简短名称
	Description string `json:"description,omitempty"` // 资金用途说明

	// 分配比例，百分比点数
	Allocation float64 `json:"allocation"`

	Start int64 `json:"start"` // 开始时间戳，秒
	End   int64 `json:"end"`   // 结束时间戳，秒

	Address common.Address `json:"address,omitempty"` // 接收地址
}
