// Package chain 提供静态链注册表
// 只读参考数据，用于标记 DAO 初始链和所有权查询时的链解析
package chain

import (
	"errors"
	"fmt"
)

// ChainName 支持的链名称
type ChainName string

const (
	NameEthereum ChainName = "Ethereum"
	NameSonic    ChainName = "Sonic"
	NameBase     ChainName = "Base"
	NamePolygon  ChainName = "Polygon"
	NameBsc      ChainName = "BSC"
	NameArbitrum ChainName = "Arbitrum"
	NameOptimism ChainName = "Optimism"
)

// Status 链接入状态
type Status string

const (
	StatusSupported  Status = "SUPPORTED"   // Host 已部署
	StatusAwaiting   Status = "AWAITING"    // 等待部署
	StatusNotSupport Status = "NOT_SUPPORT" // 暂不支持
)

// Chain 链元数据
type Chain struct {
	ChainID string    `json:"chain_id"`
	Name    ChainName `json:"name"`
	Status  Status    `json:"status"`
	Image   string    `json:"image,omitempty"`
}

// ErrChainNotFound 未知链
var ErrChainNotFound = errors.New("chain not found")

// Chains 链注册表: chainId -> 链元数据
var Chains = map[string]Chain{
	"1":     {ChainID: "1", Name: NameEthereum, Status: StatusSupported, Image: "/chains/ethereum.svg"},
	"146":   {ChainID: "146", Name: NameSonic, Status: StatusSupported, Image: "/chains/sonic.svg"},
	"8453":  {ChainID: "8453", Name: NameBase, Status: StatusAwaiting, Image: "/chains/base.svg"},
	"137":   {ChainID: "137", Name: NamePolygon, Status: StatusAwaiting, Image: "/chains/polygon.svg"},
	"56":    {ChainID: "56", Name: NameBsc, Status: StatusAwaiting, Image: "/chains/bsc.svg"},
	"42161": {ChainID: "42161", Name: NameArbitrum, Status: StatusAwaiting, Image: "/chains/arbitrum.svg"},
	"10":    {ChainID: "10", Name: NameOptimism, Status: StatusNotSupport, Image: "/chains/optimism.svg"},
}

// ByID 按链 ID 查找
func ByID(chainID string) (Chain, error) {
	c, ok := Chains[chainID]
	if !ok {
		return Chain{}, fmt.Errorf("%w: id %s", ErrChainNotFound, chainID)
	}
	return c, nil
}

// ByName 按链名称查找
func ByName(name ChainName) (Chain, error) {
	for _, c := range Chains {
		if c.Name == name {
			return c, nil
		}
	}
	return Chain{}, fmt.Errorf("%w: name %s", ErrChainNotFound, name)
}
