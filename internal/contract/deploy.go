// Package contract 管理 DAO 合约的确定性地址
// 每个 DAO 的每个合约角色在每条链上都有可预先计算的托管地址，
// 计算只依赖链 ID、DAO 符号、合约角色索引和预置盐值
package contract

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/stabilitydao/host/internal/model"
)

// ManagedAddress 计算 DAO 合约角色的确定性托管地址
func ManagedAddress(chainID string, symbol string, index model.ContractIndex, salt string) common.Address {
	var idx [8]byte
	binary.BigEndian.PutUint64(idx[:], uint64(index))

	hash := crypto.Keccak256(
		[]byte(chainID),
		[]byte(symbol),
		idx[:],
		[]byte(salt),
	)
	return common.BytesToAddress(hash[12:])
}

// SaltOf 取 DAO 为某链某合约角色预置的盐值，未预置时为空
func SaltOf(dao *model.DAO, chainID string, index model.ContractIndex) string {
	if dao.Salts == nil {
		return ""
	}
	return dao.Salts[chainID][index]
}

// Deploy 为 DAO 在指定链上记录一个合约角色的部署
// 真正的链上部署由外部系统完成，这里登记的是确定性地址占位
func Deploy(dao *model.DAO, chainID string, index model.ContractIndex) common.Address {
	address := ManagedAddress(chainID, dao.Symbol, index, SaltOf(dao, chainID, index))

	if dao.Deployments == nil {
		dao.Deployments = make(model.Deployments)
	}
	if dao.Deployments[chainID] == nil {
		dao.Deployments[chainID] = make(map[model.ContractIndex]common.Address)
	}
	dao.Deployments[chainID][index] = address

	return address
}
