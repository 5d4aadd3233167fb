package host

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/stabilitydao/host/internal/assets"
	"github.com/stabilitydao/host/internal/model"
)

// BridgingToken 可跨链桥接的代币与其桥合约
type BridgingToken struct {
	TokenData assets.TokenData `json:"token_data"`
	Bridge    common.Address   `json:"bridge"`
}

// BridgeTokens 跨链桥聚合视图
// 只读辅助：遍历部署到多条链的 DAO，将主代币与 VE 代币的部署
// 和各自的桥合约交叉引用代币元数据后按链分组
func (h *Host) BridgeTokens() map[string][]BridgingToken {
	r := make(map[string][]BridgingToken)

	for _, dao := range h.daos {
		if len(dao.Deployments) < 2 {
			continue
		}

		for chainID, byIndex := range dao.Deployments {
			tokenAddress, hasToken := byIndex[model.ContractToken3]
			tokenBridge, hasTokenBridge := byIndex[model.ContractTokenBridge8]
			xTokenAddress, hasXToken := byIndex[model.ContractXToken4]
			xTokenBridge, hasXTokenBridge := byIndex[model.ContractXTokenBridge9]

			if hasToken && hasTokenBridge {
				if tokenData := assets.GetTokenData(chainID, tokenAddress); tokenData != nil {
					r[chainID] = append(r[chainID], BridgingToken{
						TokenData: *tokenData,
						Bridge:    tokenBridge,
					})
				}
			}

			if hasXToken && hasXTokenBridge {
				if tokenData := assets.GetTokenData(chainID, xTokenAddress); tokenData != nil {
					r[chainID] = append(r[chainID], BridgingToken{
						TokenData: *tokenData,
						Bridge:    xTokenBridge,
					})
				}
			}
		}
	}

	return r
}

// GetUnit 在全部 DAO 中查找收益单元
func GetUnit(daos []model.DAO, unitID string) *model.Unit {
	for i := range daos {
		for j := range daos[i].Units {
			if daos[i].Units[j].UnitID == unitID {
				return &daos[i].Units[j]
			}
		}
	}
	return nil
}

// GetUnitMetaData 在全部 DAO 中查找收益单元元数据
// Units 与 UnitsMetaData 按下标平行对应
func GetUnitMetaData(daos []model.DAO, unitID string) *model.UnitMetaData {
	for i := range daos {
		for j := range daos[i].Units {
			if daos[i].Units[j].UnitID == unitID && j < len(daos[i].UnitsMetaData) {
				return &daos[i].UnitsMetaData[j]
			}
		}
	}
	return nil
}
