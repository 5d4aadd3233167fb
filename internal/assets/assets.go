// Package assets 提供静态代币元数据查询
// 只读参考数据，供跨链桥聚合视图交叉引用
package assets

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// TokenData 代币元数据
type TokenData struct {
	ChainID  string         `json:"chain_id"`
	Address  common.Address `json:"address"`
	Symbol   string         `json:"symbol"`
	Name     string         `json:"name"`
	Decimals int            `json:"decimals"`
	LogoURI  string         `json:"logo_uri,omitempty"`
}

// tokenlist 内置代币清单，按链分组
var tokenlist = map[string][]TokenData{
	"1": {
		{ChainID: "1", Address: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18},
		{ChainID: "1", Address: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), Symbol: "USDC", Name: "USD Coin", Decimals: 6},
	},
	"146": {
		{ChainID: "146", Address: common.HexToAddress("0x039e2fB66102314Ce7b64Ce5Ce3E5183bc94aD38"), Symbol: "wS", Name: "Wrapped Sonic", Decimals: 18},
		{ChainID: "146", Address: common.HexToAddress("0x29219dd400f2Bf60E5a23d13Be72B486D4038894"), Symbol: "USDC.e", Name: "Bridged USDC", Decimals: 6},
	},
}

// GetTokenData 查询某链上某地址的代币元数据，未知代币返回 nil
func GetTokenData(chainID string, address common.Address) *TokenData {
	for _, token := range tokenlist[chainID] {
		if token.Address == address {
			t := token
			return &t
		}
	}
	return nil
}

// GetTokenBySymbol 按符号查询代币，大小写不敏感
func GetTokenBySymbol(chainID string, symbol string) *TokenData {
	for _, token := range tokenlist[chainID] {
		if strings.EqualFold(token.Symbol, symbol) {
			t := token
			return &t
		}
	}
	return nil
}

// RegisterToken 注册新代币，DAO 代币部署后由引擎写入
func RegisterToken(token TokenData) {
	tokenlist[token.ChainID] = append(tokenlist[token.ChainID], token)
}
