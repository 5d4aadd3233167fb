package model

// ContractIndex DAO 可部署合约的角色索引，索引用于预置确定性地址盐值
type ContractIndex int

const (
	ContractNotUsed0 ContractIndex = iota
	ContractSeedToken1
	ContractTgeToken2
	ContractToken3
	ContractXToken4
	ContractDAOToken5
	ContractStaking6
	ContractRecovery7
	ContractTokenBridge8
	ContractXTokenBridge9
	ContractDAOTokenBridge10
	ContractVesting1_11
	ContractVesting2_12
	ContractVesting3_13
	ContractVesting4_14
	ContractVesting5_15
	ContractVesting6_16
	ContractVesting7_17
	ContractVesting8_18
	ContractVesting9_19
	ContractVesting10_20
	ContractRevenueRouter21

	// 新索引在此之前追加

	ContractIndexCount
)

// ContractIndexInfo 合约角色的展示信息
type ContractIndexInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ContractIndices 各合约角色的展示信息表
var ContractIndices = map[ContractIndex]ContractIndexInfo{
	ContractSeedToken1:       {Name: "Seed token", Description: "Seed round receipt token"},
	ContractTgeToken2:        {Name: "Presale token", Description: "TGE pre-sale receipt token"},
	ContractToken3:           {Name: "Token", Description: "Main tradable DAO token"},
	ContractXToken4:          {Name: "VE-token", Description: "VE-tokenomics entry token"},
	ContractDAOToken5:        {Name: "DAO token", Description: "Governance token"},
	ContractStaking6:         {Name: "Staking", Description: "Staking contract"},
	ContractRecovery7:        {Name: "Recovery", Description: "Accident recovery system contract"},
	ContractTokenBridge8:     {Name: "Token bridge", Description: "Bridge for main token"},
	ContractXTokenBridge9:    {Name: "VE-token bridge", Description: "Bridge for VE-token"},
	ContractDAOTokenBridge10: {Name: "DAO token bridge", Description: "Bridge for Governance token"},
	ContractVesting1_11:      {Name: "Vesting 1"},
	ContractVesting2_12:      {Name: "Vesting 2"},
	ContractVesting3_13:      {Name: "Vesting 3"},
	ContractVesting4_14:      {Name: "Vesting 4"},
	ContractVesting5_15:      {Name: "Vesting 5"},
	ContractVesting6_16:      {Name: "Vesting 6"},
	ContractVesting7_17:      {Name: "Vesting 7"},
	ContractVesting8_18:      {Name: "Vesting 8"},
	ContractVesting9_19:      {Name: "Vesting 9"},
	ContractVesting10_20:     {Name: "Vesting 10"},
	ContractRevenueRouter21:  {Name: "Revenue Router", Description: "Revenue collector and utilizer contract"},
}
