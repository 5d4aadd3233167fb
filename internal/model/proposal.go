package model

// DAOAction 受治理约束的 DAO 变更类型
type DAOAction int

const (
	ActionUpdateImages DAOAction = iota
	ActionUpdateSocials
	ActionUpdateNaming
	ActionUpdateUnits
	ActionUpdateFunding
	ActionUpdateVesting
)

// String 动作名称
func (a DAOAction) String() string {
	switch a {
	case ActionUpdateImages:
		return "UPDATE_IMAGES"
	case ActionUpdateSocials:
		return "UPDATE_SOCIALS"
	case ActionUpdateNaming:
		return "UPDATE_NAMING"
	case ActionUpdateUnits:
		return "UPDATE_UNITS"
	case ActionUpdateFunding:
		return "UPDATE_FUNDING"
	case ActionUpdateVesting:
		return "UPDATE_VESTING"
	}
	return "UNKNOWN"
}

// VotingStatus 提案投票状态
type VotingStatus int

const (
	VotingStatusVoting VotingStatus = iota
	VotingStatusApproved
	VotingStatusRejected
)

// String 状态名称
func (s VotingStatus) String() string {
	switch s {
	case VotingStatusVoting:
		return "VOTING"
	case VotingStatusApproved:
		return "APPROVED"
	case VotingStatusRejected:
		return "REJECTED"
	}
	return "UNKNOWN"
}

// ActionPayload 提案携带的变更载荷
// 每种 DAOAction 对应一个具体类型，解析时可静态分发，不做运行时形状断言
type ActionPayload interface {
	Action() DAOAction
}

// ImagesPayload UPDATE_IMAGES 载荷
type ImagesPayload struct {
	Images DAOImages `json:"images"`
}

func (ImagesPayload) Action() DAOAction { return ActionUpdateImages }

// SocialsPayload UPDATE_SOCIALS 载荷
type SocialsPayload struct {
	Socials []string `json:"socials"`
}

func (SocialsPayload) Action() DAOAction { return ActionUpdateSocials }

// UnitsPayload UPDATE_UNITS 载荷
type UnitsPayload struct {
	Units         []Unit         `json:"units"`
	UnitsMetaData []UnitMetaData `json:"units_meta_data"`
}

func (UnitsPayload) Action() DAOAction { return ActionUpdateUnits }

// FundingPayload UPDATE_FUNDING 载荷
type FundingPayload struct {
	Funding Funding `json:"funding"`
}

func (FundingPayload) Action() DAOAction { return ActionUpdateFunding }

// VestingPayload UPDATE_VESTING 载荷
type VestingPayload struct {
	Vestings []Vesting `json:"vestings"`
}

func (VestingPayload) Action() DAOAction { return ActionUpdateVesting }

// Proposal 治理提案
// 由非 DRAFT 阶段的变更请求创建，投票结果上报后进入终态，不会复用
type Proposal struct {
	ID      string        `json:"id"`
	Created int64         `json:"created"` // 创建时间戳，秒
	Symbol  string        `json:"symbol"`  // 目标 DAO
	Action  DAOAction     `json:"action"`
	Payload ActionPayload `json:"payload"`
	Status  VotingStatus  `json:"status"`
}
