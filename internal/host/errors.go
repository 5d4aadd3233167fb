package host

import "errors"

// 未找到类错误
var (
	ErrDAONotFound      = errors.New("dao not found")
	ErrFundingNotFound  = errors.New("funding not found")
	ErrProposalNotFound = errors.New("incorrect proposal")
)

// 状态类错误
var (
	ErrAlreadyReceived = errors.New("voting results already received")
	ErrForeverLive     = errors.New("forever live")
)

// 守卫类错误，调用方应等待时间窗口或先解决前置条件
var (
	ErrSolveTasksFirst     = errors.New("solve tasks first")
	ErrWaitFundingStart    = errors.New("wait funding start")
	ErrWaitFundingEnd      = errors.New("wait funding end")
	ErrTooLateSetupFunding = errors.New("too late, setup funding again")
	ErrWaitVestingStart    = errors.New("wait vesting start")
	ErrWaitVestingEnd      = errors.New("wait vesting end")
	ErrNotFundingPhase     = errors.New("not funding phase")
	ErrRaiseMaxExceeded    = errors.New("raise max exceeded")
	ErrTimeBackwards       = errors.New("block timestamp can not go backwards")
)

// 所有权类错误
var ErrNotOwner = errors.New("not an owner of dao")

// 创建校验类错误
var (
	ErrNameLength      = errors.New("name length out of bounds")
	ErrSymbolLength    = errors.New("symbol length out of bounds")
	ErrSymbolNotUnique = errors.New("symbol not unique")
	ErrVePeriod        = errors.New("ve period out of bounds")
	ErrPvPFee          = errors.New("pvp fee out of bounds")
	ErrNeedFunding     = errors.New("need funding")
)
