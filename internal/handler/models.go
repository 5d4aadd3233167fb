package handler

import (
	"github.com/stabilitydao/host/internal/model"
)

// 请求模型
// 调用方身份通过 caller 字段显式传入，签名验证超出本服务范围

// CreateDAORequest 创建 DAO 请求
type CreateDAORequest struct {
	Caller           string               `json:"caller" binding:"required"`
	Name             string               `json:"name" binding:"required"`
	Symbol           string               `json:"symbol" binding:"required"`
	Activity         []model.Activity     `json:"activity"`
	Params           model.DAOParameters  `json:"params"`
	Funding          []model.Funding      `json:"funding"`
	MetaDataLocation string               `json:"meta_data_location"`
}

// FundRequest 注资请求
type FundRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// UpdateImagesRequest 更新图片请求
type UpdateImagesRequest struct {
	Caller string          `json:"caller" binding:"required"`
	Images model.DAOImages `json:"images"`
}

// UpdateSocialsRequest 更新社区链接请求
type UpdateSocialsRequest struct {
	Caller  string   `json:"caller" binding:"required"`
	Socials []string `json:"socials"`
}

// UpdateUnitsRequest 更新收益单元请求
type UpdateUnitsRequest struct {
	Caller        string               `json:"caller" binding:"required"`
	Units         []model.Unit         `json:"units"`
	UnitsMetaData []model.UnitMetaData `json:"units_meta_data"`
}

// UpdateFundingRequest 更新募资轮次请求
type UpdateFundingRequest struct {
	Caller  string        `json:"caller" binding:"required"`
	Funding model.Funding `json:"funding"`
}

// UpdateVestingRequest 更新归属分配请求
type UpdateVestingRequest struct {
	Caller   string          `json:"caller" binding:"required"`
	Vestings []model.Vesting `json:"vestings"`
}

// VotingResultRequest 投票结果上报请求
type VotingResultRequest struct {
	Succeeded *bool `json:"succeeded" binding:"required"`
}

// WarpRequest 推进模拟时间请求
type WarpRequest struct {
	Days int64 `json:"days" binding:"required,gt=0"`
}
