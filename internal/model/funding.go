package model

// FundingType 募资轮次类型
type FundingType string

const (
	FundingSeed FundingType = "SEED" // 种子轮，先于产品开发
	FundingTGE  FundingType = "TGE"  // 代币生成事件，先于公开分发
)

// Funding 募资轮次数据
// 约束: raised 永远不会达到 maxRaise；start < end
type Funding struct {
	Type     FundingType `json:"type"`
	Start    int64       `json:"start"` // 开始时间戳，秒
	End      int64       `json:"end"`   // 结束时间戳，秒
	MinRaise float64     `json:"min_raise"`
	MaxRaise float64     `json:"max_raise"`
	Raised   float64     `json:"raised"`

	// DAO 正式启动日期（TGE 结束、DAO 代币部署完成之后），仅 TGE 轮使用
	Claim int64 `json:"claim,omitempty"`
}

// Distribution TGE 分发时间点，未设置 claim 时取轮次结束时间
func (f Funding) Distribution() int64 {
	if f.Claim != 0 {
		return f.Claim
	}
	return f.End
}
