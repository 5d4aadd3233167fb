package model

// HostSettings Host 实例的平台级设置
// 构造后只读，仅允许显式的管理员覆盖
type HostSettings struct {
	PriceDAO    float64 `json:"price_dao" mapstructure:"price_dao"`
	PriceUnit   float64 `json:"price_unit" mapstructure:"price_unit"`
	PriceOracle float64 `json:"price_oracle" mapstructure:"price_oracle"`
	PriceBridge float64 `json:"price_bridge" mapstructure:"price_bridge"`

	MinNameLength   int `json:"min_name_length" mapstructure:"min_name_length"`
	MaxNameLength   int `json:"max_name_length" mapstructure:"max_name_length"`
	MinSymbolLength int `json:"min_symbol_length" mapstructure:"min_symbol_length"`
	MaxSymbolLength int `json:"max_symbol_length" mapstructure:"max_symbol_length"`

	MinVePeriod int64 `json:"min_ve_period" mapstructure:"min_ve_period"` // 天
	MaxVePeriod int64 `json:"max_ve_period" mapstructure:"max_ve_period"` // 天

	MinPvPFee float64 `json:"min_pvp_fee" mapstructure:"min_pvp_fee"`
	MaxPvPFee float64 `json:"max_pvp_fee" mapstructure:"max_pvp_fee"`

	MinFundingDuration int64   `json:"min_funding_duration" mapstructure:"min_funding_duration"` // 最短募资时长，天
	MaxFundingDuration int64   `json:"max_funding_duration" mapstructure:"max_funding_duration"` // 最长募资时长，天
	MinFundingRaise    float64 `json:"min_funding_raise" mapstructure:"min_funding_raise"`       // 最小允许募资额
	MaxFundingRaise    float64 `json:"max_funding_raise" mapstructure:"max_funding_raise"`       // 最大允许募资额

	MinVestingNameLen  int   `json:"min_vesting_name_len" mapstructure:"min_vesting_name_len"`
	MaxVestingNameLen  int   `json:"max_vesting_name_len" mapstructure:"max_vesting_name_len"`
	MinVestingDuration int64 `json:"min_vesting_duration" mapstructure:"min_vesting_duration"` // 最短归属时长，天
	MaxVestingDuration int64 `json:"max_vesting_duration" mapstructure:"max_vesting_duration"` // 最长归属时长，天

	// vesting.start 与 tge.claim 之间的最小间隔，天
	MinCliff int64 `json:"min_cliff" mapstructure:"min_cliff"`
}

// DefaultHostSettings 平台默认设置
func DefaultHostSettings() HostSettings {
	return HostSettings{
		PriceDAO:    1000,
		PriceUnit:   1000,
		PriceOracle: 1000,
		PriceBridge: 1000,

		MinNameLength:   1,
		MaxNameLength:   20,
		MinSymbolLength: 1,
		MaxSymbolLength: 7,

		MinVePeriod: 14,
		MaxVePeriod: 365 * 4,

		MinPvPFee: 10,
		MaxPvPFee: 100,

		MinFundingDuration: 1,
		MaxFundingDuration: 180,
		MinFundingRaise:    1000,
		MaxFundingRaise:    1e12,

		MinVestingNameLen:  1,
		MaxVestingNameLen:  20,
		MinVestingDuration: 10,
		MaxVestingDuration: 365,

		MinCliff: 15,
	}
}
