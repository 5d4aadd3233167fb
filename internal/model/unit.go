package model

// Unit DAO 拥有的收益单元
type Unit struct {
	// 单元唯一字符串 ID，DeFi 协议形如 defiOrg:protocolKey
	UnitID string `json:"unit_id"`

	// 单元部署所在链，仅 DAO 初始链实例填写
	ChainIDs []string `json:"chain_ids,omitempty"`

	// 单元开发者的 DAO UID
	DeveloperUID string `json:"developer_uid,omitempty"`
}

// UnitStatus 单元状态，由 DAO 持有者手动变更，影响单元收入
type UnitStatus string

const (
	UnitStatusResearch          UnitStatus = "RESEARCH"
	UnitStatusBuildingPrototype UnitStatus = "BUILDING_PROTOTYPE"
	UnitStatusPrototype         UnitStatus = "PROTOTYPE"
	UnitStatusBuilding          UnitStatus = "BUILDING"
	UnitStatusLive              UnitStatus = "LIVE"
)

// UnitType 支持的单元类型
type UnitType string

const (
	UnitTypePvP          UnitType = "PVP"           // VE 代币提前退出费
	UnitTypeDefiProtocol UnitType = "DEFI_PROTOCOL" // 去中心化金融协议
	UnitTypeMevSearcher  UnitType = "MEV_SEARCHER"  // MEV 机会搜索与提交
)

// UnitMetaData 单元元数据，链下发射、索引后由 Host API 转发
type UnitMetaData struct {
	Name         string       `json:"name"`            // 单元简短名称
	Status       UnitStatus   `json:"status"`          // 单元开始工作并产生收入时变更
	Type         UnitType     `json:"type"`            // 单元类型
	RevenueShare float64      `json:"revenue_share"`   // 归属 DAO 的利润份额，100 为 100%
	Emoji        string       `json:"emoji,omitempty"` // 单元的最简 emoji 表示
	UI           []UnitUILink `json:"ui,omitempty"`    // 前端入口
	API          []string     `json:"api,omitempty"`   // 单元 API 链接
}

// UnitUILink 单元前端链接
type UnitUILink struct {
	Href  string `json:"href"`
	Title string `json:"title"`
}
