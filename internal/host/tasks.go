package host

import (
	"github.com/stabilitydao/host/internal/model"
)

// Task 阻塞下一次阶段转换的待办事项
type Task struct {
	Name string `json:"name"`
}

// Tasks 计算当前阶段下阻塞转换的待办清单
// 按当前阶段逐项检查，清单非空时 ChangePhase 拒绝执行；
// 无变更时重复调用返回相同结果
func (h *Host) Tasks(symbol string) ([]Task, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return nil, err
	}

	r := []Task{}

	switch dao.Phase {
	case model.PhaseDraft:
		// 图片
		if dao.Images.SeedToken == "" || dao.Images.Token == "" {
			r = append(r, Task{Name: "Need images of token and seedToken"})
		}

		// 社区链接
		if len(dao.Socials) < 2 {
			r = append(r, Task{Name: "Need at least 2 socials"})
		}

		// 规划的收益单元
		if len(dao.Units) == 0 {
			r = append(r, Task{Name: "Need at least 1 projected unit"})
		}

	case model.PhaseSeed:
		seedIndex, err := h.fundingIndex(dao, model.FundingSeed)
		if err != nil {
			return nil, err
		}
		seed := dao.Funding[seedIndex]
		if seed.Raised < seed.MinRaise && seed.End > h.blockTimestamp {
			r = append(r, Task{Name: "Need attract minimal seed funding"})
		}

	case model.PhaseDevelopment:
		// TGE 轮次
		if h.tgeData(dao) == nil {
			r = append(r, Task{Name: "Need add pre-TGE funding"})
		}

		// 全套代币图片
		if dao.Images.TgeToken == "" || dao.Images.XToken == "" || dao.Images.DAOToken == "" {
			r = append(r, Task{Name: "Need images of all DAO tokens"})
		}

		// 归属分配
		if len(dao.Vesting) == 0 {
			r = append(r, Task{Name: "Need vesting allocations"})
		}

		// 至少一个运行中的收益单元
		live := 0
		for _, meta := range dao.UnitsMetaData {
			if meta.Status == model.UnitStatusLive {
				live++
			}
		}
		if live == 0 {
			r = append(r, Task{Name: "Run revenue generating units"})
		}

	case model.PhaseTGE:
		tgeIndex, err := h.fundingIndex(dao, model.FundingTGE)
		if err != nil {
			return nil, err
		}
		tge := dao.Funding[tgeIndex]
		if tge.Raised < tge.MinRaise && tge.End > h.blockTimestamp {
			r = append(r, Task{Name: "Need attract minimal TGE funding"})
		}

	case model.PhaseLiveCliff:
		// 建设与改进、搭建货币市场、桥接到其他链

	case model.PhaseLiveVesting:
		// 分发归属资金
	}

	return r, nil
}
