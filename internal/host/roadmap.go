package host

import (
	"github.com/stabilitydao/host/internal/model"
)

// RoadmapItem 路线图条目，End 为 0 表示开放区间
type RoadmapItem struct {
	Phase model.LifecyclePhase `json:"phase"`
	Start int64                `json:"start"`
	End   int64                `json:"end,omitempty"`
}

// Roadmap 由募资与归属记录派生 DAO 的阶段时间线
// 纯读取，不修改任何状态，仅用于展示。
// DEVELOPMENT 窗口只在 SEED 轮存在时合成为 SEED 结束到 TGE 开始的间隙；
// 存在归属时补充 LIVE_CLIFF / LIVE_VESTING / 开放的 LIVE 窗口
func (h *Host) Roadmap(symbol string) ([]RoadmapItem, error) {
	dao, err := h.dao(symbol)
	if err != nil {
		return nil, err
	}

	r := []RoadmapItem{}
	var tgeRun int64

	for _, funding := range dao.Funding {
		if funding.Type == model.FundingSeed {
			r = append(r, RoadmapItem{
				Phase: model.PhaseSeed,
				Start: funding.Start,
				End:   funding.End,
			})
		}
		if funding.Type == model.FundingTGE {
			// SEED 在前时合成开发窗口
			if len(r) > 0 {
				r = append(r, RoadmapItem{
					Phase: model.PhaseDevelopment,
					Start: r[0].End + 1,
					End:   funding.Start - 1,
				})
			}

			tgeRun = funding.Distribution()
			r = append(r, RoadmapItem{
				Phase: model.PhaseTGE,
				Start: funding.Start,
				End:   tgeRun,
			})
		}
	}

	if len(dao.Vesting) > 0 {
		vestingStart := h.blockTimestamp
		vestingEnd := h.blockTimestamp
		for _, vesting := range dao.Vesting {
			if vesting.Start < vestingStart {
				vestingStart = vesting.Start
			}
			if vesting.End > vestingEnd {
				vestingEnd = vesting.End
			}
		}
		r = append(r, RoadmapItem{
			Phase: model.PhaseLiveCliff,
			Start: tgeRun + 1,
			End:   vestingStart - 1,
		})
		r = append(r, RoadmapItem{
			Phase: model.PhaseLiveVesting,
			Start: vestingStart,
			End:   vestingEnd,
		})
		r = append(r, RoadmapItem{
			Phase: model.PhaseLive,
			Start: vestingEnd + 1,
		})
	}

	return r, nil
}
