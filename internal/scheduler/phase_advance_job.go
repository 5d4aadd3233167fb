package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/stabilitydao/host/internal/config"
	"github.com/stabilitydao/host/internal/logger"
	"github.com/stabilitydao/host/internal/logic"
	"github.com/stabilitydao/host/internal/model"
)

// PhaseAdvanceJob 阶段推进任务
// 周期性尝试推进每个 DAO 的生命周期阶段
// 推进条件不满足属于正常情况，由引擎的守卫错误表达
type PhaseAdvanceJob struct {
	daoLogic *logic.DAOLogic
	config   *config.Config
}

// NewPhaseAdvanceJob 创建阶段推进任务
func NewPhaseAdvanceJob(daoLogic *logic.DAOLogic, cfg *config.Config) *PhaseAdvanceJob {
	return &PhaseAdvanceJob{
		daoLogic: daoLogic,
		config:   cfg,
	}
}

// GetName 获取任务名称
func (j *PhaseAdvanceJob) GetName() string {
	return "phase_advancer"
}

// GetSchedule 获取调度配置
func (j *PhaseAdvanceJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *PhaseAdvanceJob) Execute() {
	logger.Debug("Starting phase advance task")

	advancedCount := 0

	for _, dao := range j.daoLogic.GetDAOs() {
		if dao.Phase == model.PhaseLive || dao.Phase == model.PhaseSeedFailed {
			continue
		}

		if err := j.daoLogic.ChangePhase(dao.Symbol); err != nil {
			// 守卫错误：时机未到或任务未完成，等待下一轮
			logger.Debug("DAO %s not ready to advance: %v", dao.Symbol, err)
			continue
		}

		updated, err := j.daoLogic.GetDAO(dao.Symbol)
		if err != nil {
			logger.Error("Failed to reload DAO %s: %v", dao.Symbol, err)
			continue
		}

		logger.Info("Advanced DAO %s from %s to %s", dao.Symbol, dao.Phase, updated.Phase)
		advancedCount++
	}

	if advancedCount > 0 {
		logger.Info("Phase advance completed. Advanced %d DAOs", advancedCount)
	}
}
