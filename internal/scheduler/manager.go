package scheduler

import (
	"github.com/go-co-op/gocron/v2"

	"github.com/stabilitydao/host/internal/config"
	"github.com/stabilitydao/host/internal/logger"
	"github.com/stabilitydao/host/internal/logic"
)

// Manager 任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	daoLogic  *logic.DAOLogic
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(daoLogic *logic.DAOLogic, cfg *config.Config) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: s,
		daoLogic:  daoLogic,
		config:    cfg,
	}, nil
}

// Start 启动任务管理器
func Start(daoLogic *logic.DAOLogic, cfg *config.Config) (*Manager, error) {
	manager, err := NewManager(daoLogic, cfg)
	if err != nil {
		return nil, err
	}

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager, nil
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	// 注册阶段推进任务
	m.registerPhaseAdvanceJob(NewPhaseAdvanceJob(m.daoLogic, m.config))
}

// registerPhaseAdvanceJob 注册阶段推进任务
func (m *Manager) registerPhaseAdvanceJob(job *PhaseAdvanceJob) {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
