package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stabilitydao/host/internal/config"
	"github.com/stabilitydao/host/internal/database"
	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/logger"
	"github.com/stabilitydao/host/internal/logic"
	"github.com/stabilitydao/host/internal/messenger"
	"github.com/stabilitydao/host/internal/router"
	"github.com/stabilitydao/host/internal/scheduler"
	"github.com/stabilitydao/host/internal/storage"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.Setup(cfg.Log); err != nil {
		logger.Fatal("Failed to setup logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化跨链消息池
	pool, err := messenger.NewPool(cfg.Host.MessengerPoolSize)
	if err != nil {
		logger.Fatal("Failed to initialize messenger pool: %v", err)
	}
	defer pool.Release()

	// 初始化生命周期引擎
	initialTimestamp := cfg.Host.InitialTimestamp
	if initialTimestamp == 0 {
		initialTimestamp = time.Now().Unix()
	}
	h := host.New(cfg.Host.ChainID, initialTimestamp, cfg.Host.Settings, pool)

	engine := logic.NewEngine(h, db)

	// 加载内置 DAO 数据集
	if cfg.Host.LoadFixtures {
		if err := storage.Load(h); err != nil {
			logger.Fatal("Failed to load fixture DAOs: %v", err)
		}
		logger.Info("Loaded %d fixture DAOs", len(h.ListDAOs()))
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(engine)

	// 启动定时任务
	manager, err := scheduler.Start(logic.NewDAOLogic(engine), cfg)
	if err != nil {
		logger.Fatal("Failed to start scheduler: %v", err)
	}
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
