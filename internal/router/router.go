package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stabilitydao/host/internal/handler"
	"github.com/stabilitydao/host/internal/logic"
)

func Setup(engine *logic.Engine) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "dao-host-service",
		})
	})

	daoLogic := logic.NewDAOLogic(engine)
	proposalLogic := logic.NewProposalLogic(engine)

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// DAO 相关路由
		daoHandler := handler.NewDAOHandler(daoLogic)
		daos := v1.Group("/daos")
		{
			daos.POST("", daoHandler.CreateDAO)
			daos.GET("", daoHandler.GetDAOs)
			daos.GET("/:symbol", daoHandler.GetDAO)
			daos.GET("/:symbol/owner", daoHandler.GetDaoOwner)
			daos.POST("/:symbol/phase", daoHandler.ChangePhase)
			daos.POST("/:symbol/fund", daoHandler.Fund)
			daos.GET("/:symbol/tasks", daoHandler.GetTasks)
			daos.GET("/:symbol/roadmap", daoHandler.GetRoadmap)
			daos.PUT("/:symbol/images", daoHandler.UpdateImages)
			daos.PUT("/:symbol/socials", daoHandler.UpdateSocials)
			daos.PUT("/:symbol/units", daoHandler.UpdateUnits)
			daos.PUT("/:symbol/funding", daoHandler.UpdateFunding)
			daos.PUT("/:symbol/vesting", daoHandler.UpdateVesting)
		}

		// 治理提案路由
		proposalHandler := handler.NewProposalHandler(proposalLogic)
		proposals := v1.Group("/proposals")
		{
			proposals.GET("", proposalHandler.GetProposals)
			proposals.GET("/:id", proposalHandler.GetProposal)
			proposals.POST("/:id/result", proposalHandler.ReceiveVotingResults)
		}

		// 跨链桥聚合视图
		v1.GET("/bridge-tokens", daoHandler.GetBridgeTokens)

		// 平台只读视图
		platformHandler := handler.NewPlatformHandler(daoLogic)
		v1.GET("/info", platformHandler.GetInfo)
		v1.GET("/chains", platformHandler.GetChains)
		v1.GET("/contracts", platformHandler.GetContracts)
		v1.GET("/units/:unit_id", platformHandler.GetUnit)

		// 管理路由
		adminHandler := handler.NewAdminHandler(daoLogic)
		admin := v1.Group("/admin")
		{
			admin.POST("/warp", adminHandler.WarpDays)
			admin.GET("/settings", adminHandler.GetSettings)
			admin.PUT("/settings", adminHandler.OverrideSettings)
			admin.GET("/status", adminHandler.GetStatus)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
