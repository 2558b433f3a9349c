package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Amaspm/driver-management/internal/handlers"
)

func registerAuthRoutes(g *gin.RouterGroup, h *handlers.Auth) {
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/profile", h.Profile)
}

func registerDriverRoutes(g *gin.RouterGroup, h *handlers.Drivers) {
	g.GET("/drivers", h.List)
	g.POST("/drivers/accounts", h.Create)
	g.GET("/drivers/:id", h.Get)
	g.DELETE("/drivers/:id", h.Delete)

	// Generic status editor; approve/reject/suspend below are the quick
	// actions over the same evaluator.
	g.PATCH("/drivers/:id", h.UpdateStatus)
	g.POST("/drivers/:id/approve", h.Approve)
	g.POST("/drivers/:id/reject", h.Reject)
	g.POST("/drivers/:id/suspend", h.Suspend)
	g.PATCH("/drivers/:id/documents", h.UpdateDocuments)
	g.GET("/drivers/:id/audit", h.AuditTrail)

	g.POST("/drivers/bulk-activate", h.BulkActivate)
	g.POST("/drivers/bulk-suspend", h.BulkSuspend)
	g.POST("/drivers/bulk-accept", h.BulkAccept)
}

func registerAdminRoutes(g *gin.RouterGroup, h *handlers.Admin) {
	g.GET("/admin/check-sync", h.CheckSync)
	g.POST("/admin/cleanup-users", h.CleanupUsers)
}

func registerArmadaRoutes(g *gin.RouterGroup, h *handlers.Armada) {
	g.GET("/armada", h.List)
	g.POST("/armada", h.Create)
	g.GET("/armada/:id", h.Get)
	g.PUT("/armada/:id", h.Update)
	g.DELETE("/armada/:id", h.Delete)
}

func registerTrainingRoutes(g *gin.RouterGroup, h *handlers.Training) {
	g.GET("/training-modules", h.ListModules)
	g.POST("/training-modules", h.CreateModule)
	g.GET("/training-modules/:id", h.GetModule)
	g.PUT("/training-modules/:id", h.UpdateModule)
	g.DELETE("/training-modules/:id", h.DeleteModule)

	g.GET("/training-contents", h.ListContents)
	g.POST("/training-contents", h.CreateContent)
	g.PUT("/training-contents/:id", h.UpdateContent)
	g.DELETE("/training-contents/:id", h.DeleteContent)

	g.GET("/training-quizzes", h.ListQuizzes)
	g.POST("/training-quizzes", h.CreateQuiz)
	g.PUT("/training-quizzes/:id", h.UpdateQuiz)
	g.DELETE("/training-quizzes/:id", h.DeleteQuiz)
}
