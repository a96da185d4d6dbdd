package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/memberapi/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	memberController *controllers.MemberController,
	healthController *controllers.HealthController,
) {
	// Member routes (public, read-only)
	router.GET("/", memberController.GetAllMembers)
	router.GET("/memberOne", memberController.GetMemberOne)
	members := router.Group("/members")
	{
		members.GET("/:id", memberController.GetMemberByID)
	}

	// Probes
	router.GET("/ping", healthController.Ping)
	router.GET("/health", healthController.Health)
}
