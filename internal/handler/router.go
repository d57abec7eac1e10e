package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/examportal/backend/internal/model"
	"github.com/examportal/backend/internal/service"
)

// SetupRouter wires middleware and routes. The error responder sits inside
// CORS so cross-origin headers are present on error responses too.
func SetupRouter(
	logger *slog.Logger,
	authService *service.AuthService,
	authHandler *AuthHandler,
	examHandler *ExamHandler,
	users service.UserStore,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(CORSMiddleware())
	router.Use(ErrorResponder())

	router.GET("/ping", Ping)

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.POST("/refreshToken", authHandler.Refresh)
	router.GET("/refreshToken", authHandler.Refresh)
	router.GET("/logout", authHandler.Logout)
	router.GET("/getUser", AuthMiddleware(authService), authHandler.GetUser)

	exams := router.Group("/exams")
	{
		exams.GET("", examHandler.List)
		exams.POST("/create",
			AuthMiddleware(authService),
			RequireRole(users, model.RoleAdmin),
			examHandler.Create,
		)
	}

	router.NoRoute(NoRoute)

	return router
}
