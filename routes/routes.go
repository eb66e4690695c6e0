package routes

import (
	"github.com/gin-gonic/gin"

	"evaluapp/handlers"
)

func SetupRoutes(
	router *gin.Engine,
	pagesHandler *handlers.PagesHandler,
	examHandler *handlers.ExamHandler,
	sessionHandler *handlers.SessionHandler,
	reportHandler *handlers.ReportHandler,
) {
	router.GET("/", pagesHandler.Home)
	router.GET("/health", pagesHandler.Health)

	// authoring
	router.GET("/examenes/nuevo", examHandler.NewExamForm)
	router.POST("/examenes", examHandler.CreateExam)

	// exam taking
	router.GET("/realizar", sessionHandler.SelectExam)
	router.POST("/realizar", sessionHandler.StartSession)
	router.GET("/realizar/sesion", sessionHandler.SessionPage)
	router.POST("/realizar/sesion", sessionHandler.UpdateSession)

	// reporting
	router.GET("/resultados", reportHandler.Results)
}
