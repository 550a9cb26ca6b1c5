package routes

import (
	"net/http"

	"quizhub/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, quizHandler *handlers.QuizHandler) {
	// API routes
	api := router.Group("/api")
	{
		quizzes := api.Group("/quizzes")
		{
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("", quizHandler.GetQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuizByID)
			quizzes.POST("/:id/questions", quizHandler.AddQuestion)
			quizzes.GET("/:id/questions", quizHandler.GetQuestions)
			quizzes.POST("/:id/submit", quizHandler.SubmitQuiz)
		}

		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Quiz API is running"})
		})
	}
}
