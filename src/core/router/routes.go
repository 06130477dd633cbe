package router

import (
	"fmt"
	"sort"

	"LibraryHub/src/core/middleware"
	"LibraryHub/src/core/models"
	"LibraryHub/src/modules/authentication"
	"LibraryHub/src/modules/books"
	"LibraryHub/src/modules/dashboard"
	"LibraryHub/src/modules/questions"
	"LibraryHub/src/modules/quiz"
	"LibraryHub/src/modules/rewards"
	"LibraryHub/src/modules/users"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func InitialiseAndSetupRoutes(app *fiber.App) {
	root := app.Group("/", logger.New())

	root.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	apiV1 := root.Group("/api/v1")
	setupAPIV1Routes(apiV1)

	routes := app.GetRoutes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	for _, route := range routes {
		fmt.Printf("%s\t%s\n", route.Method, route.Path)
	}
}

func setupAPIV1Routes(router fiber.Router) {
	staffTypes := []string{models.UserTypeAdmin, models.UserTypeLibrarian, models.UserTypeTeacher}

	// Grouped API endpoints
	authGroup := router.Group("/auth")
	userGroup := router.Group("/users")
	bookGroup := router.Group("/books")
	questionGroup := router.Group("/questions")
	quizGroup := router.Group("/quiz")
	rewardGroup := router.Group("/rewards")
	dashboardGroup := router.Group("/dashboard")

	// Authentication routes
	authGroup.Post("/signup", authentication.SignUp)
	authGroup.Post("/signin", authentication.SignIn)
	authGroup.Post("/forgot-password", authentication.ForgotPassword)
	authGroup.Post("/reset-password", authentication.ResetPassword)

	// User routes
	userGroup.Get("/profile", middleware.Protected(), users.GetProfile)
	userGroup.Put("/profile", middleware.Protected(), users.UpdateProfile)
	userGroup.Get("/progress", middleware.Protected(), users.GetMyProgress)
	userGroup.Get("/attempts", middleware.Protected(), users.GetMyAttempts)

	// Book routes; scanning resolves through the QR lookup
	bookGroup.Get("/", middleware.Protected(), books.GetBooks)
	bookGroup.Get("/by-qr", middleware.Protected(), books.GetBookByQR)
	bookGroup.Get("/:book_id", middleware.Protected(), books.GetBookByID)
	bookGroup.Post("/", middleware.Protected(), middleware.RequireRole(models.UserTypeAdmin, models.UserTypeLibrarian), books.AddBook)
	bookGroup.Delete("/:book_id", middleware.Protected(), middleware.RequireRole(models.UserTypeAdmin, models.UserTypeLibrarian), books.DeleteBook)

	// Question routes; bulk import is staff-only
	questionGroup.Get("/", middleware.Protected(), questions.GetQuizQuestions)
	questionGroup.Post("/", middleware.Protected(), middleware.RequireRole(staffTypes...), questions.CreateQuestion)
	questionGroup.Post("/import", middleware.Protected(), middleware.RequireRole(staffTypes...), questions.ImportQuestions)
	questionGroup.Delete("/:question_id", middleware.Protected(), middleware.RequireRole(staffTypes...), questions.DeleteQuestion)

	// Quiz submission - the one writing endpoint students use
	quizGroup.Post("/submit", middleware.Protected(), middleware.RequireRole(models.UserTypeStudent), quiz.SubmitQuizResultHandler)

	// Reward routes
	rewardGroup.Get("/", middleware.Protected(), rewards.GetRewards)
	rewardGroup.Get("/mine", middleware.Protected(), rewards.GetMyRewards)
	rewardGroup.Post("/", middleware.Protected(), middleware.RequireRole(models.UserTypeAdmin), rewards.CreateReward)
	rewardGroup.Put("/:reward_id/deactivate", middleware.Protected(), middleware.RequireRole(models.UserTypeAdmin), rewards.DeactivateReward)

	// Staff dashboards
	dashboardGroup.Get("/stats", middleware.Protected(), middleware.RequireRole(staffTypes...), dashboard.GetLibraryStats)
	dashboardGroup.Get("/recent-attempts", middleware.Protected(), middleware.RequireRole(staffTypes...), dashboard.GetRecentAttempts)
	dashboardGroup.Get("/system-logs", middleware.Protected(), middleware.RequireRole(models.UserTypeAdmin), dashboard.GetSystemLogs)
}
