package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/controllers"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/middleware"
	"github.com/emre/alumnihub/internal/pkg/auth"
)

// SetupRouter configures all application routes. The whole API lives under
// /auth; path and verb choices follow the payload contract the frontend
// already speaks.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	alumnusController *controllers.AlumnusController,
	courseController *controllers.CourseController,
	eventController *controllers.EventController,
	forumController *controllers.ForumController,
	careerController *controllers.CareerController,
	siteController *controllers.SiteController,
	jwtService *auth.JWTService,
	cookieName string,
) {
	root := router.Group("/auth")

	// --- Public routes ---
	{
		root.POST("/login", authController.Login)
		root.POST("/signup", authController.Signup)
		root.POST("/admin/register", authController.RegisterAdmin)
		root.POST("/logout", authController.Logout)

		// Public site pages
		root.GET("/settings", siteController.Settings)
		root.GET("/gallery", siteController.Gallery)
		root.GET("/up_events", eventController.UpcomingEvents)

		// The signup form needs the course list before any session exists
		root.GET("/courses", courseController.ListCourses)
	}

	// --- Authenticated routes ---
	authenticated := root.Group("")
	authenticated.Use(middleware.AuthMiddleware(jwtService, cookieName))
	{
		authenticated.GET("/counts", siteController.Counts)

		// Events
		authenticated.GET("/events", eventController.ListEvents)
		authenticated.POST("/events", eventController.CreateEvent)
		authenticated.PUT("/events", eventController.UpdateEvent)
		authenticated.DELETE("/events/:id", eventController.DeleteEvent)
		authenticated.POST("/events/participate", eventController.Participate)
		authenticated.POST("/eventcommits/check", eventController.CheckCommit)

		// Forums
		authenticated.GET("/forums", forumController.ListTopics)
		authenticated.GET("/forum_list", forumController.ListTopics)
		authenticated.POST("/manageforum", forumController.CreateTopic)
		authenticated.PUT("/manageforum", forumController.UpdateTopic)
		authenticated.DELETE("/forum/:id", forumController.DeleteTopic)
		authenticated.POST("/topiccomments", forumController.TopicComments)
		authenticated.POST("/view_forum", forumController.AddComment)
		authenticated.PUT("/view_forum/:id", forumController.UpdateComment)
		authenticated.DELETE("/view_forum/:id", forumController.DeleteComment)

		// Alumni directory
		authenticated.GET("/alumni_list", alumnusController.ListAlumni)
		authenticated.GET("/alumnusdetails", alumnusController.GetAlumnus)
		authenticated.PUT("/upaccount", alumnusController.UpdateAccount)

		// Job postings
		authenticated.GET("/jobs", careerController.ListJobs)
		authenticated.GET("/job_list", careerController.JobBoard)
		authenticated.POST("/managejob", careerController.CreateJob)
		authenticated.PUT("/managejob", careerController.UpdateJob)
		authenticated.DELETE("/job/:id", careerController.DeleteJob)
	}

	// --- Admin-only routes ---
	admin := authenticated.Group("")
	admin.Use(middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/courses", courseController.CreateCourse)
		admin.PUT("/courses", courseController.UpdateCourse)
		admin.DELETE("/courses/:id", courseController.DeleteCourse)

		admin.GET("/users", userController.ListUsers)
		admin.GET("/user/:id", userController.GetUser)
		admin.PUT("/user/:id", userController.UpdateUser)
		admin.DELETE("/user/:id", userController.DeleteUser)

		admin.POST("/createalumnus", alumnusController.CreateAlumnus)
		admin.PUT("/updatealumnus/:id", alumnusController.UpdateAlumnus)
		admin.PUT("/viewalumni", alumnusController.SetStatus)
		admin.DELETE("/alumnus/:id", alumnusController.DeleteAlumnus)
	}
}
