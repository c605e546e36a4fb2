package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mentoria-pro/internal/application/auth"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	GroupUC        *usecase.GroupUseCase
	ContentUC      *usecase.ContentUseCase
	ReportUC       *usecase.ReportUseCase
	NotificationUC *usecase.NotificationUseCase
	MentorshipUC   *usecase.MentorshipUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users y perfil (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users/:id", userHandler.GetByID)
	profile := protected.Group("/profile")
	profile.Get("/", userHandler.GetProfile)
	profile.Put("/", userHandler.UpdateProfile)
	profile.Put("/mentor", userHandler.SetMentor)

	// Groups (protegido)
	groups := protected.Group("/groups")
	groupHandler := NewGroupHandler(deps.GroupUC)
	groups.Post("/", groupHandler.Create)
	groups.Get("/", groupHandler.Search)
	groups.Get("/mine", groupHandler.ListMine)
	groups.Get("/:id", groupHandler.GetByID)
	groups.Put("/:id", groupHandler.Update)
	groups.Delete("/:id", groupHandler.Delete)
	groups.Post("/:id/join", groupHandler.Join)
	groups.Post("/:id/leave", groupHandler.Leave)
	groups.Get("/:id/members", groupHandler.ListMembers)
	groups.Put("/:id/members/:membershipID", groupHandler.ModerateMember)
	groups.Put("/:id/members/:membershipID/role", groupHandler.ChangeMemberRole)

	// Posts y comments (protegido)
	contentHandler := NewContentHandler(deps.ContentUC)
	groups.Post("/:id/posts", contentHandler.CreatePost)
	groups.Get("/:id/posts", contentHandler.ListPosts)
	posts := protected.Group("/posts")
	posts.Put("/:id", contentHandler.EditPost)
	posts.Delete("/:id", contentHandler.DeletePost)
	posts.Post("/:id/comments", contentHandler.CreateComment)
	posts.Get("/:id/comments", contentHandler.ListComments)
	comments := protected.Group("/comments")
	comments.Put("/:id", contentHandler.EditComment)
	comments.Delete("/:id", contentHandler.DeleteComment)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Post("/reports", reportHandler.Create)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Mentorships (protegido)
	mentorships := protected.Group("/mentorships")
	mentorshipHandler := NewMentorshipHandler(deps.MentorshipUC)
	mentorships.Post("/solicit", mentorshipHandler.Solicit)
	mentorships.Post("/offer", mentorshipHandler.Offer)
	mentorships.Get("/", mentorshipHandler.ListMine)
	mentorships.Get("/offered", mentorshipHandler.ListOffered)
	mentorships.Post("/:id/accept", mentorshipHandler.Accept)
	mentorships.Post("/:id/finalize", mentorshipHandler.Finalize)
	mentorships.Post("/:id/cancel", mentorshipHandler.Cancel)
	mentorships.Post("/:id/messages", mentorshipHandler.SendMessage)
	mentorships.Get("/:id/messages", mentorshipHandler.ListMessages)
	mentorships.Post("/:id/evaluations", mentorshipHandler.Evaluate)
	mentorships.Get("/:id/evaluations", mentorshipHandler.ListEvaluations)

	// Admin (protegido + nivel admin)
	admin := protected.Group("/admin", RequireAdmin())
	admin.Get("/reports", reportHandler.List)
	admin.Put("/reports/:id/resolve", reportHandler.Resolve)
	admin.Get("/users", userHandler.List)
	admin.Get("/users/:id/reports", reportHandler.ListByReported)
	admin.Put("/users/:id/status", userHandler.SetAccountStatus)
	admin.Put("/users/:id/level", userHandler.SetLevel)
}
