package routes

import (
	"github.com/clockwisehq/workforce-go/handlers"
	"github.com/clockwisehq/workforce-go/middleware"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, repos *repositories.Repos) {
	authz := middleware.NewAuth(repos)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)

	// the invite token is the credential for onboarding completion
	api.POST("/onboarding/:token/start", h.Onboarding.Start)
	api.POST("/onboarding/:token/submit", h.Onboarding.Submit)

	auth := api.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("", h.User.List)
			users.GET("/me", h.User.Me)
			users.GET("/:id", authz.OwnerOrAdmin(), h.User.Get)
		}

		timesheets := auth.Group("/timesheets")
		{
			timesheets.GET("", h.Timesheet.ListWeek)
			timesheets.POST("", h.Timesheet.Create)
			timesheets.PUT("/:id", h.Timesheet.Update)
			timesheets.DELETE("/:id", h.Timesheet.Delete)
			timesheets.POST("/submit-week", h.Timesheet.SubmitWeek)
			timesheets.POST("/:id/revert", h.Timesheet.Revert)
		}

		expenses := auth.Group("/expenses")
		{
			expenses.GET("", h.Expense.List)
			expenses.POST("", h.Expense.Create)
			expenses.PUT("/:id", h.Expense.Update)
			expenses.DELETE("/:id", h.Expense.Delete)
			expenses.POST("/:id/submit", h.Expense.Submit)
			expenses.POST("/:id/receipt", h.Expense.UploadReceipt)
		}

		reports := auth.Group("/reports")
		{
			reports.GET("/week-summary", h.Report.WeekSummary)
			reports.GET("/week-export", h.Report.ExportWeekCSV)
		}

		timer := auth.Group("/timer")
		{
			timer.GET("", h.Timer.Get)
			timer.POST("/start", h.Timer.Start)
			timer.POST("/stop", h.Timer.Stop)
			timer.DELETE("", h.Timer.Discard)
		}

		admin := auth.Group("/admin")
		{
			// decision routes use the wider Approver gate so root-level
			// employees can reach their own self-approval
			adminTimesheets := admin.Group("/timesheets", authz.Approver())
			{
				adminTimesheets.GET("/pending", authz.ManagerOrAdmin(), h.Timesheet.ListPending)
				adminTimesheets.POST("/:id/approve", h.Timesheet.Approve)
				adminTimesheets.POST("/bulk-approve", h.Timesheet.BulkApprove)
				adminTimesheets.POST("/:id/reject", h.Timesheet.Reject)
				adminTimesheets.POST("/bulk-reject", h.Timesheet.BulkReject)
			}

			adminExpenses := admin.Group("/expenses", authz.Approver())
			{
				adminExpenses.GET("/pending", authz.ManagerOrAdmin(), h.Expense.ListPending)
				adminExpenses.POST("/:id/approve", h.Expense.Approve)
				adminExpenses.POST("/:id/reject", h.Expense.Reject)
				adminExpenses.POST("/:id/pay", authz.Admin(), h.Expense.MarkPaid)
			}

			invoices := admin.Group("/invoices", authz.Admin())
			{
				invoices.GET("", h.Invoice.List)
				invoices.GET("/:id", h.Invoice.Get)
				invoices.GET("/:id/export", h.Invoice.Export)
				invoices.POST("/generate", h.Invoice.Generate)
				invoices.POST("/:id/send", h.Invoice.Send)
				invoices.POST("/:id/pay", h.Invoice.MarkPaid)
				invoices.POST("/:id/cancel", h.Invoice.Cancel)
			}

			onboarding := admin.Group("/onboarding/invites", authz.ManagerOrAdmin())
			{
				onboarding.GET("", h.Onboarding.List)
				onboarding.POST("", h.Onboarding.Invite)
				onboarding.POST("/:id/request-changes", h.Onboarding.RequestChanges)
				onboarding.POST("/:id/approve", h.Onboarding.Approve)
			}

			admin.POST("/reminders", authz.ManagerOrAdmin(), h.Reminder.Send)
			admin.GET("/audit", authz.Admin(), h.Audit.Query)
		}
	}

	ws := r.Group("/ws", middleware.JWTAuthMiddleware(), authz.ManagerOrAdmin())
	ws.GET("/approvals", h.WS.Events)
}
