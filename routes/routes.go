package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/controllers"
	"github.com/JashanBansal182304/MessMate/middlewares"
	"github.com/JashanBansal182304/MessMate/models"
)

// Controllers bundles the wired handler set for SetupRouter.
type Controllers struct {
	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Admin        *controllers.AdminController
	Menus        *controllers.MenuController
	Orders       *controllers.OrderController
	Feedback     *controllers.FeedbackController
	Complaints   *controllers.ComplaintController
	Staff        *controllers.StaffController
	Inventory    *controllers.InventoryController
	Distribution *controllers.DistributionController
	Realtime     *controllers.RealtimeController
	Dev          *controllers.DevController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	staffOrAdmin := middlewares.RequireRole(models.UserTypeStaff, models.UserTypeAdmin)
	adminOnly := middlewares.RequireRole(models.UserTypeAdmin)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", ctl.Auth.Signup)
		auth.POST("/login", ctl.Auth.Login)
		auth.POST("/forgot-password", ctl.Auth.ForgotPassword)
		auth.POST("/reset-password", ctl.Auth.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.GET("/profile", ctl.Users.GetProfile)

	// Live dashboard channel plus the alert backfill for page load
	api.GET("/ws", ctl.Realtime.DashboardWS)
	api.GET("/alerts", staffOrAdmin, ctl.Realtime.RecentAlerts)

	users := api.Group("/users", adminOnly)
	{
		users.GET("", ctl.Users.ListUsers)
		users.GET("/search", ctl.Users.SearchUsers)
		users.GET("/type/:userType", ctl.Users.UsersByType)
	}

	admin := api.Group("/admin", adminOnly)
	{
		admin.POST("/verify-password", ctl.Admin.VerifyPassword)
		admin.PUT("/password", ctl.Admin.ChangePassword)
		admin.GET("/profile", ctl.Admin.GetProfile)
		admin.GET("/overview", ctl.Admin.Overview)
	}

	menu := api.Group("/menu")
	{
		menu.GET("/items", ctl.Menus.ListMenuItems)
		menu.GET("/items/meal/:mealType", ctl.Menus.MenuItemsByMealType)
		menu.GET("/items/vegetarian", ctl.Menus.VegetarianMenuItems)
		menu.GET("/items/search", ctl.Menus.SearchMenuItems)
		menu.GET("/daily/:date", ctl.Menus.DailyMenusByDate)
		menu.GET("/weekly", ctl.Menus.WeeklyMenus)
		menu.GET("/today/:mealType", ctl.Menus.TodayByMealType)

		menu.POST("/items", adminOnly, ctl.Menus.CreateMenuItem)
		menu.POST("/items/:id/image", adminOnly, ctl.Menus.UploadMenuItemImage)
		menu.POST("/daily", staffOrAdmin, ctl.Menus.SubmitDailyMenu)
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("", ctl.Menus.BookMeal)
		bookings.GET("/stats", staffOrAdmin, ctl.Menus.BookingStatsAll)
		bookings.GET("/stats/:date", staffOrAdmin, ctl.Menus.BookingStatsByDate)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", ctl.Orders.CreateOrder)
		orders.GET("/mine", ctl.Orders.MyOrders)
		orders.DELETE("/:id", ctl.Orders.CancelOrder)
		orders.PUT("/:id/status", staffOrAdmin, ctl.Orders.UpdateStatus)
		orders.GET("/today/:mealType", staffOrAdmin, ctl.Orders.TodayByMealType)
		orders.GET("/summary", adminOnly, ctl.Orders.SummaryForDate)
	}

	feedback := api.Group("/feedback")
	{
		feedback.POST("", ctl.Feedback.Create)
		feedback.GET("", staffOrAdmin, ctl.Feedback.List)
		feedback.GET("/rating/:rating", staffOrAdmin, ctl.Feedback.ByRating)
		feedback.GET("/stats", staffOrAdmin, ctl.Feedback.Stats)
		feedback.PUT("/:id/status", staffOrAdmin, ctl.Feedback.UpdateStatus)
		feedback.POST("/:id/reply", staffOrAdmin, ctl.Feedback.Reply)
		feedback.POST("/import-legacy", adminOnly, ctl.Feedback.ImportLegacy)
	}

	complaints := api.Group("/complaints")
	{
		complaints.POST("", ctl.Complaints.Create)
		complaints.GET("", adminOnly, ctl.Complaints.List)
		complaints.PUT("/:id/status", adminOnly, ctl.Complaints.UpdateStatus)
	}

	staff := api.Group("/staff", adminOnly)
	{
		staff.POST("", ctl.Staff.Create)
		staff.GET("", ctl.Staff.List)
		staff.PUT("/:id/status", ctl.Staff.SetStatus)
		staff.DELETE("/:id", ctl.Staff.Delete)
	}

	inventory := api.Group("/inventory", staffOrAdmin)
	{
		inventory.GET("", ctl.Inventory.List)
		inventory.GET("/low-stock", ctl.Inventory.LowStock)
		inventory.POST("", ctl.Inventory.Add)
		inventory.PUT("/:id", ctl.Inventory.Update)
		inventory.DELETE("/:id", ctl.Inventory.Delete)
	}

	distribution := api.Group("/distribution", staffOrAdmin)
	{
		distribution.POST("", ctl.Distribution.Log)
		distribution.GET("", ctl.Distribution.List)
	}

	dev := api.Group("/dev", adminOnly)
	{
		dev.POST("/seed", ctl.Dev.SeedSampleData)
	}

	return r
}
