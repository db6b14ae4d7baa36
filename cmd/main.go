package main

import (
	"log"

	"github.com/sirupsen/logrus"

	"github.com/JashanBansal182304/MessMate/config"
	"github.com/JashanBansal182304/MessMate/controllers"
	"github.com/JashanBansal182304/MessMate/routes"
	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/store"
	"github.com/JashanBansal182304/MessMate/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()
	utils.InitS3()

	st, err := store.NewFileStore(config.DataDir())
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}

	authSvc := services.NewAuthService(config.DB)
	userSvc := services.NewUserService(config.DB, st)
	menuSvc := services.NewMenuService(config.DB)
	orderSvc := services.NewOrderService(config.DB)
	feedbackSvc := services.NewFeedbackService(config.DB)
	complaintSvc := services.NewComplaintService(st)
	staffSvc := services.NewStaffService(st)
	inventorySvc := services.NewInventoryService(st)
	distributionSvc := services.NewDistributionService(st)

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)
	hub.WatchStore(st,
		store.KeyAdminSnapshot,
		store.KeyStaffRoster,
		store.KeyInventory,
		store.KeyDistributionLog,
	)

	scheduler := services.NewRefreshScheduler(menuSvc, hub)
	if err := scheduler.Start(); err != nil {
		logrus.WithError(err).Fatal("stats refresh scheduler failed to start")
	}
	defer scheduler.Stop()

	r := routes.SetupRouter(routes.Controllers{
		Auth:         controllers.NewAuthController(authSvc),
		Users:        controllers.NewUserController(userSvc),
		Admin:        controllers.NewAdminController(authSvc, userSvc, menuSvc, orderSvc, feedbackSvc),
		Menus:        controllers.NewMenuController(menuSvc),
		Orders:       controllers.NewOrderController(orderSvc),
		Feedback:     controllers.NewFeedbackController(feedbackSvc),
		Complaints:   controllers.NewComplaintController(complaintSvc),
		Staff:        controllers.NewStaffController(staffSvc),
		Inventory:    controllers.NewInventoryController(inventorySvc),
		Distribution: controllers.NewDistributionController(distributionSvc),
		Realtime:     controllers.NewRealtimeController(hub),
		Dev:          controllers.NewDevController(st, feedbackSvc),
	})
	r.Run(":8080")
}
