package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/club-membership/internal/config"
	"github.com/bagdasarian/club-membership/internal/db"
	"github.com/bagdasarian/club-membership/internal/handler"
	"github.com/bagdasarian/club-membership/internal/handler/server"
	"github.com/bagdasarian/club-membership/internal/repository/postgres"
	"github.com/bagdasarian/club-membership/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	clubRepo := postgres.NewClubRepository(database)
	memberRepo := postgres.NewMemberRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	scheduleRepo := postgres.NewScheduleRepository(database)
	checklistRepo := postgres.NewChecklistRepository(database)

	membershipService := service.NewMembershipService(database, clubRepo, memberRepo, membershipRepo)
	memberService := service.NewMemberService(memberRepo)
	permissionService := service.NewPermissionService(clubRepo, scheduleRepo, checklistRepo)
	scheduleService := service.NewScheduleService(database, scheduleRepo, checklistRepo, permissionService)

	h := handler.NewHandler(membershipService, memberService, scheduleService, permissionService)
	srv := server.NewServer(h, cfg.Server.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
