package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"morent/internal/database"
	"morent/internal/middleware"
	"morent/internal/modules/auth"
	"morent/internal/modules/content"
	"morent/internal/modules/guest"
	"morent/internal/modules/notify"
	"morent/internal/modules/reminder"
	jwtsvc "morent/internal/pkg/jwt"
	"morent/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "morent.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	apartmentRepo := repository.NewApartmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	kvRepo := repository.NewKVRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notify.NewHub()
	notifyService := notify.NewService(hub, notificationRepo, promptFromEnv())
	notifyHandler := notify.NewHandler(notifyService, hub)

	store := reminder.NewStore(kvRepo)
	engine := reminder.NewEngine(store, notifyService)
	reminderHandler := reminder.NewHandler(engine, store)

	contentService := content.NewService(apartmentRepo, bookingRepo, engine)
	contentHandler := content.NewHandler(contentService)

	scheduler := reminder.NewScheduler(engine, contentService, reminder.DefaultInterval)
	contentService.AttachScheduler(scheduler)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	guestService := guest.NewService(bookingRepo)
	guestHandler := guest.NewHandler(guestService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	// public guest page: the slug is the credential
	guestHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			contentHandler.RegisterRoutes(protected)
			reminderHandler.RegisterRoutes(protected)
			notifyHandler.RegisterRoutes(protected)

			adminOnly := protected.Group("/")
			adminOnly.Use(middleware.AdminOnly())
			contentHandler.RegisterAdminRoutes(adminOnly)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler.Start(ctx)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	scheduler.Stop()
	hub.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// promptFromEnv models the one-time permission prompt: a deploy that sets
// NOTIFICATIONS_ENABLED=false permanently denies delivery.
func promptFromEnv() notify.Prompt {
	return func() bool {
		return os.Getenv("NOTIFICATIONS_ENABLED") != "false"
	}
}
