package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"shoptv/api"
	"shoptv/handlers"
	"shoptv/services/schedule"
	"shoptv/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := getenv("PORT", "8080")
	dataDir := getenv("DATA_DIR", "data")

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}

	store := schedule.NewService(afero.NewOsFs(), dataDir)
	h := handlers.NewScheduleHandler(store)

	r := utils.NewRouter()
	r.Use(api.RequestIDMiddleware(), api.LoggingMiddleware())

	r.HandleFunc("/dates", h.GetDates).Methods(http.MethodGet)
	r.HandleFunc("/dates", h.Options).Methods(http.MethodOptions)
	r.HandleFunc("/schedule/{date}", h.GetSchedule).Methods(http.MethodGet)
	r.HandleFunc("/schedule/{date}", h.Options).Methods(http.MethodOptions)
	r.HandleFunc("/schedule/{date}/groups", h.GetTimeGroups).Methods(http.MethodGet)
	r.HandleFunc("/schedule/{date}/export", h.ExportCSV).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("schedule dashboard listening on :%s (data dir %s)", port, dataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
