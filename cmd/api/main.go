package main

import (
	"fmt"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/config"
	appHTTP "github.com/workforcehq/workforce-backend-go/internal/handler/http"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforcehq/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workforcehq/workforce-backend-go/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clock.System())

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
