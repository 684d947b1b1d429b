package main

import (
	"fmt"
	"log/slog"
	"os"

	"courierapp/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.Default()

	app := cmd.NewCompositionRoot(configs)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		BackendBaseURL:   goDotEnvVariable("BACKEND_BASE_URL"),
		BackendTimeout:   goDotEnvVariable("BACKEND_TIMEOUT"),
		OrderRefreshSpec: goDotEnvVariable("ORDER_REFRESH_SPEC"),
		SupportPhone:     goDotEnvVariable("SUPPORT_PHONE"),
		SupportEmail:     goDotEnvVariable("SUPPORT_EMAIL"),
		SupportTelegram:  goDotEnvVariable("SUPPORT_TELEGRAM"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
