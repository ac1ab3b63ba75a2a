package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AzielCF/az-medical-mcp/ui/rest"
	"github.com/AzielCF/az-medical-mcp/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const restBodyLimit = 10 * 1024 * 1024

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the Medical Agent tools over HTTP",
	Long:  `Serve the same billing, analysis, payment and patient operations as a JSON REST API.`,
	Run:   restServer,
}

func init() {
	restCmd.Flags().StringP("port", "p", "", "change port number with --port <number> | example: --port=8080")
	restCmd.Flags().StringP("basic-auth", "b", "", "Basic auth for API (format: user:pass,user2:pass2)")
	for key, flag := range map[string]string{"APP_PORT": "port", "APP_BASIC_AUTH": "basic-auth"} {
		if err := viper.BindPFlag(key, restCmd.Flags().Lookup(flag)); err != nil {
			logrus.Fatalf("failed to bind flag %s: %v", flag, err)
		}
	}
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	app := fiber.New(fiber.Config{
		BodyLimit:             restBodyLimit,
		Network:               "tcp",
		AppName:               "Medical Agent",
		DisableStartupMessage: false,
		ServerHeader:          "Hidden",
	})

	// Security: RequestID for audit trails
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if appConfig.App.Debug {
		app.Use(logger.New())
	}

	apiGroup := app.Group(appConfig.App.BasePath + "/api")

	if len(appConfig.App.BasicAuth) > 0 {
		account := make(map[string]string)
		for _, basicAuth := range appConfig.App.BasicAuth {
			ba := strings.SplitN(basicAuth, ":", 2)
			if len(ba) != 2 {
				logrus.Fatalln("Basic auth is not valid, please this following format <user>:<secret>")
			}
			account[ba[0]] = ba[1]
		}
		apiGroup.Use(basicauth.New(basicauth.Config{
			Users: account,
			Next: func(c *fiber.Ctx) bool {
				// Allow CORS preflight without credentials.
				return c.Method() == fiber.MethodOptions
			},
		}))
	} else {
		logrus.Warn("[REST] APP_BASIC_AUTH not set, the API is served without authentication")
	}

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
		StopApp()
	}()

	rest.InitRestHealth(apiGroup, healthUsecase, catalogUsecase)
	rest.InitRestAnalysis(apiGroup, analysisUsecase, billingUsecase, patientUsecase)
	rest.InitRestPayment(apiGroup, paymentUsecase, paidAnalysisUsecase)

	apiGroup.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "API Endpoint not found",
			"path":  c.Path(),
		})
	})

	if err := app.Listen(":" + appConfig.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
