package cmd

import (
	"context"
	"os"
	"time"

	"github.com/AzielCF/az-medical-mcp/core/config"
	domainAnalysis "github.com/AzielCF/az-medical-mcp/domains/analysis"
	domainBilling "github.com/AzielCF/az-medical-mcp/domains/billing"
	domainCatalog "github.com/AzielCF/az-medical-mcp/domains/catalog"
	domainHealth "github.com/AzielCF/az-medical-mcp/domains/health"
	domainPatient "github.com/AzielCF/az-medical-mcp/domains/patient"
	domainPayment "github.com/AzielCF/az-medical-mcp/domains/payment"
	"github.com/AzielCF/az-medical-mcp/infrastructure/patientstore"
	"github.com/AzielCF/az-medical-mcp/infrastructure/stripe"
	"github.com/AzielCF/az-medical-mcp/pkg/utils"
	"github.com/AzielCF/az-medical-mcp/providers"
	"github.com/AzielCF/az-medical-mcp/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	appConfig *config.Config
	startedAt = time.Now()

	// Usecase
	billingUsecase      domainBilling.IBillingUsecase
	analysisUsecase     domainAnalysis.IAnalysisUsecase
	paidAnalysisUsecase domainAnalysis.IPaidAnalysisUsecase
	paymentUsecase      domainPayment.IPaymentUsecase
	patientUsecase      domainPatient.IPatientUsecase
	catalogUsecase      domainCatalog.ICatalogUsecase
	healthUsecase       domainHealth.IHealthUsecase

	closePatientStore = func() {}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medical-mcp",
	Short: "Medical document analysis agent over MCP",
	Long: `Medical Agent exposes tiered medical document analysis, Stripe billing and
patient summaries as MCP tools. Run "mcp" for the tool server or "rest" for the HTTP mirror.`,
}

func init() {
	// Load environment variables first
	utils.LoadConfig(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initApp)
}

func initFlags() {
	flags := rootCmd.PersistentFlags()

	flags.BoolP("debug", "d", false, "enable debug logging --debug <true/false> | example: --debug=true")
	flags.String("env", "", `environment name reported by health_check --env <string> | example: --env="production"`)
	flags.String("patient-store", "", `patient record store: memory, database or valkey | example: --patient-store="database"`)
	flags.String("db-driver", "", `SQL driver for the database patient store: sqlite or postgres | example: --db-driver="postgres"`)

	bindFlag("APP_DEBUG", "debug")
	bindFlag("APP_ENV", "env")
	bindFlag("PATIENT_STORE", "patient-store")
	bindFlag("DB_DRIVER", "db-driver")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		logrus.Fatalf("failed to bind flag %s: %v", flag, err)
	}
}

func initApp() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}
	appConfig = cfg

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()

	repo, closeStore, err := patientstore.Open(ctx, cfg)
	if err != nil {
		logrus.Fatalf("[PATIENT] failed to open patient store: %v", err)
	}
	closePatientStore = closeStore

	// A nil gateway keeps the payment tools registered; each reports a configuration error.
	var gateway domainPayment.Gateway
	if cfg.APIKeys.Stripe != "" {
		gateway = stripe.NewGateway(cfg.APIKeys.Stripe)
	} else {
		logrus.Warn("[PAYMENT] STRIPE_API_KEY not set, payment tools are disabled")
	}

	chain := providers.NewChain(cfg)
	for name, configured := range chain.Configured() {
		if !configured {
			logrus.Warnf("[ANALYSIS] %s provider not configured", name)
		}
	}

	environment := cfg.EnvironmentName()

	billingUsecase = usecase.NewBillingService()
	analysisUsecase = usecase.NewAnalysisService(chain, usecase.AnalysisOptions{
		Timeout:     cfg.AI.RequestTimeout,
		Environment: environment,
	})
	paymentUsecase = usecase.NewPaymentService(gateway)
	paidAnalysisUsecase = usecase.NewPaidAnalysisService(paymentUsecase, analysisUsecase)
	patientUsecase = usecase.NewPatientService(repo)
	catalogUsecase = usecase.NewCatalogService(cfg.App.Version)
	healthUsecase = usecase.NewHealthService(paymentUsecase, analysisUsecase, usecase.HealthOptions{
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		PatientStore: cfg.Database.PatientStore,
		StartedAt:    startedAt,
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// StopApp releases the patient store connections.
func StopApp() {
	logrus.Info("[APP] Stopping application...")
	closePatientStore()
	logrus.Info("[APP] Application stopped cleanly.")
}
