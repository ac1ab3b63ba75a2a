package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	domainHealth "github.com/AzielCF/az-medical-mcp/domains/health"
	"github.com/AzielCF/az-medical-mcp/ui/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	transportStdio = "stdio"
	transportSSE   = "sse"
	transportHTTP  = "http"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Medical Agent MCP server",
	Long: `Start the Medical Agent MCP (Model Context Protocol) server. The stdio transport
is the default; sse and http (streamable HTTP) listen on --host:--port.`,
	Run: mcpServer,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "", "MCP transport: stdio, sse or http")
	mcpCmd.Flags().String("port", "", "Port for the sse and http transports")
	mcpCmd.Flags().String("host", "", "Host for the sse and http transports")

	for key, flag := range map[string]string{"MCP_TRANSPORT": "transport", "MCP_PORT": "port", "MCP_HOST": "host"} {
		if err := viper.BindPFlag(key, mcpCmd.Flags().Lookup(flag)); err != nil {
			logrus.Fatalf("failed to bind flag %s: %v", flag, err)
		}
	}
}

// newMCPServer registers every tool on a fresh server.
func newMCPServer() *server.MCPServer {
	mcpServer := server.NewMCPServer(
		domainHealth.ServiceName,
		appConfig.App.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	paymentHandler := mcp.InitMcpPayment(paymentUsecase)
	paymentHandler.AddPaymentTools(mcpServer)

	analysisHandler := mcp.InitMcpAnalysis(analysisUsecase, paidAnalysisUsecase)
	analysisHandler.AddAnalysisTools(mcpServer)

	queryHandler := mcp.InitMcpQuery(patientUsecase, billingUsecase, catalogUsecase, healthUsecase)
	queryHandler.AddQueryTools(mcpServer)

	return mcpServer
}

func mcpServer(_ *cobra.Command, _ []string) {
	mcpServer := newMCPServer()
	transport := appConfig.MCP.Transport
	addr := fmt.Sprintf("%s:%s", appConfig.MCP.Host, appConfig.MCP.Port)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[MCP] Reception of termination signal, shutting down gracefully...")
		StopApp()
		os.Exit(0)
	}()

	switch transport {
	case transportStdio:
		// stdout carries the protocol
		logrus.SetOutput(os.Stderr)
		logrus.Info("[MCP] Serving on stdio")
		if err := server.ServeStdio(mcpServer); err != nil {
			logrus.Fatalf("[MCP] stdio server stopped: %v", err)
		}
		StopApp()

	case transportSSE:
		sseServer := server.NewSSEServer(
			mcpServer,
			server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
			server.WithKeepAlive(true),
		)
		logrus.Printf("[MCP] Starting SSE server on %s", addr)
		logrus.Printf("[MCP] SSE endpoint: http://%s/sse", addr)
		logrus.Printf("[MCP] Message endpoint: http://%s/message", addr)
		if err := sseServer.Start(addr); err != nil {
			logrus.Fatalf("Failed to start SSE server: %v", err)
		}

	case transportHTTP:
		httpServer := server.NewStreamableHTTPServer(mcpServer)
		logrus.Printf("[MCP] Starting streamable HTTP server on http://%s/mcp", addr)
		if err := httpServer.Start(addr); err != nil {
			logrus.Fatalf("Failed to start streamable HTTP server: %v", err)
		}

	default:
		logrus.Fatalf("[MCP] unknown transport %q, expected %s, %s or %s", transport, transportStdio, transportSSE, transportHTTP)
	}
}
