package mcp

import (
	"errors"

	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

// toolError renders err as a structured tool result flagged IsError. Domain
// failures never surface as protocol errors.
func toolError(tool string, err error) (*mcp.CallToolResult, error) {
	payload := map[string]any{
		"success": false,
		"error":   err.Error(),
		"kind":    "INTERNAL_ERROR",
	}

	var genericErr pkgError.GenericError
	if errors.As(err, &genericErr) {
		payload["kind"] = genericErr.ErrCode()
	} else {
		logrus.WithError(err).WithField("tool", tool).Error("[MCP] Unexpected tool failure")
	}

	var detailed pkgError.DetailedError
	if errors.As(err, &detailed) {
		for k, v := range detailed.Details() {
			if _, reserved := payload[k]; !reserved {
				payload[k] = v
			}
		}
	}

	result := mcp.NewToolResultStructured(payload, err.Error())
	result.IsError = true
	return result, nil
}

// argumentError reports a missing or malformed tool argument.
func argumentError(tool string, err error) (*mcp.CallToolResult, error) {
	return toolError(tool, pkgError.ValidationError(err.Error()))
}
