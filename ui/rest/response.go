package rest

import (
	"errors"

	pkgError "github.com/AzielCF/az-medical-mcp/pkg/error"
	"github.com/AzielCF/az-medical-mcp/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func success(c *fiber.Ctx, status int, message string, results any) error {
	return c.Status(status).JSON(utils.ResponseData{
		Status:  status,
		Code:    "SUCCESS",
		Message: message,
		Results: results,
	})
}

// failure renders err with the status and code of its GenericError kind.
// Details, when present, are returned as results.
func failure(c *fiber.Ctx, err error) error {
	res := utils.ResponseData{
		Status:  fiber.StatusInternalServerError,
		Code:    "INTERNAL_SERVER_ERROR",
		Message: err.Error(),
	}

	var generic pkgError.GenericError
	if errors.As(err, &generic) {
		res.Status = generic.StatusCode()
		res.Code = generic.ErrCode()
		res.Message = generic.Error()
	} else {
		logrus.WithError(err).Errorf("[REST] %s %s failed", c.Method(), c.Path())
	}

	var detailed pkgError.DetailedError
	if errors.As(err, &detailed) && len(detailed.Details()) > 0 {
		res.Results = detailed.Details()
	}

	return c.Status(res.Status).JSON(res)
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return pkgError.ValidationError("invalid request body: " + err.Error())
	}
	return nil
}

// documentCount defaults an absent document_count to one document. An explicit
// value is kept so validation can reject it.
func documentCount(value *int) int {
	if value == nil {
		return 1
	}
	return *value
}
