package rest

import (
	"github.com/AzielCF/az-medical-mcp/domains/catalog"
	"github.com/AzielCF/az-medical-mcp/domains/health"
	"github.com/gofiber/fiber/v2"
)

type Health struct {
	Service health.IHealthUsecase
	Catalog catalog.ICatalogUsecase
}

func InitRestHealth(app fiber.Router, service health.IHealthUsecase, catalogService catalog.ICatalogUsecase) Health {
	handler := Health{Service: service, Catalog: catalogService}

	app.Get("/health", handler.GetStatus)
	app.Get("/services", handler.GetServices)

	return handler
}

func (h *Health) GetStatus(c *fiber.Ctx) error {
	report := h.Service.Check(c.UserContext())
	return success(c, fiber.StatusOK, "Health status retrieved", report)
}

func (h *Health) GetServices(c *fiber.Ctx) error {
	return success(c, fiber.StatusOK, "Service catalog retrieved", h.Catalog.Services(c.UserContext()))
}
