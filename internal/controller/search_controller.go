package controller

import (
	"kb-search-be/internal/dto"
	"kb-search-be/internal/pkg/serverutils"
	"kb-search-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	// One service per content domain, keyed by the path segment.
	services map[string]service.ISearchService
}

func NewSearchController(services map[string]service.ISearchService) ISearchController {
	return &searchController{services: services}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	r.Get("/search/:domain", c.Search)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	svc, ok := c.services[ctx.Params("domain")]
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown search domain",
		})
	}

	var req dto.SearchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewValidationError(err)
	}
	req.ApplyDefaults()
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := svc.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
