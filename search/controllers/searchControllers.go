package controllers

import (
	"inspection-backend/config"
	"inspection-backend/search/repositories"

	"github.com/blevesearch/bleve/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SearchController struct {
	SearchRepo repositories.SearchRepositoryInterface
}

func NewSearchController(searchRepo repositories.SearchRepositoryInterface) *SearchController {
	return &SearchController{SearchRepo: searchRepo}
}

// SearchDevicesController handles full-text device search
func (sc *SearchController) SearchDevicesController(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing query parameter 'q'",
		})
	}

	size := c.QueryInt("size", 20)
	result, err := sc.SearchRepo.SearchDevices(q, size)
	if err != nil {
		config.Logger.Error("Device search failed", zap.String("query", q), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Search completed",
		"data":    formatHits(result),
	})
}

// SearchCustomersController handles full-text customer search
func (sc *SearchController) SearchCustomersController(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing query parameter 'q'",
		})
	}

	size := c.QueryInt("size", 20)
	result, err := sc.SearchRepo.SearchCustomers(q, size)
	if err != nil {
		config.Logger.Error("Customer search failed", zap.String("query", q), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Search completed",
		"data":    formatHits(result),
	})
}

func formatHits(result *bleve.SearchResult) fiber.Map {
	hits := make([]fiber.Map, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, fiber.Map{
			"id":     hit.ID,
			"score":  hit.Score,
			"fields": hit.Fields,
		})
	}
	return fiber.Map{
		"total": result.Total,
		"hits":  hits,
	}
}
