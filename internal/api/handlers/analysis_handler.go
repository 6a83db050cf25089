package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/init0-hack8/postpulse/internal/service"
)

type AnalysisHandler struct {
	s service.AnalysisService
}

func NewAnalysisHandler(service service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{s: service}
}

func (h *AnalysisHandler) GetAnalysis(c *fiber.Ctx) error {
	postID := c.Params("postId")

	view, found, err := h.s.Result(c.Context(), postID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to get analysis result",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No analysis found for this post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(view)
}
