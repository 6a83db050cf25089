package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/init0-hack8/postpulse/internal/composer"
	"github.com/init0-hack8/postpulse/internal/queue"
	"github.com/init0-hack8/postpulse/internal/service"
)

type PostHandler struct {
	s           service.PostService
	previews    service.PreviewService
	AsynqClient *asynq.Client
}

func NewPostHandler(s service.PostService, previews service.PreviewService, asynqClient *asynq.Client) *PostHandler {
	return &PostHandler{s: s, previews: previews, AsynqClient: asynqClient}
}

// PreviewImages returns inline data-URL previews for the current file
// selection. An empty selection clears the previews.
func (h *PostHandler) PreviewImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	previews, err := h.previews.FromFiles(c.Context(), form.File["files"])
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to generate previews",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"previews": previews,
	})
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	uid := GetUserID(c)

	form, err := c.MultipartForm()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	draft := composer.NewDraft()
	draft.SelectPlatform(c.FormValue("platform"))
	draft.SetContent(c.FormValue("description"))
	draft.ToggleJobUpdate(c.FormValue("is_job_update") == "true")
	draft.SetFiles(form.File["files"])

	result, err := h.s.CreatePost(c.Context(), uid, draft)
	if err != nil {
		var validationErr *composer.ValidationError
		var authErr *service.AuthenticationError
		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": validationErr.Error(),
			})
		case errors.As(err, &authErr):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Please log in again",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unable to create post",
			})
		}
	}

	err = queue.EnqueueAnalysis(h.AsynqClient, queue.AnalyzePostPayload{PostID: result.PostID})
	if err != nil {
		// The post is written; the sweep job will pick the analysis up.
		slog.Info("Error enqueueing analysis task", "post_id", result.PostID, "error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	uid := GetUserID(c)
	postID := c.Query("id")

	if postID != "" {
		post, err := h.s.PostInfo(c.Context(), postID, uid)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to get post",
			})
		}

		return c.Status(fiber.StatusOK).JSON(post)
	}

	posts, err := h.s.List(c.Context(), uid)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}
