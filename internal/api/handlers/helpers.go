package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func GetUserID(c *fiber.Ctx) string {
	uid, _ := c.Locals("user_id").(string)
	return uid
}
