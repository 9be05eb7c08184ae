package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poblenou/monopoly-backend/app/controllers"
)

func GameRoutes(a *fiber.App) {
	route := a.Group("/game")

	route.Get("/all", controllers.GetOpenRooms)
	route.Get("/verify", controllers.VerifyRoom)
}
