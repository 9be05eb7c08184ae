package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poblenou/monopoly-backend/app/models"
	"github.com/poblenou/monopoly-backend/pkg"
	"github.com/poblenou/monopoly-backend/platform/cache"
	"github.com/poblenou/monopoly-backend/platform/game"
)

// GetOpenRooms lists rooms that are still joinable.
func GetOpenRooms(c *fiber.Ctx) error {
	conn, err := cache.CreateRedisConnection()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	rooms, err := cache.ListRooms(conn)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	open := make([]game.RoomInfo, 0, len(rooms))
	for _, rm := range rooms {
		if !rm.Started {
			open = append(open, rm)
		}
	}
	return c.JSON(open)
}

// VerifyRoom reports whether a room code refers to a joinable room.
func VerifyRoom(c *fiber.Ctx) error {
	dto := new(models.VerifyRoomDto)
	if err := c.QueryParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	conn, err := cache.CreateRedisConnection()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	info, ok, err := cache.GetRoom(pkg.Sanitize(dto.Code), conn)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"status": ok && !info.Started})
}
