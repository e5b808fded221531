package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/storemart/database"
)

// Health reports service and database liveness
func Health(c *fiber.Ctx) error {
	status := "ok"
	if err := database.CheckConnection(database.GetDB()); err != nil {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status": status,
		"schema": database.SchemaName(),
	})
}

// GetSQLLogs returns recent SQL queries for debugging
func GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetQueries()
	return c.JSON(fiber.Map{
		"count":   len(queries),
		"queries": queries,
	})
}

// ClearSQLLogs clears the SQL query log
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.JSON(fiber.Map{
		"message": "SQL logs cleared",
	})
}
