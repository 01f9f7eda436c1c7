package middleware

import (
	"strings"

	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the JWT and sets the warehouseman's identity and
// assigned warehouse in the request context. Downstream handlers read the
// warehouse id from here, never from request bodies.
func RequireAuth(warehousemanRepo repository.WarehousemanRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Check strict session against DB
		user, err := warehousemanRepo.FindByID(claims.WarehousemanID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Warehouseman not found"})
		}

		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "Account is inactive"})
		}

		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
		}

		c.Locals("warehouseman_id", user.ID)
		c.Locals("warehouseman_name", user.Name)
		c.Locals("warehouse_id", user.WarehouseID)

		return c.Next()
	}
}
