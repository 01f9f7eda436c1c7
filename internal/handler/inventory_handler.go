package handler

import (
	"errors"
	"strconv"

	"go-warehouse-api/internal/catalog"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// Helpers to read the actor info set by the auth middleware.
func getActorID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("warehouseman_id").(uint); ok {
		return id
	}
	return 0 // shouldn't happen on protected routes
}

func getWarehouseID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("warehouse_id").(uint); ok {
		return id
	}
	return 0
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

// GetProducts returns the catalog, ordered when a sort key is given.
// GET /api/v1/products?sort=price-asc
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	key := catalog.OrderingKey(c.Query("sort"))

	products, err := h.service.ListProducts(key)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// SearchProducts matches by name or barcode substring.
// GET /api/v1/products/search?q=choco
func (h *InventoryHandler) SearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Query("q"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(product)
}

// GetProductByBarcode backs the scanner screen: a scan either opens the
// product or falls through to the create form.
func (h *InventoryHandler) GetProductByBarcode(c *fiber.Ctx) error {
	product, err := h.service.GetProductByBarcode(c.Params("barcode"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(product)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product, getActorID(c)); err != nil {
		if errors.Is(err, service.ErrBarcodeTaken) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// AdjustStockRequest represents the stock adjustment request body. The
// warehouse comes from the caller's token, never from the body.
type AdjustStockRequest struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// AdjustStock applies a quantity delta to the caller's warehouse row.
// PUT /api/v1/products/:id/stock
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.AdjustStock(id, getWarehouseID(c), getActorID(c), catalog.Action(req.Action), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		case errors.Is(err, catalog.ErrStockNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, catalog.ErrNegativeQuantity), errors.Is(err, catalog.ErrInvalidAmount), errors.Is(err, catalog.ErrInvalidAction):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update stock"})
		}
	}

	return c.JSON(fiber.Map{"message": "Stock updated", "data": updated})
}
