package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/storemart/database"
	"github.com/storemart/web/middleware"
)

func reportLimit(c *fiber.Ctx) int {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return limit
}

// ProductSalesReport returns per-product lifetime sales from the
// product_sales_summary view
func ProductSalesReport(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var rows []struct {
		ProductID    uint    `json:"product_id"`
		SKU          string  `json:"sku"`
		ProductName  string  `json:"product_name"`
		UnitsSold    int64   `json:"units_sold"`
		GrossRevenue float64 `json:"gross_revenue"`
		OrderCount   int64   `json:"order_count"`
	}

	if err := database.GetDB().
		Table("product_sales_summary").
		Where("tenant_id = ?", tenant.TenantID).
		Order("gross_revenue DESC").
		Limit(reportLimit(c)).
		Scan(&rows).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":    len(rows),
		"products": rows,
	})
}

// CategorySalesReport returns per-category sales from the
// category_sales_summary view
func CategorySalesReport(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var rows []struct {
		CategoryID   uint    `json:"category_id"`
		CategoryName string  `json:"category_name"`
		UnitsSold    int64   `json:"units_sold"`
		GrossRevenue float64 `json:"gross_revenue"`
	}

	if err := database.GetDB().
		Table("category_sales_summary").
		Where("tenant_id = ?", tenant.TenantID).
		Order("gross_revenue DESC").
		Scan(&rows).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":      len(rows),
		"categories": rows,
	})
}

// BestSellersReport returns the tenant's ranked best sellers
func BestSellersReport(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var rows []struct {
		SalesRank    int64   `json:"sales_rank"`
		ProductID    uint    `json:"product_id"`
		SKU          string  `json:"sku"`
		ProductName  string  `json:"product_name"`
		UnitsSold    int64   `json:"units_sold"`
		GrossRevenue float64 `json:"gross_revenue"`
	}

	if err := database.GetDB().
		Table("best_sellers").
		Where("tenant_id = ?", tenant.TenantID).
		Order("sales_rank").
		Limit(reportLimit(c)).
		Scan(&rows).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":        len(rows),
		"best_sellers": rows,
	})
}

// TrendingReport returns products ranked by sales over the last 30 days
func TrendingReport(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var rows []struct {
		TrendRank       int64  `json:"trend_rank"`
		ProductID       uint   `json:"product_id"`
		SKU             string `json:"sku"`
		ProductName     string `json:"product_name"`
		RecentUnitsSold int64  `json:"recent_units_sold"`
	}

	if err := database.GetDB().
		Table("trending_products").
		Where("tenant_id = ?", tenant.TenantID).
		Order("trend_rank").
		Limit(reportLimit(c)).
		Scan(&rows).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":    len(rows),
		"trending": rows,
	})
}
