package database

import (
	"log"

	"gorm.io/gorm"
)

// CreateViews creates the reporting views. Cancelled orders are excluded
// from all sales aggregates; refunded orders still count as sold.
func CreateViews(db *gorm.DB) error {
	views := []struct {
		name  string
		query string
	}{
		{"product_sales_summary", `
			CREATE OR REPLACE VIEW product_sales_summary AS
			SELECT
				p.tenant_id,
				p.product_id,
				p.sku,
				p.name AS product_name,
				COALESCE(SUM(oi.quantity), 0) AS units_sold,
				COALESCE(SUM(oi.line_total), 0) AS gross_revenue,
				COUNT(DISTINCT o.order_id) AS order_count
			FROM products p
			LEFT JOIN order_items oi ON oi.product_id = p.product_id
			LEFT JOIN orders o ON o.order_id = oi.order_id AND o.status <> 'cancelled'
			GROUP BY p.tenant_id, p.product_id, p.sku, p.name`},

		{"category_sales_summary", `
			CREATE OR REPLACE VIEW category_sales_summary AS
			SELECT
				c.tenant_id,
				c.category_id,
				c.name AS category_name,
				COALESCE(SUM(oi.quantity), 0) AS units_sold,
				COALESCE(SUM(oi.line_total), 0) AS gross_revenue
			FROM categories c
			LEFT JOIN products p ON p.category_id = c.category_id
			LEFT JOIN order_items oi ON oi.product_id = p.product_id
			LEFT JOIN orders o ON o.order_id = oi.order_id AND o.status <> 'cancelled'
			GROUP BY c.tenant_id, c.category_id, c.name`},

		{"best_sellers", `
			CREATE OR REPLACE VIEW best_sellers AS
			SELECT
				tenant_id,
				product_id,
				sku,
				product_name,
				units_sold,
				gross_revenue,
				RANK() OVER (PARTITION BY tenant_id ORDER BY units_sold DESC) AS sales_rank
			FROM product_sales_summary
			WHERE units_sold > 0`},

		{"trending_products", `
			CREATE OR REPLACE VIEW trending_products AS
			SELECT
				p.tenant_id,
				p.product_id,
				p.sku,
				p.name AS product_name,
				COALESCE(SUM(oi.quantity), 0) AS recent_units_sold,
				RANK() OVER (PARTITION BY p.tenant_id ORDER BY COALESCE(SUM(oi.quantity), 0) DESC) AS trend_rank
			FROM products p
			JOIN order_items oi ON oi.product_id = p.product_id
			JOIN orders o ON o.order_id = oi.order_id
				AND o.status <> 'cancelled'
				AND o.created_at >= NOW() - INTERVAL '30 days'
			GROUP BY p.tenant_id, p.product_id, p.sku, p.name`},
	}

	for _, v := range views {
		if err := db.Exec(v.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create view %s: %v", v.name, err)
		} else {
			log.Printf("  ✓ Created view: %s", v.name)
		}
	}

	return nil
}
