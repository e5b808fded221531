package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/storemart/config"
	"github.com/storemart/database"
	"gorm.io/gorm"
)

func main() {
	// Define flags
	force := flag.Bool("force", false, "Force re-seed by clearing existing data")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🌱 Starting Database Seeding Tool")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	fmt.Printf("📊 Database: %s@%s:%s/%s (schema %s)\n\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.Schema)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal("Database connection check failed:", err)
	}

	if *force {
		fmt.Println("⚠️  Force flag enabled. Clearing existing data...")
		// Clear data in reverse dependency order
		tables := []string{
			"refund_history",
			"payment_history",
			"order_history",
			"settings_history",
			"activity_logs",
			"notification_logs",
			"refunds",
			"payment_method_details",
			"payments",
			"order_items",
			"orders",
			"cart_items",
			"carts",
			"product_reviews",
			"product_variants",
			"product_images",
			"products",
			"brands",
			"categories",
			"coupons",
			"files",
			"api_keys",
			"password_history",
			"login_history",
			"user_sessions",
			"user_role_assignments",
			"users",
			"role_permissions",
			"permissions",
			"user_roles",
			"service_urls",
			"infrastructure_settings",
			"tenant_settings",
			"system_settings",
			"logging_settings",
			"rate_limit_settings",
			"session_settings",
			"login_settings",
			"security_settings",
			"tenants",
			"banks",
			"regions",
			"countries",
		}

		for _, table := range tables {
			if err := database.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				log.Printf("Warning: Could not clear table %s: %v", table, err)
			} else {
				log.Printf("  Cleared table: %s", table)
			}
		}
		fmt.Println()
	}

	// Seed data
	if err := database.SeedData(database.DB); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Show statistics
	fmt.Println("\n📊 Database Statistics:")
	showTableStats(database.DB)

	fmt.Println("\n✨ Seeding completed successfully!")
	fmt.Println("\n📝 Next Steps:")
	fmt.Println("1. Generate demo traffic:")
	fmt.Println("   go run cmd/simulate/main.go")
	fmt.Println("\n2. Run the API server:")
	fmt.Println("   go run main.go")
}

func showHelp() {
	fmt.Println("Database Seeding Tool")
	fmt.Println("====================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/seed/main.go [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -force    Force re-seed by clearing existing data")
	fmt.Println("  -help     Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Seed empty database (re-running is a no-op)")
	fmt.Println("  go run cmd/seed/main.go")
	fmt.Println("\n  # Force re-seed (clear and re-insert data)")
	fmt.Println("  go run cmd/seed/main.go -force")
}

func showTableStats(db *gorm.DB) {
	tables := []string{
		"countries", "regions", "banks", "tenants", "user_roles", "permissions",
		"role_permissions", "users", "categories", "brands", "products",
		"product_images", "product_variants", "coupons", "tenant_settings",
		"system_settings", "service_urls",
	}

	for _, table := range tables {
		var count int64
		db.Table(table).Count(&count)
		fmt.Printf("  %-25s: %d rows\n", table, count)
	}
}
