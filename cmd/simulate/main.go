package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/storemart/config"
	"github.com/storemart/database"
	"github.com/storemart/models"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	var (
		tenantSlug = flag.String("tenant", "demo-store", "Tenant slug to simulate traffic for")
		startDate  = flag.String("start", defaultStart(), "Simulation start date (YYYY-MM-DD)")
		endDate    = flag.String("end", defaultEnd(), "Simulation end date (YYYY-MM-DD)")
		seed       = flag.Bool("seed", false, "Run initial seed if database is empty")
		noQueryLog = flag.Bool("no-query-log", false, "Disable query logging during simulation")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	if err := database.InitializeWithOptions(&cfg.Database, *noQueryLog); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	db := database.GetDB()
	log.Println("✅ Connected to database successfully")

	// Check if initial seed is needed
	if *seed {
		var tenantCount int64
		db.Model(&models.Tenant{}).Count(&tenantCount)

		if tenantCount == 0 {
			log.Println("Database is empty, running initial seed...")
			if err := database.SeedData(db); err != nil {
				log.Fatalf("Failed to seed initial data: %v", err)
			}
			log.Println("✅ Initial seed completed")
		} else {
			log.Printf("Database already has %d tenants, skipping seed", tenantCount)
		}
	}

	// Parse dates
	start, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		log.Fatalf("Invalid start date: %v", err)
	}

	end, err := time.Parse("2006-01-02", *endDate)
	if err != nil {
		log.Fatalf("Invalid end date: %v", err)
	}

	if end.Before(start) {
		log.Fatalf("End date must be after start date")
	}

	// Run simulation
	if err := database.RunSimulation(db, *tenantSlug, start, end); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	log.Println("✅ Simulation completed successfully!")
	printStatistics(db, *tenantSlug, start, end)
}

func defaultStart() string {
	return time.Now().AddDate(0, -1, 0).Format("2006-01-02")
}

func defaultEnd() string {
	return time.Now().Format("2006-01-02")
}

// printStatistics prints order, payment and refund totals for the period
func printStatistics(db *gorm.DB, tenantSlug string, start, end time.Time) {
	var tenant models.Tenant
	if err := db.Where("slug = ?", tenantSlug).First(&tenant).Error; err != nil {
		return
	}

	fmt.Println("\n╔══════════════════════════════════════════════╗")
	fmt.Println("║          SIMULATION STATISTICS               ║")
	fmt.Println("╚══════════════════════════════════════════════╝")

	var orderStats struct {
		Count int64
		Total float64
	}
	db.Model(&models.Order{}).
		Select("COUNT(*) as count, COALESCE(SUM(total_amount), 0) as total").
		Where("tenant_id = ? AND status <> ?", tenant.TenantID, models.OrderCancelled).
		Scan(&orderStats)

	fmt.Printf("\n🛒 ORDERS\n")
	fmt.Printf("   Total Orders:  %d\n", orderStats.Count)
	fmt.Printf("   Total Value:   %.2f %s\n", orderStats.Total, tenant.DefaultCurrency)

	var paymentStats struct {
		Count int64
		Total float64
	}
	db.Model(&models.Payment{}).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Where("tenant_id = ? AND status IN ?", tenant.TenantID,
			[]models.PaymentStatus{models.PaymentCompleted, models.PaymentRefunded}).
		Scan(&paymentStats)

	fmt.Printf("\n💳 PAYMENTS\n")
	fmt.Printf("   Collected Payments: %d\n", paymentStats.Count)
	fmt.Printf("   Collected Amount:   %.2f %s\n", paymentStats.Total, tenant.DefaultCurrency)

	var refundStats struct {
		Count int64
		Total float64
	}
	db.Model(&models.Refund{}).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Where("tenant_id = ? AND status = ?", tenant.TenantID, models.RefundProcessed).
		Scan(&refundStats)

	fmt.Printf("\n↩️  REFUNDS\n")
	fmt.Printf("   Processed Refunds: %d\n", refundStats.Count)
	fmt.Printf("   Refunded Amount:   %.2f %s\n", refundStats.Total, tenant.DefaultCurrency)

	// Top products from the reporting view
	type topProduct struct {
		ProductName string
		UnitsSold   int64
	}
	var top []topProduct
	db.Table("best_sellers").
		Select("product_name, units_sold").
		Where("tenant_id = ?", tenant.TenantID).
		Order("sales_rank").
		Limit(5).
		Scan(&top)

	fmt.Printf("\n🏆 TOP 5 BEST SELLERS\n")
	for i, p := range top {
		fmt.Printf("   %d. %-35s Qty: %d\n", i+1, p.ProductName, p.UnitsSold)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > 0 && orderStats.Count > 0 {
		fmt.Printf("\n📈 DAILY AVERAGES\n")
		fmt.Printf("   Orders/day:  %.1f\n", float64(orderStats.Count)/float64(days))
		fmt.Printf("   Revenue/day: %.2f %s\n", paymentStats.Total/float64(days), tenant.DefaultCurrency)
	}
}
