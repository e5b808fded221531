package database

import (
	"log"
	"time"

	"github.com/storemart/models"
	"gorm.io/gorm"
)

// seedCatalog creates the demo tenant's categories, brands, products,
// images and variants
func seedCatalog(tx *gorm.DB, tenantID uint) error {
	categories := []models.Category{
		{TenantID: tenantID, Name: "Electronics", Slug: "electronics", HsnCode: strPtr("8517"), GstSlab: gstSlabPtr(models.GstSlabEighteen), Position: 1},
		{TenantID: tenantID, Name: "Groceries", Slug: "groceries", HsnCode: strPtr("2106"), GstSlab: gstSlabPtr(models.GstSlabFive), Position: 2},
		{TenantID: tenantID, Name: "Apparel", Slug: "apparel", HsnCode: strPtr("6109"), GstSlab: gstSlabPtr(models.GstSlabTwelve), Position: 3},
		{TenantID: tenantID, Name: "Home & Kitchen", Slug: "home-kitchen", HsnCode: strPtr("7323"), GstSlab: gstSlabPtr(models.GstSlabEighteen), Position: 4},
	}
	for i := range categories {
		if err := tx.Where(models.Category{TenantID: tenantID, Slug: categories[i].Slug}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	// Subcategory under Electronics
	audio := models.Category{
		TenantID: tenantID,
		ParentID: uintPtr(getCategoryID(tx, tenantID, "electronics")),
		Name:     "Audio",
		Slug:     "audio",
		HsnCode:  strPtr("8518"),
		GstSlab:  gstSlabPtr(models.GstSlabEighteen),
		Position: 1,
	}
	if err := tx.Where(models.Category{TenantID: tenantID, Slug: audio.Slug}).
		FirstOrCreate(&audio).Error; err != nil {
		return err
	}
	log.Printf("  ✓ Seeded %d categories", len(categories)+1)

	brands := []models.Brand{
		{TenantID: tenantID, Name: "Voltify", Slug: "voltify"},
		{TenantID: tenantID, Name: "FarmFresh", Slug: "farmfresh"},
		{TenantID: tenantID, Name: "UrbanWeave", Slug: "urbanweave"},
		{TenantID: tenantID, Name: "CasaLine", Slug: "casaline"},
	}
	for i := range brands {
		if err := tx.Where(models.Brand{TenantID: tenantID, Slug: brands[i].Slug}).
			FirstOrCreate(&brands[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d brands", len(brands))

	electronicsID := getCategoryID(tx, tenantID, "electronics")
	audioID := getCategoryID(tx, tenantID, "audio")
	groceriesID := getCategoryID(tx, tenantID, "groceries")
	apparelID := getCategoryID(tx, tenantID, "apparel")
	kitchenID := getCategoryID(tx, tenantID, "home-kitchen")

	voltifyID := getBrandID(tx, tenantID, "voltify")
	farmfreshID := getBrandID(tx, tenantID, "farmfresh")
	urbanweaveID := getBrandID(tx, tenantID, "urbanweave")
	casalineID := getBrandID(tx, tenantID, "casaline")

	products := []models.Product{
		{
			TenantID: tenantID, CategoryID: uintPtr(electronicsID), BrandID: uintPtr(voltifyID),
			SKU: "ELEC-PWB-10K", Slug: "voltify-powerbank-10000", Name: "Voltify PowerBank 10000mAh",
			Description: strPtr("Slim 10000mAh power bank with dual USB-C output"),
			Price:       1499.00, CompareAtPrice: floatPtr(1999.00), CostPrice: floatPtr(820.00),
			HsnCode: strPtr("8507"), GstSlab: gstSlabPtr(models.GstSlabEighteen),
			TotalStockAvailable: 240,
		},
		{
			TenantID: tenantID, CategoryID: uintPtr(audioID), BrandID: uintPtr(voltifyID),
			SKU: "ELEC-BUD-PRO", Slug: "voltify-buds-pro", Name: "Voltify Buds Pro",
			Description: strPtr("Wireless earbuds with active noise cancellation"),
			Price:       3299.00, CompareAtPrice: floatPtr(4499.00), CostPrice: floatPtr(1750.00),
			HsnCode: strPtr("8518"), GstSlab: gstSlabPtr(models.GstSlabEighteen),
			TotalStockAvailable: 120,
		},
		{
			TenantID: tenantID, CategoryID: uintPtr(groceriesID), BrandID: uintPtr(farmfreshID),
			SKU: "GROC-HNY-500", Slug: "farmfresh-honey-500g", Name: "FarmFresh Wild Honey 500g",
			Description: strPtr("Raw unfiltered honey from the Nilgiris"),
			Price:       349.00, CostPrice: floatPtr(190.00),
			HsnCode: strPtr("0409"), GstSlab: gstSlabPtr(models.GstSlabFive),
			TotalStockAvailable: 500,
		},
		{
			TenantID: tenantID, CategoryID: uintPtr(apparelID), BrandID: uintPtr(urbanweaveID),
			SKU: "APP-TSH-CLS", Slug: "urbanweave-classic-tee", Name: "UrbanWeave Classic Tee",
			Description: strPtr("100% combed cotton crew-neck t-shirt"),
			Price:       699.00, CompareAtPrice: floatPtr(999.00), CostPrice: floatPtr(310.00),
			HsnCode: strPtr("6109"), GstSlab: gstSlabPtr(models.GstSlabTwelve),
			TotalStockAvailable: 360,
		},
		{
			TenantID: tenantID, CategoryID: uintPtr(kitchenID), BrandID: uintPtr(casalineID),
			SKU: "HOME-PAN-28", Slug: "casaline-frypan-28cm", Name: "CasaLine Non-Stick Frypan 28cm",
			Description: strPtr("Induction-ready frypan with ceramic coating"),
			Price:       1199.00, CostPrice: floatPtr(640.00),
			HsnCode: strPtr("7615"), GstSlab: gstSlabPtr(models.GstSlabEighteen),
			TotalStockAvailable: 85,
		},
	}
	for i := range products {
		if err := tx.Where(models.Product{TenantID: tenantID, SKU: products[i].SKU}).
			FirstOrCreate(&products[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d products", len(products))

	var buds, tee models.Product
	if err := tx.Where("tenant_id = ? AND sku = ?", tenantID, "ELEC-BUD-PRO").First(&buds).Error; err != nil {
		return err
	}
	if err := tx.Where("tenant_id = ? AND sku = ?", tenantID, "APP-TSH-CLS").First(&tee).Error; err != nil {
		return err
	}

	images := []models.ProductImage{
		{TenantID: tenantID, ProductID: buds.ProductID, URL: "https://cdn.storemart.local/demo/buds-pro-front.jpg", AltText: strPtr("Voltify Buds Pro, front"), Position: 1, IsPrimary: true},
		{TenantID: tenantID, ProductID: buds.ProductID, URL: "https://cdn.storemart.local/demo/buds-pro-case.jpg", AltText: strPtr("Voltify Buds Pro, charging case"), Position: 2},
		{TenantID: tenantID, ProductID: tee.ProductID, URL: "https://cdn.storemart.local/demo/classic-tee-navy.jpg", AltText: strPtr("UrbanWeave Classic Tee, navy"), Position: 1, IsPrimary: true},
	}
	for i := range images {
		if err := tx.Where(models.ProductImage{ProductID: images[i].ProductID, URL: images[i].URL}).
			FirstOrCreate(&images[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d product images", len(images))

	variants := []models.ProductVariant{
		{TenantID: tenantID, ProductID: tee.ProductID, SKU: "APP-TSH-CLS-S", Name: "Small", StockQuantity: 120},
		{TenantID: tenantID, ProductID: tee.ProductID, SKU: "APP-TSH-CLS-M", Name: "Medium", StockQuantity: 140},
		{TenantID: tenantID, ProductID: tee.ProductID, SKU: "APP-TSH-CLS-L", Name: "Large", StockQuantity: 80},
		{TenantID: tenantID, ProductID: tee.ProductID, SKU: "APP-TSH-CLS-XL", Name: "X-Large", PriceAdjustment: 50.00, StockQuantity: 20},
	}
	for i := range variants {
		if err := tx.Where(models.ProductVariant{TenantID: tenantID, SKU: variants[i].SKU}).
			FirstOrCreate(&variants[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d product variants", len(variants))

	return nil
}

// seedCoupons creates the demo tenant's coupon codes
func seedCoupons(tx *gorm.DB, tenantID uint) error {
	now := time.Now()
	coupons := []models.Coupon{
		{
			TenantID:          tenantID,
			Code:              "WELCOME10",
			Description:       strPtr("10% off the first order"),
			DiscountType:      models.DiscountPercentage,
			DiscountValue:     10,
			MinOrderAmount:    500,
			MaxDiscountAmount: floatPtr(300),
			UsageLimit:        intPtr(1000),
			ValidFrom:         timePtr(now),
			ValidUntil:        timePtr(now.AddDate(0, 6, 0)),
		},
		{
			TenantID:       tenantID,
			Code:           "FLAT200",
			Description:    strPtr("Flat 200 off orders above 1500"),
			DiscountType:   models.DiscountFixedAmount,
			DiscountValue:  200,
			MinOrderAmount: 1500,
			ValidFrom:      timePtr(now),
			ValidUntil:     timePtr(now.AddDate(0, 3, 0)),
		},
		{
			TenantID:      tenantID,
			Code:          "EXPIRED5",
			Description:   strPtr("Retired launch promotion"),
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 5,
			ValidFrom:     timePtr(now.AddDate(0, -6, 0)),
			ValidUntil:    timePtr(now.AddDate(0, -3, 0)),
			IsActive:      false,
		},
	}

	for i := range coupons {
		if err := tx.Where(models.Coupon{TenantID: tenantID, Code: coupons[i].Code}).
			FirstOrCreate(&coupons[i]).Error; err != nil {
			return err
		}
	}

	// IsActive carries default:true, so the false zero value above is dropped
	// from the insert; set the column explicitly
	if err := tx.Model(&models.Coupon{}).
		Where("tenant_id = ? AND code = ?", tenantID, "EXPIRED5").
		Update("is_active", false).Error; err != nil {
		return err
	}

	log.Printf("  ✓ Seeded %d coupons", len(coupons))
	return nil
}
