package database

import (
	"log"

	"github.com/storemart/models"
	"gorm.io/gorm"
)

// seedCountries creates reference country data
func seedCountries(tx *gorm.DB) error {
	countries := []models.Country{
		{Name: "India", Code: "IND", CurrencyCode: "INR"},
		{Name: "United States", Code: "USA", CurrencyCode: "USD"},
		{Name: "United Kingdom", Code: "GBR", CurrencyCode: "GBP"},
		{Name: "Germany", Code: "DEU", CurrencyCode: "EUR"},
		{Name: "Poland", Code: "POL", CurrencyCode: "PLN"},
		{Name: "Singapore", Code: "SGP", CurrencyCode: "SGD"},
	}

	for i := range countries {
		if err := tx.Where(models.Country{Code: countries[i].Code}).
			FirstOrCreate(&countries[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d countries", len(countries))
	return nil
}

// seedRegions creates reference region data for the demo countries
func seedRegions(tx *gorm.DB) error {
	var india, usa models.Country
	if err := tx.Where("code = ?", "IND").First(&india).Error; err != nil {
		return err
	}
	if err := tx.Where("code = ?", "USA").First(&usa).Error; err != nil {
		return err
	}

	regions := []models.Region{
		{CountryID: india.CountryID, Name: "Maharashtra", Code: "MH"},
		{CountryID: india.CountryID, Name: "Karnataka", Code: "KA"},
		{CountryID: india.CountryID, Name: "Delhi", Code: "DL"},
		{CountryID: india.CountryID, Name: "Tamil Nadu", Code: "TN"},
		{CountryID: usa.CountryID, Name: "California", Code: "CA"},
		{CountryID: usa.CountryID, Name: "New York", Code: "NY"},
		{CountryID: usa.CountryID, Name: "Texas", Code: "TX"},
	}

	for i := range regions {
		if err := tx.Where(models.Region{CountryID: regions[i].CountryID, Code: regions[i].Code}).
			FirstOrCreate(&regions[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d regions", len(regions))
	return nil
}

// seedBanks creates reference bank data with UPI handles
func seedBanks(tx *gorm.DB) error {
	var india models.Country
	if err := tx.Where("code = ?", "IND").First(&india).Error; err != nil {
		return err
	}

	banks := []models.Bank{
		{
			Name:      "State Bank of India",
			Code:      "SBIN",
			CountryID: uintPtr(india.CountryID),
			SwiftCode: strPtr("SBININBB"),
			UpiHandle: strPtr("@sbi"),
			UpiType:   upiTypePtr(models.UpiPublic),
			Status:    models.BankActive,
		},
		{
			Name:      "HDFC Bank",
			Code:      "HDFC",
			CountryID: uintPtr(india.CountryID),
			SwiftCode: strPtr("HDFCINBB"),
			UpiHandle: strPtr("@hdfcbank"),
			UpiType:   upiTypePtr(models.UpiPublic),
			Status:    models.BankActive,
		},
		{
			Name:      "ICICI Bank",
			Code:      "ICIC",
			CountryID: uintPtr(india.CountryID),
			SwiftCode: strPtr("ICICINBB"),
			UpiHandle: strPtr("@icici"),
			UpiType:   upiTypePtr(models.UpiPublic),
			Status:    models.BankActive,
		},
		{
			Name:      "Axis Bank",
			Code:      "UTIB",
			CountryID: uintPtr(india.CountryID),
			SwiftCode: strPtr("AXISINBB"),
			UpiHandle: strPtr("@axisbank"),
			UpiType:   upiTypePtr(models.UpiPrivate),
			Status:    models.BankMaintenance,
		},
	}

	for i := range banks {
		if err := tx.Where(models.Bank{Code: banks[i].Code}).
			FirstOrCreate(&banks[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d banks", len(banks))
	return nil
}
