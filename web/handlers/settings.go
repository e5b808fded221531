package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/storemart/database"
	"github.com/storemart/models"
	"github.com/storemart/web/middleware"
	"gorm.io/gorm"
)

// decodeSetting converts a stored key/value setting into its typed form
func decodeSetting(value *string, settingType models.SettingType) interface{} {
	if value == nil {
		return nil
	}
	switch settingType {
	case models.SettingInteger:
		if n, err := strconv.Atoi(*value); err == nil {
			return n
		}
	case models.SettingDecimal:
		if f, err := strconv.ParseFloat(*value, 64); err == nil {
			return f
		}
	case models.SettingBoolean:
		if b, err := strconv.ParseBool(*value); err == nil {
			return b
		}
	case models.SettingJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(*value), &v); err == nil {
			return v
		}
	}
	return *value
}

// SettingsResolve returns the tenant's effective configuration: platform
// defaults from system_settings overlaid by the tenant's own key/value
// settings, all decoded to their declared types, plus the fixed-column
// settings rows.
func SettingsResolve(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	db := database.GetDB()

	resolved := map[string]interface{}{}

	var systemSettings []models.SystemSetting
	if err := db.Find(&systemSettings).Error; err != nil {
		return err
	}
	for i := range systemSettings {
		s := &systemSettings[i]
		resolved[s.SettingKey] = decodeSetting(s.SettingValue, s.SettingType)
	}

	var tenantSettings []models.TenantSetting
	if err := db.Where("tenant_id = ?", tenant.TenantID).Find(&tenantSettings).Error; err != nil {
		return err
	}
	for i := range tenantSettings {
		s := &tenantSettings[i]
		resolved[s.SettingKey] = decodeSetting(s.SettingValue, s.SettingType)
	}

	// Fixed-column settings rows, created at provisioning time
	var login models.LoginSettings
	var session models.SessionSettings
	var rateLimit models.RateLimitSettings
	var logging models.LoggingSettings
	db.Where("tenant_id = ?", tenant.TenantID).First(&login)
	db.Where("tenant_id = ?", tenant.TenantID).First(&session)
	db.Where("tenant_id = ?", tenant.TenantID).First(&rateLimit)
	db.Where("tenant_id = ?", tenant.TenantID).First(&logging)

	return c.JSON(fiber.Map{
		"settings":   resolved,
		"login":      login,
		"session":    session,
		"rate_limit": rateLimit,
		"logging":    logging,
	})
}

type settingUpdateRequest struct {
	Value     *string            `json:"value"`
	Type      models.SettingType `json:"type"`
	ChangedBy *uint              `json:"changed_by"`
}

// SettingUpdate creates or updates one tenant key/value setting and records
// the change in settings_history
func SettingUpdate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	key := c.Params("key")

	var req settingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if req.Type == "" {
		req.Type = models.SettingString
	}
	switch req.Type {
	case models.SettingString, models.SettingInteger, models.SettingBoolean,
		models.SettingJSON, models.SettingDecimal:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown setting type "+string(req.Type))
	}

	db := database.GetDB()
	var setting models.TenantSetting

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("tenant_id = ? AND setting_key = ?", tenant.TenantID, key).
			First(&setting).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		var oldValue *string
		if err == nil {
			oldValue = setting.SettingValue
			if err := tx.Model(&setting).Updates(map[string]interface{}{
				"setting_value": req.Value,
				"setting_type":  req.Type,
			}).Error; err != nil {
				return err
			}
		} else {
			setting = models.TenantSetting{
				TenantID:     tenant.TenantID,
				SettingKey:   key,
				SettingValue: req.Value,
				SettingType:  req.Type,
			}
			if err := tx.Create(&setting).Error; err != nil {
				return err
			}
		}

		history := models.SettingsHistory{
			SettingTable: models.TenantSetting{}.TableName(),
			SettingID:    setting.ID,
			OldValue:     oldValue,
			NewValue:     req.Value,
			ChangedBy:    req.ChangedBy,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(setting)
}
