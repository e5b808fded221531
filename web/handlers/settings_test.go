package handlers

import (
	"testing"

	"github.com/storemart/models"
	"github.com/stretchr/testify/assert"
)

func TestDecodeSetting(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name        string
		value       *string
		settingType models.SettingType
		want        interface{}
	}{
		{"nil value", nil, models.SettingString, nil},
		{"string passthrough", str("hello"), models.SettingString, "hello"},
		{"integer", str("42"), models.SettingInteger, 42},
		{"decimal", str("0.75"), models.SettingDecimal, 0.75},
		{"boolean true", str("true"), models.SettingBoolean, true},
		{"boolean false", str("false"), models.SettingBoolean, false},
		{"json object", str(`{"retries":3}`), models.SettingJSON,
			map[string]interface{}{"retries": float64(3)}},
		{"json array", str(`["a","b"]`), models.SettingJSON,
			[]interface{}{"a", "b"}},
		{"malformed integer falls back to raw string", str("not-a-number"), models.SettingInteger, "not-a-number"},
		{"malformed json falls back to raw string", str("{broken"), models.SettingJSON, "{broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeSetting(tt.value, tt.settingType))
		})
	}
}
