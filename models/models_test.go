package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tabler matches GORM's schema.Tabler.
type tabler interface {
	TableName() string
}

func TestAllModelsDeclareTableNames(t *testing.T) {
	all := AllModels()
	assert.Len(t, all, 43)

	seen := map[string]bool{}
	for _, m := range all {
		tb, ok := m.(tabler)
		assert.Truef(t, ok, "%T must declare TableName()", m)
		if !ok {
			continue
		}
		name := tb.TableName()
		assert.NotEmpty(t, name)
		assert.Falsef(t, seen[name], "duplicate table name %s", name)
		seen[name] = true
	}
}

func TestAllModelsMigrationOrder(t *testing.T) {
	position := map[string]int{}
	for i, m := range AllModels() {
		position[m.(tabler).TableName()] = i
	}

	// Parents must be migrated before the tables that reference them.
	deps := [][2]string{
		{"countries", "regions"},
		{"countries", "banks"},
		{"tenants", "users"},
		{"user_roles", "role_permissions"},
		{"permissions", "role_permissions"},
		{"users", "user_role_assignments"},
		{"tenants", "categories"},
		{"categories", "products"},
		{"brands", "products"},
		{"products", "product_variants"},
		{"products", "product_reviews"},
		{"users", "carts"},
		{"carts", "cart_items"},
		{"products", "cart_items"},
		{"orders", "order_items"},
		{"orders", "payments"},
		{"payments", "payment_method_details"},
		{"banks", "payment_method_details"},
		{"payments", "refunds"},
		{"orders", "order_history"},
		{"payments", "payment_history"},
		{"refunds", "refund_history"},
	}

	for _, d := range deps {
		parent, child := d[0], d[1]
		pp, ok := position[parent]
		assert.Truef(t, ok, "missing model for table %s", parent)
		cp, ok := position[child]
		assert.Truef(t, ok, "missing model for table %s", child)
		assert.Lessf(t, pp, cp, "%s must migrate before %s", parent, child)
	}
}

func TestTableNames(t *testing.T) {
	tests := []struct {
		model tabler
		want  string
	}{
		{Tenant{}, "tenants"},
		{User{}, "users"},
		{UserRole{}, "user_roles"},
		{Product{}, "products"},
		{ProductVariant{}, "product_variants"},
		{Cart{}, "carts"},
		{Order{}, "orders"},
		{OrderItem{}, "order_items"},
		{Payment{}, "payments"},
		{PaymentMethodDetail{}, "payment_method_details"},
		{Refund{}, "refunds"},
		{Coupon{}, "coupons"},
		{TenantSetting{}, "tenant_settings"},
		{SystemSetting{}, "system_settings"},
		{OrderHistory{}, "order_history"},
		{ServiceURL{}, "service_urls"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.model.TableName())
	}
}
