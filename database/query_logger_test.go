package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedactSQL(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "insert into users masks values",
			sql:  `INSERT INTO "users" ("email","password_hash") VALUES ('a@b.c','$2a$10$secret')`,
			want: `INSERT INTO "users" ("email","password_hash") /* values masked */`,
		},
		{
			name: "update security_settings masks assignments",
			sql:  `UPDATE "security_settings" SET "jwt_secret_key"='topsecret' WHERE tenant_id = 1`,
			want: `UPDATE "security_settings" /* values masked */`,
		},
		{
			name: "select on users passes through",
			sql:  `SELECT * FROM "users" WHERE email = 'a@b.c'`,
			want: `SELECT * FROM "users" WHERE email = 'a@b.c'`,
		},
		{
			name: "insert into products passes through",
			sql:  `INSERT INTO "products" ("sku") VALUES ('TEE-001')`,
			want: `INSERT INTO "products" ("sku") VALUES ('TEE-001')`,
		},
		{
			name: "delete on users passes through",
			sql:  `DELETE FROM "users" WHERE user_id = 7`,
			want: `DELETE FROM "users" WHERE user_id = 7`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redactSQL(tt.sql))
		})
	}
}

func TestQueryLoggerRingBuffer(t *testing.T) {
	ql := NewQueryLogger(3)

	for i := 1; i <= 5; i++ {
		ql.LogQuery(fmt.Sprintf("SELECT %d", i), time.Millisecond, 1, nil)
	}

	queries := ql.GetQueries()
	assert.Len(t, queries, 3)

	// Latest first, oldest evicted
	assert.Equal(t, "SELECT 5", queries[0].SQL)
	assert.Equal(t, "SELECT 3", queries[2].SQL)
	assert.Equal(t, 5, queries[0].ID)

	recent := ql.GetRecentQueries(2)
	assert.Len(t, recent, 2)
	assert.Equal(t, "SELECT 5", recent[0].SQL)

	ql.Clear()
	assert.Empty(t, ql.GetQueries())

	// Counter keeps running after Clear
	ql.LogQuery("SELECT 6", time.Millisecond, 1, errors.New("boom"))
	queries = ql.GetQueries()
	assert.Equal(t, 6, queries[0].ID)
	assert.Equal(t, "boom", queries[0].Error)
}

func TestLogQueryRedactsCredentialWrites(t *testing.T) {
	ql := NewQueryLogger(10)
	ql.LogQuery(`INSERT INTO "users" ("password_hash") VALUES ('$2a$10$x')`, time.Millisecond, 1, nil)

	queries := ql.GetQueries()
	assert.NotContains(t, queries[0].SQL, "$2a$10$x")
	assert.Contains(t, queries[0].SQL, "/* values masked */")
}
