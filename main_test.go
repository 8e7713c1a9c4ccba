package main

import (
	"strings"
	"testing"

	"github.com/jjmunozz/StrategicTeam-SGC/errs"
)

func TestSqliteDSN(t *testing.T) {
	tests := map[string]string{
		"sgc.db":                   "sgc.db?_foreign_keys=on",
		"file:sgc.db?cache=shared": "file:sgc.db?cache=shared&_foreign_keys=on",
		"sgc.db?_foreign_keys=off": "sgc.db?_foreign_keys=off",
	}
	for in, want := range tests {
		if got := sqliteDSN(in); got != want {
			t.Fatalf("sqliteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSupabaseDSN(t *testing.T) {
	c := map[string]string{
		"SUPABASE_DB_HOST":     "db.example.supabase.co",
		"SUPABASE_DB_USER":     "postgres",
		"SUPABASE_DB_PASSWORD": "secret",
		"SUPABASE_DB_NAME":     "sgc",
	}
	dsn, err := supabaseDSN(c)
	if err != nil {
		t.Fatalf("supabaseDSN: %v", err)
	}
	if !strings.Contains(dsn, "port=5432") || !strings.Contains(dsn, "sslmode=require") {
		t.Fatalf("dsn = %q", dsn)
	}

	delete(c, "SUPABASE_DB_PASSWORD")
	if _, err := supabaseDSN(c); !errs.IsEnvironmentVariableError(err) {
		t.Fatalf("supabaseDSN without password = %v", err)
	}
}

func TestDialectorFor(t *testing.T) {
	if _, err := dialectorFor(map[string]string{"DB_TYPE": "oracle"}); !errs.IsConfigError(err) {
		t.Fatalf("unsupported DB_TYPE = %v, want config error", err)
	}
	if _, err := dialectorFor(map[string]string{"DB_TYPE": "postgres"}); !errs.IsEnvironmentVariableError(err) {
		t.Fatalf("postgres without DATABASE_URL = %v", err)
	}
	d, err := dialectorFor(map[string]string{"DB_TYPE": "sqlite", "SQLITE_PATH": "x.db"})
	if err != nil || d.Name() != "sqlite" {
		t.Fatalf("sqlite dialector = %v, %v", d, err)
	}
}
