package main

import "testing"

func TestLoadEmbeddedMigrations(t *testing.T) {
	migrations, err := loadMigrations(migrationsFS)
	if err != nil {
		t.Fatalf("unexpected error loading embedded migrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}

	first := migrations[0]
	if first.Version != 1 || first.Name != "create_newsletter_subscriptions" {
		t.Fatalf("unexpected first migration: version %d name %q", first.Version, first.Name)
	}
	if first.UpSQL == "" || first.DownSQL == "" {
		t.Fatal("expected non-empty up/down sql for first migration")
	}

	second := migrations[1]
	if second.Version != 2 || second.Name != "add_subscription_status_index" {
		t.Fatalf("unexpected second migration: version %d name %q", second.Version, second.Name)
	}
}
