package bkper

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadAppManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bkperapp.yaml")
	manifest := `
id: expenses-bot
name: Expenses Bot
webhookUrl: https://bot.example.com/hook
events:
  - TRANSACTION_POSTED
  - TRANSACTION_UPDATED
`
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ReadAppManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	app := m.App()
	if app.ID != "expenses-bot" || app.Name != "Expenses Bot" {
		t.Errorf("app = %+v", app)
	}
	if app.WebhookURL != "https://bot.example.com/hook" {
		t.Errorf("webhookUrl = %q", app.WebhookURL)
	}
	if want := []string{"TRANSACTION_POSTED", "TRANSACTION_UPDATED"}; !reflect.DeepEqual(app.Events, want) {
		t.Errorf("events = %v, want %v", app.Events, want)
	}
}

func TestReadAppManifestRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bkperapp.yaml")
	if err := os.WriteFile(path, []byte("name: No Id\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadAppManifest(path); err == nil {
		t.Error("expected an error for a manifest without id")
	}
}
