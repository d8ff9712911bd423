package panelclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestDatabaseExport(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/panel/api/inbounds/createbackup" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"success":true}`)
	}))

	if err := api.Database.Export(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
}

func TestDatabaseExportNonEnvelopeBody(t *testing.T) {
	// The panel pushes the backup elsewhere and may answer with a plain
	// acknowledgement instead of the JSON envelope.
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "backup triggered")
	}))

	if err := api.Database.Export(context.Background()); err != nil {
		t.Fatalf("non-envelope 200 response should count as success: %v", err)
	}
}

func TestDatabaseExportFailure(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"msg":"backup failed"}`)
	}))

	err := api.Database.Export(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Msg != "backup failed" {
		t.Errorf("panel message not carried: %q", apiErr.Msg)
	}
}
