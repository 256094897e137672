package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mascotas/mascotas-admin/internal/mockapi"
	"github.com/mascotas/mascotas-admin/internal/petapi"
	"github.com/mascotas/mascotas-admin/internal/urls"
)

// resetFlags restores every flag to its default so runs do not leak into
// each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type testEnv struct {
	srv        *mockapi.Server
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	srv := mockapi.New(mockapi.Config{Endpoints: urls.DefaultEndpoints()})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "config.yaml")
	content := "api:\n  base_url: " + ts.URL + "\n  endpoints:\n    list: /mascotas\n    record: /mascota\nui:\n  alert_timeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return &testEnv{srv: srv, configPath: path}
}

// run executes the root command with args and returns stdout.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", e.configPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "No pets registered") {
		t.Errorf("empty registry output:\n%s", out)
	}

	env.srv.Store().Seed(mockapi.SampleInputs())

	out, err = env.run(t, "", "list", "--format", "json")
	if err != nil {
		t.Fatalf("list --format json error = %v", err)
	}
	var pets []petapi.Pet
	if err := json.Unmarshal([]byte(out), &pets); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(pets) != 3 || pets[0].Nombre != "Luna" {
		t.Errorf("pets = %+v", pets)
	}

	out, err = env.run(t, "", "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Luna", "Rocky", "Kiwi", "3 record(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestCreateUpdateShowDelete(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "create",
		"--nombre", "Toby", "--tipo", "Perro", "--raza", "Beagle", "--edad", "2",
		"--direccion", "Calle Luna 4", "--propietario", "Pablo")
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	created, err := env.srv.Store().Get(1)
	if err != nil || created.Nombre != "Toby" {
		t.Fatalf("stored = %+v, %v", created, err)
	}

	if _, err := env.run(t, "", "update", "1", "--edad", "3"); err != nil {
		t.Fatalf("update error = %v", err)
	}
	updated, _ := env.srv.Store().Get(1)
	if updated.Edad != "3" || updated.Nombre != "Toby" || updated.Raza != "Beagle" {
		t.Errorf("update should change only the given fields, got %+v", updated)
	}

	out, err := env.run(t, "", "show", "1", "--format", "compact")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.Contains(out, "#1 Toby") {
		t.Errorf("show output:\n%s", out)
	}

	// Declining keeps the record
	out, err = env.run(t, "n\n", "delete", "1")
	if err != nil {
		t.Fatalf("delete (declined) error = %v", err)
	}
	if !strings.Contains(out, "Deletion cancelled") || env.srv.Store().Len() != 1 {
		t.Errorf("declined delete removed the record or said nothing:\n%s", out)
	}

	if _, err := env.run(t, "y\n", "delete", "1"); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if env.srv.Store().Len() != 0 {
		t.Error("record should be gone")
	}
}

func TestCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "create", "--nombre", "Solo")
	if err == nil || !strings.Contains(err.Error(), "tipo is required") {
		t.Fatalf("create error = %v, want validation failure", err)
	}
	if env.srv.Store().Len() != 0 {
		t.Error("invalid input should not reach the registry")
	}
}

func TestCreateWithPhotoFlag(t *testing.T) {
	env := newTestEnv(t)

	photo := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(photo, []byte("not an image"), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := env.run(t, "", "create",
		"--nombre", "Toby", "--tipo", "Perro", "--raza", "Beagle", "--edad", "2",
		"--direccion", "Calle Luna 4", "--propietario", "Pablo", "--foto", photo)
	if err == nil {
		t.Fatal("a non-image photo should be rejected")
	}
	if !strings.Contains(out, "Photo rejected") || env.srv.Store().Len() != 0 {
		t.Errorf("output:\n%s", out)
	}
}

func TestMissingRecord(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "delete", "9", "--yes")
	if !petapi.IsNotFound(err) {
		t.Fatalf("delete error = %v, want not found", err)
	}
	if !strings.Contains(out, "FAILED") {
		t.Errorf("failure box missing:\n%s", out)
	}
}

func TestArgumentErrors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad id", []string{"show", "abc"}, "invalid id"},
		{"zero id", []string{"delete", "0", "--yes"}, "positive integer"},
		{"bad format", []string{"list", "--format", "xml"}, "unknown --format"},
		{"bad api url", []string{"list", "--api-url", "ftp://x"}, "--api-url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.run(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestConfigInit(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if _, err := env.run(t, "", "config", "init", "--path", path); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if _, err := env.run(t, "", "config", "init", "--path", path); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := env.run(t, "", "config", "init", "--path", path, "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "", "version")
	if err != nil || !strings.HasPrefix(out, "mascotas-admin ") {
		t.Errorf("version = %q, %v", out, err)
	}
}
