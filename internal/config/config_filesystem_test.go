package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arniber21/portfolio/internal/logging"
)

// writeConfigFile puts raw bytes where Load looks for the config.
func writeConfigFile(t *testing.T, home string, data string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(home, configDirName, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), perm); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })
	return path
}

func skipAsRoot(t *testing.T) {
	t.Helper()
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		perm     os.FileMode
		needPerm bool
		want     string
	}{
		{name: "invalid json", data: `{"theme":`, perm: 0o644, want: "parse config"},
		{name: "unknown theme", data: `{"theme":"sepia"}`, perm: 0o644, want: "invalid theme"},
		{name: "content path at home", data: `{"theme":"dark","content_file":"~"}`, perm: 0o644, want: ""},
		{name: "unreadable", data: `{"theme":"dark"}`, perm: 0o000, needPerm: true, want: "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.needPerm {
				skipAsRoot(t)
			}
			home := t.TempDir()
			t.Setenv("HOME", home)
			writeConfigFile(t, home, tt.data, tt.perm)

			_, err := Load()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("expected load to succeed, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveFailsWhenConfigDirIsAFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, configDirName), nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	err := Save(Config{Theme: "light"})
	if err == nil || !strings.Contains(err.Error(), "create config dir") {
		t.Fatalf("expected create config dir error, got %v", err)
	}
}

func TestSaveFailsInReadOnlyDir(t *testing.T) {
	skipAsRoot(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, configDirName)
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := Save(Default())
	if err == nil || !strings.Contains(err.Error(), "write config") {
		t.Fatalf("expected write config error, got %v", err)
	}
}

func TestExistsReportsStatFailure(t *testing.T) {
	skipAsRoot(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, configDirName)
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	exists, err := Exists()
	if exists || err == nil || !strings.Contains(err.Error(), "stat config path") {
		t.Fatalf("expected stat failure, got exists=%v err=%v", exists, err)
	}
}

func TestConfigPathNeedsHome(t *testing.T) {
	t.Setenv("HOME", "")
	if _, err := ConfigPath(); err == nil || !strings.Contains(err.Error(), "resolve home dir") {
		t.Fatalf("expected home dir error, got %v", err)
	}
}

func TestSaveThemeLogsPathAndKeepsOtherFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := Save(Config{Theme: "dark", DisableMouse: true}); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	var buf bytes.Buffer
	logging.Configure(&buf, "info")
	t.Cleanup(func() { logging.Configure(nil, "info") })

	if err := SaveTheme("light"); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	out := buf.String()
	path := filepath.Join(home, configDirName, configFileName)
	if !strings.Contains(out, "saved config") || !strings.Contains(out, path) {
		t.Fatalf("expected saved config entry with %q, got %q", path, out)
	}
	if !strings.Contains(out, "component=config") {
		t.Fatalf("expected config component tag, got %q", out)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "light" || !cfg.DisableMouse {
		t.Fatalf("expected light theme with mouse disabled, got %+v", cfg)
	}
}
