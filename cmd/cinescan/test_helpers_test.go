package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cinescan/internal/catalog"
	"cinescan/internal/testsupport"
)

type cliTestEnv struct {
	baseDir     string
	configPath  string
	catalogPath string
}

func testRecords() []catalog.Record {
	return []catalog.Record{
		{
			ID:    "film-inception",
			Title: "Inception",
			Year:  2010,
		},
		{
			ID:      "film-matrix",
			Title:   "The Matrix",
			Year:    1999,
			Aliases: []string{"Matrix"},
		},
		{
			ID:            "film-brat2",
			Title:         "Брат 2",
			OriginalTitle: "Брат 2",
			Year:          2000,
			LocalizedTitles: map[string]string{
				"ru": "Брат 2",
				"en": "Brother 2",
			},
		},
	}
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	catalogPath := testsupport.WriteCatalog(t, testRecords())
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, catalogPath, "")

	return &cliTestEnv{
		baseDir:     base,
		configPath:  configPath,
		catalogPath: catalogPath,
	}
}

func writeTestConfig(t *testing.T, path, aliasesPath, databasePath string) {
	t.Helper()
	content := fmt.Sprintf(
		"[catalog]\naliases_path = %q\ndatabase_path = %q\n\n[matching]\nthreshold = 85.0\n\n[logging]\nlevel = \"error\"\n",
		aliasesPath,
		databasePath,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
