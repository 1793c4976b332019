package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"
	"github.com/PolarWolf314/saas-template-companion/internal/keys"
	"github.com/PolarWolf314/saas-template-companion/internal/presenter"
)

// TestMakeKeys contains integration tests for the `make keys` command.
func TestMakeKeys(t *testing.T) {
	t.Run("WritesSecretsToEnvFile", testMakeKeysWritesSecrets)
	t.Run("DryRunLeavesFileUntouched", testMakeKeysDryRun)
	t.Run("GenerateAlias", testMakeKeysGenerateAlias)
	t.Run("EnvFlagOverridesConfig", testMakeKeysEnvFlagOverridesConfig)
	t.Run("UsesConfigFile", testMakeKeysUsesConfigFile)
	t.Run("JSONOutput", testMakeKeysJSONOutput)
	t.Run("JSONOutputWithVerboseLogs", testMakeKeysJSONOutputVerbose)
	t.Run("JSONOutputFromConfig", testMakeKeysJSONOutputFromConfig)
	t.Run("UnknownOutputFormat", testMakeKeysUnknownOutput)
	t.Run("MissingExplicitConfig", testMakeKeysMissingConfig)
	t.Run("ReportsDuplicates", testMakeKeysReportsDuplicates)
	t.Run("MissingParentDirectory", testMakeKeysMissingParent)
}

func testMakeKeysWritesSecrets(t *testing.T) {
	setupTestEnvironment(t)
	writeTestFile(t, ".env", "DATABASE_URL=postgres://localhost\nNEXTAUTH_SECRET=\"old\"\n")

	output, err := runCLI(t, "make", "keys")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	content := readTestFile(t, ".env")
	if !strings.HasPrefix(content, "DATABASE_URL=postgres://localhost\nNEXTAUTH_SECRET=\"") {
		t.Errorf("Existing lines were not kept in place: %q", content)
	}
	for _, v := range keys.Variables {
		if strings.Count(content, v.Env+"=") != 1 {
			t.Errorf("Expected exactly one %s line, got %q", v.Env, content)
		}
	}
	if strings.Contains(content, "\"old\"") {
		t.Errorf("Old value survived: %q", content)
	}

	if !strings.Contains(output, "Secrets stored in .env") {
		t.Errorf("Expected success message not found in output: %s", output)
	}
	if !strings.Contains(output, "updated: NEXTAUTH_SECRET") {
		t.Errorf("Expected patched secret in output: %s", output)
	}
	if !strings.Contains(output, "added: ASYMMETRIC_ENCRYPTION_PUBLIC_KEY") {
		t.Errorf("Expected appended secret in output: %s", output)
	}
	if !strings.Contains(output, "Environment variable name") {
		t.Errorf("Expected secrets table in output: %s", output)
	}
}

func testMakeKeysDryRun(t *testing.T) {
	setupTestEnvironment(t)
	original := "NEXTAUTH_SECRET=\"old\"\nOTHER=value"
	writeTestFile(t, ".env", original)

	output, err := runCLI(t, "make", "keys", "--dry-run")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if got := readTestFile(t, ".env"); got != original {
		t.Errorf("Dry run modified the file: %q", got)
	}
	if !strings.Contains(output, "Dry run, skipping file update") {
		t.Errorf("Expected dry run message not found in output: %s", output)
	}
	for _, v := range keys.Variables {
		if !strings.Contains(output, v.Env) {
			t.Errorf("Expected %s in dry run output: %s", v.Env, output)
		}
	}
}

func testMakeKeysGenerateAlias(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "generate", "keys", "--env", "custom.env")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	content := readTestFile(t, "custom.env")
	if lines := strings.Count(content, "\n"); lines != 3 {
		t.Errorf("Expected 3 lines in new file, got %d: %q", lines, content)
	}
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		t.Error("Default .env should not be created when --env is set")
	}
}

func testMakeKeysEnvFlagOverridesConfig(t *testing.T) {
	setupTestEnvironment(t)
	writeTestFile(t, ".stc.toml", "[keys]\nenv_file = \"from-config.env\"\n")

	output, err := runCLI(t, "make", "keys", "--env", "from-flag.env")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if _, err := os.Stat("from-flag.env"); err != nil {
		t.Errorf("Expected from-flag.env to be created: %v", err)
	}
	if _, err := os.Stat("from-config.env"); !os.IsNotExist(err) {
		t.Error("Config value should be overridden by the flag")
	}
}

func testMakeKeysUsesConfigFile(t *testing.T) {
	setupTestEnvironment(t)
	writeTestFile(t, "settings/stc.toml", "[keys]\nenv_file = \"app.env\"\n")

	output, err := runCLI(t, "make", "keys", "--config", "settings/stc.toml")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if _, err := os.Stat("app.env"); err != nil {
		t.Errorf("Expected app.env from the config file to be created: %v", err)
	}
}

func testMakeKeysJSONOutput(t *testing.T) {
	setupTestEnvironment(t)

	var stdout bytes.Buffer
	output, err := captureOutput(func() error {
		return createTestCLI([]string{"make", "keys", "--output", "json"}, nil, &stdout).Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	var doc presenter.Document
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("Stdout is not a JSON document: %v\n%s", err, stdout.String())
	}
	if len(doc.Variables) != len(keys.Variables) {
		t.Fatalf("Expected %d variables, got %d", len(keys.Variables), len(doc.Variables))
	}

	content := readTestFile(t, ".env")
	for i, v := range doc.Variables {
		if v.EnvName != keys.Variables[i].Env {
			t.Errorf("Variable %d is %s, want %s", i, v.EnvName, keys.Variables[i].Env)
		}
		if !strings.Contains(content, v.EnvName+"=\""+v.Value+"\"\n") {
			t.Errorf("Printed value of %s does not match the file", v.EnvName)
		}
	}

	if !strings.Contains(output, "Secrets stored in") {
		t.Errorf("Expected status message on stderr: %s", output)
	}
}

// assertJSONDocument fails unless stdout is exactly one JSON document.
func assertJSONDocument(t *testing.T, stdout string) {
	t.Helper()
	var doc presenter.Document
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("Stdout is not a JSON document: %v\n%s", err, stdout)
	}
	if len(doc.Variables) != len(keys.Variables) {
		t.Errorf("Expected %d variables, got %d", len(keys.Variables), len(doc.Variables))
	}
}

func testMakeKeysJSONOutputVerbose(t *testing.T) {
	setupTestEnvironment(t)

	for _, flag := range []string{"--verbose", "--debug"} {
		stdout, stderr, err := captureStreams(func() error {
			return createTestCLI([]string{"make", "keys", "--output", "json", flag}, nil, nil).Execute()
		})
		if err != nil {
			t.Fatalf("Command with %s failed: %v\nStderr: %s", flag, err, stderr)
		}

		assertJSONDocument(t, stdout)
		if !strings.Contains(stderr, "[info]") || !strings.Contains(stderr, "Starting make keys command") {
			t.Errorf("Expected logs with %s on stderr: %s", flag, stderr)
		}
	}
}

func testMakeKeysJSONOutputFromConfig(t *testing.T) {
	setupTestEnvironment(t)
	writeTestFile(t, ".stc.toml", "[keys]\noutput = \"json\"\n")

	stdout, stderr, err := captureStreams(func() error {
		return createTestCLI([]string{"make", "keys", "--debug", "--dry-run"}, nil, nil).Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v\nStderr: %s", err, stderr)
	}

	assertJSONDocument(t, stdout)
	if !strings.Contains(stderr, "[debug]") {
		t.Errorf("Expected debug logs on stderr: %s", stderr)
	}
}

func testMakeKeysUnknownOutput(t *testing.T) {
	setupTestEnvironment(t)
	original := "OTHER=1\n"
	writeTestFile(t, ".env", original)

	_, err := runCLI(t, "make", "keys", "--output", "yaml")
	if !errors.Is(err, kerrors.ErrUnknownFormat) {
		t.Fatalf("Expected ErrUnknownFormat, got %v", err)
	}
	if got := readTestFile(t, ".env"); got != original {
		t.Errorf("File changed after failed presentation: %q", got)
	}
}

func testMakeKeysMissingConfig(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "make", "keys", "--config", "missing.toml")
	if !errors.Is(err, kerrors.ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got %v", err)
	}
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		t.Error("No file should be created when the configuration fails to load")
	}
}

func testMakeKeysReportsDuplicates(t *testing.T) {
	setupTestEnvironment(t)
	writeTestFile(t, ".env", "NEXTAUTH_SECRET=a\nOTHER=1\nNEXTAUTH_SECRET=b\n")

	output, err := runCLI(t, "make", "keys")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if !strings.Contains(output, "Duplicate definitions left untouched on line(s) 3") {
		t.Errorf("Expected duplicate warning in output: %s", output)
	}
	if !strings.Contains(readTestFile(t, ".env"), "NEXTAUTH_SECRET=b\n") {
		t.Error("Duplicate line should be kept as is")
	}
}

func testMakeKeysMissingParent(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "make", "keys", "--env", "missing/dir/.env")
	if !errors.Is(err, kerrors.ErrAccess) {
		t.Fatalf("Expected ErrAccess, got %v", err)
	}
	if hint := errorHint(err); hint == "" {
		t.Error("Expected a hint for access errors")
	}
}
