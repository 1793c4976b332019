package presenter

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/PolarWolf314/saas-template-companion/internal/envfile"
	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"
	"github.com/PolarWolf314/saas-template-companion/internal/keys"
)

func testSet(t *testing.T) *envfile.Set {
	t.Helper()
	set, err := envfile.NewSet(
		envfile.NewRecord(keys.EnvNextAuthSecret, "c2VjcmV0"),
		envfile.NewRecord(keys.EnvAsymmetricEncryptionPublicKey, "cHVibGlj"),
		envfile.NewRecord(keys.EnvAsymmetricEncryptionPrivateKey, "cHJpdmF0ZQ"),
	)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}
	return set
}

func TestTable_ContainsHeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, testSet(t)); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Environment variable name", "Value",
		keys.EnvNextAuthSecret, "c2VjcmV0",
		keys.EnvAsymmetricEncryptionPublicKey, "cHVibGlj",
		keys.EnvAsymmetricEncryptionPrivateKey, "cHJpdmF0ZQ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q:\n%s", want, out)
		}
	}

	first := strings.Index(out, keys.EnvNextAuthSecret)
	last := strings.Index(out, keys.EnvAsymmetricEncryptionPrivateKey)
	if first > last {
		t.Error("Rows should follow set order")
	}
}

func TestJSON_PreservesOrder(t *testing.T) {
	set := testSet(t)
	r, _ := set.Get(keys.EnvNextAuthSecret)
	r.MarkWritten()

	var buf bytes.Buffer
	if err := JSON(&buf, set); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(doc.Variables) != 3 {
		t.Fatalf("Expected 3 variables, got %d", len(doc.Variables))
	}

	first := doc.Variables[0]
	if first.EnvName != keys.EnvNextAuthSecret || first.Slot != "next_auth_secret" || !first.Written {
		t.Errorf("Unexpected first variable: %+v", first)
	}
	if doc.Variables[2].EnvName != keys.EnvAsymmetricEncryptionPrivateKey || doc.Variables[2].Written {
		t.Errorf("Unexpected last variable: %+v", doc.Variables[2])
	}
}

func TestRender_Formats(t *testing.T) {
	set := testSet(t)

	var buf bytes.Buffer
	if err := Render(&buf, set, FormatJSON); err != nil {
		t.Fatalf("Render json failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("Expected JSON output, got %q", buf.String())
	}

	buf.Reset()
	if err := Render(&buf, set, ""); err != nil {
		t.Fatalf("Render default failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Environment variable name") {
		t.Error("Default format should be the table")
	}

	err := Render(&buf, set, "yaml")
	if !errors.Is(err, kerrors.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
