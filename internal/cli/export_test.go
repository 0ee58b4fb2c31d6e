package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testWorkspaceTOML = `
name = "Shop"
description = "Online shop"

[[person]]
name = "User"
description = "A customer"

[[system]]
name = "Payments"
description = "Payment processing"

[[relationship]]
source = "u"
target = "p"
description = "Uses"
`

func writeWorkspaceFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportToStdout(t *testing.T) {
	path := writeWorkspaceFile(t, "workspace.toml", testWorkspaceTOML)

	out, err := runCommand(t, "export", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, want := range []string{
		`workspace "Shop" "Online shop" {`,
		`u = person "User" "A customer"`,
		`p = softwareSystem "Payments" "Payment processing" {}`,
		`u -> p "Uses"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q\nfull output:\n%s", want, out)
		}
	}
}

func TestExportToFile(t *testing.T) {
	path := writeWorkspaceFile(t, "workspace.toml", testWorkspaceTOML)
	dest := filepath.Join(t.TempDir(), "out.dsl")

	if _, err := runCommand(t, "export", path, "-o", dest); err != nil {
		t.Fatalf("export -o: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), `workspace "Shop"`) {
		t.Errorf("file content = %q", data)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Error("output file should end with a trailing newline")
	}
}

func TestExportMissingFile(t *testing.T) {
	if _, err := runCommand(t, "export", filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing input should fail")
	}
}

func TestExportUnknownReference(t *testing.T) {
	path := writeWorkspaceFile(t, "workspace.toml", `
name = "Broken"
description = "Dangling relationship"

[[relationship]]
source = "a"
target = "b"
description = "Calls"
`)

	if _, err := runCommand(t, "export", path); err == nil {
		t.Error("dangling relationship endpoints should fail")
	}
}

func TestExportUnsupportedExtension(t *testing.T) {
	path := writeWorkspaceFile(t, "workspace.yaml", "name: nope")

	if _, err := runCommand(t, "export", path); err == nil {
		t.Error("unsupported extension should fail")
	}
}
