package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHandleNormalize_ReordersTopLevelKeys(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "openapi.yaml")
	doc := `
paths:
  /pets:
    get:
      responses:
        '200':
          description: ok
info:
  title: t
  version: "1"
openapi: 3.0.0
`
	if err := os.WriteFile(specPath, []byte(doc), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	outPath := filepath.Join(dir, "normalized.yaml")

	if err := HandleNormalize([]string{"-o", outPath, specPath}); err != nil {
		t.Fatalf("HandleNormalize: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(data)
	openapiIdx := indexOf(content, "openapi:")
	infoIdx := indexOf(content, "info:")
	pathsIdx := indexOf(content, "paths:")
	if !(openapiIdx < infoIdx && infoIdx < pathsIdx) {
		t.Errorf("expected openapi < info < paths key order, got indices %d, %d, %d", openapiIdx, infoIdx, pathsIdx)
	}
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func TestHandleDereference_RequiresExactlyOneFile(t *testing.T) {
	if err := HandleDereference(nil); err == nil {
		t.Error("expected an error when no file path is given")
	}
}
