package syntax

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PlusA2M/swiftcheck/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestCheckerAllFilesMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := config.Default()
	cfg.Files.Paths = []string{
		filepath.Join(tmpDir, "gone.swift"),
		filepath.Join(tmpDir, "also-gone.swift"),
	}

	var out bytes.Buffer
	checker, err := NewChecker(cfg, &out)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	summary, err := checker.Check(nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if summary.FilesChecked != 0 {
		t.Errorf("expected 0 files checked, got %d", summary.FilesChecked)
	}
	if summary.TotalIssues != 0 {
		t.Errorf("expected 0 total issues, got %d", summary.TotalIssues)
	}
	if !strings.Contains(out.String(), "Files checked: 0") {
		t.Errorf("expected summary with files checked 0, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "File not found") {
		t.Errorf("expected file-not-found lines, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "✓ All files passed syntax validation") {
		t.Errorf("expected pass message, got:\n%s", out.String())
	}
}

func TestCheckerFileWithTwoIssues(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "broken.swift", "func doNothing() {\n}\n{\n{\n")

	cfg := config.Default()
	cfg.Files.Paths = []string{path}

	var out bytes.Buffer
	checker, err := NewChecker(cfg, &out)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	summary, err := checker.Check(nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if summary.FilesChecked != 1 {
		t.Errorf("expected 1 file checked, got %d", summary.FilesChecked)
	}
	if summary.TotalIssues != 2 {
		t.Errorf("expected 2 total issues, got %d", summary.TotalIssues)
	}
	if !strings.Contains(out.String(), "✗ Found 2 issues:") {
		t.Errorf("expected per-file issue count, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "• Line 2: Function appears to have empty body") {
		t.Errorf("expected empty-body bullet, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "⚠ Issues found - review before committing") {
		t.Errorf("expected review message, got:\n%s", out.String())
	}
}

func TestCheckerCleanFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "clean.swift", "func work() {\n    run()\n}\n")

	cfg := config.Default()
	cfg.Files.Paths = []string{path}

	var out bytes.Buffer
	checker, err := NewChecker(cfg, &out)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	summary, err := checker.Check(nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if summary.TotalIssues != 0 {
		t.Errorf("expected 0 issues, got %d", summary.TotalIssues)
	}
	if !strings.Contains(out.String(), "✓ No syntax issues found") {
		t.Errorf("expected per-file success line, got:\n%s", out.String())
	}
}

func TestCheckerMissingFileDoesNotFlipExitContract(t *testing.T) {
	tmpDir := t.TempDir()
	clean := writeFile(t, tmpDir, "clean.swift", "let x = 1\n")

	cfg := config.Default()
	cfg.Files.Paths = []string{
		filepath.Join(tmpDir, "gone.swift"),
		clean,
	}

	var out bytes.Buffer
	checker, err := NewChecker(cfg, &out)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	summary, err := checker.Check(nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if summary.FilesChecked != 1 {
		t.Errorf("expected 1 file checked, got %d", summary.FilesChecked)
	}
	if summary.TotalIssues != 0 {
		t.Errorf("absence alone must not produce issues, got %d", summary.TotalIssues)
	}
}

func TestCheckerUnreadableFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "binary.swift")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x7b}, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := config.Default()
	cfg.Files.Paths = []string{path}

	var out bytes.Buffer
	checker, err := NewChecker(cfg, &out)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	summary, err := checker.Check(nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	// Decode failures are reported but do not count as issues.
	if summary.FilesChecked != 1 {
		t.Errorf("expected 1 file checked, got %d", summary.FilesChecked)
	}
	if summary.TotalIssues != 0 {
		t.Errorf("expected 0 issues, got %d", summary.TotalIssues)
	}
	if !strings.Contains(out.String(), "Could not read") {
		t.Errorf("expected read failure line, got:\n%s", out.String())
	}
}

func TestCheckerArgsOverrideConfiguredPaths(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "clean.swift", "let x = [1]\n")

	cfg := config.Default()
	cfg.Files.Paths = []string{filepath.Join(tmpDir, "never-used.swift")}

	var out bytes.Buffer
	checker, err := NewChecker(cfg, &out)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	summary, err := checker.Check([]string{path})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if summary.FilesChecked != 1 {
		t.Errorf("expected 1 file checked, got %d", summary.FilesChecked)
	}
	if strings.Contains(out.String(), "never-used.swift") {
		t.Errorf("configured paths should be ignored when args are given:\n%s", out.String())
	}
}

func TestCheckerReportOrderFollowsList(t *testing.T) {
	tmpDir := t.TempDir()
	first := writeFile(t, tmpDir, "zz.swift", "let a = 1\n")
	second := writeFile(t, tmpDir, "aa.swift", "let b = 2\n")

	cfg := config.Default()
	cfg.Files.Paths = []string{first, second}

	var out bytes.Buffer
	checker, err := NewChecker(cfg, &out)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	if _, err := checker.Check(nil); err != nil {
		t.Fatalf("Check: %v", err)
	}

	firstIdx := strings.Index(out.String(), "zz.swift")
	secondIdx := strings.Index(out.String(), "aa.swift")
	if firstIdx < 0 || secondIdx < 0 || firstIdx > secondIdx {
		t.Errorf("expected declared order to be preserved:\n%s", out.String())
	}
}
