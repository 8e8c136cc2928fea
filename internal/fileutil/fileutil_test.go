package fileutil_test

// Notes:
// - WriteFileAtomic error branches (chmod/rename failures) are not tested
//   because triggering them portably requires privileged filesystem setups.
// We test observable behavior, not implementation details.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-genkan/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "config.toml")
	if err := os.WriteFile(testFile, []byte("[profile]"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "themes")
	if err := os.Mkdir(testDir, 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file returns true",
			path: testFile,
			want: true,
		},
		{
			name: "directory returns false",
			path: testDir,
			want: false,
		},
		{
			name: "nonexistent path returns false",
			path: filepath.Join(tempDir, "nonexistent"),
			want: false,
		},
		{
			name: "empty path returns false",
			path: "",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDirExists - Directory existence check
// ---------------------------------------------------------------------------

func TestDirExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(testFile, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing directory returns true",
			path: tempDir,
			want: true,
		},
		{
			name: "file returns false",
			path: testFile,
			want: false,
		},
		{
			name: "nonexistent path returns false",
			path: filepath.Join(tempDir, "missing"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.DirExists(tt.path)
			if got != tt.want {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "simple name returns false",
			input: "simple",
			want:  false,
		},
		{
			name:  "relative path with dot-slash returns true",
			input: "./themes/mine",
			want:  true,
		},
		{
			name:  "parent path returns true",
			input: "../shared/theme",
			want:  true,
		},
		{
			name:  "absolute Unix path returns true",
			input: "/srv/themes/mine",
			want:  true,
		},
		{
			name:  "Windows path with backslash returns true",
			input: "C:\\themes\\mine",
			want:  true,
		},
		{
			name:  "hyphenated name returns false",
			input: "my-theme",
			want:  false,
		},
		{
			name:  "empty string returns false",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsFilePath(tt.input)
			if got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsURL - URL detection
// ---------------------------------------------------------------------------

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "http URL returns true",
			input: "http://example.com/icon.png",
			want:  true,
		},
		{
			name:  "https URL returns true",
			input: "https://example.com/icon.png",
			want:  true,
		},
		{
			name:  "scheme-relative URL returns true",
			input: "//cdn.example.com/icon.png",
			want:  true,
		},
		{
			name:  "file path returns false",
			input: "/path/to/icon.png",
			want:  false,
		},
		{
			name:  "relative path returns false",
			input: "./icon.png",
			want:  false,
		},
		{
			name:  "emoji returns false",
			input: "🌐",
			want:  false,
		},
		{
			name:  "empty string returns false",
			input: "",
			want:  false,
		},
		{
			name:  "ftp URL returns false",
			input: "ftp://example.com",
			want:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsURL(tt.input)
			if got != tt.want {
				t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsDataURL - Data URL detection
// ---------------------------------------------------------------------------

func TestIsDataURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "png data URL returns true",
			input: "data:image/png;base64,iVBORw0KGgo=",
			want:  true,
		},
		{
			name:  "http URL returns false",
			input: "https://example.com/icon.png",
			want:  false,
		},
		{
			name:  "plain text returns false",
			input: "🌐",
			want:  false,
		},
		{
			name:  "empty string returns false",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsDataURL(tt.input)
			if got != tt.want {
				t.Errorf("IsDataURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEnsureDir - Directory creation
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "a", "b", "c")

	if err := fileutil.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	if !fileutil.DirExists(nested) {
		t.Errorf("EnsureDir() did not create %s", nested)
	}

	// Idempotent on existing directory
	if err := fileutil.EnsureDir(nested); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic write behavior
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "index.html")

	if err := fileutil.WriteFileAtomic(target, []byte("<html>one</html>"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if string(data) != "<html>one</html>" {
		t.Errorf("file content = %q, want %q", string(data), "<html>one</html>")
	}

	// Overwrite replaces content entirely
	if err := fileutil.WriteFileAtomic(target, []byte("<html>two</html>"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}
	data, err = os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if string(data) != "<html>two</html>" {
		t.Errorf("file content after overwrite = %q, want %q", string(data), "<html>two</html>")
	}

	// No temp files left behind
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir error = %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %q after write", e.Name())
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic_MissingDir - Write into nonexistent directory fails
// ---------------------------------------------------------------------------

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "missing", "index.html")

	err := fileutil.WriteFileAtomic(target, []byte("x"), 0o644)
	if err == nil {
		t.Fatal("WriteFileAtomic() expected error for missing directory, got nil")
	}
	if !strings.Contains(err.Error(), "creating temp file") {
		t.Errorf("error = %q, want error containing 'creating temp file'", err.Error())
	}
}
