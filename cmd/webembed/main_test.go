package main

// Notes:
// - runMain: we drive the CLI end to end with temp directories and check exit
//   codes, stdout/stderr content, and the files left on disk.
// - Failure cases pre-create outputs to prove nothing is written before the
//   table is fully built.
// - main() itself (maxprocs, os.Exit) is not tested.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testTree creates an input directory with the given files.
func testTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// outputs returns header and source paths in a not-yet-created directory.
func outputs(t *testing.T) (string, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "gen")
	return filepath.Join(dir, "web_assets_embedded.h"), filepath.Join(dir, "web_assets_embedded.cpp")
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := runMain(append([]string{"webembed"}, args...), &Environment{Stdout: &stdout, Stderr: &stderr})
	return code, stdout.String(), stderr.String()
}

func contents(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         nil,
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: webembed"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"webembed dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: webembed", "Commands:"},
		},
		{
			name:         "help generate shows generate help",
			args:         []string{"help", "generate"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: webembed generate"},
		},
		{
			name:         "long help flag shows usage",
			args:         []string{"--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: webembed"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: bogus"},
		},
		{
			name:         "generate help flag exits 0",
			args:         []string{"generate", "-h"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: webembed generate"},
		},
		{
			name:         "unknown flag exits with ExitUsage",
			args:         []string{"generate", "--nope"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"nope"},
		},
		{
			name:         "missing paths names the flags",
			args:         []string{"generate", "--input-dir", "web"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"--out-h", "--out-cpp", "hint:"},
		},
		{
			name:         "positional args rejected",
			args:         []string{"generate", "web"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unexpected arguments: web"},
		},
		{
			name:         "bytes per line out of range",
			args:         []string{"generate", "-i", "web", "--out-h", "a.h", "--out-cpp", "a.cpp", "--bytes-per-line", "-3"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"bytesPerLine"},
		},
		{
			name:         "missing config file",
			args:         []string{"generate", "-c", "/nonexistent/webembed.yaml"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := run(tt.args...)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout)
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr, want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Generate - Successful generation
// ---------------------------------------------------------------------------

func TestRunMain_Generate(t *testing.T) {
	t.Parallel()

	root := testTree(t, map[string]string{
		"index.html":  "<h1>\n",
		"css/app.css": "",
	})

	t.Run("generate command", func(t *testing.T) {
		t.Parallel()

		h, cpp := outputs(t)
		code, _, stderr := run("generate", "--input-dir", root, "--out-h", h, "--out-cpp", cpp)
		if code != ExitSuccess {
			t.Fatalf("exit = %d, stderr: %s", code, stderr)
		}
		if !strings.Contains(stderr, "generated") || !strings.Contains(stderr, "assets=2") {
			t.Errorf("stderr should report the run, got %q", stderr)
		}

		src := contents(t, cpp)
		for _, want := range []string{
			"#include \"web_assets_embedded.h\"",
			"namespace web_assets {",
			"static const unsigned char asset_css_app_css[] = {};",
			"{\"/index.html\", AssetView{asset_index_html, 5u, \"text/html; charset=utf-8\"}},",
		} {
			if !strings.Contains(src, want) {
				t.Errorf("source missing %q", want)
			}
		}
		if !strings.Contains(contents(t, h), "#pragma once") {
			t.Error("header missing #pragma once")
		}
	})

	t.Run("flags without command", func(t *testing.T) {
		t.Parallel()

		h, cpp := outputs(t)
		code, _, stderr := run("--input-dir", root, "--out-h", h, "--out-cpp", cpp, "-n", "my_app::web")
		if code != ExitSuccess {
			t.Fatalf("exit = %d, stderr: %s", code, stderr)
		}
		if !strings.Contains(contents(t, cpp), "namespace my_app::web {") {
			t.Error("namespace flag not applied")
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()

		h, cpp := outputs(t)
		code, stdout, stderr := run("generate", "-q", "-i", root, "--out-h", h, "--out-cpp", cpp)
		if code != ExitSuccess {
			t.Fatalf("exit = %d", code)
		}
		if stdout != "" || stderr != "" {
			t.Errorf("quiet run printed stdout=%q stderr=%q", stdout, stderr)
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()

		h, cpp := outputs(t)
		code, _, stderr := run("generate", "-v", "-i", root, "--out-h", h, "--out-cpp", cpp)
		if code != ExitSuccess {
			t.Fatalf("exit = %d", code)
		}
		for _, want := range []string{"asset_index_html", "/css/app.css", "text/css; charset=utf-8"} {
			if !strings.Contains(stderr, want) {
				t.Errorf("verbose stderr should contain %q", want)
			}
		}
	})

	t.Run("include and width", func(t *testing.T) {
		t.Parallel()

		h, cpp := outputs(t)
		code, _, stderr := run("generate", "-i", root, "--out-h", h, "--out-cpp", cpp,
			"--include", "gen/web.h", "--bytes-per-line", "2")
		if code != ExitSuccess {
			t.Fatalf("exit = %d, stderr: %s", code, stderr)
		}
		src := contents(t, cpp)
		if !strings.Contains(src, "#include \"gen/web.h\"") {
			t.Error("include flag not applied")
		}
		if !strings.Contains(src, "    60, 104,\n    49, 62,\n    10,\n") {
			t.Errorf("bytes-per-line not applied\n%s", src)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_Config - Config file and precedence
// ---------------------------------------------------------------------------

func TestRunMain_Config(t *testing.T) {
	t.Parallel()

	root := testTree(t, map[string]string{"index.html": "x"})

	writeConfig := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "webembed.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("paths from config, namespace from flag", func(t *testing.T) {
		t.Parallel()

		h, cpp := outputs(t)
		cfgPath := writeConfig(t, "input:\n  dir: "+root+"\noutput:\n  header: "+h+"\n  source: "+cpp+"\nnamespace: from_config\n")

		code, _, stderr := run("generate", "-c", cfgPath, "-n", "from_flag")
		if code != ExitSuccess {
			t.Fatalf("exit = %d, stderr: %s", code, stderr)
		}
		src := contents(t, cpp)
		if !strings.Contains(src, "namespace from_flag {") {
			t.Errorf("flag should override config namespace\n%s", src)
		}
	})

	t.Run("config namespace used without flag", func(t *testing.T) {
		t.Parallel()

		h, cpp := outputs(t)
		cfgPath := writeConfig(t, "input:\n  dir: "+root+"\noutput:\n  header: "+h+"\n  source: "+cpp+"\nnamespace: from_config\n")

		if code, _, stderr := run("generate", "-c", cfgPath); code != ExitSuccess {
			t.Fatalf("exit = %d, stderr: %s", code, stderr)
		}
		if !strings.Contains(contents(t, cpp), "namespace from_config {") {
			t.Error("config namespace not applied")
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfig(t, "inputs:\n  dir: web\n")
		code, _, stderr := run("generate", "-c", cfgPath)
		if code != ExitUsage {
			t.Errorf("exit = %d, want %d (stderr: %s)", code, ExitUsage, stderr)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_Failures - Failures leave outputs untouched
// ---------------------------------------------------------------------------

func TestRunMain_Failures(t *testing.T) {
	t.Parallel()

	collision := testTree(t, map[string]string{"a-b.js": "1", "a_b.js": "2"})
	valid := testTree(t, map[string]string{"index.html": "x"})

	tests := []struct {
		name       string
		inputDir   string
		extra      []string
		wantCode   int
		wantStderr string
	}{
		{"symbol collision", collision, nil, ExitCollision, "symbol collision"},
		{"missing input dir", filepath.Join(t.TempDir(), "missing"), nil, ExitUsage, "hint:"},
		{"invalid namespace", valid, []string{"-n", "web-assets"}, ExitUsage, "namespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, cpp := outputs(t)
			if err := os.MkdirAll(filepath.Dir(h), 0o755); err != nil {
				t.Fatal(err)
			}
			for _, p := range []string{h, cpp} {
				if err := os.WriteFile(p, []byte("previous"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			args := append([]string{"generate", "-i", tt.inputDir, "--out-h", h, "--out-cpp", cpp}, tt.extra...)
			code, _, stderr := run(args...)
			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantStderr, stderr)
			}
			for _, p := range []string{h, cpp} {
				if got := contents(t, p); got != "previous" {
					t.Errorf("%s modified: %q", filepath.Base(p), got)
				}
			}
		})
	}
}

func TestRunMain_OutputIsDirectory(t *testing.T) {
	t.Parallel()

	root := testTree(t, map[string]string{"index.html": "x"})
	h, cpp := outputs(t)
	if err := os.MkdirAll(cpp, 0o755); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := run("generate", "-i", root, "--out-h", h, "--out-cpp", cpp)
	if code != ExitIO {
		t.Errorf("exit = %d, want %d (stderr: %s)", code, ExitIO, stderr)
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_List - Dry-run listing
// ---------------------------------------------------------------------------

func TestRunMain_List(t *testing.T) {
	t.Parallel()

	root := testTree(t, map[string]string{
		"index.html": "<p>",
		"app.js":     "1",
	})

	t.Run("assets", func(t *testing.T) {
		t.Parallel()

		code, stdout, stderr := run("list", "-q", "--input-dir", root)
		if code != ExitSuccess {
			t.Fatalf("exit = %d, stderr: %s", code, stderr)
		}
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines, want 3\n%s", len(lines), stdout)
		}
		if !strings.HasPrefix(lines[0], "PATH") {
			t.Errorf("header line = %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "/app.js") || !strings.Contains(lines[1], "asset_app_js") {
			t.Errorf("line 1 = %q", lines[1])
		}
		if !strings.HasPrefix(lines[2], "/index.html") || !strings.Contains(lines[2], "text/html; charset=utf-8") {
			t.Errorf("line 2 = %q", lines[2])
		}
	})

	t.Run("types", func(t *testing.T) {
		t.Parallel()

		code, stdout, _ := run("list", "--types")
		if code != ExitSuccess {
			t.Fatalf("exit = %d", code)
		}
		for _, want := range []string{".html", ".jpeg", "image/x-icon", "application/octet-stream"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("stdout should contain %q", want)
			}
		}
	})

	t.Run("missing input dir", func(t *testing.T) {
		t.Parallel()

		code, _, stderr := run("list")
		if code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr, "--input-dir") {
			t.Errorf("stderr should name --input-dir, got %q", stderr)
		}
	})

	t.Run("collision", func(t *testing.T) {
		t.Parallel()

		dir := testTree(t, map[string]string{"a.b": "1", "a_b": "2"})
		code, _, _ := run("list", "-i", dir)
		if code != ExitCollision {
			t.Errorf("exit = %d, want %d", code, ExitCollision)
		}
	})
}
