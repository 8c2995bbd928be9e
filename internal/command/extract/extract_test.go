// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/google/oss-unwrap/pkg/act/cli"
	"github.com/google/oss-unwrap/pkg/archive/archivetest"
)

func init() {
	color.NoColor = true
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     Config{Inputs: []string{"pkg.zip"}, OutputDir: "."},
			wantErr: false,
		},
		{
			name:    "missing inputs",
			cfg:     Config{OutputDir: "."},
			wantErr: true,
		},
		{
			name:    "empty output-dir",
			cfg:     Config{Inputs: []string{"pkg.zip"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	full := write("full.yaml", "output_dir: /srv/out\nprogress: true\n")
	empty := write("empty.yaml", "")
	tests := []struct {
		name    string
		cfg     Config
		want    Config
		wantErr bool
	}{
		{
			name: "no config file",
			cfg:  Config{OutputDir: "."},
			want: Config{Inputs: []string{"a", "b"}, OutputDir: "."},
		},
		{
			name: "file fills defaults",
			cfg:  Config{OutputDir: ".", ConfigFile: full},
			want: Config{Inputs: []string{"a", "b"}, OutputDir: "/srv/out", Progress: true, ConfigFile: full},
		},
		{
			name: "flag wins over file",
			cfg:  Config{OutputDir: "mine", ConfigFile: full},
			want: Config{Inputs: []string{"a", "b"}, OutputDir: "mine", Progress: true, ConfigFile: full},
		},
		{
			name: "empty file",
			cfg:  Config{OutputDir: ".", ConfigFile: empty},
			want: Config{Inputs: []string{"a", "b"}, OutputDir: ".", ConfigFile: empty},
		},
		{
			name:    "missing file",
			cfg:     Config{OutputDir: ".", ConfigFile: filepath.Join(dir, "missing.yaml")},
			wantErr: true,
		},
		{
			name:    "malformed file",
			cfg:     Config{OutputDir: ".", ConfigFile: write("bad.yaml", "output_dir: [unterminated\n")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := parseArgs(&cfg, []string{"a", "b"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("parseArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func writeZip(t *testing.T, dir string) string {
	t.Helper()
	zb, err := archivetest.ZipFile([]archivetest.ZipEntry{
		{FileHeader: &zip.FileHeader{Name: "a.txt"}, Body: []byte("hello")},
	})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "pkg.zip")
	if err := os.WriteFile(path, zb.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHandler(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	zipPath := writeZip(t, in)
	textPath := filepath.Join(in, "notes.txt")
	if err := os.WriteFile(textPath, []byte("plain\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	deps := &Deps{}
	deps.SetIO(cli.IO{In: strings.NewReader(""), Out: &stdout, Err: &stderr})
	cfg := Config{Inputs: []string{zipPath, "aGVsbG8=", textPath, "AP8="}, OutputDir: out}
	report, err := Handler(context.Background(), cfg, deps)
	if err == nil {
		t.Error("Handler() = nil error, want failure for the unsupported input")
	}
	if report == nil || report.Failed != 1 || len(report.Results) != 4 {
		t.Fatalf("Handler() report = %+v, want 4 results with 1 failure", report)
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	want := []string{
		"extracted " + zipPath + " (zip) -> " + filepath.Join(out, "pkg"),
		"decoded aGVsbG8=: hello",
		"unsupported " + textPath + ": unsupported content: unsupported content type",
		"decoded AP8=: ",
		"00000000  00 ff                                             |..|",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Handler() output mismatch (-want +got):\n%s", diff)
	}
	if got, err := os.ReadFile(filepath.Join(out, "pkg", "a.txt")); err != nil || string(got) != "hello" {
		t.Errorf("extracted a.txt = %q, %v; want %q", got, err, "hello")
	}
	if stderr.Len() == 0 {
		t.Error("Handler() logged nothing to stderr")
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     func(in, out string) []string
		wantCode int
	}{
		{
			name:     "success",
			args:     func(in, out string) []string { return []string{"--output-dir", out, filepath.Join(in, "pkg.zip")} },
			wantCode: cli.ExitOK,
		},
		{
			name:     "no inputs",
			args:     func(in, out string) []string { return []string{"--output-dir", out} },
			wantCode: cli.ExitUsage,
		},
		{
			name:     "unknown flag",
			args:     func(in, out string) []string { return []string{"--bogus", filepath.Join(in, "pkg.zip")} },
			wantCode: cli.ExitUsage,
		},
		{
			name:     "item failure",
			args:     func(in, out string) []string { return []string{"--output-dir", out, "!!not base64!!"} },
			wantCode: cli.ExitFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := t.TempDir(), t.TempDir()
			writeZip(t, in)
			var output bytes.Buffer
			cmd := Command()
			cmd.SilenceErrors = true
			cmd.SetArgs(tt.args(in, out))
			cmd.SetOut(&output)
			cmd.SetErr(&output)
			err := cmd.Execute()
			if got := cli.ExitCode(err); got != tt.wantCode {
				t.Errorf("Execute() = %v, exit code %d, want %d", err, got, tt.wantCode)
			}
			if strings.Contains(output.String(), "Usage:") {
				t.Errorf("Execute() printed usage:\n%s", output.String())
			}
		})
	}
}

func TestCommandRelativeOutputDir(t *testing.T) {
	t.Chdir(t.TempDir())
	gz, err := archivetest.Gzip([]byte("plain notes"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir("in", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("in", "notes.txt.gz"), gz.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout bytes.Buffer
	cmd := Command()
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{filepath.Join("in", "notes.txt.gz")})
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() = %v, want nil\n%s", err, stdout.String())
	}
	got, err := os.ReadFile(filepath.Join("notes.txt", "notes.txt"))
	if err != nil {
		t.Fatalf("reading decoded output: %v", err)
	}
	if string(got) != "plain notes" {
		t.Errorf("decoded output = %q, want %q", got, "plain notes")
	}
}
