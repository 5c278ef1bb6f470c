package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const referenceDigest = "522082c8a8ddd91e9275e7dc727a1406f72825caa357fad51062e9d4b3cf1412"

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, strings.TrimSpace(stdout.String()), stderr.String()
}

func TestRunHashesPassword(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "reference",
			args: []string{"--salt", "salt", "--space-cost", "4", "--time-cost", "3", "--delta", "1", "password"},
			want: referenceDigest,
		},
		{
			name: "defaults",
			args: []string{"-s", "salt", "password"},
			want: "87de2b19081d0f73eb690a04fb11d1ea8f621fafa97ca1535625342c5317effb",
		},
		{
			name: "blake2b",
			args: []string{"-s", "salt", "--space-cost=4", "--time-cost=3", "--delta=1", "--primitive=blake2b-256", "password"},
			want: "11088aefa2efec00a578460d2ab42beab31bc8cf6d1d28ef3ebccd2be712b76b",
		},
		{
			name: "legacy_counter",
			args: []string{"-s", "salt", "--space-cost=4", "--time-cost=3", "--delta=1", "--legacy-counter", "password"},
			want: "28f5362043c0a1a00fa59ff771c9ddeda0cae5cb3bc18c8905cb5a0fe8213ba3",
		},
		{
			name: "hex_salt",
			args: []string{"--salt-hex", "00ff10aa55", "--space-cost=8", "--time-cost=2", "--delta=2", "password"},
			want: "a000e75509bbf41ac681ce8ebc8edf6adc840644523f832c3619208afd68584b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCmd(t, tt.args...)
			if code != 0 {
				t.Fatalf("run() = %d, stderr: %s", code, errOut)
			}
			if out != tt.want {
				t.Errorf("output = %s, want %s", out, tt.want)
			}
		})
	}
}

func TestRunExpect(t *testing.T) {
	base := []string{"-s", "salt", "--space-cost=4", "--time-cost=3", "--delta=1"}

	code, _, _ := runCmd(t, append(base, "--expect", strings.ToUpper(referenceDigest), "password")...)
	if code != 0 {
		t.Errorf("matching --expect exit = %d, want 0", code)
	}

	code, _, errOut := runCmd(t, append(base, "--expect", referenceDigest, "Password")...)
	if code != 1 {
		t.Errorf("mismatching --expect exit = %d, want 1", code)
	}
	if !strings.Contains(errOut, "mismatch") {
		t.Errorf("stderr = %q, want mismatch warning", errOut)
	}
}

func TestRunInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero_space_cost", []string{"--space-cost=0", "pw"}},
		{"zero_time_cost", []string{"--time-cost=0", "pw"}},
		{"unknown_primitive", []string{"--primitive=md5", "pw"}},
		{"bad_salt_hex", []string{"--salt-hex=xyz", "pw"}},
		{"unknown_flag", []string{"--no-such-flag", "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, out, _ := runCmd(t, tt.args...); code != 2 || out != "" {
				t.Errorf("run() = %d, %q, want 2 and no output", code, out)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	code, out, _ := runCmd(t, "--help")
	if code != 0 {
		t.Errorf("--help exit = %d, want 0", code)
	}
	if !strings.Contains(out, "--space-cost") {
		t.Errorf("help output missing options: %s", out)
	}
}

func TestRunPromptsForPassword(t *testing.T) {
	saved := readPassword
	defer func() { readPassword = saved }()

	readPassword = func() ([]byte, error) { return []byte("password"), nil }
	code, out, _ := runCmd(t, "-s", "salt", "--space-cost=4", "--time-cost=3", "--delta=1")
	if code != 0 || out != referenceDigest {
		t.Errorf("run() = %d, %s, want 0, %s", code, out, referenceDigest)
	}

	readPassword = func() ([]byte, error) { return nil, errors.New("no terminal") }
	if code, _, _ := runCmd(t, "-s", "salt"); code != 1 {
		t.Errorf("run() with failing prompt = %d, want 1", code)
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balloon.ini")
	ini := "[Application Options]\nsalt = salt\nspace-cost = 4\ntime-cost = 3\ndelta = 1\n"
	if err := os.WriteFile(path, []byte(ini), 0600); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCmd(t, "--config", path, "password")
	if code != 0 || out != referenceDigest {
		t.Errorf("run() = %d, %s (%s), want 0, %s", code, out, errOut, referenceDigest)
	}

	// Command line wins over the file.
	code, out, _ = runCmd(t, "--config", path, "--delta", "0", "password")
	if code != 0 || out == referenceDigest {
		t.Errorf("run() with --delta override = %d, %s", code, out)
	}

	if code, _, _ := runCmd(t, "--config", filepath.Join(t.TempDir(), "missing.ini"), "pw"); code != 2 {
		t.Errorf("run() with missing config = %d, want 2", code)
	}
}

func TestRunVectors(t *testing.T) {
	code, out, errOut := runCmd(t, "--vectors", "../../testdata/balloon_vectors.json")
	if code != 0 {
		t.Fatalf("--vectors exit = %d\n%s\n%s", code, out, errOut)
	}
	if !strings.Contains(out, "ok    reference") {
		t.Errorf("output missing reference vector: %s", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	suite := `{"version":"1","vectors":[{"name":"wrong","password":"p","salt":"s","space_cost":1,"time_cost":1,"delta":0,"expected":"` + referenceDigest + `"}]}`
	if err := os.WriteFile(bad, []byte(suite), 0600); err != nil {
		t.Fatal(err)
	}
	if code, out, _ := runCmd(t, "--vectors", bad); code != 1 || !strings.Contains(out, "FAIL  wrong") {
		t.Errorf("--vectors with bad digest = %d, %s", code, out)
	}
}
