// Command balloon hashes a password with Balloon Hashing and prints the
// digest as lowercase hex.
//
//	balloon --salt pepper hunter2
//	balloon --salt-hex 00ff10 --space-cost 1024 --time-cost 3 --delta 3
//	balloon --vectors testdata/balloon_vectors.json
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/howeyc/gopass"
	balloon "github.com/opd-ai/go-balloon"
)

// readPassword prompts for a password without echo.
var readPassword = func() ([]byte, error) {
	return gopass.GetPasswdPrompt("Password: ", false, os.Stdin, os.Stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.Ltime|log.Lmicroseconds)

	opts, err := loadOptions(args)
	if err != nil {
		if isHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Vectors != "" {
		return checkVectors(opts.Vectors, stdout, logger)
	}

	config, err := opts.hasherConfig()
	if err != nil {
		logger.Printf("[ERROR] %v", err)
		return 2
	}

	salt, err := opts.salt()
	if err != nil {
		logger.Printf("[ERROR] %v", err)
		return 2
	}

	password := []byte(opts.Args.Password)
	if opts.Args.Password == "" {
		password, err = readPassword()
		if err != nil {
			logger.Printf("[ERROR] reading password: %v", err)
			return 1
		}
	}

	hasher, err := balloon.New(config)
	if err != nil {
		logger.Printf("[ERROR] %v", err)
		return 2
	}

	if opts.Verbose {
		logger.Printf("[INFO] primitive=%s space=%d time=%d delta=%d counter=%s",
			config.Primitive, config.SpaceCost, config.TimeCost, config.Delta, config.CounterMode)
	}

	start := time.Now()
	digest := hasher.SumHex(password, salt)
	if opts.Verbose {
		logger.Printf("[INFO] hashed in %v", time.Since(start))
	}

	fmt.Fprintln(stdout, digest)

	if opts.Expect != "" && !strings.EqualFold(opts.Expect, digest) {
		logger.Printf("[WARN] digest mismatch: expected %s", strings.ToLower(opts.Expect))
		return 1
	}
	return 0
}

// checkVectors runs every vector in path and reports failures.
func checkVectors(path string, stdout io.Writer, logger *log.Logger) int {
	suite, err := balloon.LoadTestVectors(path)
	if err != nil {
		logger.Printf("[ERROR] %v", err)
		return 2
	}

	failed := 0
	for _, tv := range suite.Vectors {
		got, ok, err := tv.Check()
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(stdout, "ERROR %s: %v\n", tv.Name, err)
		case !ok:
			failed++
			fmt.Fprintf(stdout, "FAIL  %s: got %s, want %s\n", tv.Name, got, tv.Expected)
		default:
			fmt.Fprintf(stdout, "ok    %s\n", tv.Name)
		}
	}

	if failed > 0 {
		logger.Printf("[WARN] %d of %d vectors failed", failed, len(suite.Vectors))
		return 1
	}
	return 0
}
