//go:build stave

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target when running `stave` with no arguments.
var Default = All

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"l": Lint,
	"c": Clean,
}

// binaries built from ./cmd.
var binaries = []string{"tactful-cli", "tactful-bench"}

// All runs the complete build pipeline: lint, test, and build.
func All() error {
	st.Deps(Init)
	st.Deps(Lint, Test)
	st.Deps(Build)
	return nil
}

// Init ensures the module dependencies are up to date.
func Init() error {
	return sh.Run("go", "mod", "tidy")
}

// Build compiles every command binary into bin/.
func Build() error {
	st.Deps(Init)
	st.Deps(Build_CLI, Build_Bench)
	return nil
}

// Build_CLI compiles the tactful-cli binary with version information.
func Build_CLI() error {
	st.Deps(Init)
	return buildBinary("tactful-cli")
}

// Build_Bench compiles the tactful-bench binary with version information.
func Build_Bench() error {
	st.Deps(Init)
	return buildBinary("tactful-bench")
}

func buildBinary(name string) error {
	out := "bin/" + name
	rebuild, err := target.Glob(out, "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Printf("%s is up to date\n", name)
		}
		return nil
	}

	return sh.RunV("go", "build", "-ldflags", buildLdflags(), "-o", out, "./cmd/"+name)
}

// buildLdflags returns ldflags for version injection.
func buildLdflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	return fmt.Sprintf("-X main.version=%s", strings.TrimSpace(version))
}

// Test runs all tests with race detection and coverage.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// TestShort runs tests in short mode.
func TestShort() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-short", "-race", "./...")
}

// Lint runs golangci-lint on the codebase.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code using gofmt and goimports.
func Fmt() error {
	if err := sh.Run("gofmt", "-w", "."); err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if err := sh.Run("goimports", "-w", "."); err != nil {
		return fmt.Errorf("goimports: %w", err)
	}
	return nil
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	for _, a := range []string{"bin/", "coverage.out", "coverage.html"} {
		if err := sh.Rm(a); err != nil {
			return fmt.Errorf("removing %s: %w", a, err)
		}
	}
	return nil
}

// Install builds and installs the binaries to GOBIN.
func Install() error {
	st.Deps(Build)

	gocmd := st.GoCmd()
	bin, err := sh.Output(gocmd, "env", "GOBIN")
	if err != nil {
		return fmt.Errorf("determining GOBIN: %w", err)
	}
	if bin == "" {
		gopath, err := sh.Output(gocmd, "env", "GOPATH")
		if err != nil {
			return fmt.Errorf("determining GOPATH: %w", err)
		}
		bin = gopath + "/bin"
	}

	for _, name := range binaries {
		dst := bin + "/" + name
		if runtime.GOOS == "windows" {
			dst += ".exe"
		}
		if err := sh.Copy(dst, "bin/"+name); err != nil {
			return fmt.Errorf("installing %s: %w", name, err)
		}
		if st.Verbose() {
			fmt.Printf("Installed %s to %s\n", name, dst)
		}
	}
	return nil
}

// modelPath returns $TACTFUL_MODEL or the default model location.
func modelPath() string {
	if p := os.Getenv("TACTFUL_MODEL"); p != "" {
		return p
	}
	return "testdata/model.json"
}

// Tables namespace for model table targets.
type Tables st.Namespace

// Info prints the size and priors of the model tables.
func (Tables) Info() error {
	st.Deps(Build_CLI)
	return sh.RunV("./bin/tactful-cli", "tables", "info", modelPath())
}

// SQLite converts the model tables to an SQLite database next to them.
func (Tables) SQLite() error {
	st.Deps(Build_CLI)
	src := modelPath()
	dst := strings.TrimSuffix(src, ".json") + ".db"
	return sh.RunV("./bin/tactful-cli", "tables", "convert", src, dst)
}

// Corpus namespace for gold corpus preparation.
type Corpus st.Namespace

// UDEWT converts the UD English EWT treebank into YAML gold files.
// Requires testdata/ud-ewt/en_ewt-ud-*.conllu.
func (Corpus) UDEWT() error {
	return sh.RunV("go", "run", "./scripts/process-ud-ewt.go")
}

// Gutenberg converts Project Gutenberg downloads into bench transcripts.
// Requires testdata/gutenberg/<name>_raw.txt.
func (Corpus) Gutenberg() error {
	return sh.RunV("go", "run", "./scripts/process-gutenberg.go")
}

// Bench namespace for benchmark-related targets.
type Bench st.Namespace

// Run runs the benchmark tool against the test corpus.
func (Bench) Run() error {
	st.Deps(Build_Bench)
	return sh.RunV("./bin/tactful-bench", "--model", modelPath(), "--corpus", "testdata/corpus")
}

// Sweep runs a threshold sweep to find optimal parameters.
func (Bench) Sweep() error {
	st.Deps(Build_Bench)
	return sh.RunV("./bin/tactful-bench", "--model", modelPath(), "--corpus", "testdata/corpus", "--sweep")
}

// CI runs the full CI pipeline (lint, test, build).
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Lint, Test, Build)
	return nil
}

// Check runs quick validation (vet, lint, short tests).
func Check() error {
	st.Deps(Vet, Lint, TestShort)
	return nil
}

// Coverage generates a coverage report.
func Coverage() error {
	st.Deps(Init)
	if err := sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}
