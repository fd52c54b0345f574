// Package doctor provides preflight checks for the assets a tokenizer backend needs.
package doctor

import (
	"fmt"
	"io"
	"os"

	"github.com/example/go-miatok/internal/tokenizer"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// NameFunc validates a tokenizer name and returns its implementation part.
type NameFunc func(name string) (string, error)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// TokenizerName is the configured "<implementation>[_<model>]" name.
	TokenizerName string
	// ParseName validates TokenizerName.
	ParseName NameFunc
	// CorpusPath must be a readable file yielding at least one token for the
	// mia backend.
	CorpusPath string
	// AllowEmptyCorpus turns an empty corpus into a pass.
	AllowEmptyCorpus bool
	// ModelFiles lists backend model files that must exist.
	ModelFiles []string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- tokenizer name ---------------------------------------------------
	if cfg.ParseName != nil {
		impl, err := cfg.ParseName(cfg.TokenizerName)
		if err != nil {
			res.fail(fmt.Sprintf("tokenizer name: %v", err))
			fmt.Fprintf(w, "%s tokenizer name %q: %v\n", FailMark, cfg.TokenizerName, err)
		} else {
			fmt.Fprintf(w, "%s tokenizer: %s\n", PassMark, impl)
		}
	}

	// ---- corpus -----------------------------------------------------------
	if cfg.CorpusPath != "" {
		checkCorpus(&res, w, cfg.CorpusPath, cfg.AllowEmptyCorpus)
	}

	// ---- model files ------------------------------------------------------
	for _, path := range cfg.ModelFiles {
		if _, err := os.Stat(path); err != nil {
			res.fail(fmt.Sprintf("model file %q: %v", path, err))
			fmt.Fprintf(w, "%s model file %s: not found\n", FailMark, path)
		} else {
			fmt.Fprintf(w, "%s model file: %s\n", PassMark, path)
		}
	}

	return res
}

func checkCorpus(res *Result, w io.Writer, path string, allowEmpty bool) {
	info, err := os.Stat(path)
	if err != nil {
		res.fail(fmt.Sprintf("corpus %q: %v", path, err))
		fmt.Fprintf(w, "%s corpus %s: not found\n", FailMark, path)
		return
	}

	if info.IsDir() {
		res.fail(fmt.Sprintf("corpus %q: is a directory", path))
		fmt.Fprintf(w, "%s corpus %s: is a directory\n", FailMark, path)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		res.fail(fmt.Sprintf("corpus %q: %v", path, err))
		fmt.Fprintf(w, "%s corpus %s: unreadable\n", FailMark, path)
		return
	}

	tokens := len(tokenizer.Segment(string(data)))
	if tokens == 0 && !allowEmpty {
		res.fail(fmt.Sprintf("corpus %q: no tokens", path))
		fmt.Fprintf(w, "%s corpus %s: no tokens\n", FailMark, path)
		return
	}

	fmt.Fprintf(w, "%s corpus: %s (%d bytes, %d tokens)\n", PassMark, path, info.Size(), tokens)
}
