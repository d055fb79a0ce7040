package calc

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// Result is the outcome of a request in a batch.
type Result struct {
	Request Request
	Output  string
	Err     error
}

type batchFile struct {
	Cases []Request `yaml:"cases"`
}

// LoadBatch reads requests from a YAML document.
//
// Example:
//
//	cases:
//	  - domain: i
//	    op: cross
//	    left: 7,8,3
//	    right: 1,3,4
func LoadBatch(r io.Reader) ([]Request, error) {
	var bf batchFile
	if err := yaml.NewDecoder(r).Decode(&bf); err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}
	return bf.Cases, nil
}

// RunBatch evaluates all requests and returns their results in the same order.
// A failed request does not stop the batch.
func (c *Calculator) RunBatch(reqs []Request) []Result {
	results := make([]Result, len(reqs))
	for i, r := range reqs {
		out, err := c.Evaluate(r)
		if err != nil {
			slog.Warn("batch request failed", "index", i, "error", err)
		}
		results[i] = Result{Request: r, Output: out, Err: err}
	}
	return results
}
