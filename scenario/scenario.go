// Package scenario describes and runs demonstrations of the bst, trie and pqueue
// containers. A Scenario can be built in code, taken from Default, or decoded
// from YAML:
//
//	tree:
//	  insert: [50, 30, 70, 20, 40]
//	trie:
//	  insert: [elma, armut]
//	  query: [elma, muz]
//	queue:
//	  insert: [10, 15, 5]
//	  extract: 2
//
// Sections that are absent are skipped when the scenario runs.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/amp-ds/logger"
	"github.com/amp-labs/amp-ds/should"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned when a scenario can't be decoded or can't be run.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is one demonstration run. Nil sections are skipped.
type Scenario struct {
	Tree  *TreeStep  `yaml:"tree,omitempty"`
	Trie  *TrieStep  `yaml:"trie,omitempty"`
	Queue *QueueStep `yaml:"queue,omitempty"`
}

// TreeStep inserts values into an ordered tree and prints the in-order traversal.
type TreeStep struct {
	Insert []int `yaml:"insert"`
}

// TrieStep inserts words into a prefix trie and reports membership for each query.
type TrieStep struct {
	Insert []string `yaml:"insert"`
	Query  []string `yaml:"query"`
}

// QueueStep inserts values into a priority queue and extracts the minimum
// Extract times. Extracting more than was inserted reports the empty queue
// instead of failing.
type QueueStep struct {
	Insert  []int `yaml:"insert"`
	Extract int   `yaml:"extract"`
}

// Default returns the canonical demonstration.
func Default() *Scenario {
	return &Scenario{
		Tree: &TreeStep{
			Insert: []int{50, 30, 70, 20, 40},
		},
		Trie: &TrieStep{
			Insert: []string{"elma", "armut"},
			Query:  []string{"elma", "muz"},
		},
		Queue: &QueueStep{
			Insert:  []int{10, 15, 5},
			Extract: 2,
		},
	}
}

// Validate checks the scenario for values that can't be run.
func (s *Scenario) Validate() error {
	if s.Queue != nil && s.Queue.Extract < 0 {
		return fmt.Errorf("%w: queue extract count %d is negative", ErrInvalidScenario, s.Queue.Extract)
	}

	return nil
}

// Load decodes a YAML scenario from r. Unknown keys are rejected so typos don't
// silently drop a section. An empty document yields an empty scenario.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario

	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// LoadFile reads and decodes the YAML scenario at path. Errors are annotated
// with the path for logging.
func LoadFile(ctx context.Context, path string) (*Scenario, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, logger.AnnotateError(err, "path", path)
	}

	defer should.Close(ctx, f, "closing scenario file")

	sc, err := Load(f)
	if err != nil {
		return nil, logger.AnnotateError(err, "path", path)
	}

	return sc, nil
}
