package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-ds/bst"
	"github.com/amp-labs/amp-ds/logger"
	"github.com/amp-labs/amp-ds/pqueue"
	"github.com/amp-labs/amp-ds/trie"
)

// Runner executes scenarios and writes a plain-text report to Out.
type Runner struct {
	// Out receives the report. Required.
	Out io.Writer

	// Logger receives progress at debug level and empty-queue warnings. When nil,
	// the logger from the run context is used.
	Logger *slog.Logger

	// ShowStructure appends the shape of the tree and the trie to their sections.
	ShowStructure bool
}

// Run executes every non-nil section of sc in order: tree, trie, queue.
// Sections are separated by a blank line.
func (r *Runner) Run(ctx context.Context, sc *Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	log := r.Logger
	if log == nil {
		log = logger.Get(ctx)
	}

	rep := &report{out: r.Out}

	if sc.Tree != nil {
		r.runTree(log, rep, sc.Tree)
	}

	if sc.Trie != nil {
		r.runTrie(log, rep, sc.Trie)
	}

	if sc.Queue != nil {
		runQueue(log, rep, sc.Queue)
	}

	return rep.err
}

func (r *Runner) runTree(log *slog.Logger, rep *report, step *TreeStep) {
	tree := bst.New()
	tree.InsertAll(step.Insert...)

	log.Debug("built ordered tree", "values", tree.Size(), "height", tree.Height())

	values := make([]string, 0, tree.Size())
	for v := range tree.Values() {
		values = append(values, strconv.Itoa(v))
	}

	rep.section("Ordered tree:")
	rep.line(strings.Join(values, " "))

	if r.ShowStructure {
		rep.block(tree.String())
	}
}

func (r *Runner) runTrie(log *slog.Logger, rep *report, step *TrieStep) {
	tr := trie.New()
	tr.InsertAll(step.Insert...)

	log.Debug("built prefix trie", "words", tr.Size())

	rep.section("Prefix trie:")

	for _, word := range step.Query {
		rep.line(fmt.Sprintf("contains(%q) = %t", word, tr.Contains(word)))
	}

	if r.ShowStructure {
		rep.block(tr.String())
	}
}

func runQueue(log *slog.Logger, rep *report, step *QueueStep) {
	q := pqueue.New()
	q.InsertAll(step.Insert...)

	log.Debug("built priority queue", "values", q.Len(), "extract", step.Extract)

	rep.section("Priority queue:")

	for i := range step.Extract {
		value, err := q.ExtractMin()
		if err != nil {
			log.Warn("priority queue ran dry", "extraction", i+1, "requested", step.Extract, "error", err)
			rep.line("extract-min: empty")

			continue
		}

		rep.line("extract-min: " + strconv.Itoa(value))
	}
}

// report writes sections to out and remembers the first write error.
type report struct {
	out      io.Writer
	sections int
	err      error
}

func (r *report) section(title string) {
	if r.sections > 0 {
		r.line("")
	}

	r.sections++
	r.line(title)
}

func (r *report) line(text string) {
	if r.err != nil {
		return
	}

	_, r.err = fmt.Fprintln(r.out, text)
}

// block writes pre-rendered multi-line text, which already ends in a newline.
func (r *report) block(text string) {
	if r.err != nil {
		return
	}

	_, r.err = io.WriteString(r.out, text)
}
