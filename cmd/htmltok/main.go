// Command htmltok tokenizes one or more HTML files and prints their
// token streams.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/htmlcore/htmlcore/parser"
	"github.com/htmlcore/htmlcore/parser/perror"
	"github.com/htmlcore/htmlcore/parser/tokcfg"
	"github.com/htmlcore/htmlcore/parser/token"
)

var (
	poolSize       = flag.Int("workers", 4, "number of files to tokenize concurrently")
	dropDuplicates = flag.Bool("drop-duplicate-attrs", false, "drop repeated attribute names instead of keeping every occurrence")
)

func main() {
	flag.Parse()
	log := logrus.StandardLogger()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: htmltok [flags] file [file...]")
		os.Exit(2)
	}

	pool, err := ants.NewPool(*poolSize)
	if err != nil {
		log.WithError(err).Fatal("failed to start worker pool")
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var mu sync.Mutex // serializes stdout across workers
	var failed atomic.Bool

	for _, path := range paths {
		path := path
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := tokenizeFile(path, &mu, log); err != nil {
				mu.Lock()
				fmt.Fprintln(os.Stderr, err)
				mu.Unlock()
				failed.Store(true)
			}
		})
		if submitErr != nil {
			log.WithError(submitErr).WithField("path", path).Error("failed to submit job")
			wg.Done()
			failed.Store(true)
		}
	}

	wg.Wait()
	if failed.Load() {
		os.Exit(1)
	}
}

// tokenizeFile reads path and drains its entire token stream, each file
// owning its own Tokenizer instance end to end.
func tokenizeFile(path string, mu *sync.Mutex, log *logrus.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	opts := tokcfg.DefaultOptions()
	opts.DropDuplicateAttributes = *dropDuplicates
	opts.Sink = perror.NewLogrusSink()

	tok := parser.New(string(data), opts)

	mu.Lock()
	defer mu.Unlock()
	fmt.Printf("=== %s ===\n", path)
	for {
		t := tok.Next()
		spew.Dump(t)
		if t.Kind == token.EOFKind {
			break
		}
	}
	return nil
}
