package results

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/robotomize/go-allure-match/allure"
)

const resultPattern = "*-result.json"

type File struct {
	Name   string
	Result *allure.Result
}

// Set is the outcome of loading a results directory. Err joins the decode
// failures of files that were skipped.
type Set struct {
	Err   error
	Files []File
}

// Results returns the loaded documents in file name order.
func (s Set) Results() []*allure.Result {
	output := make([]*allure.Result, 0, len(s.Files))
	for _, f := range s.Files {
		output = append(output, f.Result)
	}

	return output
}

type Option func(*Loader)

func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.limit = n
		}
	}
}

func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := Loader{
		fsys:  fsys,
		limit: runtime.NumCPU(),
		log:   logrus.New(),
	}

	for _, o := range opts {
		o(&l)
	}

	return &l
}

type Loader struct {
	fsys  fs.FS
	limit int
	log   logrus.FieldLogger
}

// Load reads and decodes every result file. Undecodable files are reported
// in Set.Err; I/O failures abort the load.
func (l *Loader) Load(ctx context.Context) (Set, error) {
	names, err := fs.Glob(l.fsys, resultPattern)
	if err != nil {
		return Set{}, fmt.Errorf("fs.Glob: %w", err)
	}

	sort.Strings(names)

	docs := make([]*allure.Result, len(names))
	decodeErrs := make([]error, len(names))

	wg, childCtx := errgroup.WithContext(ctx)
	wg.SetLimit(l.limit)

	for idx, name := range names {
		idx, name := idx, name

		wg.Go(
			func() error {
				select {
				case <-childCtx.Done():
					return childCtx.Err()
				default:
				}

				b, err := fs.ReadFile(l.fsys, name)
				if err != nil {
					return fmt.Errorf("fs.ReadFile %s: %w", name, err)
				}

				doc, err := allure.Decode(b)
				if err != nil {
					decodeErrs[idx] = fmt.Errorf("%s: %w", name, err)
					l.log.WithField("file", name).WithError(err).Warn("skip undecodable result")
					return nil
				}

				l.log.WithField("file", name).Debug("result loaded")
				docs[idx] = doc

				return nil
			},
		)
	}

	if err := wg.Wait(); err != nil {
		return Set{}, err
	}

	set := Set{Err: errors.Join(decodeErrs...)}
	for idx, doc := range docs {
		if doc == nil {
			continue
		}

		set.Files = append(set.Files, File{Name: names[idx], Result: doc})
	}

	return set, nil
}
