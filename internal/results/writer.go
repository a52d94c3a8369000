package results

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/robotomize/go-allure-match/allure"
)

type Attachment struct {
	Source string
	Body   []byte
}

type WriterOption func(*Writer)

// WriteToDir sets the results directory. Without it nothing is written to disk.
func WriteToDir(pth string) WriterOption {
	return func(w *Writer) {
		w.pth = pth
	}
}

// WriteReportTo also encodes every result to the given writers.
func WriteReportTo(writers ...io.Writer) WriterOption {
	return func(w *Writer) {
		w.reportWriters = append(w.reportWriters, writers...)
	}
}

// NewWriter lays out results the way Allure adapters do: one
// <uuid>-result.json per result and one file per attachment source.
func NewWriter(opts ...WriterOption) *Writer {
	w := Writer{reportWriters: []io.Writer{io.Discard}}
	for _, o := range opts {
		o(&w)
	}

	return &w
}

type Writer struct {
	pth           string
	reportWriters []io.Writer
}

func (o *Writer) WriteResults(ctx context.Context, docs []*allure.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(o.pth) > 0 {
		if err := mkdir(o.pth); err != nil {
			return err
		}
	}

	for _, doc := range docs {
		if err := o.writeResult(doc); err != nil {
			return fmt.Errorf("writeResult: %w", err)
		}
	}

	return nil
}

func (o *Writer) WriteAttachments(ctx context.Context, attachments []Attachment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if o.pth == "" {
		return nil
	}

	if err := mkdir(o.pth); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, attachment := range attachments {
		if err := o.writeAttachmentFile(attachment); err != nil {
			return err
		}
	}

	return nil
}

func (o *Writer) writeAttachmentFile(attachment Attachment) error {
	pth := filepath.Join(o.pth, filepath.Base(attachment.Source))

	if err := os.WriteFile(pth, attachment.Body, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}

func (o *Writer) writeResult(doc *allure.Result) (err error) {
	writers := make([]io.Writer, len(o.reportWriters))
	copy(writers, o.reportWriters)

	if o.pth != "" {
		id, ok := doc.UUID.Get()
		if !ok || id == "" {
			id = uuid.New().String()
		}

		pth := filepath.Join(o.pth, fmt.Sprintf("%s-result.json", id))
		file, openErr := os.OpenFile(pth, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if openErr != nil {
			return fmt.Errorf("os.OpenFile: %w", openErr)
		}

		defer func() {
			if syncErr := file.Sync(); syncErr != nil && err == nil {
				err = fmt.Errorf("file Sync: %w", syncErr)
			}

			_ = file.Close()
		}()

		writers = append(writers, file)
	}

	if encErr := json.NewEncoder(io.MultiWriter(writers...)).Encode(doc); encErr != nil {
		return fmt.Errorf("json.NewEncoder.Encode: %w", encErr)
	}

	return nil
}

func mkdir(pth string) error {
	if _, err := os.Stat(pth); os.IsNotExist(err) {
		if err = os.MkdirAll(pth, os.ModePerm); err != nil {
			return fmt.Errorf("os.MkdirAll: %w", err)
		}
	}

	return nil
}
