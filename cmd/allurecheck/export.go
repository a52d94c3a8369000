package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/internal/results"
	"github.com/robotomize/go-allure-match/store"
)

// exportFailed writes every result that failed at least one expectation,
// together with the attachments it references, into dir as a standalone
// allure-results directory.
func exportFailed(ctx context.Context, dir string, s summary, lookup store.Lookup, log logrus.FieldLogger) error {
	var docs []*allure.Result
	seen := make(map[*allure.Result]struct{})

	for _, o := range s.Outcomes {
		if o.Passed || o.Result == nil {
			continue
		}

		if _, ok := seen[o.Result]; ok {
			continue
		}

		seen[o.Result] = struct{}{}
		docs = append(docs, o.Result)
	}

	if len(docs) == 0 {
		return nil
	}

	var attachments []results.Attachment
	sources := make(map[string]struct{})

	for _, doc := range docs {
		for _, source := range attachmentSources(doc) {
			if _, ok := sources[source]; ok {
				continue
			}

			sources[source] = struct{}{}

			body, err := lookup.Get(source)
			if err != nil {
				log.WithField("source", source).WithError(err).Warn("skip unresolvable attachment")
				continue
			}

			attachments = append(attachments, results.Attachment{Source: source, Body: body})
		}
	}

	w := results.NewWriter(results.WriteToDir(dir))
	if err := w.WriteResults(ctx, docs); err != nil {
		return fmt.Errorf("WriteResults: %w", err)
	}

	if err := w.WriteAttachments(ctx, attachments); err != nil {
		return fmt.Errorf("WriteAttachments: %w", err)
	}

	log.WithFields(logrus.Fields{
		"dir":         dir,
		"results":     len(docs),
		"attachments": len(attachments),
	}).Info("failed results exported")

	return nil
}

// attachmentSources lists the sources of a node's attachments and of all its
// nested steps, depth first.
func attachmentSources(n allure.Node) []string {
	base := allure.Base(n)
	if base == nil {
		return nil
	}

	var output []string
	attachments, _ := base.Attachments.Get()
	for _, a := range attachments {
		if a == nil {
			continue
		}

		if source, ok := a.Source.Get(); ok && source != "" {
			output = append(output, source)
		}
	}

	steps, _ := base.Steps.Get()
	for _, step := range steps {
		if step == nil {
			continue
		}

		output = append(output, attachmentSources(step)...)
	}

	return output
}
