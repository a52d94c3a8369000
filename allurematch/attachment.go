package allurematch

import (
	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/match"
	"github.com/robotomize/go-allure-match/store"
)

type AttachmentOption func(options *AttachmentOptions)

// AttachmentOptions holds the optional name and type constraints. Any
// option passed constrains the attribute, the empty string included.
type AttachmentOptions struct {
	attachType *string
	name       *string
}

func AttachmentType(t string) AttachmentOption {
	return func(o *AttachmentOptions) {
		o.attachType = &t
	}
}

func AttachmentName(name string) AttachmentOption {
	return func(o *AttachmentOptions) {
		o.name = &name
	}
}

func (o *AttachmentOptions) matchers() []match.Matcher[*allure.Attachment] {
	var ms []match.Matcher[*allure.Attachment]
	if o.name != nil {
		ms = append(ms, Entry("name", attachmentName, match.EqualTo(*o.name)))
	}

	if o.attachType != nil {
		ms = append(ms, Entry("type", attachmentType, match.EqualTo(*o.attachType)))
	}

	return ms
}

func attachmentOptions(opts []AttachmentOption) *AttachmentOptions {
	var o AttachmentOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &o
}

// HasAttachment matches nodes with an attachment that has a source and the
// constrained name and type.
func HasAttachment(opts ...AttachmentOption) match.Matcher[allure.Node] {
	ms := append(
		attachmentOptions(opts).matchers(),
		Entry("source", attachmentSource, nonNull[string]()),
	)

	return Entry("attachments", nodeAttachments, match.HasItem(ms...))
}

// HasAttachmentWithContent matches nodes with an attachment whose source
// resolves through lookup to content satisfying content. An attachment whose
// source can't be resolved doesn't match, and the remaining ones are still
// tried.
func HasAttachmentWithContent(
	lookup store.Lookup,
	content match.Matcher[[]byte],
	opts ...AttachmentOption,
) match.Matcher[allure.Node] {
	ms := append(
		attachmentOptions(opts).matchers(),
		Entry("source", attachmentSource, MapsTo(lookup, content)),
	)

	return Entry("attachments", nodeAttachments, match.HasItem(ms...))
}

// MapsTo matches keys that resolve through lookup to content satisfying m.
func MapsTo(lookup store.Lookup, m match.Matcher[[]byte]) match.Matcher[string] {
	return match.New(
		"resolving to content "+m.String(),
		func(key string) bool {
			b, err := lookup.Get(key)
			return err == nil && m.Matches(b)
		},
		func(key string) string {
			b, err := lookup.Get(key)
			if err != nil {
				return "could not be resolved: " + err.Error()
			}

			return "resolved to content that " + m.DescribeMismatch(b)
		},
	)
}
