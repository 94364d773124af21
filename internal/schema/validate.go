package schema

import (
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Violation is one failed rule, addressed by dotted field path.
type Violation struct {
	Path    string
	Message string
}

func (v Violation) String() string { return v.Path + ": " + v.Message }

// Validate applies the authoring rules of kind to a raw document. now fixes
// the "current year" bound.
func Validate(kind DocumentType, doc map[string]any, now time.Time) []Violation {
	var out []Violation
	validateFields(kind.Fields, doc, "", now, &out)
	return out
}

func validateFields(fields []Field, obj map[string]any, prefix string, now time.Time, out *[]Violation) {
	for _, f := range fields {
		validateField(f, obj[f.Name], join(prefix, f.Name), now, out)
	}
}

func validateField(f Field, v any, path string, now time.Time, out *[]Violation) {
	add := func(format string, args ...any) {
		*out = append(*out, Violation{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if isEmpty(f, v) {
		if f.Rule.Required {
			add("required")
		}
		return
	}

	switch f.Type {
	case String, Text:
		s, ok := v.(string)
		if !ok {
			add("expected a string")
			return
		}
		if f.Rule.MinLength > 0 && utf8.RuneCountInString(strings.TrimSpace(s)) < f.Rule.MinLength {
			add("must be at least %d characters", f.Rule.MinLength)
		}
		if len(f.Options) > 0 && !hasOption(f.Options, s) {
			add("%q is not an allowed value", s)
		}
		if f.Rule.Email {
			if _, err := mail.ParseAddress(s); err != nil {
				add("must be an email address")
			}
		}

	case URL:
		s, ok := v.(string)
		if !ok {
			add("expected a string")
			return
		}
		if u, err := url.Parse(s); err != nil || u.Scheme == "" || u.Host == "" {
			add("must be an absolute URL")
		}

	case Slug:
		s := slugValue(v)
		if f.MaxLength > 0 && len(s) > f.MaxLength {
			add("must be at most %d characters", f.MaxLength)
		}

	case Number:
		n, ok := v.(float64)
		if !ok {
			add("expected a number")
			return
		}
		if f.Rule.Min != nil && n < *f.Rule.Min {
			add("must be at least %v", *f.Rule.Min)
		}
		if f.Rule.Max != nil && n > *f.Rule.Max {
			add("must be at most %v", *f.Rule.Max)
		}
		if f.Rule.MaxCurrentYear && n > float64(now.Year()) {
			add("must be at most %d", now.Year())
		}
		if f.Rule.Integer && n != math.Trunc(n) {
			add("must be an integer")
		}

	case Boolean:
		if _, ok := v.(bool); !ok {
			add("expected a boolean")
		}

	case Datetime:
		s, ok := v.(string)
		if !ok {
			add("expected a datetime string")
			return
		}
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			add("must be an RFC 3339 datetime")
		}

	case ImageType, Object:
		m, ok := v.(map[string]any)
		if !ok {
			add("expected an object")
			return
		}
		if f.Type == ImageType && f.Rule.Required && m["asset"] == nil {
			add("image has no asset")
		}
		validateFields(f.Fields, m, path, now, out)

	case Array:
		items, ok := v.([]any)
		if !ok {
			add("expected an array")
			return
		}
		for i, it := range items {
			ip := fmt.Sprintf("%s[%d]", path, i)
			if len(f.Options) > 0 {
				if s, ok := it.(string); !ok || !hasOption(f.Options, s) {
					*out = append(*out, Violation{Path: ip, Message: fmt.Sprintf("%v is not an allowed value", it)})
				}
				continue
			}
			if f.Of != nil {
				validateField(*f.Of, it, ip, now, out)
			}
		}
	}
}

// isEmpty treats missing, null, blank strings and empty slugs as absent.
func isEmpty(f Field, v any) bool {
	if v == nil {
		return true
	}
	switch f.Type {
	case Slug:
		return slugValue(v) == ""
	case String, Text, URL:
		s, ok := v.(string)
		return ok && strings.TrimSpace(s) == ""
	}
	return false
}

// slugValue accepts both the stored {current: "..."} form and a projected string.
func slugValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["current"].(string); ok {
			return s
		}
	}
	return ""
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
