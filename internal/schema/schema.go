// Package schema declares the document kinds the content studio edits and
// the authoring-time rules it enforces. The public site never re-validates
// content it reads; the mirror uses Validate to report bad documents.
package schema

type FieldType string

const (
	String    FieldType = "string"
	Text      FieldType = "text"
	Slug      FieldType = "slug"
	Number    FieldType = "number"
	Boolean   FieldType = "boolean"
	Datetime  FieldType = "datetime"
	ImageType FieldType = "image"
	Array     FieldType = "array"
	Object    FieldType = "object"
	Reference FieldType = "reference"
	URL       FieldType = "url"
)

type Option struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

// Rule is the validation attached to a field. MaxCurrentYear bounds a number
// by the calendar year at validation time.
type Rule struct {
	Required       bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Min            *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max            *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	MaxCurrentYear bool     `json:"maxCurrentYear,omitempty" yaml:"maxCurrentYear,omitempty"`
	MinLength      int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	Integer        bool     `json:"integer,omitempty" yaml:"integer,omitempty"`
	Email          bool     `json:"email,omitempty" yaml:"email,omitempty"`
}

type Field struct {
	Name    string    `json:"name" yaml:"name"`
	Title   string    `json:"title" yaml:"title"`
	Type    FieldType `json:"type" yaml:"type"`
	Rule    Rule      `json:"validation,omitempty" yaml:"validation,omitempty"`
	Options []Option  `json:"options,omitempty" yaml:"options,omitempty"`
	Layout  string    `json:"layout,omitempty" yaml:"layout,omitempty"`
	Initial any       `json:"initialValue,omitempty" yaml:"initialValue,omitempty"`
	Rows    int       `json:"rows,omitempty" yaml:"rows,omitempty"`

	// slug
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	MaxLength int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	// image
	Hotspot bool `json:"hotspot,omitempty" yaml:"hotspot,omitempty"`
	// object and image sub-fields
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	// array member type
	Of *Field `json:"of,omitempty" yaml:"of,omitempty"`
	// reference targets
	To []string `json:"to,omitempty" yaml:"to,omitempty"`
}

type Preview struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Media    string `json:"media,omitempty" yaml:"media,omitempty"`
}

type DocumentType struct {
	Name    string  `json:"name" yaml:"name"`
	Title   string  `json:"title" yaml:"title"`
	Icon    string  `json:"icon,omitempty" yaml:"icon,omitempty"`
	Fields  []Field `json:"fields" yaml:"fields"`
	Preview Preview `json:"preview" yaml:"preview"`
}

// Field looks up a top-level field by name.
func (d DocumentType) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func num(v float64) *float64 { return &v }

func required() Rule { return Rule{Required: true} }

func altField(req bool) Field {
	return Field{Name: "alt", Title: "Alternative Text", Type: String, Rule: Rule{Required: req}}
}
