// Package listing renders a Pattern as a tracker style text listing, one line
// per step, through a text/template with the sprig functions available.
package listing

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/vsariola/stepseq"
)

//go:embed templates/listing.txt
var defaultTemplate string

type (
	// Lister renders patterns with Template.
	Lister struct {
		Template *template.Template
		// Hex prints step numbers, channels and velocities in hexadecimal.
		Hex bool
	}

	// Listing is the data the template gets.
	Listing struct {
		Name   string
		Length int
		Used   int
		Steps  []Step
	}

	// Step is one line of a Listing. Empty strings are absent values, so the
	// template can fill them with sprig's default.
	Step struct {
		Step     string
		Note     string
		Channel  string
		Velocity string
		Effects  int
	}
)

// New returns a Lister using the built-in template.
func New() (*Lister, error) {
	tmpl, err := template.New("listing").Funcs(sprig.TxtFuncMap()).Parse(defaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("could not parse the default listing template: %v", err)
	}
	return &Lister{Template: tmpl}, nil
}

// NewFromFile returns a Lister using the template in the given file.
func NewFromFile(filename string) (*Lister, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read template %v: %v", filename, err)
	}
	tmpl, err := template.New("listing").Funcs(sprig.TxtFuncMap()).Parse(string(contents))
	if err != nil {
		return nil, fmt.Errorf(`could not parse template "%v": %v`, filename, err)
	}
	return &Lister{Template: tmpl}, nil
}

// Listing builds the template data for a pattern.
func (l *Lister) Listing(name string, p stepseq.Pattern) Listing {
	num := "%02d"
	vel := "%03d"
	if l.Hex {
		num = "%02X"
		vel = "%02X"
	}
	ret := Listing{Name: name, Length: p.Len(), Steps: make([]Step, p.Len())}
	for i := range ret.Steps {
		ret.Steps[i].Step = fmt.Sprintf(num, i)
	}
	for i, r := range p.Rows() {
		ret.Used++
		s := &ret.Steps[i]
		if n, ok := r.Note(); ok {
			s.Note = n.String()
		}
		if c, ok := r.Channel(); ok {
			s.Channel = fmt.Sprintf(num, c)
		}
		if v, ok := r.Velocity(); ok {
			s.Velocity = fmt.Sprintf(vel, v)
		}
		s.Effects = len(r.Effects())
	}
	return ret
}

func (l *Lister) Write(w io.Writer, name string, p stepseq.Pattern) error {
	if err := l.Template.Execute(w, l.Listing(name, p)); err != nil {
		return fmt.Errorf(`could not execute listing template for "%v": %v`, name, err)
	}
	return nil
}

func (l *Lister) String(name string, p stepseq.Pattern) (string, error) {
	var b bytes.Buffer
	if err := l.Write(&b, name, p); err != nil {
		return "", err
	}
	return b.String(), nil
}
