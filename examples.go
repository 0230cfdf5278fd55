package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var builtinExamples []byte

// Example is one input to check, with an optional expected outcome.
type Example struct {
	Name   string `yaml:"name,omitempty"`
	Source string `yaml:"source"`
	Want   *Want  `yaml:"want,omitempty"`
}

// Want describes the expected outcome of checking an Example.
type Want struct {
	Type  string `yaml:"type,omitempty"`
	Error string `yaml:"error,omitempty"` // "syntax" or "type"
	Match string `yaml:"match,omitempty"`
}

type exampleFile struct {
	Examples []Example `yaml:"examples"`
}

const (
	syntaxCategory = "syntax"
	typeCategory   = "type"
)

func loadBuiltinExamples() ([]Example, error) {
	return loadExamples(bytes.NewReader(builtinExamples))
}

func loadExamplesFile(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "opening examples")
	}
	defer f.Close()
	examples, err := loadExamples(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "loading %s", path)
	}
	return examples, nil
}

// loadExamples decodes a YAML example set and checks that it is well formed.
func loadExamples(r io.Reader) ([]Example, error) {
	var file exampleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding examples")
	}
	for i, ex := range file.Examples {
		if err := ex.validate(); err != nil {
			return nil, pkgerrors.Wrapf(err, "example %d (%s)", i+1, ex.Name)
		}
	}
	return file.Examples, nil
}

func (ex Example) validate() error {
	w := ex.Want
	if w == nil {
		return nil
	}
	switch w.Error {
	case "", syntaxCategory, typeCategory:
	default:
		return fmt.Errorf("want.error must be %q or %q, not %q", syntaxCategory, typeCategory, w.Error)
	}
	if w.Error != "" && w.Type != "" {
		return errors.New("want.type and want.error are mutually exclusive")
	}
	if w.Match != "" {
		if w.Error == "" {
			return errors.New("want.match needs want.error")
		}
		if _, err := regexp.Compile(w.Match); err != nil {
			return pkgerrors.Wrap(err, "want.match")
		}
	}
	return nil
}

// Result is the outcome of running one Example through the pipeline.
// Expr is nil after a syntax error, Type is nil after any error.
type Result struct {
	Example Example
	Expr    Expr
	Type    Type
	Err     error
}

func checkExample(ex Example) Result {
	res := Result{Example: ex}
	res.Expr, res.Err = parse(strings.NewReader(ex.Source))
	if res.Err != nil {
		return res
	}
	res.Type, res.Err = typecheck(res.Expr)
	return res
}

// category is "syntax", "type", or "" for success.
func (r Result) category() string {
	var se SyntaxError
	var te TypeError
	switch {
	case r.Err == nil:
		return ""
	case errors.As(r.Err, &se):
		return syntaxCategory
	case errors.As(r.Err, &te):
		return typeCategory
	default:
		panic(fmt.Sprintf("unhandled error: %T", r.Err))
	}
}

// verify compares r against the example's expectation.
// An example without one is expected to type check.
func (r Result) verify() error {
	w := r.Example.Want
	if w == nil {
		w = &Want{}
	}
	got := r.category()
	switch {
	case w.Error == "" && got != "":
		return fmt.Errorf("expected success, got %s error", got)
	case w.Error != "" && got == "":
		return fmt.Errorf("expected %s error, got type %s", w.Error, r.Type)
	case w.Error != got:
		return fmt.Errorf("expected %s error, got %s error", w.Error, got)
	}
	if got == "" {
		if w.Type != "" && w.Type != r.Type.String() {
			return fmt.Errorf("expected type %s, got %s", w.Type, r.Type)
		}
		return nil
	}
	if w.Match != "" {
		if ok, _ := regexp.MatchString(w.Match, r.Err.Error()); !ok {
			return fmt.Errorf("error %q does not match %q", r.Err, w.Match)
		}
	}
	return nil
}
