// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lplab/lp"
)

// Error codes reported by the loader and the solve command.
const (
	ErrCodeNotFound = "E001"
	ErrCodeParse    = "E002"
	ErrCodeInvalid  = "E003"
	ErrCodeNoOptima = "E004"
	ErrCodeGeneric  = "E099"
)

// LoadError is a problem-file failure with a stable code.
type LoadError struct {
	Code    string
	Message string
	Line    int // 1-based YAML line, 0 when unknown
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// problemDoc is the YAML shape of a problem file:
//
//	type: max
//	objective: [3, 5]
//	constraints:
//	  - coefficients: [1, 0]
//	    relation: "<="
//	    rhs: 4
type problemDoc struct {
	Type          string          `yaml:"type"`
	Objective     []float64       `yaml:"objective"`
	ObjectiveSign string          `yaml:"objective_sign"`
	Constraints   []constraintDoc `yaml:"constraints"`
}

type constraintDoc struct {
	Coefficients []float64 `yaml:"coefficients"`
	Relation     string    `yaml:"relation"`
	RHS          float64   `yaml:"rhs"`
	Sign         string    `yaml:"sign"`

	line int
}

// constraintKeys are the keys accepted inside a constraint entry.
var constraintKeys = map[string]bool{
	"coefficients": true,
	"relation":     true,
	"rhs":          true,
	"sign":         true,
}

// UnmarshalYAML records the node line so errors can point at the row.
// node.Decode does not inherit KnownFields, so keys are checked here.
func (c *constraintDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for k := 0; k+1 < len(node.Content); k += 2 {
			key := node.Content[k]
			if !constraintKeys[key.Value] {
				return &LoadError{
					Code:    ErrCodeParse,
					Line:    key.Line,
					Message: fmt.Sprintf("unknown constraint key %q", key.Value),
				}
			}
		}
	}

	type plain constraintDoc
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = constraintDoc(p)
	c.line = node.Line
	return nil
}

// LoadProblemFile reads and decodes a YAML problem file.
func LoadProblemFile(path string) (lp.Problem, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return lp.Problem{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("problem file not found: %s", path)}
	}
	if err != nil {
		return lp.Problem{}, &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
	}
	return DecodeProblem(bytes.NewReader(data))
}

// DecodeProblem decodes one YAML problem document. Unknown keys are
// rejected. The result is not validated; lp.Solve does that.
func DecodeProblem(r io.Reader) (lp.Problem, error) {
	var doc problemDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return lp.Problem{}, &LoadError{Code: ErrCodeParse, Message: "empty problem file"}
		}
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return lp.Problem{}, loadErr
		}
		return lp.Problem{}, &LoadError{Code: ErrCodeParse, Message: err.Error()}
	}

	return doc.toProblem()
}

func (d problemDoc) toProblem() (lp.Problem, error) {
	p := lp.Problem{Objective: d.Objective}

	switch strings.ToLower(strings.TrimSpace(d.Type)) {
	case "max", "maximize", "":
		p.Maximize = true
	case "min", "minimize":
		p.Maximize = false
	default:
		return lp.Problem{}, &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("unknown objective type %q", d.Type)}
	}

	sign, err := parseSign(d.ObjectiveSign)
	if err != nil {
		return lp.Problem{}, &LoadError{Code: ErrCodeInvalid, Message: "objective_sign: " + err.Error()}
	}
	p.ObjectiveSign = sign

	m := len(d.Constraints)
	p.Constraints = make([][]float64, m)
	p.Relations = make([]lp.Relation, m)
	p.RHS = make([]float64, m)

	var signs []lp.Sign
	for i, c := range d.Constraints {
		rel, err := parseRelation(c.Relation)
		if err != nil {
			return lp.Problem{}, &LoadError{Code: ErrCodeInvalid, Line: c.line, Message: fmt.Sprintf("constraint %d: %v", i+1, err)}
		}
		s, err := parseSign(c.Sign)
		if err != nil {
			return lp.Problem{}, &LoadError{Code: ErrCodeInvalid, Line: c.line, Message: fmt.Sprintf("constraint %d: sign: %v", i+1, err)}
		}
		if s != lp.SignNone && signs == nil {
			signs = make([]lp.Sign, m)
		}
		if signs != nil {
			signs[i] = s
		}

		p.Constraints[i] = c.Coefficients
		p.Relations[i] = rel
		p.RHS[i] = c.RHS
	}
	p.ConstraintSigns = signs

	return p, nil
}

// parseRelation accepts ASCII and Unicode spellings of ≤, = and ≥.
// An empty relation means "<=".
func parseRelation(s string) (lp.Relation, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤", "le", "":
		return lp.LE, nil
	case "=", "==", "eq":
		return lp.EQ, nil
	case ">=", "≥", "ge":
		return lp.GE, nil
	default:
		return 0, fmt.Errorf("unknown relation %q: %w", s, lp.ErrUnknownRelation)
	}
}

func parseSign(s string) (lp.Sign, error) {
	switch lp.Sign(strings.TrimSpace(s)) {
	case lp.SignNone:
		return lp.SignNone, nil
	case lp.SignPlus:
		return lp.SignPlus, nil
	case lp.SignMinus:
		return lp.SignMinus, nil
	default:
		return lp.SignNone, fmt.Errorf("unknown sign %q", s)
	}
}
