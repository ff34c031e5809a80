// Package plan parses HCL generation plans. A plan file holds one or more
// labelled generation blocks, each describing a batch:
//
//	generation "baseline" {
//	  providers      = ["aws", "gcp"]
//	  profile        = "Enterprise"
//	  distribution   = "ML-Focused"
//	  rows           = 250
//	  billing_period = "2024-03"
//
//	  trend {
//	    scenario   = "seasonal"
//	    months     = 12
//	    parameters = { peakMultiplier = 3 }
//	  }
//	}
package plan

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"focusgen/core/batch"
	"focusgen/core/catalog"
	"focusgen/core/profile"
	"focusgen/core/trend"
	"focusgen/internal/errors"
)

// Plan is a parsed plan file
type Plan struct {
	File        string
	Generations []Generation
}

// Generation is one generation block
type Generation struct {
	Name          string
	Providers     []catalog.Provider
	Profile       profile.Profile
	Distribution  profile.Distribution
	Rows          int
	BillingPeriod time.Time
	Currency      string
	Seed          uint64
	Trend         *trend.Options

	// Line of the block header
	Line int
}

// BatchRequest converts the block to a batch request
func (g Generation) BatchRequest() batch.Request {
	return batch.Request{
		Providers:     g.Providers,
		RowCount:      g.Rows,
		Profile:       g.Profile,
		Distribution:  g.Distribution,
		BillingPeriod: g.BillingPeriod,
		Currency:      g.Currency,
		Seed:          g.Seed,
		Trend:         g.Trend,
	}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "generation", LabelNames: []string{"name"}},
	},
}

var generationSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "providers", Required: true},
		{Name: "profile", Required: true},
		{Name: "distribution", Required: true},
		{Name: "rows", Required: true},
		{Name: "billing_period"},
		{Name: "currency"},
		{Name: "seed"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "trend"},
	},
}

var trendSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "scenario", Required: true},
		{Name: "months", Required: true},
		{Name: "parameters"},
	},
}

// Parser parses plan files
type Parser struct {
	parser *hclparse.Parser
}

// NewParser creates a plan parser
func NewParser() *Parser {
	return &Parser{
		parser: hclparse.NewParser(),
	}
}

// ParseFile reads and parses a plan file
func (p *Parser) ParseFile(path string) (*Plan, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read plan %s", path)
	}
	return p.Parse(src, path)
}

// Parse parses plan source. filename is used in diagnostics.
func (p *Parser) Parse(src []byte, filename string) (*Plan, error) {
	file, diags := p.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	plan := &Plan{File: filename}
	seen := make(map[string]int)
	for _, block := range content.Blocks {
		name := block.Labels[0]
		if line, dup := seen[name]; dup {
			return nil, errors.Newf(errors.TypeParsing, "generation %q already declared on line %d", name, line).
				WithContext("file", filename).
				WithContext("line", block.DefRange.Start.Line)
		}
		seen[name] = block.DefRange.Start.Line

		gen, err := parseGeneration(block)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "generation %q", name).
				WithContext("file", filename).
				WithContext("line", block.DefRange.Start.Line)
		}
		plan.Generations = append(plan.Generations, gen)
	}

	if len(plan.Generations) == 0 {
		return nil, errors.Newf(errors.TypeParsing, "plan %s has no generation blocks", filename)
	}
	return plan, nil
}

func parseGeneration(block *hcl.Block) (Generation, error) {
	gen := Generation{Name: block.Labels[0], Line: block.DefRange.Start.Line}

	content, diags := block.Body.Content(generationSchema)
	if diags.HasErrors() {
		return gen, diagError("", diags)
	}
	attrs := content.Attributes

	names, err := stringList(attrs["providers"])
	if err != nil {
		return gen, err
	}
	if len(names) == 0 {
		return gen, errors.Input("providers must not be empty")
	}
	for _, n := range names {
		p, err := catalog.ParseProvider(n)
		if err != nil {
			return gen, err
		}
		gen.Providers = append(gen.Providers, p)
	}

	s, err := stringAttr(attrs["profile"])
	if err != nil {
		return gen, err
	}
	if gen.Profile, err = profile.ParseProfile(s); err != nil {
		return gen, err
	}

	if s, err = stringAttr(attrs["distribution"]); err != nil {
		return gen, err
	}
	if gen.Distribution, err = profile.ParseDistribution(s); err != nil {
		return gen, err
	}

	if err := numberAttr(attrs["rows"], &gen.Rows); err != nil {
		return gen, err
	}
	if gen.Rows <= 0 {
		return gen, errors.Newf(errors.TypeInput, "rows must be positive, got %d", gen.Rows)
	}

	if attr, ok := attrs["billing_period"]; ok {
		s, err := stringAttr(attr)
		if err != nil {
			return gen, err
		}
		if gen.BillingPeriod, err = time.Parse("2006-01", s); err != nil {
			return gen, errors.Wrapf(errors.TypeInput, err, "billing_period must be YYYY-MM, got %q", s)
		}
	}
	if attr, ok := attrs["currency"]; ok {
		if gen.Currency, err = stringAttr(attr); err != nil {
			return gen, err
		}
		gen.Currency = strings.ToUpper(gen.Currency)
	}
	if attr, ok := attrs["seed"]; ok {
		if err := numberAttr(attr, &gen.Seed); err != nil {
			return gen, err
		}
	}

	switch len(content.Blocks) {
	case 0:
	case 1:
		opts, err := parseTrend(content.Blocks[0])
		if err != nil {
			return gen, err
		}
		gen.Trend = opts
	default:
		return gen, errors.Newf(errors.TypeInput, "only one trend block allowed, found %d", len(content.Blocks))
	}
	return gen, nil
}

func parseTrend(block *hcl.Block) (*trend.Options, error) {
	content, diags := block.Body.Content(trendSchema)
	if diags.HasErrors() {
		return nil, diagError("", diags)
	}
	attrs := content.Attributes

	name, err := stringAttr(attrs["scenario"])
	if err != nil {
		return nil, err
	}
	scenario, ok := trend.ParseScenario(name)
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "unknown trend scenario %q", name)
	}

	opts := &trend.Options{Scenario: scenario}
	if err := numberAttr(attrs["months"], &opts.Months); err != nil {
		return nil, err
	}
	if opts.Months < trend.MinMonths || opts.Months > trend.MaxMonths {
		return nil, errors.Newf(errors.TypeInput, "trend months must be between %d and %d, got %d",
			trend.MinMonths, trend.MaxMonths, opts.Months)
	}

	if attr, ok := attrs["parameters"]; ok {
		params, err := numberMap(attr)
		if err != nil {
			return nil, err
		}
		opts.Parameters = params
	}
	return opts, nil
}

// value evaluates an attribute without variables or functions
func value(attr *hcl.Attribute) (cty.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diagError("", diags)
	}
	if val.IsNull() {
		return cty.NilVal, errors.Newf(errors.TypeInput, "%s must not be null", attr.Name)
	}
	return val, nil
}

func stringAttr(attr *hcl.Attribute) (string, error) {
	val, err := value(attr)
	if err != nil {
		return "", err
	}
	if val.Type() != cty.String {
		return "", errors.Newf(errors.TypeInput, "%s must be a string", attr.Name)
	}
	return val.AsString(), nil
}

func numberAttr(attr *hcl.Attribute, target any) error {
	val, err := value(attr)
	if err != nil {
		return err
	}
	if val.Type() != cty.Number {
		return errors.Newf(errors.TypeInput, "%s must be a number", attr.Name)
	}
	if err := gocty.FromCtyValue(val, target); err != nil {
		return errors.Wrapf(errors.TypeInput, err, "invalid %s", attr.Name)
	}
	return nil
}

func stringList(attr *hcl.Attribute) ([]string, error) {
	val, err := value(attr)
	if err != nil {
		return nil, err
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		return nil, errors.Newf(errors.TypeInput, "%s must be a list of strings", attr.Name)
	}
	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() || v.Type() != cty.String {
			return nil, errors.Newf(errors.TypeInput, "%s must be a list of strings", attr.Name)
		}
		out = append(out, v.AsString())
	}
	return out, nil
}

func numberMap(attr *hcl.Attribute) (trend.Parameters, error) {
	val, err := value(attr)
	if err != nil {
		return nil, err
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, errors.Newf(errors.TypeInput, "%s must be an object of numbers", attr.Name)
	}
	out := make(trend.Parameters)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		key := k.AsString()
		if v.IsNull() || v.Type() != cty.Number {
			return nil, errors.Newf(errors.TypeInput, "%s.%s must be a number", attr.Name, key)
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, errors.Wrapf(errors.TypeInput, err, "invalid %s.%s", attr.Name, key)
		}
		out[key] = f
	}
	return out, nil
}

// diagError flattens error diagnostics into one parsing error
func diagError(filename string, diags hcl.Diagnostics) error {
	var msgs []string
	line := 0
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		msg := d.Summary
		if d.Detail != "" {
			msg += ": " + d.Detail
		}
		if d.Subject != nil {
			if line == 0 {
				line = d.Subject.Start.Line
			}
			msg = fmt.Sprintf("%s (line %d)", msg, d.Subject.Start.Line)
		}
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)

	err := errors.New(errors.TypeParsing, strings.Join(msgs, "; "))
	if filename != "" {
		err = err.WithContext("file", filename)
	}
	if line > 0 {
		err = err.WithContext("line", line)
	}
	return err
}
