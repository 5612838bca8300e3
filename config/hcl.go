package config

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

func loadHCL(path string, vars map[string]string) (*Config, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(b, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", path, diags)
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, evalContext(vars), &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %w", path, diags)
	}
	return &cfg, nil
}

// evalContext exposes vars as the var object.
func evalContext(vars map[string]string) *hcl.EvalContext {
	attrs := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		if n, err := strconv.Atoi(v); err == nil {
			attrs[k] = cty.NumberIntVal(int64(n))
			continue
		}
		attrs[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(attrs),
		},
	}
}
