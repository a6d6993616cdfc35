package config

import (
	"fmt"
	"runtime"

	"github.com/gogpu/features"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ParseHCL decodes an HCL configuration. filename is used in diagnostics.
func ParseHCL(filename string, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, EvalContext(), &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EvalContext returns the evaluation context for HCL configurations. It
// defines the host object (platform, goos, goarch, include_xcb) and the
// lower and upper string functions.
func EvalContext() *hcl.EvalContext {
	host := features.Host()
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"host": cty.ObjectVal(map[string]cty.Value{
				"platform":    cty.StringVal(host.Platform.String()),
				"goos":        cty.StringVal(runtime.GOOS),
				"goarch":      cty.StringVal(runtime.GOARCH),
				"include_xcb": cty.BoolVal(host.IncludeXCB),
			}),
		},
		Functions: map[string]function.Function{
			"lower": stdlib.LowerFunc,
			"upper": stdlib.UpperFunc,
		},
	}
}
