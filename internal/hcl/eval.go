package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// functions is the function table available in every expression.
func functions() map[string]function.Function {
	return map[string]function.Function{
		"format":     stdlib.FormatFunc,
		"join":       stdlib.JoinFunc,
		"lower":      stdlib.LowerFunc,
		"trimsuffix": stdlib.TrimSuffixFunc,
		"upper":      stdlib.UpperFunc,
	}
}

// evalLocals evaluates every attribute of the locals blocks. Locals may call
// functions but cannot reference each other.
func evalLocals(blocks []*localsBlock) (map[string]cty.Value, error) {
	evalCtx := &hcl.EvalContext{Functions: functions()}
	locals := make(map[string]cty.Value)
	defined := make(map[string]hcl.Range)

	for _, block := range blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		for name, attr := range attrs {
			if prev, exists := defined[name]; exists {
				return nil, fmt.Errorf("%s: local %q is already defined at %s", attr.NameRange, name, prev)
			}
			val, diags := attr.Expr.Value(evalCtx)
			if diags.HasErrors() {
				return nil, diags
			}
			locals[name] = val
			defined[name] = attr.NameRange
		}
	}
	return locals, nil
}

// newEvalContext exposes locals as the `local` object.
func newEvalContext(locals map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"local": cty.ObjectVal(locals),
		},
		Functions: functions(),
	}
}

// evalString evaluates expr and converts the result to a Go string. A null
// result yields ok=false.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (s string, ok bool, err error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() {
		return "", false, nil
	}
	if !val.IsWhollyKnown() {
		return "", false, fmt.Errorf("%s: value is not known", expr.Range())
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, fmt.Errorf("%s: cannot convert %s to string: %w", expr.Range(), val.Type().FriendlyName(), err)
	}
	return converted.AsString(), true, nil
}
