package exhaustive

import (
	"go/ast"
	"go/constant"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const Doc = `check that switch dispatch over a Result covers both variants

A tagless switch (or switch over the constant true) that tests a Result
value must either test IsSuccess and IsFailure for that value or carry a
default clause. Each distinct Result expression in the switch is checked
independently. Switches not touching a Result value are ignored.`

// Analyzer reports non-exhaustive variant dispatch over result.Result. Its
// name is the stable identifier for suppression tooling.
var Analyzer = &analysis.Analyzer{
	Name:     "resultcheck",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

const (
	coversSuccess = 1 << iota
	coversFailure
)

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.SwitchStmt)(nil)}, func(n ast.Node) {
		checkSwitch(pass, n.(*ast.SwitchStmt))
	})

	return nil, nil
}

func checkSwitch(pass *analysis.Pass, sw *ast.SwitchStmt) {
	// Only the match(true) forms dispatch on case conditions.
	if sw.Tag != nil && !isTrueConst(pass, sw.Tag) {
		return
	}

	coverage := map[string]int{}
	var order []string

	for _, stmt := range sw.Body.List {
		cc, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}
		if cc.List == nil {
			return // default clause: exhaustive for every discriminant
		}
		for _, cond := range cc.List {
			if isTrueConst(pass, cond) {
				return // literal catch-all arm
			}
			ast.Inspect(cond, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				if !isResultType(pass.TypesInfo.Types[sel.X].Type) {
					return true
				}

				key := types.ExprString(sel.X)
				if _, seen := coverage[key]; !seen {
					order = append(order, key)
					coverage[key] = 0
				}
				switch sel.Sel.Name {
				case "IsSuccess":
					coverage[key] |= coversSuccess
				case "IsFailure":
					coverage[key] |= coversFailure
				}
				return true
			})
		}
	}

	for _, key := range order {
		covered := coverage[key]
		var missing []string
		if covered&coversSuccess == 0 {
			missing = append(missing, "Success")
		}
		if covered&coversFailure == 0 {
			missing = append(missing, "Failure")
		}
		if len(missing) > 0 {
			pass.Reportf(sw.Pos(),
				"Match expression on Result type is not exhaustive. Missing: %s.",
				strings.Join(missing, ", "))
		}
	}
}

// isTrueConst reports whether expr is the boolean constant true.
func isTrueConst(pass *analysis.Pass, expr ast.Expr) bool {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil {
		return false
	}
	return tv.Value.Kind() == constant.Bool && constant.BoolVal(tv.Value)
}

// isResultType reports whether t is the Result named type from a package
// named result, pointers and aliases stripped.
func isResultType(t types.Type) bool {
	if t == nil {
		return false
	}
	// types.Unalias is unavailable before Go 1.22; go/types resolves
	// aliases eagerly on this toolchain, so stripping them is a no-op.
	for {
		p, ok := t.(*types.Pointer)
		if !ok {
			break
		}
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "Result" && obj.Pkg() != nil && obj.Pkg().Name() == "result"
}
