// Package awaitcheck defines an Analyzer that reports discarded
// computation handles.
//
// A mustawait.Future or mustawait.SharedFuture returned by a call
// carries an outcome the caller is expected to observe. Dropping the
// handle on the floor loses that outcome, including any error the
// computation would have delivered. The analyzer flags calls in
// statement position whose result includes a handle type.
//
// # Usage
//
// Run it through go vet:
//
//	go install github.com/dmitrymomot/mustawait/cmd/awaitcheck@latest
//	go vet -vettool=$(which awaitcheck) ./...
//
// Assigning the handle to the blank identifier is the explicit way to
// acknowledge a discard and silence the report:
//
//	_ = fetch(ctx)
//
// # Checking additional types
//
// The -types flag adds fully qualified type names to the checked set,
// so the same discipline can cover handle types of other packages:
//
//	go vet -vettool=$(which awaitcheck) -awaitcheck.types=example.com/pkg.Token ./...
package awaitcheck

import (
	"go/ast"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `report discarded computation handles

A handle returned by a call represents a computation whose outcome the
caller is expected to observe by awaiting it. Calling such a function in
statement position discards the handle together with any error it would
have delivered. Assign the handle to the blank identifier to make the
discard explicit:

	_ = fetch(ctx)

The -types flag extends the checked set with additional fully qualified
type names, for example example.com/pkg.Token.`

var Analyzer = &analysis.Analyzer{
	Name:     "awaitcheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// handleTypes holds the fully qualified names of types treated as
// computation handles. The -types flag adds to the defaults.
var handleTypes = stringSet{
	"github.com/dmitrymomot/mustawait.Future":       true,
	"github.com/dmitrymomot/mustawait.SharedFuture": true,
}

func init() {
	Analyzer.Flags.Var(handleTypes, "types", "comma-separated fully qualified type names to check in addition to the defaults")
}

func run(pass *analysis.Pass) (any, error) {
	in := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.ExprStmt)(nil)}
	in.Preorder(nodeFilter, func(n ast.Node) {
		call, ok := ast.Unparen(n.(*ast.ExprStmt).X).(*ast.CallExpr)
		if !ok {
			return
		}
		typ := pass.TypesInfo.TypeOf(call)
		if typ == nil {
			return
		}
		if tuple, ok := typ.(*types.Tuple); ok {
			for i := range tuple.Len() {
				if name, ok := handleName(tuple.At(i).Type()); ok {
					pass.Reportf(call.Pos(), "%s result discarded; await it or assign it to _", name)
					return
				}
			}
			return
		}
		if name, ok := handleName(typ); ok {
			pass.Reportf(call.Pos(), "%s result discarded; await it or assign it to _", name)
		}
	})
	return nil, nil
}

// handleName reports whether typ is a checked handle type, looking
// through aliases and one level of pointer indirection. The returned
// name is the short pkg.Type form used in diagnostics.
func handleName(typ types.Type) (string, bool) {
	typ = types.Unalias(typ)
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(ptr.Elem())
	}
	named, ok := typ.(*types.Named)
	if !ok {
		return "", false
	}
	obj := named.Obj() // origin type name, shared by all instantiations
	pkg := obj.Pkg()
	if pkg == nil {
		return "", false
	}
	if !handleTypes[pkg.Path()+"."+obj.Name()] {
		return "", false
	}
	return pkg.Name() + "." + obj.Name(), true
}

// stringSet is a flag.Value accumulating fully qualified type names.
type stringSet map[string]bool

func (s stringSet) String() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func (s stringSet) Set(list string) error {
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			s[name] = true
		}
	}
	return nil
}
