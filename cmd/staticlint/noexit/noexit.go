// Package noexit defines an analyzer reporting calls that terminate the
// process directly from main.main: os.Exit and the log.Fatal family. Such
// calls skip deferred cleanup such as closing the storage and flushing logs.
package noexit

import (
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "noexit",
	Doc:  "prohibits os.Exit and log.Fatal* in main.main",
	Run:  run,
}

var forbidden = map[string]map[string]bool{
	"os":  {"Exit": true},
	"log": {"Fatal": true, "Fatalf": true, "Fatalln": true},
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		// go test generates a main package in the build cache.
		if isGoBuildCacheFile(pass.Fset.File(file.Pos()).Name()) {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" || fn.Recv != nil || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(n ast.Node) bool {
				if _, isClosure := n.(*ast.FuncLit); isClosure {
					return false
				}

				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				if name, found := forbiddenCallee(pass, call); found {
					pass.Reportf(call.Pos(), "avoid calling %s in main.main", name)
				}

				return true
			})
		}
	}

	return nil, nil
}

func forbiddenCallee(pass *analysis.Pass, call *ast.CallExpr) (string, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return "", false
	}

	if forbidden[fn.Pkg().Path()][fn.Name()] {
		return fn.Pkg().Path() + "." + fn.Name(), true
	}

	return "", false
}

func isGoBuildCacheFile(path string) bool {
	path = filepath.ToSlash(path)
	return strings.Contains(path, "/go-build/")
}
