// The awaitcheck command reports discarded computation handles.
//
// Install it and run it through go vet:
//
//	go install github.com/dmitrymomot/mustawait/cmd/awaitcheck@latest
//	go vet -vettool=$(which awaitcheck) ./...
//
// It can also be invoked directly on a package pattern:
//
//	awaitcheck ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/dmitrymomot/mustawait/awaitcheck"
)

func main() {
	singlechecker.Main(awaitcheck.Analyzer)
}
