package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/jsoizo/go-result/pkg/result/exhaustive"
)

func main() {
	singlechecker.Main(exhaustive.Analyzer)
}
