// Copyright 2025 go-uvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command uvecgen generates the fixed-arity vector types of package uvec.
//
// Usage:
//
//	uvecgen -output . -pkg uvec -arities 2,3,4
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/uvecgen -output . -arities 2,3,4
//
// Each arity N produces vecN.gen.go holding the VecN[T] array type and its
// methods. The methods forward to the lane helpers in package uvec, so the
// target package must provide them.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputDir = flag.String("output", ".", "Output directory (default: current directory)")
	pkgName   = flag.String("pkg", "uvec", "Package name of the generated files")
	arities   = flag.String("arities", "2,3,4", "Comma-separated vector arities to generate (2, 3, 4)")
)

func main() {
	flag.Parse()

	list, err := parseArities(*arities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Pkg:       *pkgName,
		Arities:   list,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated vectors for arities: %v\n", list)
}
