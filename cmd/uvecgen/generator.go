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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// Generator writes one vecN.gen.go file per requested arity.
type Generator struct {
	OutputDir string
	Pkg       string
	Arities   []int
}

// Run renders and writes every requested arity.
func (g *Generator) Run() error {
	if len(g.Arities) == 0 {
		return fmt.Errorf("no arities to generate")
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, n := range g.Arities {
		a, err := GetArity(n, g.Pkg)
		if err != nil {
			return err
		}
		filename := filepath.Join(g.OutputDir, FileName(n))
		src, err := Render(filename, a)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filename, src, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	return nil
}

// FileName returns the generated file name for arity n.
func FileName(n int) string {
	return fmt.Sprintf("vec%d.gen.go", n)
}

// Render executes the vector template for a and formats the result.
// filename is only used by the import resolver and in error messages.
func Render(filename string, a Arity) ([]byte, error) {
	var buf bytes.Buffer
	if err := vecTemplate.Execute(&buf, a); err != nil {
		return nil, fmt.Errorf("render Vec%d: %w", a.N, err)
	}
	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format Vec%d: %w", a.N, err)
	}
	return formatted, nil
}
