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
	"fmt"
	"strconv"
	"strings"
)

// laneNames are the component names in index order.
var laneNames = []string{"X", "Y", "Z", "W"}

// LaneInfo describes one named lane of a generated vector.
type LaneInfo struct {
	Field string // accessor name, e.g. "X"
	Param string // constructor parameter, e.g. "x"
	Index int
}

// OpInfo describes a wrapping lane operation emitted in all four forms
// (pure, pure scalar, assign, scalar assign).
type OpInfo struct {
	Name   string // method name, e.g. "Add"
	Sym    string // operator used in doc comments
	Helper string // lane helper prefix in package uvec, e.g. "add"
}

var wrappingOps = []OpInfo{
	{Name: "Add", Sym: "+", Helper: "add"},
	{Name: "Sub", Sym: "-", Helper: "sub"},
	{Name: "Mul", Sym: "*", Helper: "mul"},
}

// Arity holds everything the vector template needs for one lane count.
type Arity struct {
	N     int
	Last  int
	Word  string
	Pkg   string
	Lanes []LaneInfo
	Ops   []OpInfo
}

// Params returns the constructor parameter list without types, e.g. "x, y".
func (a Arity) Params() string {
	names := make([]string, len(a.Lanes))
	for i, l := range a.Lanes {
		names[i] = l.Param
	}
	return strings.Join(names, ", ")
}

// ParamDecl returns the typed constructor parameter list, e.g. "x, y T".
func (a Arity) ParamDecl() string {
	return a.Params() + " T"
}

// GetArity returns the template data for a vector with n lanes.
func GetArity(n int, pkg string) (Arity, error) {
	words := map[int]string{2: "two", 3: "three", 4: "four"}
	word, ok := words[n]
	if !ok {
		return Arity{}, fmt.Errorf("unsupported arity: %d (valid: 2, 3, 4)", n)
	}
	lanes := make([]LaneInfo, n)
	for i := range n {
		lanes[i] = LaneInfo{
			Field: laneNames[i],
			Param: strings.ToLower(laneNames[i]),
			Index: i,
		}
	}
	return Arity{
		N:     n,
		Last:  n - 1,
		Word:  word,
		Pkg:   pkg,
		Lanes: lanes,
		Ops:   wrappingOps,
	}, nil
}

// parseArities parses a comma-separated arity list such as "2,3,4".
func parseArities(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid arity %q: %w", p, err)
		}
		result = append(result, n)
	}
	return result, nil
}
