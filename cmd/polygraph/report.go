// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polygraph/bfs"
	"github.com/katalvlaran/polygraph/matrix"
	"github.com/katalvlaran/polygraph/polygraph"
)

// report is rendered as yaml or as styled text tables.
type report interface {
	writeText(w io.Writer, s styles)
}

func (a *app) render(w io.Writer, rep report) error {
	if a.output == outputText {
		rep.writeText(w, newStyles(w))
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}

type classesReport struct {
	Family         string     `yaml:"family"`
	Ring           string     `yaml:"ring"`
	Vertices       int        `yaml:"vertices"`
	Edges          int        `yaml:"edges"`
	Components     int        `yaml:"components"`
	MaxPower       int        `yaml:"max_power"`
	FullRange      bool       `yaml:"full_range"`
	NumClasses     int        `yaml:"num_classes"`
	NumEigenvalues int        `yaml:"num_eigenvalues,omitempty"`
	Classes        [][]string `yaml:"classes"`
	Powers         []int      `yaml:"powers"`
	Reduced        [][]string `yaml:"reduced"`
}

func newClassesReport[T any](tgt *target, res *polygraph.Result[T]) (*classesReport, error) {
	comps, err := bfs.Components(tgt.graph)
	if err != nil {
		return nil, err
	}

	return &classesReport{
		Family:         tgt.name,
		Ring:           res.Adjacency.Ring().Name(),
		Vertices:       tgt.graph.VertexCount(),
		Edges:          tgt.graph.EdgeCount(),
		Components:     len(comps),
		MaxPower:       res.MaxPower,
		FullRange:      res.FullRange,
		NumClasses:     res.NumClasses,
		NumEigenvalues: res.NumEigenvalues,
		Classes:        res.Classes,
		Powers:         res.ReducedPowers(),
		Reduced:        formatRows(res.Reduced()),
	}, nil
}

func (r *classesReport) writeText(w io.Writer, s styles) {
	fmt.Fprintln(w, s.title.Render(fmt.Sprintf("%s: %d vertices, %d edges, %d classes (max power %d, %s)",
		r.Family, r.Vertices, r.Edges, r.NumClasses, r.MaxPower, r.Ring)))
	if r.Components > 1 {
		fmt.Fprintln(w, s.warn.Render(fmt.Sprintf("  disconnected: %d components", r.Components)))
	}
	for i, members := range r.Classes {
		fmt.Fprintf(w, "  class %d (%d): %s\n", i, len(members), strings.Join(members, " "))
	}
	fmt.Fprintln(w, walkTable(s, r.Powers, r.Reduced))
}

type minimalReport struct {
	Columns []int  `yaml:"columns,omitempty"`
	Powers  []int  `yaml:"powers,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

type flipFlopReport struct {
	Family     string            `yaml:"family"`
	Ring       string            `yaml:"ring"`
	NumClasses int               `yaml:"num_classes"`
	Powers     []int             `yaml:"powers"`
	Profile    polygraph.Profile `yaml:"profile"`
	Minimal    minimalReport     `yaml:"minimal"`
}

func (r *flipFlopReport) writeText(w io.Writer, s styles) {
	fmt.Fprintln(w, s.title.Render(fmt.Sprintf("%s: %d classes over powers %v (%s)", r.Family, r.NumClasses, r.Powers, r.Ring)))
	minimal := r.Minimal.Error
	if minimal == "" {
		minimal = fmt.Sprintf("powers %v", r.Minimal.Powers)
	}
	t := s.table("condition", "holds").
		Row("pairwise", s.flag(r.Profile.Pairwise)).
		Row("dominant", s.flag(r.Profile.Dominant)).
		Row("average condition", s.flag(r.Profile.AverageCondition)).
		Row("each class max", s.flag(r.Profile.EachClassMax)).
		Row("minimal subset", minimal)
	fmt.Fprintln(w, t.Render())
}

type checkReport struct {
	Family             string `yaml:"family"`
	Kind               string `yaml:"kind"`
	NumClasses         int    `yaml:"num_classes"`
	polygraph.LPResult `yaml:",inline"`
	Columns            []int     `yaml:"columns,omitempty"`
	Offsets            []float64 `yaml:"offsets,omitempty"`
	Gamma              float64   `yaml:"gamma,omitempty"`
	FinalDiagonal      []float64 `yaml:"final_diagonal,omitempty"`
}

func (r *checkReport) writeText(w io.Writer, s styles) {
	status := s.no.Render("infeasible")
	if r.Success {
		status = s.yes.Render("feasible")
	}
	fmt.Fprintf(w, "%s: %s check over %d classes is %s (%s)\n",
		s.title.Render(r.Family), r.Kind, r.NumClasses, status, r.Message)
	if !r.Success {
		return
	}
	t := s.table("power", "coefficient")
	for k, x := range r.X {
		if k < len(r.Powers) {
			t.Row(strconv.Itoa(r.Powers[k]), fmt.Sprintf("%.6g", x))
		}
	}
	if r.Kind == kindNonnegative {
		t.Row("gamma", fmt.Sprintf("%.6g", r.Gamma))
	}
	fmt.Fprintln(w, t.Render())
}

type deceptiveReport struct {
	Family               string    `yaml:"family"`
	Solved               bool      `yaml:"solved"`
	Message              string    `yaml:"message"`
	Coefficients         []float64 `yaml:"coefficients,omitempty"`
	Powers               []int     `yaml:"powers,omitempty"`
	Gamma                float64   `yaml:"gamma,omitempty"`
	MinValue             float64   `yaml:"min_value,omitempty"`
	ArgMin               float64   `yaml:"argmin,omitempty"`
	PositiveSemidefinite bool      `yaml:"positive_semidefinite"`
}

func (r *deceptiveReport) writeText(w io.Writer, s styles) {
	if !r.Solved {
		fmt.Fprintf(w, "%s: %s (%s)\n", s.title.Render(r.Family), s.no.Render("no deceptive function"), r.Message)
		return
	}
	terms := make([]string, 0, len(r.Powers)+1)
	terms = append(terms, "exp(x)")
	for k, p := range r.Powers {
		terms = append(terms, fmt.Sprintf("%.6g*x^%d", r.Coefficients[k], p))
	}
	fmt.Fprintf(w, "%s: g(x) = %s\n", s.title.Render(r.Family), strings.Join(terms, " + "))
	t := s.table("quantity", "value").
		Row("diagonal", fmt.Sprintf("%.6g", r.Gamma)).
		Row("min over spectrum", fmt.Sprintf("%.6g", r.MinValue)).
		Row("argmin", fmt.Sprintf("%.6g", r.ArgMin)).
		Row("psd", s.flag(r.PositiveSemidefinite))
	fmt.Fprintln(w, t.Render())
}

// formatRows renders matrix entries in their ring's natural notation.
func formatRows[T any](m *matrix.Dense[T]) [][]string {
	out := make([][]string, m.Rows())
	for i := range out {
		row := m.Row(i)
		out[i] = make([]string, len(row))
		for k, v := range row {
			out[i][k] = fmt.Sprint(v)
		}
	}

	return out
}

// walkTable lays out one walk-matrix row per class, one column per power.
func walkTable(s styles, powers []int, rows [][]string) string {
	headers := make([]string, 0, len(powers)+1)
	headers = append(headers, "class")
	for _, p := range powers {
		headers = append(headers, "p="+strconv.Itoa(p))
	}
	t := s.table(headers...)
	for i, row := range rows {
		t.Row(append([]string{strconv.Itoa(i)}, row...)...)
	}

	return t.Render()
}
