// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Result is the printable form of one named operand.
type Result struct {
	Name     string      `yaml:"name"`
	Kind     string      `yaml:"kind"`
	Category string      `yaml:"category,omitempty"`
	Rows     int         `yaml:"rows,omitempty"`
	Cols     int         `yaml:"cols,omitempty"`
	Data     [][]float64 `yaml:"data,omitempty"`
	Values   []float64   `yaml:"values,omitempty"`
	Value    *float64    `yaml:"value,omitempty"`
}

// Results collects names in order; an empty list means every step target.
func (s *Session) Results(names []string) ([]Result, error) {
	if len(names) == 0 {
		names = s.targets
	}
	out := make([]Result, 0, len(names))
	for _, name := range names {
		if x, ok := s.scalars[name]; ok {
			out = append(out, Result{Name: name, Kind: "scalar", Value: &x})
			continue
		}
		op, ok := s.operands[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownOperand, "print %q", name)
		}
		r, err := op.result(name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

func (o operand) result(name string) (Result, error) {
	if o.v != nil {
		vals := make([]float64, o.v.Len())
		for i := range vals {
			x, err := o.v.At(i)
			if err != nil {
				return Result{}, err
			}
			vals[i] = x
		}

		return Result{Name: name, Kind: "vector", Category: o.v.Category().String(), Rows: len(vals), Values: vals}, nil
	}

	rows, cols := o.m.Rows(), o.m.Cols()
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		for j := range data[i] {
			x, err := o.m.At(i, j)
			if err != nil {
				return Result{}, err
			}
			data[i][j] = x
		}
	}

	return Result{Name: name, Kind: "matrix", Category: o.m.Category().String(), Rows: rows, Cols: cols, Data: data}, nil
}

// Render writes results to w in the given format.
func Render(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return errors.Wrap(err, "encode results")
		}

		return enc.Close()
	case FormatTable:
		for _, r := range results {
			if err := renderTable(w, r); err != nil {
				return err
			}
		}

		return nil
	default:
		return errors.Wrapf(ErrConfig, "format %q", format)
	}
}

func num(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

func renderTable(w io.Writer, r Result) error {
	switch r.Kind {
	case "scalar":
		_, err := fmt.Fprintf(w, "%s = %s\n\n", r.Name, num(*r.Value))
		return err
	case "vector":
		if _, err := fmt.Fprintf(w, "%s: vector[%d] %s\n", r.Name, r.Rows, r.Category); err != nil {
			return err
		}
		rows := [][]string{{"i", "value"}}
		for i, x := range r.Values {
			rows = append(rows, []string{strconv.Itoa(i), num(x)})
		}

		return printTable(w, rows)
	default:
		if _, err := fmt.Fprintf(w, "%s: matrix[%d×%d] %s\n", r.Name, r.Rows, r.Cols, r.Category); err != nil {
			return err
		}
		header := []string{""}
		for j := 0; j < r.Cols; j++ {
			header = append(header, strconv.Itoa(j))
		}
		rows := [][]string{header}
		for i, line := range r.Data {
			row := []string{strconv.Itoa(i)}
			for _, x := range line {
				row = append(row, num(x))
			}
			rows = append(rows, row)
		}

		return printTable(w, rows)
	}
}

func printTable(w io.Writer, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	_, err = fmt.Fprintln(w, s)

	return err
}
