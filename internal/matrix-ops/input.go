package matrixops

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// parseNumbers parses a line of numbers separated by spaces and/or commas.
// Non-numeric tokens are ignored.
func parseNumbers(line string) []float64 {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	return nums
}

// randomMatrix fills a rows x cols matrix with uniform values in [0, scale).
func randomMatrix(rows, cols int, scale float64) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, rand.Float64()*scale)
		}
	}
	return m
}

// readDim prompts for one positive integer dimension, re-prompting until the
// input parses.
func (s *Session) readDim(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(line)
		if perr != nil {
			fmt.Fprintln(s.out, "Invalid integer. Try again.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(s.out, "Rows and columns must be positive integers. Try again.")
			continue
		}
		return n, nil
	}
}

// readMatrix interactively reads one matrix: its dimensions, then its values
// through one of three entry modes. Row-by-row is the default and the
// fallback when a pasted line does not carry the right number of values.
// The only error it returns is exhausted input.
func (s *Session) readMatrix(name string) (*mat.Dense, error) {
	rows, err := s.readDim(fmt.Sprintf("Number of rows for matrix %s: ", name))
	if err != nil {
		return nil, err
	}
	cols, err := s.readDim(fmt.Sprintf("Number of columns for matrix %s: ", name))
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(s.out, "Choose entry mode:")
	fmt.Fprintln(s.out, "  1) Enter row-by-row")
	fmt.Fprintln(s.out, "  2) Paste all numbers (space/comma separated)")
	fmt.Fprintln(s.out, "  3) Fill with random values")
	mode, err := s.readLine("Mode (1/2/3) [1]: ")
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = "1"
	}

	switch mode {
	case "3":
		line, err := s.readLine("Scale (max value) [1.0]: ")
		if err != nil {
			return nil, err
		}
		scale := 1.0
		if v, perr := strconv.ParseFloat(line, 64); perr == nil && v > 0 {
			scale = v
		}
		return randomMatrix(rows, cols, scale), nil

	case "2":
		fmt.Fprintf(s.out, "Paste %d numbers (space or comma separated), then press Enter:\n", rows*cols)
		line, err := s.readLine("")
		if err != nil {
			return nil, err
		}
		nums := parseNumbers(line)
		if len(nums) == rows*cols {
			return mat.NewDense(rows, cols, nums), nil
		}
		fmt.Fprintf(s.out, "Expected %d numbers but got %d. Falling back to row-by-row input.\n",
			rows*cols, len(nums))
	}

	return s.readRows(rows, cols)
}

// readRows reads the matrix one row per line, re-prompting any row that does
// not yield exactly cols numbers.
func (s *Session) readRows(rows, cols int) (*mat.Dense, error) {
	m := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for {
			line, err := s.readLine(fmt.Sprintf("Row %d (enter %d numbers separated by spaces or commas): ", r+1, cols))
			if err != nil {
				return nil, err
			}
			nums := parseNumbers(line)
			if len(nums) != cols {
				fmt.Fprintf(s.out, "Expected %d numbers but got %d. Try again.\n", cols, len(nums))
				continue
			}
			m.SetRow(r, nums)
			break
		}
	}
	return m, nil
}
