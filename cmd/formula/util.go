package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/formula"
)

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	exitOn(err)
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	exitOn(err)
	return r
}

// GetStringArray gets an expected repeatable string flag, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	exitOn(err)
	return r
}

// GetInt gets an expected int flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	exitOn(err)
	return r
}

// GetInt64 gets an expected int64 flag, or exits if an error arises.
func GetInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	exitOn(err)
	return r
}

// GetUint gets an expected uint flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	exitOn(err)
	return r
}

// GetFloat64Slice gets an expected repeatable float flag, or exits if an error
// arises.
func GetFloat64Slice(cmd *cobra.Command, flag string) []float64 {
	r, err := cmd.Flags().GetFloat64Slice(flag)
	exitOn(err)
	return r
}

func exitOn(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// parseFormula parses a formula given on the command line, highlighting the
// position of any syntax error on the command's error stream.
func parseFormula(cmd *cobra.Command, src string, simplify bool) (*formula.Expr, error) {
	e, err := formula.Parse(src)
	if err != nil {
		var ie formula.InputError
		if errors.As(err, &ie) {
			printSyntaxError(cmd.ErrOrStderr(), src, ie)
		}
		return nil, err
	}
	if simplify {
		e = e.Simplify()
	}
	return e, nil
}

// printSyntaxError prints the formula without whitespace and a marker under
// the error position.
func printSyntaxError(w io.Writer, src string, err formula.InputError) {
	text := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
	fmt.Fprintln(w, text)
	if err.Pos() > 0 {
		fmt.Fprint(w, strings.Repeat(" ", err.Pos()-1))
	}
	fmt.Fprintln(w, "^")
}
