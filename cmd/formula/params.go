package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zephyrtronium/formula"
	"gopkg.in/yaml.v3"
)

// addParamFlags adds the flags that bind parameter values.
func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("param", "p", nil, "name=value parameter definition (any number of times)")
	cmd.Flags().String("params", "", "YAML file mapping parameter names to values")
}

// loadParams collects the parameter values given by flags. Values from
// --param override those from the --params file.
func loadParams(cmd *cobra.Command) (*formula.Params, error) {
	p := formula.NewParams()
	if name := GetString(cmd, "params"); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := decodeParams(f, p); err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}
	for _, s := range GetStringArray(cmd, "param") {
		if err := setParam(p, s); err != nil {
			return nil, err
		}
	}
	log.WithField("params", p).Debug("loaded parameters")
	return p, nil
}

// setParam binds a parameter from a definition like "a=0.5".
func setParam(p *formula.Params, def string) error {
	name, val, ok := strings.Cut(def, "=")
	if !ok {
		return fmt.Errorf(`parameter definitions must be "name=value", not %q`, def)
	}
	name = strings.TrimSpace(name)
	if err := checkName(name); err != nil {
		return err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	p.Set(name[0], v)
	return nil
}

// decodeParams binds parameters from a YAML mapping of names to numbers. An
// empty document binds nothing.
func decodeParams(r io.Reader, p *formula.Params) error {
	var m map[string]float64
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := checkName(name); err != nil {
			return err
		}
		p.Set(name[0], m[name])
	}
	return nil
}

func checkName(name string) error {
	if len(name) != 1 || !formula.IsParamName(name[0]) {
		return fmt.Errorf("invalid parameter name %q: must be one of %s", name, formula.ParamNames)
	}
	return nil
}
