package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zephyrtronium/formula"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [flags]",
		Short: "Generate random formulas.",
		Long: `Generate random formulas as candidates for curve fitting. Each candidate has a
complexity chosen uniformly between --min-complexity and --complexity and is
simplified unless --simplify=false. Candidates using fewer than --min-params or
more than --max-params distinct parameters are discarded.

With --plot, each formula is printed in gnuplot syntax with its parameters
bound to random values.`,
		Args: cobra.NoArgs,
		RunE: runGen,
	}
	cmd.Flags().Int64("seed", 0, "random seed, or 0 to seed from the clock")
	cmd.Flags().Int("count", 1, "number of formulas to print")
	cmd.Flags().Int("complexity", 30, "maximum complexity")
	cmd.Flags().Int("min-complexity", 5, "minimum complexity")
	cmd.Flags().Int("min-params", 1, "minimum number of distinct parameters")
	cmd.Flags().Int("max-params", 7, "maximum number of distinct parameters")
	cmd.Flags().Int("attempts", 100000, "maximum number of candidates to generate")
	cmd.Flags().Bool("simplify", true, "simplify generated formulas")
	cmd.Flags().Bool("plot", false, "print in gnuplot syntax with random parameters")
	return cmd
}

// genConfig is the configuration of the gen command.
type genConfig struct {
	count          int
	minComplexity  int
	maxComplexity  int
	minParams      int
	maxParams      int
	attempts       int
	simplify, plot bool
}

func (cfg *genConfig) check() error {
	switch {
	case cfg.count < 0:
		return errors.New("count must not be negative")
	case cfg.minComplexity < 0 || cfg.maxComplexity < cfg.minComplexity:
		return fmt.Errorf("invalid complexity range [%d, %d]", cfg.minComplexity, cfg.maxComplexity)
	case cfg.minParams < 0 || cfg.maxParams < cfg.minParams || cfg.minParams > len(formula.ParamNames):
		return fmt.Errorf("invalid parameter count range [%d, %d]", cfg.minParams, cfg.maxParams)
	}
	return nil
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg := genConfig{
		count:         GetInt(cmd, "count"),
		minComplexity: GetInt(cmd, "min-complexity"),
		maxComplexity: GetInt(cmd, "complexity"),
		minParams:     GetInt(cmd, "min-params"),
		maxParams:     GetInt(cmd, "max-params"),
		attempts:      GetInt(cmd, "attempts"),
		simplify:      GetFlag(cmd, "simplify"),
		plot:          GetFlag(cmd, "plot"),
	}
	if err := cfg.check(); err != nil {
		return err
	}
	seed := GetInt64(cmd, "seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("generating")
	rng := rand.New(rand.NewSource(seed))
	out := cmd.OutOrStdout()
	n := 0
	for i := 0; n < cfg.count; i++ {
		if i >= cfg.attempts {
			return fmt.Errorf("only %d of %d formulas found in %d attempts", n, cfg.count, cfg.attempts)
		}
		e, ok := candidate(rng, &cfg)
		if !ok {
			continue
		}
		n++
		if cfg.plot {
			fmt.Fprintln(out, e.PlotString(formula.RandomParams(rng, e)))
		} else {
			fmt.Fprintln(out, e)
		}
	}
	return nil
}

// candidate generates one formula and reports whether it satisfies the
// parameter count bounds.
func candidate(rng *rand.Rand, cfg *genConfig) (*formula.Expr, bool) {
	c := cfg.minComplexity + rng.Intn(cfg.maxComplexity-cfg.minComplexity+1)
	e := formula.Generate(rng, c)
	if cfg.simplify {
		e = e.Simplify()
	}
	k := len(usedNames(e))
	if k < cfg.minParams || k > cfg.maxParams {
		log.WithFields(log.Fields{"formula": e, "params": k}).Debug("skipping candidate")
		return nil, false
	}
	return e, true
}
