// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkgrid/builder"
	"github.com/katalvlaran/linkgrid/internal/config"
	"github.com/katalvlaran/linkgrid/linkstore"
	"github.com/katalvlaran/linkgrid/propagate"
	"github.com/katalvlaran/linkgrid/render"
)

// runOptions are the output switches of the run command.
type runOptions struct {
	before   string
	after    string
	terminal bool
	layer    int
}

// runSummary is what a run produced.
type runSummary struct {
	ID        string
	Store     *linkstore.Store
	Results   []*propagate.Result
	Corrected int
}

func (c *CLI) runCommand() *cobra.Command {
	var (
		path string
		seed int64
		opts runOptions
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build a grid and apply the scenario's deformations",
		Long: `Build a grid with seeded random colours, apply every deformation of the
scenario in order and optionally render the grid before and after.

Without --config the built-in demo scenario is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				s.Seed = seed
			}
			_, err = execute(cmd.Context(), loggerFromContext(cmd.Context()), s, opts, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "scenario file (.toml, .yaml, .yml)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the scenario colour seed")
	cmd.Flags().StringVar(&opts.before, "before", "", "save the grid before deforming (png, svg, pdf)")
	cmd.Flags().StringVar(&opts.after, "after", "", "save the grid after deforming (png, svg, pdf)")
	cmd.Flags().BoolVarP(&opts.terminal, "terminal", "t", false, "print the final positions")
	cmd.Flags().IntVar(&opts.layer, "layer", 0, "z layer shown by --terminal")

	return cmd
}

func loadScenario(path string) (config.Scenario, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// execute performs one run. Cancellation is checked between deformations.
func execute(ctx context.Context, logger *log.Logger, s config.Scenario, opts runOptions, out io.Writer) (*runSummary, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sum := &runSummary{ID: uuid.NewString()}
	logger = logger.With("run", sum.ID[:8])
	prog := newProgress(logger)

	store, err := builder.Build(s.GridSize(), builder.WithSeed(s.Seed), builder.WithRandomColors())
	if err != nil {
		return nil, err
	}
	sum.Store = store
	logger.Info("grid built", "size", s.GridSize(), "links", store.Len(), "seed", s.Seed)

	if opts.before != "" {
		if err := render.SaveImage(store, opts.before, render.WithTitle("before")); err != nil {
			return nil, err
		}
		logger.Info("saved", "image", opts.before)
	}

	eng, err := propagate.New(store, s.Model(),
		propagate.WithStep(s.Step),
		propagate.WithMaxSweeps(s.MaxSweeps),
		propagate.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	for i, d := range s.Deformations {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		res, err := eng.Deform(d.Vector(), d.Index())
		if err != nil {
			return sum, fmt.Errorf("deformation %d: %w", i, err)
		}
		sum.Results = append(sum.Results, res)
		sum.Corrected += len(res.Corrected)
		logger.Info("deformed",
			"at", d.Index(), "by", fmt.Sprintf("(%g,%g)", d.Vector().X, d.Vector().Y),
			"corrected", len(res.Corrected), "checked", res.Checked, "passes", res.Passes)
	}

	if opts.after != "" {
		if err := render.SaveImage(store, opts.after, render.WithTitle("after")); err != nil {
			return sum, err
		}
		logger.Info("saved", "image", opts.after)
	}
	if opts.terminal {
		if err := render.Terminal(out, store, opts.layer); err != nil {
			return sum, err
		}
	}

	prog.done("run complete", "deformations", len(sum.Results), "corrected", sum.Corrected)
	return sum, nil
}
