// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkgrid/internal/config"
)

func (c *CLI) validateCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := config.Load(path)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("scenario loaded", "path", path)
			return describe(cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "scenario file (.toml, .yaml, .yml)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// describe prints a human summary of s.
func describe(w io.Writer, s config.Scenario) error {
	m := s.Model()
	size := s.GridSize()
	_, err := fmt.Fprintf(w,
		"grid %dx%dx%d (%d links)\nwindow min (%g,%g,%g) max (%g,%g,%g)\nstep %g, max sweeps %d, seed %d\ndeformations: %d\n",
		size.X, size.Y, size.Z, size.Volume(),
		m.Min.X, m.Min.Y, m.Min.Z, m.Max.X, m.Max.Y, m.Max.Z,
		s.Step, s.MaxSweeps, s.Seed, len(s.Deformations))
	if err != nil {
		return err
	}
	for i, d := range s.Deformations {
		v := d.Vector()
		if _, err := fmt.Fprintf(w, "  %d: (%g,%g) at %v\n", i, v.X, v.Y, d.Index()); err != nil {
			return err
		}
	}

	return nil
}
