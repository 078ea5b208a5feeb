// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/w33/catalog"
	"github.com/katalvlaran/w33/report"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Build both realizations and run every check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			s := c.Summary()
			a.printf("%s verified on %d points and %d states\n", c.Params(), s.Points, s.States)
			a.printf("edges %d, lines %d, triangles %d (complement %d)\n",
				s.Edges, s.Lines, s.Triangles, s.ComplementTriangles)
			a.printf("bases per vertex %d, K4 components %d\n", s.BasesPerVertex, s.K4Components)
			a.printf("spectrum %v\n", c.Spectrum())
			if order := c.GroupOrder(); order != nil {
				a.printf("automorphism group order %s (base %v)\n", order, c.Chain().Base())
				r := c.Report("", false).Group
				a.printf("orbits: vertices %v, edges %v, non-edges %v\n",
					r.VertexOrbits, r.EdgeOrbits, r.NonEdgeOrbits)
			}
			return nil
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	var (
		format   string
		name     string
		detailed bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the full report as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			c, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			return report.Encode(a.out, c.Report(name, detailed), f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|yaml")
	cmd.Flags().StringVar(&name, "name", "w33", "report name")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include lines, K4 components and vertex profiles")
	return cmd
}

func newSpectrumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spectrum",
		Short: "Print eigenvalues with multiplicities and closed-walk traces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range c.Spectrum() {
				a.printf("%4d  x%d\n", e.Value, e.Multiplicity)
			}
			for k, t := range c.WalkTraces() {
				a.printf("tr(A^%d) = %g\n", k+1, t)
			}
			return nil
		},
	}
}

func newLinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "Print the 40 lines with their points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			points := c.Points()
			for _, l := range c.Lines() {
				labels := make([]string, len(l))
				for i, v := range l {
					labels[i] = points[v].String()
				}
				a.printf("%-16s %s\n", l, strings.Join(labels, " "))
			}
			return nil
		},
	}
}

func newK4Cmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "k4",
		Short: "Print the K4 outer/center components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			for _, k := range c.K4Components() {
				a.printf("%s\n", k)
			}
			return nil
		},
	}
}

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Store and read reports in the badger catalog",
	}

	var (
		name     string
		detailed bool
	)
	put := &cobra.Command{
		Use:   "put",
		Short: "Build and store a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			return a.withCatalog(func(cat *catalog.Catalog) error {
				if err := cat.Put(name, c.Report(name, detailed)); err != nil {
					return err
				}
				a.printf("stored %q\n", name)
				return nil
			})
		},
	}
	put.Flags().StringVar(&name, "name", "w33", "report name")
	put.Flags().BoolVar(&detailed, "detailed", false, "include lines, K4 components and vertex profiles")

	var format string
	get := &cobra.Command{
		Use:   "get NAME",
		Short: "Print a stored report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.withCatalog(func(cat *catalog.Catalog) error {
				r, err := cat.Get(args[0])
				if err != nil {
					return err
				}
				return report.Encode(a.out, r, f)
			})
		},
	}
	get.Flags().StringVarP(&format, "format", "f", "json", "output format: json|yaml")

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored report names",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.withCatalog(func(cat *catalog.Catalog) error {
				names, err := cat.List()
				if err != nil {
					return err
				}
				for _, n := range names {
					a.printf("%s\n", n)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(put, get, list)
	return cmd
}

// withCatalog opens the configured catalog for the duration of fn. A failed
// Close is reported, since it is where badger flushes pending writes.
func (a *app) withCatalog(fn func(*catalog.Catalog) error) (err error) {
	cat, err := catalog.Open(catalog.Opts{Path: a.cfg.Catalog.Path})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cat.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(cat)
}
