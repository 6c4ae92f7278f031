package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/duopath/builder"
	"github.com/katalvlaran/duopath/instance"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		kind              string
		n, n2, rows, cols int
		deg               int
		p                 float64
		d, t              int
		seed              int64
		relabel           bool
		out               string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random instance over a generated graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var con builder.Constructor
			switch kind {
			case "path":
				con = builder.Path(n)
			case "cycle":
				con = builder.Cycle(n)
			case "grid":
				con = builder.Grid(rows, cols)
			case "random":
				con = builder.RandomSparse(n, p)
			case "regular":
				con = builder.RandomRegular(n, deg)
			case "star":
				con = builder.Star(n)
			case "wheel":
				con = builder.Wheel(n)
			case "complete":
				con = builder.Complete(n)
			case "bipartite":
				con = builder.CompleteBipartite(n, n2)
			default:
				return fmt.Errorf("unknown graph kind %q", kind)
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithContext(cmd.Context())}
			if relabel {
				opts = append(opts, builder.WithRelabel())
			}
			g, err := builder.BuildGraph(opts, con)
			if err != nil {
				return err
			}
			in, err := builder.RandomInstance(filepath.Base(out), g, d, t, opts...)
			if err != nil {
				return err
			}
			if err = instance.WriteFile(out, in); err != nil {
				return err
			}
			a.logger.Info("instance written", "path", out, "kind", kind, "n", in.N, "m", in.M, "seed", seed)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&kind, "kind", "grid", "graph family: path, cycle, grid, random, regular, star, wheel, complete, bipartite")
	f.IntVar(&n, "n", 10, "vertices (path, cycle, random, regular, star, wheel, complete), first side (bipartite)")
	f.IntVar(&n2, "n2", 5, "second side (bipartite)")
	f.IntVar(&rows, "rows", 4, "grid rows")
	f.IntVar(&cols, "cols", 4, "grid columns")
	f.IntVar(&deg, "degree", 3, "vertex degree (regular)")
	f.Float64Var(&p, "p", 0.2, "edge probability (random)")
	f.IntVar(&d, "d", 1, "safety threshold D")
	f.IntVar(&t, "t", 50, "step budget T")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.BoolVar(&relabel, "relabel", false, "shuffle vertex labels")
	f.StringVar(&out, "out", "instance.in", "output file")

	return cmd
}
