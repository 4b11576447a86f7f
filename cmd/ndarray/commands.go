package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/ndarray"
)

// newCLI builds the root command with all subcommands attached.
func newCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "ndarray",
		Short:         "Dense vectors and matrices for Go",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDemoCmd(),
		newRandomCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ndarray %s\n", version)
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference computations and print the results",
		Args:  cobra.NoArgs,
		RunE:  demoHandler,
	}
}

func demoHandler(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	m, err := ndarray.MatrixFromInts([][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	if err != nil {
		return err
	}
	other, err := ndarray.MatrixFromInts([][]int{
		{1, 15, 14, 8},
		{17, 9, 3, 19},
		{16, 8, 19, 8},
		{16, 3, 2, 12},
	})
	if err != nil {
		return err
	}
	slog.Debug("demo operands", "a", m.Shape(), "b", other.Shape())

	product, err := m.Dot(other)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "a · b")
	renderMatrix(out, product)

	byColumn, err := m.Max(ndarray.ByColumn)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nmax(a, ByColumn)")
	renderVector(out, byColumn)

	byRow, err := m.ArgMax(ndarray.ByRow)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nargmax(a, ByRow)")
	renderVector(out, byRow)

	stacked, err := m.HStack(other)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nhstack(a, b)")
	renderMatrix(out, stacked)

	fmt.Fprintf(out, "\nsum(a) = %s  mean(a) = %s\n", formatValue(m.Sum()), formatValue(m.Mean()))
	return nil
}

func newRandomCmd() *cobra.Command {
	var (
		seed       uint32
		rows, cols int
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a seeded random matrix, or a vector when --rows is 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("random", "seed", seed, "rows", rows, "cols", cols)
			if rows == 0 {
				v, err := ndarray.RandomVector(seed, cols)
				if err != nil {
					return err
				}
				renderVector(cmd.OutOrStdout(), v)
				return nil
			}
			m, err := ndarray.RandomMatrix(seed, rows, cols)
			if err != nil {
				return err
			}
			renderMatrix(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&seed, "seed", 0, "Random seed")
	cmd.Flags().IntVar(&rows, "rows", 0, "Number of rows (0 prints a vector)")
	cmd.Flags().IntVar(&cols, "cols", 4, "Number of columns")
	return cmd
}
