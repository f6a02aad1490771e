package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/engine/report"
	"lintang/ridecost/pkg/engine/routingalgorithm"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showDivergences int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Route every city pair with every strategy and summarise where company and driver disagree",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVar(&showDivergences, "show", 10, "number of company/driver divergences to print")
}

func runReport(cmd *cobra.Command, args []string) error {
	graph, err := loadGraph()
	if err != nil {
		return err
	}
	rt := routingalgorithm.NewRouteAlgorithm(graph)
	strategies := costfunction.Strategies()

	bar := progressbar.NewOptions(report.Steps(graph, strategies),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/1][reset] routing every city pair..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	comparison, err := report.Build(cmd.Context(), rt, strategies, numWorkers, func() {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()
	logger.Info("report done", zap.Int("pairs", comparison.Pairs), zap.Int("divergences", len(comparison.Divergences)))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n%d ordered city pairs\n\n", comparison.Pairs)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tREACHABLE\tMEAN COST\tMEAN HOPS")
	for _, s := range comparison.Summaries {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.2f\n", s.Strategy, s.Reachable, s.MeanCost, s.MeanHops)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\ncompany and driver routes differ on %d pairs\n", len(comparison.Divergences))
	for i, d := range comparison.Divergences {
		if i >= showDivergences {
			break
		}
		fmt.Fprintf(w, "  %s -> %s\n    company %s: %s\n    driver  %s: %s\n", d.From, d.To,
			formatCost(d.CompanyCost), strings.Join(d.CompanyPath, " -> "),
			formatCost(d.DriverCost), strings.Join(d.DriverPath, " -> "))
	}
	return nil
}
