package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/experiment"
	"lintang/ridecost/pkg/engine/routingalgorithm"
	"lintang/ridecost/pkg/guidance"
	"lintang/ridecost/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var strategyName string

var routeCmd = &cobra.Command{
	Use:   "route <start> <target>",
	Short: "Cheapest route between two cities for one cost strategy",
	Example: `  ridecost route Minneapolis Northfield --strategy driver
  ridecost route "St Paul" Hastings --strategy fatigue`,
	Args: cobra.ExactArgs(2),
	RunE: runRoute,
}

var compareCmd = &cobra.Command{
	Use:   "compare <start> <target>",
	Short: "Run every cost strategy for the same query",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

var subsidyCmd = &cobra.Command{
	Use:   "subsidy [start] [target]",
	Short: "Show dijkstra missing a cheaper route when Lakeville -> Northfield pays the driver",
	Long: `Runs plain dijkstra with the driver cost, except that Lakeville -> Northfield
is worth -100. Defaults to Minneapolis -> Shakopee, where the search settles
Shakopee long before the subsidy is reachable.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runSubsidy,
}

func init() {
	routeCmd.Flags().StringVarP(&strategyName, "strategy", "s", "company",
		"cost strategy: company, driver, fairness, weather, fatigue, subsidy")
}

func formatCost(cost float64) string {
	return fmt.Sprintf("%.4f", util.RoundFloat(cost, 4))
}

func printRoute(w io.Writer, strategy costfunction.Strategy, res routingalgorithm.Result) error {
	if !res.Found() {
		fmt.Fprintf(w, "%s: unreachable\n", strategy)
		return nil
	}
	fmt.Fprintf(w, "%s: %s\n", strategy, strings.Join(res.PathIDs(), " -> "))
	fmt.Fprintf(w, "total cost: %s\n\n", formatCost(res.Cost))

	itinerary, err := guidance.NewItinerary(res.Path, strategy)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tDISTANCE\tCOST\tLONG\tWEATHER")
	for _, leg := range itinerary.Legs {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%t\t%s\n", leg.From, leg.To, leg.Distance, formatCost(leg.Cost), leg.LongDrive, leg.Weather)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, ins := range itinerary.Instructions {
		fmt.Fprintf(w, "  - %s\n", ins.Instruction)
	}
	fmt.Fprintf(w, "polyline: %s\n", itinerary.Polyline)
	return nil
}

func runRoute(cmd *cobra.Command, args []string) error {
	strategy, err := costfunction.ParseStrategy(strategyName)
	if err != nil {
		return err
	}
	graph, err := loadGraph()
	if err != nil {
		return err
	}
	rt := routingalgorithm.NewRouteAlgorithm(graph)
	res, err := rt.Route(args[0], args[1], strategy)
	if err != nil {
		return err
	}
	logger.Debug("route computed", zap.String("start", args[0]), zap.String("target", args[1]),
		zap.Stringer("strategy", strategy), zap.Float64("cost", res.Cost))
	return printRoute(cmd.OutOrStdout(), strategy, res)
}

func runCompare(cmd *cobra.Command, args []string) error {
	graph, err := loadGraph()
	if err != nil {
		return err
	}
	rt := routingalgorithm.NewRouteAlgorithm(graph)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tCOST\tPATH")
	for _, strategy := range costfunction.Strategies() {
		res, err := rt.Route(args[0], args[1], strategy)
		if err != nil {
			return err
		}
		if !res.Found() {
			fmt.Fprintf(tw, "%s\t-\tunreachable\n", strategy)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", strategy, formatCost(res.Cost), strings.Join(res.PathIDs(), " -> "))
	}
	return tw.Flush()
}

func printSummary(w io.Writer, label string, report experiment.Report, res routingalgorithm.Result) {
	if !res.Found() {
		fmt.Fprintf(w, "%-11s unreachable\n", label)
		return
	}
	via := ""
	if report.UsesSubsidy(res.Path) {
		via = " (uses subsidy)"
	}
	fmt.Fprintf(w, "%-11s %10s  %s%s\n", label, formatCost(res.Cost), strings.Join(datastructure.PathIDs(res.Path), " -> "), via)
}

func runSubsidy(cmd *cobra.Command, args []string) error {
	sc := experiment.DefaultScenario
	if len(args) == 2 {
		sc = experiment.NorthfieldSubsidy(args[0], args[1])
	} else if len(args) == 1 {
		return fmt.Errorf("subsidy needs both start and target, or neither")
	}

	graph, err := loadGraph()
	if err != nil {
		return err
	}
	report, err := experiment.Run(routingalgorithm.NewRouteAlgorithm(graph), sc)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "subsidy %s -> %s = %.2f, query %s -> %s\n\n", sc.SubsidyFrom, sc.SubsidyTo, sc.SubsidyAmount, sc.Start, sc.Target)
	printSummary(w, "regular", report, report.Regular)
	printSummary(w, "subsidized", report, report.Subsidized)
	printSummary(w, "witness", report, report.Witness)
	fmt.Fprintln(w)
	fmt.Fprintln(w, subsidyVerdict(report))
	return nil
}

func subsidyVerdict(report experiment.Report) string {
	sc := report.Scenario
	switch {
	case !report.Witness.Found():
		return fmt.Sprintf("no simple route from %s to %s crosses %s -> %s", sc.Start, sc.Target, sc.SubsidyFrom, sc.SubsidyTo)
	case report.Missed():
		return "dijkstra missed the cheaper route through the negative edge"
	default:
		return "dijkstra answer matches the best route through the subsidy"
	}
}
