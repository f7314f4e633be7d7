package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/elbamos/ggally/pkg/network"
)

// newInspectCmd creates the inspect command: summarize a network file
// without drawing it.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a network file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := network.ReadNetworkFile(args[0])
			if err != nil {
				return err
			}
			printInfo("%s", args[0])
			printSummary(net)
			return nil
		},
	}
}

// printSummary prints network cardinalities, the attribute surface, and
// degree statistics.
func printSummary(net *network.Network) {
	kind := "undirected"
	if net.Directed() {
		kind = "directed"
	}
	printKeyValue("type", kind)
	printKeyValue("nodes", fmt.Sprintf("%d", net.VertexCount()))
	printKeyValue("edges", fmt.Sprintf("%d", net.EdgeCount()))

	if attrs := attributeNames(net); len(attrs) > 0 {
		printKeyValue("attributes", strings.Join(attrs, ", "))
	}

	if net.VertexCount() == 0 {
		return
	}

	degrees := make([]float64, 0, net.VertexCount())
	for _, v := range net.Vertices() {
		degrees = append(degrees, float64(net.Degree(v.ID)))
	}
	minD, _ := stats.Min(stats.Float64Data(degrees))
	maxD, _ := stats.Max(stats.Float64Data(degrees))
	meanD, _ := stats.Mean(stats.Float64Data(degrees))
	printKeyValue("degree", fmt.Sprintf("min %.0f · mean %.1f · max %.0f", minD, meanD, maxD))
}

// attributeNames returns the sorted union of attribute names across all
// vertices.
func attributeNames(net *network.Network) []string {
	seen := make(map[string]bool)
	for _, v := range net.Vertices() {
		for _, name := range v.Attrs.Names() {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
