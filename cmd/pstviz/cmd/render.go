package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dcollins-dev/pst"
	"github.com/dcollins-dev/pst/dot"
	"github.com/dcollins-dev/pst/pstio"
)

var (
	outDir    string
	edgesFile string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the example control-flow graphs as region-clustered dot/SVG",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&outDir, "out", "images", "output directory for .dot/.svg files")
	renderCmd.Flags().StringVar(&edgesFile, "edges", "", "optional Names-format edge file for a third example graph")
}

type example struct {
	prefix string
	adj    *pst.Adjacency[string]
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("pstviz: creating output directory: %w", err)
	}

	examples := []example{
		{"cfg_regions", diamondExample()},
		{"cfg_regions_paper", paperFigureExample()},
	}

	if edgesFile != "" {
		f, err := os.Open(edgesFile)
		if err != nil {
			return fmt.Errorf("pstviz: opening %s: %w", edgesFile, err)
		}
		adj, err := pstio.NewText().ReadArcNames(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("pstviz: reading %s: %w", edgesFile, err)
		}
		examples = append(examples, example{"cfg_regions_custom", adj})
	}

	var written []string
	for _, ex := range examples {
		path, err := writeExample(ex)
		if err != nil {
			return err
		}
		written = append(written, path)
	}

	dotExe, err := exec.LookPath("dot")
	if err != nil {
		logger.Info("Graphviz 'dot' not found on PATH; leaving .dot files in place", "outDir", outDir)
		return nil
	}
	for _, path := range written {
		svgPath := path[:len(path)-len(filepath.Ext(path))] + ".svg"
		out, err := exec.Command(dotExe, "-Tsvg", path, "-o", svgPath).CombinedOutput()
		if err != nil {
			return fmt.Errorf("pstviz: graphviz failed on %s: %w: %s", path, err, out)
		}
		logger.Info("rendered SVG", "dot", path, "svg", svgPath)
	}
	return nil
}

func writeExample(ex example) (string, error) {
	result, err := pst.ComputePST(ex.adj, true)
	if err != nil {
		return "", fmt.Errorf("pstviz: computing PST for %s: %w", ex.prefix, err)
	}
	src, err := dot.CFGWithRegions(result, dot.IncludeSuper(true))
	if err != nil {
		return "", fmt.Errorf("pstviz: rendering %s: %w", ex.prefix, err)
	}
	path := filepath.Join(outDir, ex.prefix+".dot")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		return "", fmt.Errorf("pstviz: writing %s: %w", path, err)
	}
	logger.Info("wrote dot file", "prefix", ex.prefix, "nodes", ex.adj.Len(), "regions", len(result.Regions), "path", path)
	return path, nil
}

func diamondExample() *pst.Adjacency[string] {
	return pst.AdjacencyFromEdges([][2]string{
		{"S", "A"}, {"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "T"},
	})
}

func paperFigureExample() *pst.Adjacency[string] {
	return pst.AdjacencyFromEdges([][2]string{
		{"start", "n1"},
		{"n1", "n2"},
		{"n1", "n3"},
		{"n2", "n4"},
		{"n3", "n5"},
		{"n4", "n6"},
		{"n5", "n7"},
		{"n5", "n8"},
		{"n6", "n9"},
		{"n6", "n10"},
		{"n7", "n11"},
		{"n8", "n11"},
		{"n9", "n12"},
		{"n10", "n12"},
		{"n11", "n13"},
		{"n12", "n14"},
		{"n13", "n8"},
		{"n13", "n15"},
		{"n14", "n2"},
		{"n14", "n16"},
		{"n15", "n16"},
		{"n16", "end"},
	})
}
