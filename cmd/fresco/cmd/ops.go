package cmd

import (
	"fmt"

	"github.com/go-drift/fresco/cmd/fresco/internal/scene"
)

func init() {
	RegisterCommand(&Command{
		Name:  "ops",
		Short: "Print the drawing operations a scene records",
		Long: `Ops loads a YAML scene description, runs a paint pass over its render
tree into a recording canvas, and prints the recorded display list one
operation per line. Useful for debugging scene files without rasterizing.`,
		Usage: "fresco ops <scene.yaml>",
		Run:   runOps,
	})
}

func runOps(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("ops requires exactly one scene file")
	}

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	list, err := s.Record()
	if err != nil {
		return err
	}
	fmt.Printf("# %s: %d ops\n", args[0], list.OpCount())
	fmt.Print(list.String())
	return nil
}
