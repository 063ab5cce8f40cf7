package cmd

import (
	"fmt"

	"github.com/go-drift/fresco/cmd/fresco/internal/scene"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Rasterize a scene to a PNG image",
		Long: `Render loads a YAML scene description, builds and lays out its render
tree, runs a paint pass, and rasterizes the result to a PNG file.`,
		Usage: "fresco render <scene.yaml> [-o output.png]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	input := ""
	output := "scene.png"
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", args[i])
			}
			i++
			output = args[i]
		default:
			if input != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			input = args[i]
		}
	}
	if input == "" {
		return fmt.Errorf("render requires a scene file")
	}

	s, err := scene.Load(input)
	if err != nil {
		return err
	}
	if err := s.Rasterize(output); err != nil {
		return err
	}
	fmt.Printf("Rendered %s (%dx%d) to %s\n", input, s.Width, s.Height, output)
	return nil
}
