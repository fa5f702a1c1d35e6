package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-montecarlo-raytracer/pkg/scene"
)

// ListScenes prints the built-in scenes and any scene files in --dir.
func ListScenes(ctx *cli.Context) error {
	scenes, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Type", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.DisplayName, info.Type, info.Description})
	}
	table.Render()
	return nil
}
