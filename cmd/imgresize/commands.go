package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leeforge/imgresize/config"
	"github.com/leeforge/imgresize/errors"
	"github.com/leeforge/imgresize/geometry"
	"github.com/leeforge/imgresize/json"
	"github.com/leeforge/imgresize/logging"
	"github.com/leeforge/imgresize/media/processor"
	"github.com/leeforge/imgresize/media/storage"
	"github.com/leeforge/imgresize/resizer"
)

type globalFlags struct {
	output     string
	configFile string
	jsonOut    bool
	verbose    bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "imgresize",
		Short:         "Scale or resize a raster image",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.output, "output", "o", "", "path of the resized image (default <input>__<w>x<h>.<ext>)")
	pf.StringVar(&flags.configFile, "config", "", "config file (default ./imgresize.yaml if present)")
	pf.BoolVar(&flags.jsonOut, "json", false, "print the result as JSON")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newScaleCommand(flags), newResizeCommand(flags))
	return root
}

func newScaleCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale [flags] <input> <factor>",
		Short: "Scale width and height by the same factor",
		Example: `  imgresize scale photo.jpg 0.5
  imgresize scale --output big.png photo.jpg 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.NewInvalidSpec(fmt.Sprintf("scale factor must be a number, got %q", args[1])).
					WithDetail("scale", args[1])
			}
			return resizeImage(cmd, flags, args[0], geometry.ScaleSpec(factor))
		},
	}
	// Flags go before <input> so that a negative factor like -1 stays positional.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newResizeCommand(flags *globalFlags) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "resize <input> [--width N] [--height N]",
		Short: "Resize to a width and/or height, inferring a missing side from the aspect ratio",
		Example: `  imgresize resize photo.jpg --width 800
  imgresize resize photo.jpg --width 800 --height 600 -o out.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var w, h *int
			if cmd.Flags().Changed("width") {
				w = &width
			}
			if cmd.Flags().Changed("height") {
				h = &height
			}
			return resizeImage(cmd, flags, args[0], geometry.DimensionsSpec(w, h))
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "target width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "target height in pixels")
	return cmd
}

func resizeImage(cmd *cobra.Command, flags *globalFlags, input string, spec geometry.Spec) error {
	opts := config.DefaultOptions()
	opts.File = flags.configFile
	settings, err := config.Load(opts)
	if err != nil {
		return err
	}
	if flags.verbose {
		settings.Log.Level = "debug"
	}

	logger := logging.Init(settings.Log)
	defer func() {
		_ = logger.Sync()
		_ = logging.CloseAllWriters()
	}()

	svc := resizer.NewService(
		processor.NewNativeProcessor(processor.Filter(settings.Resample.Filter), processor.EncodeOptions{
			JPEGQuality:    settings.Encode.JPEGQuality,
			PNGCompression: settings.Encode.PNGCompression,
		}),
		storage.NewLocalProvider(settings.Output.Dir),
		logger,
		resizer.WithKeepExisting(settings.Output.KeepExisting),
	)

	result, err := svc.Run(cmd.Context(), resizer.Request{
		Input:  input,
		Spec:   spec,
		Output: flags.output,
	})
	if err != nil {
		logger.WithError(err).Debug("resize failed")
		return err
	}

	out := cmd.OutOrStdout()
	if flags.jsonOut {
		return json.NewEncoder(out).Encode(result)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
	fmt.Fprintf(out, "Path to processed image: %s\n", result.Output)
	return nil
}
