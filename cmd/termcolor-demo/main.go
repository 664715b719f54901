// Command termcolor-demo exercises the toolkit against a live terminal:
// color palettes and gradients, every animated effect, and the static
// formatting helpers.
//
// Usage:
//
//	go run ./cmd/termcolor-demo/ [effects|colors|format]
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rusty-libraries/rusty-termcolor/color"
	"github.com/rusty-libraries/rusty-termcolor/effects"
	"github.com/rusty-libraries/rusty-termcolor/format"
	"github.com/rusty-libraries/rusty-termcolor/terminal"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "termcolor-demo",
		Short: "Terminal color and animation showcase",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runColors(cmd, args); err != nil {
				return err
			}
			if err := runEffects(cmd, args); err != nil {
				return err
			}
			return runFormat(cmd, args)
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "effects",
		Short: "Run every animated effect",
		RunE:  runEffects,
	})
	root.AddCommand(&cobra.Command{
		Use:   "colors",
		Short: "Show palettes, gradients, and quantization",
		RunE:  runColors,
	})
	root.AddCommand(&cobra.Command{
		Use:   "format",
		Short: "Show boxes, tables, banners, and centering",
		RunE:  runFormat,
	})

	return root
}

func runEffects(cmd *cobra.Command, _ []string) error {
	term := terminal.Stdout()
	term.SetTitle("termcolor-demo")
	term.ClearScreen()
	if err := term.Flush(); err != nil {
		return err
	}

	r := effects.Stdout()
	ctx := cmd.Context()
	s := effects.DefaultSettings()

	cyan := color.Cyan
	if err := r.Typewriter(ctx, "Typing things out, one character at a time...\n", s, &cyan); err != nil {
		return err
	}
	if err := r.LoadingBar(ctx, 20, s, color.Green); err != nil {
		return err
	}
	if err := r.ProgressSpinner(ctx, 30, s, color.Gold, effects.SpinnerBraille); err != nil {
		return err
	}
	wiggle := color.Orchid
	if err := r.Wiggle(ctx, "wiggle wiggle", effects.Settings{Delay: s.Delay, Iterations: 2}, &wiggle); err != nil {
		return err
	}
	green := color.Green
	if err := r.MatrixDecode(ctx, "The matrix has you.", s, &green); err != nil {
		return err
	}
	if err := r.RainbowText(ctx, "All the colors of the terminal", effects.Settings{Delay: s.Delay, Iterations: 2}); err != nil {
		return err
	}
	blue := color.DodgerBlue
	return r.SlideIn(ctx, "sliding in from the right", effects.Settings{Delay: 10 * time.Millisecond}, &blue)
}

func runColors(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "color mode: %s, color enabled: %v\n",
		terminal.DetectColorMode(), terminal.ColorEnabled(os.Stdout))

	fmt.Fprintln(out, format.Colored("named palette:", color.White))
	for _, c := range []color.Color{color.Red, color.Orange, color.Gold, color.Green, color.Cyan, color.Blue, color.Violet} {
		fmt.Fprintf(out, "%s■ %3d,%3d,%3d -> 256-color %d%s\n", c.ANSI(), c.R, c.G, c.B, c.To256(), color.Reset)
	}

	fmt.Fprintln(out, format.Fade("a smooth gradient from red to blue", color.Fade(color.Red, color.Blue, 12)))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fmt.Fprintln(out, format.Colored("a random pleasing color", color.RandomPleasing(rng)))
	return nil
}

func runFormat(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	width := terminal.New(os.Stdout).Width()

	fmt.Fprintln(out, format.Center(format.Box("boxed and centered", format.LineRounded), width))

	opts := format.DefaultTableOpts()
	opts.ColAligns = []format.Align{format.AlignLeft, format.AlignRight}
	fmt.Fprintln(out, format.Table(
		[]string{"effect", "frames"},
		[][]string{
			{"typewriter", "len(text)"},
			{"loading bar", "total"},
			{"rainbow", "iterations x 7"},
		},
		opts,
	))

	art := "  __\n (oo)\n /--\\"
	fmt.Fprintln(out, format.NewBanner(art, "terminal cow says hi", 3, format.PositionMiddle))
	return nil
}
