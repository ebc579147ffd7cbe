package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cadpath/planar"
	"github.com/tdewolff/argp"
)

type Main struct{}

type Fuse struct {
	Output string `short:"o" desc:"Output SVG filename, '-' for path data on stdout"`
	First  string `index:"0" desc:"First operand path data"`
	Second string `index:"1" desc:"Second operand path data"`
}

type Cut struct {
	Output string `short:"o" desc:"Output SVG filename, '-' for path data on stdout"`
	First  string `index:"0" desc:"First operand path data"`
	Second string `index:"1" desc:"Second operand path data"`
}

type Intersect struct {
	Output string `short:"o" desc:"Output SVG filename, '-' for path data on stdout"`
	First  string `index:"0" desc:"First operand path data"`
	Second string `index:"1" desc:"Second operand path data"`
}

type Offset struct {
	Distance float64 `short:"d" desc:"Offset distance, negative insets"`
	Join     string  `short:"j" default:"round" desc:"Line join style: round, bevel or miter"`
	Raw      bool    `desc:"Emit the raw offset without self-intersection cleanup"`
	Output   string  `short:"o" desc:"Output SVG filename, '-' for path data on stdout"`
	Input    string  `index:"0" desc:"Input path data"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Boolean and offset operations on closed SVG paths")
	root.AddCmd(&Fuse{}, "fuse", "Union of two closed paths")
	root.AddCmd(&Cut{}, "cut", "Difference of two closed paths")
	root.AddCmd(&Intersect{}, "intersect", "Intersection of two closed paths")
	root.AddCmd(&Offset{}, "offset", "Offset a closed path")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func (cmd *Fuse) Run() error {
	return runBool(planar.Fuse, cmd.First, cmd.Second, cmd.Output)
}

func (cmd *Cut) Run() error {
	return runBool(planar.Cut, cmd.First, cmd.Second, cmd.Output)
}

func (cmd *Intersect) Run() error {
	return runBool(planar.Intersect, cmd.First, cmd.Second, cmd.Output)
}

func runBool(op func(first, second *planar.Loop) planar.Shape, first, second, output string) error {
	if first == "" || second == "" {
		return argp.ShowUsage
	}
	a, err := planar.ParseLoop(first)
	if err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	b, err := planar.ParseLoop(second)
	if err != nil {
		return fmt.Errorf("second operand: %w", err)
	}
	return emit(op(a, b), output)
}

func (cmd *Offset) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	loop, err := planar.ParseLoop(cmd.Input)
	if err != nil {
		return err
	}

	var join planar.LineJoin
	switch strings.ToLower(cmd.Join) {
	case "round":
		join = planar.RoundJoin
	case "bevel":
		join = planar.BevelJoin
	case "miter":
		join = planar.MiterJoin
	default:
		return fmt.Errorf("unknown join style %q", cmd.Join)
	}

	opts := planar.OffsetOptions{LineJoin: join}
	if cmd.Raw {
		raw := planar.RawOffsets(loop, cmd.Distance, opts)
		return emit(planar.NewLoop(raw), cmd.Output)
	}
	return emit(planar.Offset(loop, cmd.Distance, opts), cmd.Output)
}

func emit(shape planar.Shape, output string) error {
	if shape == nil {
		fmt.Println("empty result")
		return nil
	}
	if output == "" || output == "-" {
		fmt.Println(planar.PathData(shape))
		return nil
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	planar.WriteSVG(f, shape)
	return nil
}
