// Command gridmesh builds the mesh for a line of text on a character grid
// and prints what a renderer would upload.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/gridmesh"
	"github.com/gogpu/gridmesh/gpumesh"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("gridmesh", flag.ContinueOnError)
	var (
		width      = fs.Int("width", 800, "screen width in pixels")
		height     = fs.Int("height", 600, "screen height in pixels")
		scale      = fs.Int("scale", 1, "integer glyph scale")
		atlasCols  = fs.Int("atlas-cols", 16, "atlas width in cells")
		atlasRows  = fs.Int("atlas-rows", 16, "atlas height in cells")
		col        = fs.Int("col", 0, "starting column")
		row        = fs.Int("row", 0, "starting row")
		background = fs.Bool("background", true, "emit the background plane")
		shader     = fs.Bool("shader", false, "compile the grid shader and report its size")
		verbose    = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		gridmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		text = "hello, world"
	}

	cell, err := gridmesh.CellSizeFromFace(basicfont.Face7x13)
	if err != nil {
		return fmt.Errorf("failed to size cells: %w", err)
	}

	opts := []gridmesh.Option{gridmesh.WithScale(*scale)}
	if *background {
		opts = append(opts, gridmesh.WithBackground())
	}
	b, err := gridmesh.New(
		gridmesh.Size{Width: *width, Height: *height},
		gridmesh.Size{Width: cell.Width * *atlasCols, Height: cell.Height * *atlasRows},
		cell,
		opts...,
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	frame := b.NewFrame()
	placed := b.PlaceText(gridmesh.Cell{Col: *col, Row: *row}, text, gridmesh.Style{
		Foreground: gridmesh.White,
		Background: gridmesh.Black,
	})
	frame.AddRun(placed)

	batches, err := gpumesh.Pack(frame.Meshes()...)
	if err != nil {
		return fmt.Errorf("failed to pack: %w", err)
	}

	report(w, b, frame, placed, batches)

	if *shader {
		code, err := gpumesh.CompileShader()
		if err != nil {
			return fmt.Errorf("failed to compile shader: %w", err)
		}
		fmt.Fprintf(w, "shader:  %d SPIR-V words\n", len(code))
	}
	return nil
}

func report(w io.Writer, b *gridmesh.Builder, frame *gridmesh.Frame, run gridmesh.Run, batches []gpumesh.Batch) {
	grid := b.TerminalGridSize()
	atlas := b.AtlasGridSize()
	glyph := b.ScaledGlyphSize()

	fmt.Fprintf(w, "grid:    %dx%d cells of %dx%d px\n", grid.Width, grid.Height, glyph.Width, glyph.Height)
	fmt.Fprintf(w, "atlas:   %dx%d cells\n", atlas.Width, atlas.Height)
	fmt.Fprintf(w, "lattice: %d vertices, %d uvs\n", len(frame.Glyphs.Vertices), len(frame.Glyphs.UVs))
	end := b.CellAt(run.End)
	fmt.Fprintf(w, "text:    %d faces, %d skipped, cursor at (%d,%d)\n", len(run.Faces), run.Skipped, end.Col, end.Row)
	for _, batch := range batches {
		fmt.Fprintf(w, "batch:   layer %d, %d triangles, %d bytes\n", batch.Layer, batch.Triangles(), len(batch.Bytes()))
	}
}
