// SPDX-License-Identifier: MIT

// Command girih builds star and rosette figures, or whole designs, and
// writes them as SVG, PNG or map documents.
//
//	girih -kind star -n 8 -d 3 -s 2 -svg star.svg
//	girih -design octagons.yaml -png octagons.png -map octagons.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/girih/design"
	"github.com/katalvlaran/girih/export"
	"github.com/katalvlaran/girih/figure"
	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/mapio"
	"github.com/katalvlaran/girih/planar"
	"github.com/katalvlaran/girih/prototype"
)

// Configuration holds the parsed command line.
type Configuration struct {
	Design string

	Kind     string
	N        int
	D        float64
	Q        float64
	K        float64
	S        int
	Rotation float64
	Scale    float64
	HalfTurn bool

	Cleanse bool

	SVG    string
	PNG    string
	Map    string
	Width  int
	Height int

	Verbose bool
}

var errNoOutput = errors.New("girih: no output requested (use -svg, -png or -map)")

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseConfig parses args into a Configuration.
func parseConfig(args []string, stderr io.Writer) (*Configuration, error) {
	cfg := &Configuration{}
	fs := flag.NewFlagSet("girih", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Design, "design", "", "Path to a YAML design; overrides the figure flags")

	// Figure options
	fs.StringVar(&cfg.Kind, "kind", "star", "Figure kind: star, rosette, extended-star, extended-rosette, connect-star, connect-rosette")
	fs.IntVar(&cfg.N, "n", 8, "Symmetry order")
	fs.Float64Var(&cfg.D, "d", 3, "Star density")
	fs.Float64Var(&cfg.Q, "q", 0, "Rosette tip parameter (-3..3)")
	fs.Float64Var(&cfg.K, "k", 0, "Rosette neck parameter (-3..3)")
	fs.IntVar(&cfg.S, "s", 2, "Crossings kept per arm")
	fs.Float64Var(&cfg.Rotation, "rotation", 0, "Rotation in degrees")
	fs.Float64Var(&cfg.Scale, "scale", 1, "Scale (ignored by connect kinds)")
	fs.BoolVar(&cfg.HalfTurn, "half-turn", false, "Re-centre the unit between two tips")
	fs.BoolVar(&cfg.Cleanse, "cleanse", false, "Split crossings in the assembled map")

	// Outputs
	fs.StringVar(&cfg.SVG, "svg", "", "Write an SVG drawing to this path")
	fs.StringVar(&cfg.PNG, "png", "", "Write a PNG image to this path")
	fs.StringVar(&cfg.Map, "map", "", "Write a map document to this path")
	fs.IntVar(&cfg.Width, "width", 800, "PNG width in pixels")
	fs.IntVar(&cfg.Height, "height", 800, "PNG height in pixels")

	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.SVG == "" && cfg.PNG == "" && cfg.Map == "" {
		fs.Usage()
		return nil, errNoOutput
	}
	return cfg, nil
}

// run builds the requested prototype and writes every requested output.
// It fails when the assembled map does not verify.
func run(cfg *Configuration, stderr io.Writer) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	planar.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	log := planar.Logger()

	name, proto, err := buildPrototype(cfg)
	if err != nil {
		return err
	}
	m := proto.Map()
	log.Info("girih: map assembled", "name", name, "features", proto.Len(), "vertices", m.VertexCount(), "edges", m.EdgeCount())

	if cfg.SVG != "" {
		if err := writeFile(cfg.SVG, func(w io.Writer) error { return export.WriteSVG(w, m) }); err != nil {
			return err
		}
		log.Info("girih: wrote svg", "path", cfg.SVG)
	}
	if cfg.PNG != "" {
		if err := writeFile(cfg.PNG, func(w io.Writer) error { return export.WritePNG(w, m, cfg.Width, cfg.Height) }); err != nil {
			return err
		}
		log.Info("girih: wrote png", "path", cfg.PNG)
	}
	if cfg.Map != "" {
		doc := document(name, proto)
		if err := writeFile(cfg.Map, func(w io.Writer) error { return mapio.Encode(w, doc) }); err != nil {
			return err
		}
		log.Info("girih: wrote map document", "path", cfg.Map)
	}

	if err := m.Verify(); err != nil {
		return fmt.Errorf("girih: assembled map is not planar: %w", err)
	}
	return nil
}

// buildPrototype loads the design named by cfg or builds a single figure
// from the figure flags.
func buildPrototype(cfg *Configuration) (string, *prototype.Prototype, error) {
	if cfg.Design != "" {
		d, err := design.Load(cfg.Design)
		if err != nil {
			return "", nil, err
		}
		if cfg.Cleanse {
			d.Cleanse.Split = true
		}
		proto, err := d.Build()
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", cfg.Design, err)
		}
		return d.Name, proto, nil
	}

	kind, err := figure.ParseKind(cfg.Kind)
	if err != nil {
		return "", nil, err
	}
	params := figure.Params{
		Kind: kind, N: cfg.N, D: cfg.D, Q: cfg.Q, K: cfg.K, S: cfg.S,
		Rotation: cfg.Rotation, Scale: cfg.Scale, HalfTurn: cfg.HalfTurn,
	}
	var opts []prototype.Option
	if cfg.Cleanse {
		opts = append(opts, prototype.WithCleanse(planar.CleanseSplit, figure.DefaultSensitivity))
	}
	proto := prototype.New(opts...)
	f := figure.New(nil, params)
	if _, err := proto.AddFeature(f); err != nil {
		return "", nil, err
	}
	return f.String(), proto, nil
}

// document records every feature of proto, sharing one map per figure.
func document(name string, proto *prototype.Prototype) *mapio.Document {
	w := mapio.NewWriter(name)
	for _, feat := range proto.Features() {
		placements := feat.Placements
		if len(placements) == 0 {
			placements = []geometry.Transform{geometry.Identity()}
		}
		w.AddFigure(feat.Figure.Kind().String(), feat.Figure.String(), feat.Figure.FigureMap(), placements...)
	}
	return w.Document()
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("girih: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("girih: %w", cerr)
		}
	}()
	return write(f)
}
