package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/psybercell/hub75geo/internal/config"
	"github.com/psybercell/hub75geo/internal/pattern"
	"github.com/psybercell/hub75geo/internal/scanout"
	"github.com/psybercell/hub75geo/pkg/framebuffer"
)

func main() {
	var (
		configPath  = flag.String("config", "matrix.yaml", "path to config file")
		patternName = flag.String("pattern", "grid", "test pattern: grid | bars | identify")
		svgPath     = flag.String("svg", "", "rasterize an SVG instead of a builtin pattern")
		outPath     = flag.String("out", "preview.png", "write the simulated panel output here")
		sourcePath  = flag.String("source", "", "also write the pattern before scan simulation")
		panelWidth  = flag.Int("panel-width", 64, "sub-panel width for grid/identify patterns")
		panelHeight = flag.Int("panel-height", 32, "sub-panel height for grid/identify patterns")
		dumpMap     = flag.Bool("dump-map", false, "print the pixel-address map to stdout")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
		cfg = config.Default()
	}

	geom, err := cfg.Geometry()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid matrix configuration")
	}

	log.Info().
		Int("width", geom.Width()).
		Int("height", geom.Height()).
		Int("pixels_across", geom.PixelsAcross()).
		Int("addr_lines", geom.AddrLines()).
		Int("lanes", geom.Lanes()).
		Int("map_len", len(geom.Map())).
		Int("schedules", len(geom.Schedules())).
		Int("planes", len(geom.Schedules()[0])).
		Msg("geometry built")

	if *dumpMap {
		for slot, off := range geom.Map() {
			fmt.Printf("%d %d\n", slot, off)
		}
		return
	}

	var img *image.RGBA
	switch {
	case *svgPath != "":
		img, err = pattern.SVG(*svgPath, geom.Width(), geom.Height())
		if err != nil {
			log.Fatal().Err(err).Msg("svg rasterization failed")
		}
	case *patternName == "grid":
		img = pattern.Grid(geom.Width(), geom.Height(), *panelWidth, *panelHeight)
	case *patternName == "bars":
		img = pattern.Bars(geom.Width(), geom.Height())
	case *patternName == "identify":
		// A static preview only needs the first identification frame.
		img = pattern.Identify(geom.Width(), geom.Height(), *panelWidth, *panelHeight)[0]
	default:
		log.Fatal().Str("pattern", *patternName).Msg("unknown pattern")
	}

	if *sourcePath != "" {
		if err := writePNG(*sourcePath, img); err != nil {
			log.Fatal().Err(err).Str("path", *sourcePath).Msg("failed to write pattern")
		}
		log.Info().Str("path", *sourcePath).Msg("pattern written")
	}

	fb, err := framebuffer.New(geom.Width(), geom.Height())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to allocate framebuffer")
	}
	fb.DrawImage(img)

	preview := scanout.New(geom).Render(fb)
	if err := writePNG(*outPath, preview); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("failed to write preview")
	}
	log.Info().Str("path", *outPath).Msg("simulated panel output written")
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
