package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/ironsheep/image-transform/internal/imageio"
	"github.com/ironsheep/image-transform/internal/luminance"
	"github.com/ironsheep/image-transform/internal/stylize"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	input, output string

	halftone, dither, posterize bool

	dotSize   int
	scale     int
	threshold int
	fill      float64
	antialias bool

	ink, paper string
	weighting  string
	workers    int

	version bool
}

func newFlagSet(o *options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("imgtransform", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.StringVarP(&o.input, "input", "i", "", "source image `path`")
	fs.StringVarP(&o.output, "output", "o", "", "destination image `path`; format follows the extension")

	fs.BoolVar(&o.halftone, "halftone", false, "render as a grid of dots")
	fs.BoolVar(&o.dither, "dither", false, "render with 8x8 ordered dithering")
	fs.BoolVar(&o.posterize, "posterize", false, "render with a single threshold")

	fs.IntVar(&o.dotSize, "dot-size", stylize.DefaultDotSize, "halftone cell size in source pixels")
	fs.IntVar(&o.scale, "scale", stylize.DefaultScale, "halftone output magnification")
	fs.Float64Var(&o.fill, "fill", stylize.DefaultFillFactor, "halftone dot radius multiplier")
	fs.BoolVar(&o.antialias, "antialias", false, "draw halftone dots with smooth edges")
	fs.IntVar(&o.threshold, "threshold", stylize.DefaultThreshold, "posterize cut-off in [0, 255]")

	fs.StringVar(&o.ink, "ink", "", "ink colour (#RRGGBB, #RGB or a name); default black")
	fs.StringVar(&o.paper, "paper", "", "paper colour (#RRGGBB, #RGB or a name); default white")
	fs.StringVar(&o.weighting, "weighting", "perceptual", "grayscale conversion: perceptual or average")
	fs.IntVar(&o.workers, "workers", 0, "row bands processed concurrently; 0 uses all CPUs")

	fs.BoolVarP(&o.version, "version", "v", false, "print version information")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "imgtransform - two-tone halftone, dither and posterize rendering")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: imgtransform -i INPUT -o OUTPUT (--halftone | --dither | --posterize) [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Environment variables:")
		fmt.Fprintln(stderr, "  IMGTRANSFORM_LOG_LEVEL=debug    Enable debug logging")
	}
	return fs
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var o options
	fs := newFlagSet(&o, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if o.version {
		fmt.Fprintf(stdout, "imgtransform %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}

	debug := os.Getenv("IMGTRANSFORM_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("imgtransform v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		stylize.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer stylize.SetLogger(nil)
	}

	mode, err := transform(o, debug)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%s image saved to %s\n", mode, o.output)
	return 0
}

// modeName returns the single selected mode, or an error when none or more
// than one was given.
func (o options) modeName() (string, error) {
	var modes []string
	if o.halftone {
		modes = append(modes, "Halftone")
	}
	if o.dither {
		modes = append(modes, "Dither")
	}
	if o.posterize {
		modes = append(modes, "Posterize")
	}

	switch len(modes) {
	case 0:
		return "", errors.New("one of --halftone, --dither or --posterize is required")
	case 1:
		return modes[0], nil
	default:
		return "", fmt.Errorf("modes are mutually exclusive: --%s", strings.ToLower(strings.Join(modes, ", --")))
	}
}

// transform validates o, renders the selected mode and saves the result.
// It returns the display name of the mode.
func transform(o options, debug bool) (string, error) {
	mode, err := o.modeName()
	if err != nil {
		return "", err
	}
	if o.input == "" {
		return "", errors.New("input path is required (-i)")
	}
	if o.output == "" {
		return "", errors.New("output path is required (-o)")
	}
	if _, err := os.Stat(o.input); err != nil {
		return "", fmt.Errorf("input file not found: %s", o.input)
	}

	duo, err := stylize.ParseDuotone(o.ink, o.paper)
	if err != nil {
		return "", err
	}
	weighting, err := luminance.ParseWeighting(o.weighting)
	if err != nil {
		return "", err
	}

	// Options are checked before decoding so a bad flag fails fast.
	var render func(*luminance.Buffer) (image.Image, error)
	switch mode {
	case "Halftone":
		opts := stylize.HalftoneOptions{
			DotSize:    o.dotSize,
			Scale:      o.scale,
			FillFactor: o.fill,
			Antialias:  o.antialias,
			Duotone:    duo,
			Workers:    o.workers,
		}
		if err := opts.Validate(); err != nil {
			return "", err
		}
		render = func(buf *luminance.Buffer) (image.Image, error) { return stylize.Halftone(buf, opts) }
	case "Dither":
		opts := stylize.DitherOptions{Duotone: duo, Workers: o.workers}
		render = func(buf *luminance.Buffer) (image.Image, error) { return stylize.Dither(buf, opts) }
	case "Posterize":
		opts := stylize.PosterizeOptions{Threshold: o.threshold, Duotone: duo, Workers: o.workers}
		if err := opts.Validate(); err != nil {
			return "", err
		}
		render = func(buf *luminance.Buffer) (image.Image, error) { return stylize.Posterize(buf, opts) }
	}

	start := time.Now()
	buf, err := imageio.NewImageCache().LoadLuminance(o.input, weighting)
	if err != nil {
		return "", err
	}

	img, err := render(buf)
	if err != nil {
		return "", err
	}

	if err := imageio.Save(img, o.output); err != nil {
		return "", err
	}

	if debug {
		b := img.Bounds()
		log.Printf("%s %dx%d -> %dx%d in %v", mode, buf.Width(), buf.Height(), b.Dx(), b.Dy(), time.Since(start))
	}
	return mode, nil
}
