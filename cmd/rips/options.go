package main

import (
	"errors"
	"flag"
	"io"
	"rips-service/internal/app/config"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/dto/requests"
)

type mode int

const (
	modeGenerate mode = iota
	modeValidate
	modeConvert
)

// options are the command line flags of one invocation. Flags left empty
// fall back to the internal configuration.
type options struct {
	Input           string
	Output          string
	Version         string
	From            string
	To              string
	RemissionDate   string
	RemissionNumber int
	ValidateOnly    bool
	Report          bool
	Convert         string
	BuildInfo       bool
}

func parseOptions(args []string, internalConfig *config.InternalConfig, output io.Writer) (*options, error) {
	opts := &options{}
	flags := flag.NewFlagSet("rips", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.StringVar(&opts.Input, "input", "", "JSON billing export; selects the json billing source")
	flags.StringVar(&opts.Output, "output", internalConfig.Rips.OutputDir, "output directory of the local file sink")
	flags.StringVar(&opts.Version, "version", internalConfig.Rips.DefaultVersion, "RIPS format version (3374 or 2275)")
	flags.StringVar(&opts.From, "from", "", "first day of the period, YYYY-MM-DD")
	flags.StringVar(&opts.To, "to", "", "last day of the period, YYYY-MM-DD")
	flags.StringVar(&opts.RemissionDate, "remission-date", "", "remission date, defaults to the end of the period")
	flags.IntVar(&opts.RemissionNumber, "remission-number", 1, "remission number used in file names")
	flags.BoolVar(&opts.ValidateOnly, "validate-only", false, "map and validate without writing files")
	flags.BoolVar(&opts.Report, "report", false, "also write the XLSX inspection workbook")
	flags.StringVar(&opts.Convert, "convert", "", "write the period converted to this format version")
	flags.BoolVar(&opts.BuildInfo, "build-info", false, "print the build version and exit")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if opts.ValidateOnly && opts.Convert != "" {
		return nil, errors.New("-validate-only and -convert cannot be combined")
	}
	return opts, nil
}

func (o *options) mode() mode {
	switch {
	case o.ValidateOnly:
		return modeValidate
	case o.Convert != "":
		return modeConvert
	default:
		return modeGenerate
	}
}

// billingSource is the source selected by the flags: an input file always
// means the json source.
func (o *options) billingSource(internalConfig *config.InternalConfig) string {
	if o.Input != "" {
		return constvars.RipsBillingSourceJSON
	}
	return internalConfig.Rips.BillingSource
}

func (o *options) generateRequest() *requests.GenerateRips {
	return &requests.GenerateRips{
		Version:         o.Version,
		From:            o.From,
		To:              o.To,
		RemissionDate:   o.RemissionDate,
		RemissionNumber: o.RemissionNumber,
		IncludeReport:   o.Report,
	}
}

func (o *options) validateRequest() *requests.ValidateRips {
	return &requests.ValidateRips{
		Version:       o.Version,
		From:          o.From,
		To:            o.To,
		RemissionDate: o.RemissionDate,
	}
}

func (o *options) convertRequest() *requests.ConvertRips {
	return &requests.ConvertRips{
		Version:         o.Version,
		Target:          o.Convert,
		From:            o.From,
		To:              o.To,
		RemissionDate:   o.RemissionDate,
		RemissionNumber: o.RemissionNumber,
		IncludeReport:   o.Report,
	}
}
