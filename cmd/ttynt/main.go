package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/kryksyh/ttynt/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		wholeLine     bool
		caseSensitive bool
		background    bool
		legend        bool
		colorMode     string
	)
	flag.BoolVar(&wholeLine, "l", false, "color the whole line")
	flag.BoolVar(&wholeLine, "whole-line", false, "color the whole line")
	flag.BoolVar(&caseSensitive, "c", false, "case-sensitive matching")
	flag.BoolVar(&caseSensitive, "case-sensitive", false, "case-sensitive matching")
	flag.BoolVar(&background, "b", false, "color the background instead of the foreground")
	flag.BoolVar(&background, "background", false, "color the background instead of the foreground")
	flag.BoolVar(&legend, "legend", false, "print the pattern-to-color key to stderr before processing")
	flag.StringVar(&colorMode, "color", "auto", "when to color output: auto, always, or never")
	flag.Usage = usage
	flag.Parse()

	profile, err := colorProfile(colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ttynt: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		Patterns:      flag.Args(),
		WholeLine:     wholeLine,
		CaseSensitive: caseSensitive,
		Background:    background,
		Legend:        legend,
		Profile:       profile,
	}
	if err := app.Run(ctx, opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "ttynt: %v\n", err)
		return 1
	}
	return 0
}

func colorProfile(mode string) (termenv.Profile, error) {
	switch mode {
	case "never":
		return termenv.Ascii, nil
	case "always":
		return termenv.ANSI256, nil
	case "auto":
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return termenv.ColorProfile(), nil
		}
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("invalid --color mode %q (want auto, always, or never)", mode)
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: ttynt [flags] pattern [pattern ...]\n\n")
	fmt.Fprintf(out, "Reads lines from standard input and writes them to standard output\n")
	fmt.Fprintf(out, "with regular-expression matches colorized. Each pattern gets its own\n")
	fmt.Fprintf(out, "color from a fixed palette.\n\n")
	flag.PrintDefaults()
}
