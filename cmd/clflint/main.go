/*
NAME
  clflint is a command-line front end for the clf module: it reads a
  CLF/CTF file, reports diagnostics, and can optionally rewrite it to a
  target dialect/version.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements clflint, a small CLI wrapped around the clf
// core's Read/Write entry points. It is ambient tooling, not part of
// the core's public contract: the core itself never touches flags,
// files, or stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/clf"
	"github.com/ausocean/clf/clfwrite"
	"github.com/ausocean/clf/ctfparse"
	"github.com/ausocean/clf/xmlsrc"
	"github.com/ausocean/utils/logging"
)

// Logging configuration, mirroring cmd/rv's fixed rotation policy.
const (
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	pkg          = "clflint: "
)

func main() {
	inPath := flag.String("in", "", "path to a .clf or .ctf file to lint")
	outPath := flag.String("out", "", "if set, rewrite the parsed ProcessList to this path")
	dialect := flag.String("dialect", "auto", "output dialect when -out is set: auto, clf, or ctf")
	logPath := flag.String("logfile", "", "if set, also log to this rotated file")
	verbose := flag.Bool("v", false, "enable debug-level logging")
	flag.Parse()

	var w io.Writer = os.Stderr
	if *logPath != "" {
		w = io.MultiWriter(w, &lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		})
	}
	level := logging.Info
	if *verbose {
		level = logging.Debug
	}
	log := logging.New(level, w, true)
	clf.Log = log

	if *inPath == "" {
		log.Error("missing -in")
		os.Exit(2)
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Error(pkg+"failed to read input", "error", err.Error())
		os.Exit(1)
	}

	pl, err := ctfparse.Read(data, xmlsrc.New, ctfparse.ReadOptions{FileName: *inPath})
	if err != nil {
		log.Error(pkg+"parse failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info(pkg+"parsed ProcessList", "id", pl.ID, "ops", len(pl.Ops))

	if *outPath == "" {
		return
	}

	var d clfwrite.Dialect
	switch *dialect {
	case "clf":
		d = clfwrite.DialectCLF
	case "ctf":
		d = clfwrite.DialectCTF
	default:
		d = clfwrite.DialectAuto
	}

	out, err := clfwrite.Write(pl, clfwrite.Options{Dialect: d})
	if err != nil {
		log.Error(pkg+"write failed", "error", err.Error())
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, out, 0644); err != nil {
		log.Error(pkg+"failed to write output", "error", err.Error())
		os.Exit(1)
	}
	log.Info(pkg+"wrote ProcessList", "path", *outPath)
	fmt.Fprintf(os.Stderr, "%d bytes written to %s\n", len(out), *outPath)
}
