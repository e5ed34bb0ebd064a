package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/closeq/cmd"
	"github.com/timtadh/closeq/config"
	"github.com/timtadh/closeq/miners"
	"github.com/timtadh/closeq/miners/bide"
	"github.com/timtadh/closeq/miners/reporters"
	"github.com/timtadh/closeq/types/seq"
)

func init() {
	cmd.UsageMessage = "closeq --help"
	cmd.ExtendedMessage = `
closeq - mine closed frequent sequential patterns (BIDE+)

$ closeq --support=<int> [Options] <input-path>

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Options
    -h, --help                view this message
    -o, --output=<path>       write the patterns to this file. Without -o the
                              patterns are logged instead of written.
    -s, --support=<int>       minimum support of patterns as an absolute
                              sequence count (required)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Input Format
    One sequence per line. Items are space separated positive integers, each
    itemset is terminated by -1, and the sequence by -2. Items in an itemset
    must be strictly ascending. Lines starting with #, % or @ are skipped.

    Example file:
        1 2 -1 3 -1 -2
        1 -1 2 3 -1 1 -1 -2

Output Format
    One closed pattern per line in the same itemset notation followed by its
    absolute support:
        1 2 -1 3 -1  #SUP: 4
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:s:",
		[]string{
			"help",
			"output=",
			"support=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	support := 0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.AssertFile(oa.Arg())
		case "-s", "--support":
			support = cmd.ParseInt(oa.Arg())
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 {
		fmt.Fprintf(os.Stderr, "Support <= 0, must be > 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Expected exactly one input path, got %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	inputPath := cmd.AssertFileOrDirExists(args[0])

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	reader, closeall := cmd.Input(inputPath)
	db, err := seq.LoadDatabase(reader)
	closeall()
	if err != nil {
		log.Fatal(err)
	}
	errors.Logf("INFO", "loaded %d sequences from %v", len(db.Sequences), inputPath)

	conf := &config.Config{
		Output:  output,
		Support: support,
	}

	var rpt miners.Reporter
	var collector *reporters.Collector
	if output == "" {
		collector = &reporters.Collector{}
		rpt = &reporters.Chain{Reporters: []miners.Reporter{
			collector,
			reporters.NewLog("INFO", "pattern"),
		}}
	} else {
		file, err := reporters.NewFile(output)
		if err != nil {
			log.Fatal(err)
		}
		rpt = file
	}

	miner := bide.NewMiner(conf)
	err = miner.Mine(db, rpt)
	if err != nil {
		miner.Close()
		log.Fatal(err)
	}
	err = miner.Close()
	if err != nil {
		log.Fatal(err)
	}
	miner.LogStats()
	if collector != nil {
		for k := 1; k < collector.Levels(); k++ {
			if patterns := collector.Level(k); len(patterns) > 0 {
				errors.Logf("INFO", "%d closed patterns of %d itemsets", len(patterns), k)
			}
		}
	}
	return 0
}
