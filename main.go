/*
 * DCPU16 - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/nchashch/dcpu16/command/reader"
	config "github.com/nchashch/dcpu16/config/configparser"
	core "github.com/nchashch/dcpu16/emu/core"
	"github.com/nchashch/dcpu16/emu/cpu"
	"github.com/nchashch/dcpu16/emu/device"
	"github.com/nchashch/dcpu16/emu/loader"
	op "github.com/nchashch/dcpu16/emu/opcode"
	logger "github.com/nchashch/dcpu16/util/logger"

	_ "github.com/nchashch/dcpu16/util/debug"
)

var Logger *slog.Logger

// Exit codes: 0 normal halt, 1 decode error, 2 runtime error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var derr *op.DecodeError
	if errors.As(err, &derr) {
		return 1
	}
	return 2
}

func main() {
	optRom := getopt.StringLong("rom", 'r', "", "ROM image file")
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optBatch := getopt.BoolLong("batch", 'b', "Run without monitor until halt")
	optLittle := getopt.BoolLong("little", 'e', "ROM image is little endian")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file io.Writer
	if *optLogFile != "" {
		if f, err := os.Create(*optLogFile); err == nil {
			file = f
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, false))
	slog.SetDefault(Logger)

	Logger.Info("DCPU-16 started")

	romPath := ""
	romLittle := false
	table := device.NewTable()

	config.RegisterFile("ROM", func(value string, options []config.Option) error {
		romPath = value
		for _, opt := range options {
			if opt.Name == "FORMAT" {
				switch strings.ToLower(opt.EqualOpt) {
				case "be":
					romLittle = false
				case "le":
					romLittle = true
				default:
					return fmt.Errorf("unknown rom format: %s", opt.EqualOpt)
				}
				continue
			}
			return fmt.Errorf("unknown rom option: %s", opt.Name)
		}
		return nil
	})

	config.Register("DEVICE", func(value string, options []config.Option) error {
		switch strings.ToUpper(value) {
		case "TESTDEV":
			dev := &device.TestDev{}
			for _, opt := range options {
				if opt.Name == "DELAY" {
					delay, err := strconv.Atoi(opt.EqualOpt)
					if err != nil {
						return fmt.Errorf("bad delay: %s", opt.EqualOpt)
					}
					dev.Delay = delay
					continue
				}
				return fmt.Errorf("unknown device option: %s", opt.Name)
			}
			table.Add(dev)
			return nil
		}
		return fmt.Errorf("unknown device: %s", value)
	})

	if *optConfig != "" {
		if err := config.LoadConfigFile(*optConfig); err != nil {
			Logger.Error(err.Error())
			os.Exit(2)
		}
	}

	// The command line wins over the configuration file.
	if *optRom != "" {
		romPath = *optRom
		romLittle = *optLittle
	}

	mach := cpu.New()
	mach.Attach(table)

	if romPath != "" {
		rom, err := loader.ReadROM(romPath, romLittle)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(2)
		}
		mach.Load(rom)
	}

	c := core.NewCore(mach)

	if *optBatch {
		if romPath == "" {
			Logger.Error("batch mode needs a ROM image")
			os.Exit(2)
		}
		err := c.RunToHalt()
		Logger.Info("CPU halted: " + err.Error())
		os.Exit(exitCode(err))
	}

	go c.Start()
	reader.ConsoleReader(c)

	Logger.Info("Shutting down CPU")
	c.Stop()
	os.Exit(exitCode(c.HaltError()))
}
