package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/mkarren/gridlock/nurikabe"
)

var log = logrus.New()

func main() {
	var (
		debug       = flag.Bool("debug", false, "log per-rule chatter and stopwatch results")
		profiling   = flag.Bool("profile", false, "write a CPU profile to the current directory")
		interactive = flag.Bool("interactive", false, "solve a puzzle step by step at a prompt")
		logFile     = flag.String("logfile", "", "also log to this file (rotated)")
		outDir      = flag.String("outdir", ".", "directory for the HTML reports")
		only        = flag.String("only", "", "solve just the named puzzle")
	)
	flag.Parse()

	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if *logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   *logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      logrus.DebugLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatalf("could not open log file: %v", err)
		}
		log.AddHook(hook)
	}
	nurikabe.SetLogger(log)

	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			log.Fatal(err)
		}
		return
	}

	for _, p := range puzzles {
		if *only != "" && p.name != *only {
			continue
		}
		if err := solveOne(p, *outDir); err != nil {
			log.Fatal(err)
		}
	}
}

func solveOne(p puzzle, outDir string) error {
	start := time.Now()

	g, err := nurikabe.NewGrid(p.width, p.height, p.s)
	if err != nil {
		return err
	}

	g.Progress = make(chan nurikabe.ProgressUpdate, p.width*p.height*2)
	var wg sync.WaitGroup
	wg.Add(1)
	go printUpdates(g.Progress, &wg)

	sr := nurikabe.KeepGoing
	for sr == nurikabe.KeepGoing {
		sr = g.Solve(true, true)
	}
	finish := time.Now()

	close(g.Progress)
	wg.Wait()

	path := filepath.Join(outDir, p.name+".html")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := g.Write(f, start, finish); err != nil {
		return err
	}

	known := g.Known()
	cells := p.width * p.height
	log.WithFields(logrus.Fields{
		"puzzle":  p.name,
		"sitrep":  sr.String(),
		"elapsed": finish.Sub(start),
		"report":  path,
	}).Infof("%s: %d/%d (%.1f%%) solved", p.name, known, cells, float64(known)*100/float64(cells))

	log.Debugf("stopwatch:\n%s", nurikabe.Watch.Results())
	return nil
}

// printUpdates draws a terminal progress bar fed by the solver.
func printUpdates(ch chan nurikabe.ProgressUpdate, wg *sync.WaitGroup) {
	defer wg.Done()
	for update := range ch {
		bar := ""
		pct := float64(update.Known) / float64(update.Size)
		for i := 0.05; i <= 1.0; i += 0.05 {
			if pct >= i {
				bar += "="
			} else {
				bar += "."
			}
		}
		fmt.Printf("\r[%s] %d/%d (%s)\033[K", bar, update.Known, update.Size, update.Action)
	}
	fmt.Println()
}
