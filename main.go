package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/hukaisdu/cadical/internal/dimacs"
	"github.com/hukaisdu/cadical/internal/drat"
	"github.com/hukaisdu/cadical/internal/sat"
)

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "report search progress on stderr",
		},
		cli.StringFlag{
			Name:  "proof",
			Usage: "write a DRAT proof to `FILE`",
		},
		cli.Int64Flag{
			Name:  "max-conflicts",
			Usage: "maximum number of conflicts (-1 = no maximum)",
			Value: -1,
		},
		cli.BoolFlag{
			Name:  "cpuprof",
			Usage: "save pprof CPU profile in cpuprof",
		},
		cli.BoolFlag{
			Name:  "memprof",
			Usage: "save pprof memory profile in memprof",
		},
	}
}

func solverOptions(c *cli.Context) sat.Options {
	options := sat.DefaultOptions
	options.MaxConflicts = c.Int64("max-conflicts")
	return options
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// interruptible routes SIGINT and SIGTERM to the solver's termination flag
// so an interrupted run still reports UNKNOWN and exits cleanly.
func interruptible(s *sat.Solver) {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		s.Terminate()
	}()
}

func printModel(s *sat.Solver) {
	fmt.Print("v")
	for idx := 1; idx <= s.NumVariables(); idx++ {
		if s.Val(idx) >= 0 {
			fmt.Printf(" %d", idx)
		} else {
			fmt.Printf(" %d", -idx)
		}
	}
	fmt.Print(" 0\n")
}

func printStatistics(s *sat.Solver, elapsed time.Duration) {
	stats := s.Statistics()
	seconds := elapsed.Seconds()
	fmt.Printf("c conflicts:    %12d (%.2f /sec)\n", stats.Conflicts, float64(stats.Conflicts)/seconds)
	fmt.Printf("c decisions:    %12d (%.2f /sec)\n", stats.Decisions, float64(stats.Decisions)/seconds)
	fmt.Printf("c propagations: %12d (%.2f /sec)\n", stats.Propagations, float64(stats.Propagations)/seconds)
	fmt.Printf("c restarts:     %12d (blocked %d)\n", stats.Restarts, stats.Blocked)
	fmt.Printf("c reductions:   %12d (collected %d)\n", stats.Reductions, stats.Collected)
	fmt.Printf("c learned:      %12d (units %d, minimized %d)\n", stats.Learned, stats.Units, stats.Minimized)
	fmt.Printf("c memory:       %12d bytes (peak %d)\n", s.CurrentBytes(), s.MaxBytes())
	fmt.Printf("c time:         %12.3f sec\n", seconds)
}

func run(c *cli.Context) (sat.Status, error) {
	if c.NArg() == 0 || c.Args().First() == "" {
		return sat.Unknown, errors.New("missing instance file")
	}

	solver := sat.NewSolver(solverOptions(c))
	solver.SetLogger(newLogger(c.Bool("verbose")))
	interruptible(solver)

	var tracer *drat.Tracer
	if path := c.String("proof"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return sat.Unknown, errors.Wrap(err, "could not create proof file")
		}
		defer f.Close()
		tracer = drat.New(f)
		solver.SetProof(tracer)
	}

	if err := dimacs.LoadFile(c.Args().First(), solver); err != nil {
		return sat.Unknown, errors.Wrap(err, "could not parse instance")
	}

	fmt.Printf("c variables: %d\n", solver.NumVariables())

	t := time.Now()
	status := solver.Solve()
	elapsed := time.Since(t)

	printStatistics(solver, elapsed)
	fmt.Printf("s %s\n", status)
	if status == sat.Satisfiable {
		printModel(solver)
	}

	if tracer != nil {
		if err := tracer.Flush(); err != nil {
			return status, errors.Wrap(err, "could not write proof")
		}
	}
	return status, nil
}

func main() {
	app := cli.NewApp()
	app.Name = "cadical"
	app.Usage = "a conflict-driven clause learning SAT solver"
	app.ArgsUsage = "<file.cnf[.gz]>"
	app.Flags = flags()

	app.Action = func(c *cli.Context) error {
		if c.Bool("cpuprof") {
			f, err := os.Create("cpuprof")
			if err != nil {
				return err
			}
			pprof.StartCPUProfile(f)
		}

		status, err := run(c)
		if c.Bool("cpuprof") {
			pprof.StopCPUProfile()
		}
		if err != nil {
			return err
		}

		if c.Bool("memprof") {
			f, err := os.Create("memprof")
			if err != nil {
				return err
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}

		os.Exit(int(status))
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "c error: %s\n", err)
		os.Exit(1)
	}
}
