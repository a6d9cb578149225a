// Command fsmctl replays events against a state machine declared in YAML and
// prints every transition taken.
//
//	fsmctl -definition door.yaml -decide door_decider=locked open close
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fsmkit/pkg/config"
	"github.com/dmitrymomot/fsmkit/pkg/logger"
	"github.com/dmitrymomot/fsmkit/pkg/statemachine"
	"github.com/dmitrymomot/fsmkit/pkg/statemachine/definition"
)

type runIDKey struct{}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "fsmctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	decisions := decisionFlag{}

	fs := flag.NewFlagSet("fsmctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env-file", "", "load environment from this file instead of .env")
	defPath := fs.String("definition", "", "YAML definition (default $FSM_DEFINITION)")
	initial := fs.String("state", "", "start in this state instead of the default state")
	fs.Var(decisions, "decide", "answer a decider: name=decision (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return err
	}
	cfg, err := config.Parse[Config]()
	if err != nil {
		return err
	}
	if *defPath != "" {
		cfg.Definition = *defPath
	}
	if cfg.Definition == "" {
		return errors.New("no definition given: use -definition or FSM_DEFINITION")
	}

	logOpts, err := cfg.loggerOptions()
	if err != nil {
		return err
	}
	runID := uuid.New()
	log := logger.New(append(logOpts,
		logger.WithOutput(stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)...)
	logger.SetAsDefault(log)
	ctx = context.WithValue(ctx, runIDKey{}, runID.String())

	def, err := definition.Load(ctx, cfg.Definition)
	if err != nil {
		return err
	}

	owner := &trace{out: stdout, decisions: decisions}
	machine, err := definition.Build(def, owner.registry(def))
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "definition loaded",
		logger.Definition(cfg.Definition),
		logger.State(machine.DefaultState().Name()),
	)

	inst, err := machine.NewInstance(owner,
		statemachine.WithHistoryCapacity(cfg.HistoryCapacity),
		statemachine.WithLogger(log),
		statemachine.WithInstanceID(runID),
	)
	if err != nil {
		return err
	}
	if *initial != "" {
		if err := inst.SetCurrent(statemachine.StringState(*initial)); err != nil {
			return err
		}
	}

	for _, name := range fs.Args() {
		from, err := inst.Current()
		if err != nil {
			return err
		}
		to, err := inst.SendEvent(ctx, statemachine.StringEvent(name))
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s --%s--> %s\n", from, name, to)
	}

	history := inst.EventHistory()
	names := make([]string, 0, len(history))
	for _, e := range history {
		names = append(names, e.Name())
	}
	fmt.Fprintf(stdout, "history: [%s]\n", strings.Join(names, " "))
	return nil
}
