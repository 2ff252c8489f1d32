package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/rainfall/constants"
	"github.com/lixenwraith/rainfall/engine"
	"github.com/lixenwraith/rainfall/terminal"
)

func main() {
	// Panic recovery: restore the terminal even if a tick crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nrainfall crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sess := terminal.New()
	if err := sess.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "rainfall: %v\n", err)
		os.Exit(1)
	}
	defer sess.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	sched := engine.New(sess, rng, constants.TickInterval)

	if err := sched.Run(ctx); err != nil {
		sess.Fini()
		fmt.Fprintf(os.Stderr, "rainfall: %v\n", err)
		os.Exit(1)
	}
}
