//go:build linux

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"blinky/core"

	"github.com/sirupsen/logrus"
	"periph.io/x/host/v3"
)

var (
	prefix  = flag.String("chip", "GPIO", "Pin name prefix passed to the GPIO registry")
	trace   = flag.Bool("trace", false, "Log every HAL call")
	verbose = flag.Bool("verbose", false, "Enable debug output")
)

func main() {
	flag.Parse()

	log := logrus.New()
	if *verbose || *trace {
		log.SetLevel(logrus.DebugLevel)
	}

	if _, err := host.Init(); err != nil {
		log.WithError(err).Fatal("unable to initialise periph host")
	}

	core.SetDebugWriter(func(s string) { log.Info(s) })
	core.SetDebugEnabled(*verbose)

	var sink core.CallSink
	if *trace {
		sink = func(c core.Call) {
			log.WithField("call", c.String()).Debug("hal")
		}
	}
	tr := core.NewTraceHAL(NewPeriphHAL(*prefix, log), sink)
	core.SetHAL(tr)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	log.WithField("pin", core.LEDPin.String()).Info("blinking")
	go core.Run()

	sig := <-sigs
	log.WithFields(logrus.Fields{"signal": sig.String(), "calls": tr.Total()}).Info("stopping")
	tr.Dump()
}
