package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"blinky/host/monitor"
	"blinky/host/serial"

	"github.com/sirupsen/logrus"
)

var (
	device   = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud     = flag.Int("baud", serial.DefaultBaud, "Baud rate of the trace UART")
	cycles   = flag.Int("cycles", 0, "Stop after this many verified blink cycles (0 = run forever)")
	fromBoot = flag.Bool("from-boot", false, "Require the trace to start with the setup call")
	verbose  = flag.Bool("verbose", false, "Log every HAL call")
)

func main() {
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		log.WithError(err).Fatal("unable to open trace port")
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		log.WithError(err).Warn("unable to flush trace port")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := &monitor.Monitor{
		Port:     port,
		Logger:   log,
		Cycles:   *cycles,
		FromBoot: *fromBoot,
	}

	log.WithFields(logrus.Fields{"device": cfg.Device, "baud": cfg.Baud}).Info("connected")
	if err := m.Run(ctx); err != nil {
		log.WithError(err).Error("monitor stopped")
		port.Close()
		os.Exit(1)
	}
	log.WithField("cycles", m.VerifiedCycles()).Info("done")
}
