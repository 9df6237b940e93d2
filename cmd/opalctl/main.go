package main

/*------------------------------------------------------------------
 *
 * Purpose:	opalctl - command-line driver for the link layer and hop
 *		scheduler: run a TX/RX loopback over a pty-backed
 *		transport, step the hop scheduler for a number of dwells
 *		(optionally interactively from the keyboard), and print
 *		the build version banner.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/mtmann213/opal-vanguard/internal/config"
	"github.com/mtmann213/opal-vanguard/internal/hop"
	"github.com/mtmann213/opal-vanguard/internal/link"
	"github.com/mtmann213/opal-vanguard/internal/session"
	"github.com/mtmann213/opal-vanguard/internal/tuner"
)

func main() {
	var configFile = pflag.StringP("config-file", "c", "opalctl.yaml", "Configuration file name.")
	var loopback = pflag.BoolP("loopback", "l", false, "Run one TX->RX loopback demo over a pty transport and exit.")
	var message = pflag.StringP("message", "m", "hello opal vanguard", "Payload to send in the loopback demo.")
	var dwells = pflag.IntP("dwells", "n", 0, "Step the hop scheduler this many dwells and print each channel/frequency.")
	var console = pflag.BoolP("console", "i", false, "Drive the hop scheduler interactively: one dwell per keypress, 'q' to quit.")
	var consoleDevice = pflag.StringP("console-device", "t", "/dev/tty", "Terminal device for --console.")
	var rigModel = pflag.IntP("rig-model", "r", 0, "Hamlib rig model number to retune via goHamlib each dwell. 0 disables rig control.")
	var rigPort = pflag.StringP("rig-port", "p", "/dev/ttyUSB0", "Serial or network port for --rig-model.")
	var verbose = pflag.BoolP("verbose", "v", false, "Verbose version/build output.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "opalctl - frequency-hopping spread-spectrum link layer driver.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: opalctl [options]\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	printVersion(*verbose)

	if *verbose {
		var appLogger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "opalctl"})
		appLogger.SetLevel(log.DebugLevel)
		link.SetLogger(appLogger)
		session.SetLogger(appLogger)
	}

	var cfgFile, cfgErr = config.Load(*configFile)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "opalctl: %v\n", cfgErr)
		fmt.Fprintf(os.Stderr, "opalctl: falling back to default link configuration.\n")
	}

	var linkCfg link.Config
	if cfgFile != nil {
		linkCfg, cfgErr = cfgFile.LinkConfig()
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "opalctl: invalid link configuration: %v\n", cfgErr)
			os.Exit(1)
		}
	} else {
		linkCfg = link.DefaultConfig()
	}

	if *loopback {
		runLoopbackDemo(linkCfg, []byte(*message))
	}

	if *dwells > 0 || *console {
		runHopDemo(cfgFile, *dwells, *console, *consoleDevice, *rigModel, *rigPort)
	}
}

func runLoopbackDemo(cfg link.Config, payload []byte) {
	var rf, err = runLoopback(cfg, payload, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opalctl: loopback failed: %v\n", err)
		return
	}

	fmt.Printf("loopback: recovered payload=%q crc_ok=%v polarity_inverted=%v fec_corrections=%d confidence=%.1f%%\n",
		rf.Payload, rf.Diagnostics.CRCOK, rf.Diagnostics.PolarityInverted, rf.Diagnostics.FECCorrections, rf.Diagnostics.AvgConfidencePct)
}

func runHopDemo(cfgFile *config.File, dwells int, interactive bool, consoleDevice string, rigModel int, rigPort string) {
	var hopCfg hop.Config
	if cfgFile != nil {
		hopCfg = cfgFile.HopConfig()
	} else {
		hopCfg = hop.Config{SyncMode: hop.SyncLFSR, NumChannels: 50, InitialSeed: 1}
	}

	var scheduler, err = hop.Build(hopCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opalctl: building hop scheduler: %v\n", err)
		return
	}

	var rig tuner.Tuner = tuner.NullTuner{}
	if rigModel != 0 {
		var hamlibRig, rigErr = tuner.NewHamlibTuner(rigModel, rigPort)
		if rigErr != nil {
			fmt.Fprintf(os.Stderr, "opalctl: opening rig: %v\n", rigErr)
			return
		}
		rig = hamlibRig
	}
	defer rig.Close()

	var trigger = func() {
		var channel, freq = scheduler.Trigger()
		fmt.Printf("dwell: channel=%d freq=%.3f MHz\n", channel, freq/1e6)
		if err := rig.SetFrequency(freq); err != nil {
			fmt.Fprintf(os.Stderr, "opalctl: retuning rig: %v\n", err)
		}
	}

	if interactive {
		if err := runConsole(consoleDevice, trigger); err != nil {
			fmt.Fprintf(os.Stderr, "opalctl: console: %v\n", err)
		}
		return
	}

	for i := 0; i < dwells; i++ {
		trigger()
	}
}
