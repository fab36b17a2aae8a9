package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"gopill/host/monitor"
	"gopill/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (must match the firmware console)")
	verbose = flag.Bool("verbose", false, "Also print non-status console lines")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Monitoring %s at %d baud\n", *device, *baud)

	var tracker monitor.Tracker
	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()

		st, err := monitor.ParseStatus(line)
		if err != nil {
			// Boot banner, uptime reports and any line noise.
			if *verbose {
				fmt.Println(line)
			}
			continue
		}
		tracker.Observe(st)

		state := "off"
		if st.LED {
			state = "on"
		}
		if p := tracker.Period(); p > 0 {
			fmt.Printf("t=%dms led=%s period~%dms\n", st.Tick, state, p)
		} else {
			fmt.Printf("t=%dms led=%s\n", st.Tick, state)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read: %v\n", err)
		os.Exit(1)
	}
}
