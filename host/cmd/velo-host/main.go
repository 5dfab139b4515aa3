// velo-host provisions and monitors velo head units from a
// workstation: it turns a YAML profile into the info.txt card record
// and tails the device's serial debug console.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/shlex"

	"velo/config"
	"velo/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	fmt.Println("velo-host - provisioning and monitor console")
	fmt.Println()

	var rec config.Record
	loaded := false

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		parts, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "quit", "exit", "q":
			return

		case "help", "?":
			printHelp()

		case "profile":
			if len(parts) != 2 {
				fmt.Println("usage: profile <file.yaml>")
				continue
			}
			rec, err = LoadProfile(parts[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			loaded = true
			fmt.Println("Profile loaded.")
			printRecord(rec)

		case "show":
			if !loaded {
				fmt.Println("No profile loaded (use 'profile <file.yaml>').")
				continue
			}
			printRecord(rec)

		case "write":
			if len(parts) != 2 {
				fmt.Println("usage: write <mounted-card-dir>")
				continue
			}
			if !loaded {
				fmt.Println("No profile loaded (use 'profile <file.yaml>').")
				continue
			}
			path, err := WriteCardFile(rec, parts[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("Wrote %s\n", path)

		case "monitor":
			seconds := 10
			if len(parts) == 2 {
				if seconds, err = strconv.Atoi(parts[1]); err != nil || seconds <= 0 {
					fmt.Println("usage: monitor [seconds]")
					continue
				}
			}
			if err := monitor(*device, *baud, time.Duration(seconds)*time.Second); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", cmd)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// monitor tails the device debug output for the given duration.
func monitor(device string, baud int, d time.Duration) error {
	cfg := serial.DefaultConfig(device)
	cfg.Baud = baud

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	fmt.Printf("Monitoring %s for %v...\n", device, d)
	if err := tail(port, os.Stdout, d); err != nil {
		return fmt.Errorf("monitor %s: %w", device, err)
	}
	fmt.Println()
	return nil
}

// tail copies device output to w until the deadline. Read timeouts
// surface as io.EOF with tarm's ReadTimeout and keep the poll going;
// any other error (device unplugged, permissions revoked) ends the
// session instead of spinning until the deadline.
func tail(port io.Reader, w io.Writer, d time.Duration) error {
	deadline := time.Now().Add(d)
	buf := make([]byte, 256)
	for time.Now().Before(deadline) {
		n, err := port.Read(buf)
		if n > 0 {
			w.Write(buf[:n])
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}
	return nil
}

func printRecord(rec config.Record) {
	fmt.Printf("  device:        %s\n", rec.DeviceName)
	fmt.Printf("  operator:      %s\n", rec.OperatorName)
	fmt.Printf("  circumference: %d cm\n", rec.WheelCircumferenceCm)
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  profile <file.yaml>  - Load and validate a provisioning profile")
	fmt.Println("  show                 - Print the loaded profile")
	fmt.Println("  write <dir>          - Write info.txt to a mounted card")
	fmt.Println("  monitor [seconds]    - Tail the device debug console")
	fmt.Println("  quit/exit/q          - Exit the program")
	fmt.Println()
}
