// Command mcoo-logview follows the editor's log files and prints them in a
// compact, filterable form.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"mcoo/local-app/internal/config"
	"mcoo/local-app/internal/logview"
	"mcoo/local-app/internal/ui"
)

func printHelp() {
	fmt.Println("Usage: mcoo-logview [log directory] [-r <refresh rate in ms>] [-h|--help]")
	fmt.Println("\nOptions:")
	fmt.Println("  [log directory]      Directory containing the *.log files (default: the configured log folder)")
	fmt.Println("  -r, --rate           Refresh rate in milliseconds (default: 500)")
	fmt.Println("  -h, --help           Show this help message")
	fmt.Println("\nType to filter entries, backspace removes the last character.")
	fmt.Println("Press Ctrl-C to exit.")
}

func main() {
	var help bool
	var rate int

	flag.IntVar(&rate, "r", 500, "Refresh rate in milliseconds")
	flag.IntVar(&rate, "rate", 500, "Refresh rate in milliseconds")
	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&help, "help", false, "Show help")
	flag.Parse()

	if help {
		printHelp()
		os.Exit(0)
	}
	if rate <= 0 {
		rate = 500
	}

	logDir := config.ConfigDefault().LogFolder
	if flag.NArg() > 0 {
		logDir = flag.Arg(0)
	}
	if info, err := os.Stat(logDir); err != nil || !info.IsDir() {
		fmt.Printf("Log directory '%s' does not exist. Please specify a valid directory.\n", logDir)
		os.Exit(1)
	}

	if err := run(logDir, time.Duration(rate)*time.Millisecond); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logDir string, interval time.Duration) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	interactive := ui.IsTerminal(os.Stdin)
	out := os.Stdout
	viewer := logview.NewViewer(logDir, crlfWriter{out, interactive}, ui.IsTerminal(out))

	fmt.Printf("Monitoring logs in directory: %s\n", logDir)

	if interactive {
		state, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to set terminal mode: %w", err)
		}
		defer term.Restore(int(os.Stdin.Fd()), state)

		fmt.Print("Start typing to filter logs. Press Ctrl-C to exit.\r\n")
		go readKeys(viewer, cancel)
	}

	return viewer.Run(ctx, interval)
}

// readKeys feeds typed bytes into the viewer filter. Raw mode swallows the
// interrupt signal, so Ctrl-C and Ctrl-D are handled here.
func readKeys(viewer *logview.Viewer, cancel context.CancelFunc) {
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			cancel()
			return
		}
		if buf[0] == 3 || buf[0] == 4 {
			fmt.Print("\r\nExiting...\r\n")
			cancel()
			return
		}
		fmt.Printf("\rCurrent filter: %s\033[K", viewer.HandleKey(buf[0]))
	}
}
