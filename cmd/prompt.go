package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// lineConfirmer asks yes/no questions on a line-oriented stream.
type lineConfirmer struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newLineConfirmer(in io.Reader, out io.Writer) (c *lineConfirmer) {
	c = &lineConfirmer{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	return c
}

// Confirm returns true only for an explicit y or yes. End of input is a no.
func (c *lineConfirmer) Confirm(message string) (ok bool) {
	fmt.Fprintf(c.out, "%s [y/N]: ", message)

	if !c.scanner.Scan() {
		fmt.Fprintln(c.out)
		return ok
	}

	answer := strings.ToLower(strings.TrimSpace(c.scanner.Text()))
	ok = answer == "y" || answer == "yes"
	return ok
}

// writerAlerter prints alerts on its own line.
type writerAlerter struct {
	out io.Writer
}

func (w writerAlerter) Alert(message string) {
	fmt.Fprintf(w.out, "! %s\n", message)
}

// spinner provides a simple text-based progress indicator.
type spinner struct {
	message string
	out     io.Writer
	stop    chan bool
	done    chan bool
	mu      sync.Mutex
	active  bool
}

func newSpinner(out io.Writer, message string) (s *spinner) {
	s = &spinner{
		message: message,
		out:     out,
		stop:    make(chan bool),
		done:    make(chan bool),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		chars := []string{"|", "/", "-", "\\"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Fprintf(s.out, "%s ", s.message)
		for {
			select {
			case <-s.stop:
				fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
				s.done <- true
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s %s", s.message, chars[i%len(chars)])
				i++
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- true
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// runWithSpinner shows a spinner on out while fn runs, unless out is not a
// terminal or verbose logging would interleave with it.
func runWithSpinner(out io.Writer, message string, fn func()) {
	if getVerbose() || !isTerminal(out) {
		fn()
		return
	}

	s := newSpinner(out, message)
	s.start()
	fn()
	s.stopSpinner()
}
