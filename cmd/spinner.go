package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const spinnerInterval = 100 * time.Millisecond

//nolint:gochecknoglobals // animation frames
var spinnerFrames = []string{"|", "/", "-", "\\"}

// startSpinner animates message on out until the returned stop func is called.
// stop clears the line and waits for the animation to exit; calling it again is a no-op.
func startSpinner(out io.Writer, message string) (stop func()) {
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		fmt.Fprintf(out, "%s ", message)
		for frame := 0; ; frame++ {
			select {
			case <-quit:
				fmt.Fprintf(out, "\r%s\r", strings.Repeat(" ", len(message)+2))
				return
			case <-ticker.C:
				fmt.Fprintf(out, "\r%s %s", message, spinnerFrames[frame%len(spinnerFrames)])
			}
		}
	}()

	var once sync.Once
	stop = func() {
		once.Do(func() {
			close(quit)
			<-done
		})
	}
	return stop
}
