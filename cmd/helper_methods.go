package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/PolarWolf314/saas-template-companion/internal/ui"
	"github.com/PolarWolf314/saas-template-companion/internal/utils"

	"github.com/briandowns/spinner"
)

// startSpinner creates a spinner writing to out and starts it unless running in
// verbose or debug mode or out is not a terminal.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it to out.
func startSpinner(message string, out io.Writer) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug && utils.IsTerminalWriter(out) {
		s.Start()
	} else {
		Logger.Infof("Running without spinner: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		s.Stop()

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// pauseSpinner stops s while fn runs so that fn can print, then resumes it
// with the new suffix if it was running.
func pauseSpinner(s *spinner.Spinner, suffix string, fn func() error) error {
	active := s.Active()
	s.Stop()
	err := fn()
	s.Suffix = " " + suffix
	if active && err == nil {
		s.Start()
	}
	return err
}
