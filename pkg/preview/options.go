package preview

import (
	"fmt"
	"io"
	"os"
)

// Option configures the preview walker.
type Option func(*Preview)

// WithPromptDriver overrides the prompt driver used by the walker.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Preview) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithOutput redirects informational output away from stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Preview) {
		if w != nil {
			p.out = w
		}
	}
}

func defaultDriver(p *Preview) PromptDriver {
	return &surveyDriver{info: func(msg string) error {
		_, err := fmt.Fprintln(p.out, msg)
		return err
	}}
}

func defaultOutput() io.Writer {
	return os.Stdout
}
