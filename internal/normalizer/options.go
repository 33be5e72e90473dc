package normalizer

import "github.com/goliatone/go-deckgen/pkg/logging"

// Options configures a Builder. The zero value is usable; defaults are filled
// in by New.
type Options struct {
	// Logger receives repair diagnostics. Defaults to the nop logger so
	// normalization stays a pure function unless a caller opts in.
	Logger logging.Logger

	// Style provides the defaults substituted for a missing or mangled style
	// block. Defaults to DefaultStyle.
	Style StyleDefaults
}

func defaultOptions() Options {
	return Options{
		Logger: logging.Nop(),
		Style:  DefaultStyle(),
	}
}
