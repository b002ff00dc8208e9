package domain

// InputFile describes the file a run read from.
type InputFile struct {
	Path string

	// Default is set when Path is the configured default rather than the
	// user-supplied argument.
	Default bool

	// Fallback is set when a user-supplied argument did not name a file and
	// the default was tried instead. Rejected holds that argument, which may
	// be the empty string.
	Fallback bool
	Rejected string
}

// Report is the result of a single counting run.
type Report struct {
	Input InputFile
	Table Table
	Max   []Entry

	// ReadErr is set when the input could not be read to the end. Table and
	// Max then cover only the words read before the failure.
	ReadErr error
}

func NewReport(in InputFile, words []string, readErr error) Report {
	t := Aggregate(words)
	return Report{
		Input:   in,
		Table:   t,
		Max:     MaxOccurrences(t),
		ReadErr: readErr,
	}
}
