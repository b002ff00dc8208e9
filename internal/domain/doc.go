// Package domain contains the core model of wordfreq: the tokenizer that
// splits text into words and the aggregator that turns words into a sorted
// frequency table.
//
// The domain performs no I/O. It does not know where characters come from
// (file, string, network) nor how results are printed; infra and cli adapt
// into and out of these types.
package domain
