// Package jsonl persists records as newline-delimited JSON across
// size-bounded rotating files.
//
// The write path groups output by a caller-chosen prefix. Each prefix
// gets its own session directory, created on first write, and files
// inside it rotate after a fixed number of lines (200 by default):
//
//	w := jsonl.NewWriter("output/myscript", jsonl.WithLogger(logger))
//	if err := w.Append("human_review", recs...); err != nil {
//	    return err
//	}
//
// The read path globs a directory for *.json files and decodes them
// line by line, skipping and counting lines that fail to parse or
// validate:
//
//	r, err := jsonl.NewReader("input/reviews", jsonl.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	for rec, err := range jsonl.Records(r, review.FromMap) {
//	    if err != nil {
//	        return err
//	    }
//	    // process rec
//	}
//	stats := r.Stats()
//
// Records and Stats make no ordering promise across files; within a
// file, lines arrive in file order.
package jsonl
