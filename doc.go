// Package tactful detects sentence boundaries with a pre-trained naive Bayes
// classifier.
//
// Text is split into fragments at every word ending in '.', '?' or '!'. Each
// fragment is described by a handful of categorical context features (the
// words around the candidate boundary, abbreviation and capitalization
// evidence) and scored against the model's probability tables. Fragments
// whose boundary probability exceeds the threshold close a sentence.
//
// # Quick Start
//
//	seg, err := tactful.New("model.pb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sentences, err := seg.Segment(ctx, "Dr. Smith arrived. He was late.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range sentences {
//	    fmt.Println(s)
//	}
//
// # Thread Safety
//
// Segmenter is safe for concurrent use. The model is immutable once loaded;
// SegmentAll processes independent texts in parallel, bounded by
// WithConcurrency.
//
// # Model Files
//
// Tables are loaded by extension: .pb or .bin (binary protobuf Struct),
// .json (protojson) and .db or .sqlite (SQLite). Use the tactful-cli
// "tables convert" command to move between encodings.
package tactful
