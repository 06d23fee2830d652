// Package sentiment classifies the sentiment of English text with a
// pre-trained DistilBERT model run locally through ONNX Runtime.
//
// Quick start:
//
//	a, err := sentiment.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	r := a.Analyze("This is amazing!")
//	fmt.Println(r.Label, r.Score) // POSITIVE 0.9998...
//
// The first New downloads the model from the Hugging Face Hub into the user
// cache directory; later calls reuse the cached files. Analyze never returns
// an error: empty text yields NEUTRAL and a failed inference yields ERROR,
// both with a zero score.
package sentiment
