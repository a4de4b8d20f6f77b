package assembler

import tiktoken "github.com/pkoukk/tiktoken-go"

// DefaultEstimatorModel is a reasonable model name for wiring code to pass
// to NewTikTokenEstimator; NewTikTokenEstimator itself does not use it,
// callers always choose their own model string.
const DefaultEstimatorModel = "gpt-4o"

// NewTikTokenEstimator returns a TokenEstimator backed by tiktoken-go's
// encoding for model. An unrecognized model name returns an error rather
// than panicking, so callers can fall back to the rune-length default.
func NewTikTokenEstimator(model string) (TokenEstimator, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, err
	}
	return func(text string) int {
		return len(enc.Encode(text, nil, nil))
	}, nil
}
