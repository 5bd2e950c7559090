package ai

import (
	"context"
	"errors"
)

// ErrEmptyCompletion indicates the provider answered without any text.
var ErrEmptyCompletion = errors.New("model returned no text")

// Params controls a single generation call.
type Params struct {
	// MaxLength caps the generated output in tokens.
	MaxLength int
	// Sample enables stochastic decoding; when false decoding is greedy.
	Sample      bool
	Temperature float32
}

// DefaultParams are the decoding settings used for tutoring answers.
func DefaultParams() Params {
	return Params{MaxLength: 512, Sample: true, Temperature: 0.7}
}

func (p Params) withDefaults() Params {
	if p.MaxLength <= 0 {
		p.MaxLength = DefaultParams().MaxLength
	}
	if p.Temperature < 0 {
		p.Temperature = 0
	}
	return p
}

// Generator produces text for an instruction prompt. Implementations are safe
// for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}
