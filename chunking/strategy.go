//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"errors"
	"fmt"
)

// Strategy names recognized by New.
const (
	// StrategyRecursive selects the separator-cascade strategy.
	StrategyRecursive = "recursive"

	// StrategySentence selects the sentence accumulation strategy.
	StrategySentence = "sentence"

	// StrategyParagraph selects the paragraph accumulation strategy.
	StrategyParagraph = "paragraph"
)

// ErrUnknownStrategy is returned when a strategy name is not recognized.
var ErrUnknownStrategy = errors.New("unknown chunking strategy")

// New creates a chunking strategy by name. The name must be one of
// StrategyRecursive, StrategySentence or StrategyParagraph; any other value
// fails with ErrUnknownStrategy before any splitting work is done.
func New(name string, opts ...Option) (Strategy, error) {
	switch name {
	case StrategyRecursive:
		return NewRecursiveChunking(opts...)
	case StrategySentence:
		return NewSentenceChunking(opts...)
	case StrategyParagraph:
		return NewParagraphChunking(opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
