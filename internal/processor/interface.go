package processor

import "context"

// Processor defines the interface for transcript processing operations
type Processor interface {
	Process(ctx context.Context, inputPath string) error
}
