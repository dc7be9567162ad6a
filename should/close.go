// Package should runs cleanup that ought to succeed but may not. Failures are
// logged rather than returned, which keeps defer statements simple.
package should

import (
	"context"
	"io"

	"github.com/amp-labs/amp-ds/logger"
)

// Close closes closer and logs msg at error level if that fails.
//
//	defer should.Close(ctx, f, "closing scenario file")
func Close(ctx context.Context, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get(ctx).Error(msg, "error", err)
	}
}
