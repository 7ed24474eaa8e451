package source

import (
	"context"
)

// ISegmentSource materialises remote archive segments into a local archive directory.
type ISegmentSource interface {
	Sync(ctx context.Context, dir string) (downloaded int, err error)
}
