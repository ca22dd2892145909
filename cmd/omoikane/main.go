// Command omoikane fits linear functions to CSV data by gradient descent.
package main

import (
	"log/slog"
	"os"

	"github.com/YuminosukeSato/omoikane/pkg/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("omoikane failed", log.ErrAttr(err))
		os.Exit(1)
	}
}
