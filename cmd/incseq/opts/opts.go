package opts

import (
	"github.com/walteh/incseq/pkg/config"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
}
