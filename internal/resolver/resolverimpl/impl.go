package resolverimpl

import (
	"time"

	"github.com/nishanrajkantan/insta-saver/internal/fetcher"
	"github.com/nishanrajkantan/insta-saver/internal/instaweb"
	"github.com/nishanrajkantan/insta-saver/internal/resolver"
	"github.com/nishanrajkantan/insta-saver/pkg/config"
	"github.com/nishanrajkantan/insta-saver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Fetcher fetcher.Client
	Web     instaweb.Client
	Logger  logger.Logger
	Config  *config.Config
}

type ResolverImpl struct {
	Fetcher       fetcher.Client
	Web           instaweb.Client
	Logger        logger.Logger
	detailTimeout time.Duration
}

func New(opts Opts) *ResolverImpl {
	timeout := time.Duration(opts.Config.Resolver.DetailTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ResolverImpl{
		Fetcher:       opts.Fetcher,
		Web:           opts.Web,
		Logger:        opts.Logger,
		detailTimeout: timeout,
	}
}

var _ resolver.Client = (*ResolverImpl)(nil)
