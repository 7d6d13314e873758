package main

import (
	"context"
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
)

// Exit codes for the md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126,
// and 130 for interruption (128 + SIGINT).
const (
	ExitSuccess     = 0 // all passes completed
	ExitGeneral     = 1 // general/unexpected error
	ExitUsage       = 2 // invalid flags or arguments
	ExitConfig      = 3 // config missing, unparseable, or invalid
	ExitBuild       = 4 // one or more articles failed to build
	ExitIO          = 5 // file not found, permission denied
	ExitInterrupted = 130
)

// errBuildFailed marks a run where at least one article failed.
var errBuildFailed = errors.New("build failed")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidBaseURL) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, md2site.ErrMissingBaseURL) ||
		errors.Is(err, md2site.ErrInvalidBaseURL) {
		return ExitConfig
	}

	if errors.Is(err, errBuildFailed) ||
		errors.Is(err, md2site.ErrPageRender) ||
		errors.Is(err, md2site.ErrIndexRender) ||
		errors.Is(err, md2site.ErrFeedRender) ||
		errors.Is(err, md2site.ErrSitemapRender) {
		return ExitBuild
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoArticles) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrWritePage) {
		return ExitIO
	}

	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, md2site.ErrEmptySource) ||
		errors.Is(err, md2site.ErrEmptySlug) ||
		errors.Is(err, md2site.ErrInvalidSlug) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrStyleNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
