package main

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned for commands the CLI does not know.
var ErrUnknownCommand = errors.New("unknown command")

// run dispatches the command line to its handler.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "build":
		return runBuild(ctx, rest, env)
	case "index":
		return runPass(ctx, "index", rest, env)
	case "feed":
		return runPass(ctx, "feed", rest, env)
	case "sitemap":
		return runPass(ctx, "sitemap", rest, env)
	case "enhance":
		return runPass(ctx, "enhance", rest, env)
	case "doctor":
		return runDoctor(rest, env)
	case "completion":
		return runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return nil
	case "help":
		runHelp(rest, env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}
