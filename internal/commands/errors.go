package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeMessageInvalid  = "NEXCMS_COMMAND_MESSAGE_INVALID"
	codeRunCanceled     = "NEXCMS_COMMAND_RUN_CANCELED"
	codeRunTimedOut     = "NEXCMS_COMMAND_RUN_TIMED_OUT"
	codeContextFailed   = "NEXCMS_COMMAND_CONTEXT_FAILED"
	codeExecutionFailed = "NEXCMS_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message failed validation").
		WithTextCode(codeMessageInvalid)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command run canceled").
			WithTextCode(codeRunCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command run exceeded its deadline").
			WithTextCode(codeRunTimedOut)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context failed").
			WithTextCode(codeContextFailed)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
