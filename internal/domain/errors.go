package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRequired           = errors.New("required field missing")
	ErrEmptyValue         = errors.New("empty value")
	ErrInvalidType        = errors.New("invalid type")
	ErrMissingSecret      = errors.New("missing secret reference")
	ErrConfigReadFailed   = errors.New("config read failed")
	ErrConfigParseFailed  = errors.New("config parse failed")
	ErrConfigValidateFail = errors.New("config validation failed")

	// Run-level taxonomy. ErrFatalRun aborts a run; the other three are
	// recorded against a single zone and the run continues.
	ErrFatalRun      = errors.New("zone discovery failed")
	ErrEnumeration   = errors.New("enumeration failed")
	ErrSerialization = errors.New("serialization failed")
	ErrStorage       = errors.New("storage upload failed")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func WrapZone(zoneID string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("zone[%s]: %w", zoneID, err)
}
