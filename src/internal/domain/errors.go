package domain

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrNegativeAmount = errors.New("amount must not be negative")

type InvalidStatusCodeError struct {
	Code         int
	Inconsistent bool
}

func (e InvalidStatusCodeError) Error() string {
	if e.Inconsistent {
		return fmt.Sprintf("status descriptor flags do not match status code %d", e.Code)
	}
	return fmt.Sprintf("unknown savings account status code %d", e.Code)
}

type InvalidSubStatusCodeError struct {
	Code         int
	StatusCode   int
	Inconsistent bool
}

func (e InvalidSubStatusCodeError) Error() string {
	if e.Inconsistent {
		return fmt.Sprintf("sub-status descriptor flags do not match sub-status code %d", e.Code)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("sub-status code %d is not allowed while status code is %d", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("unknown savings account sub-status code %d", e.Code)
}

type MalformedConditionValueError struct {
	Attribute AttributeName
	Condition ConditionType
	Value     string
	Reason    string
}

func (e MalformedConditionValueError) Error() string {
	return fmt.Sprintf("condition value %q is malformed for %s %s: %s", e.Value, e.Attribute, e.Condition, e.Reason)
}
