package config

import (
	"fmt"
	"strings"
)

type tagEntry struct {
	tag      string
	validate ValidatorFunc
	reserved bool
}

// tagMap is the fixed set of recognised tags, in lookup order.
var tagMap = []tagEntry{
	// General section
	{tag: "RUN_NAME", validate: validateRunName},
	{tag: "NUM_TRIES", validate: validateNumTries},
	{tag: "USER_AGENT", validate: validateUserAgent},

	// Resource section
	{tag: "URL", validate: validateURL},
	{tag: "HEADER", validate: AppendHeader},
	{tag: "MAX_NUM_HEADERS", validate: validateReserved, reserved: true},
	{tag: "REQUEST_TYPE", validate: validateReserved, reserved: true},
	{tag: "KEEP_ALIVE", validate: validateKeepAlive},

	// Timing section
	{tag: "TIMER_TCP_CONN_SETUP", validate: validateConnectTimeout},
}

// FindValidator returns the validator registered for tag. Tags are matched
// exactly and case-sensitively.
func FindValidator(tag string) (ValidatorFunc, error) {
	entry, err := findEntry(tag)
	if err != nil {
		return nil, err
	}
	return entry.validate, nil
}

func findEntry(tag string) (tagEntry, error) {
	for _, e := range tagMap {
		if e.tag == tag {
			return e, nil
		}
	}
	return tagEntry{}, fmt.Errorf("%w %s, expected one of: %s", ErrUnknownTag, tag, strings.Join(Tags(), ", "))
}

// Tags returns the recognised tags in lookup order.
func Tags() []string {
	tags := make([]string, len(tagMap))
	for i, e := range tagMap {
		tags[i] = e.tag
	}
	return tags
}

// IsReserved reports whether tag is recognised but has no effect.
func IsReserved(tag string) bool {
	e, err := findEntry(tag)
	return err == nil && e.reserved
}
