package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
)

// appConfig is the application configuration, populated from command line flags.
type appConfig map[string]string

var _ schuko.Configuration = appConfig{}

// Tracers of the module and their configuration keys.
var traceKeys = []string{
	"root",
	"partition.disjoint",
	"partition.scanner",
	"partition.arith",
	"partition.cmd",
}

// Global tracers of schuko, which we do not use, but which gconf insists on creating.
var legacyTraceKeys = []string{
	"tracinginterpreter", "tracingcommands", "tracingequations", "tracingsyntax",
	"tracinggraphics", "tracingscripting", "tracingcore", "tracingengine",
}

func newAppConfig(tlevel string, compress bool, interactive bool) appConfig {
	c := appConfig{
		"tracing.adapter":           "go",
		"disjoint.path-compression": strconv.FormatBool(compress),
		"interactive":               strconv.FormatBool(interactive),
	}
	for _, key := range traceKeys {
		c["tracelevel."+key] = tlevel
	}
	return c
}

// InitDefaults is part of interface schuko.Configuration.
func (c appConfig) InitDefaults() {
	for _, key := range legacyTraceKeys {
		if _, ok := c[key]; !ok {
			c[key] = "Error"
		}
	}
}

// IsSet is part of interface schuko.Configuration.
func (c appConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c appConfig) GetString(key string) string {
	return c[key]
}

// GetInt is part of interface schuko.Configuration.
func (c appConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

// GetBool is part of interface schuko.Configuration.
func (c appConfig) GetBool(key string) bool {
	return strings.EqualFold(c[key], "true")
}

// IsInteractive is part of interface schuko.Configuration.
func (c appConfig) IsInteractive() bool {
	return c.GetBool("interactive")
}
