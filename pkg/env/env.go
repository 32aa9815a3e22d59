// Package env keeps names of environment variables with special significance
// to goeval.
package env

// Environment variables with special significance to goeval.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	GOEVAL_TEST_TIME_SCALE = "GOEVAL_TEST_TIME_SCALE"
	HOME                   = "HOME"
	XDG_CONFIG_HOME        = "XDG_CONFIG_HOME"
)
