/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
	"testing"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment = flag.Bool("dev", true, "set to true if the current run is for development. default value is true")
	ServiceName   = flag.String("service", APIServer, "name of the service, used as the logging tag")
	ByPassAuth    = flag.Bool("bypass_auth", false, "skip token authentication, for local debugging only")
)

func init() {
	// In test binaries the -test.* flags are not registered until after
	// package initialization, so parsing here would reject them and abort
	// the test run; the testing framework parses flags itself in that case.
	if !testing.Testing() {
		flag.Parse()
	}
}
