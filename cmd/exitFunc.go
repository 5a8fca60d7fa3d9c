package cmd

import "os"

// exitFunc is os.Exit outside tests. Tests swap it to observe the exit code
// of Execute without terminating the test binary.
var exitFunc = os.Exit
