// Command onefs_test_server runs a fake OneFS cluster over SSH so the survey
// can be exercised end to end without real hardware.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/vallentes/OneFS-Dashboard/internal/collector"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
	"github.com/vallentes/OneFS-Dashboard/tools/onefsfixture"
	srv "github.com/vallentes/OneFS-Dashboard/tools/sshserv"
)

func main() {
	listen := pflag.String("listen", "127.0.0.1:20222", "address to listen on")
	password := pflag.String("password", "secret", "password to accept (empty accepts anyone)")
	cluster := pflag.String("cluster", "lab", "cluster name reported by the fake")
	pflag.Parse()

	responses := map[string]srv.Response{}
	for _, s := range collector.Battery(report.AllDomains, "") {
		responses[s.Command.Line] = srv.Response{Output: onefsfixture.Output(s.Domain, *cluster)}
	}
	s, err := srv.Start(*listen, srv.Config{Password: *password, Responses: responses})
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start test ssh server:", err)
		os.Exit(1)
	}
	_, _ = fmt.Fprintf(os.Stderr, "fake OneFS cluster %q listening on %s\n", *cluster, s.Addr())
	defer s.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
