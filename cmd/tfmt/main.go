// Command tfmt renders typed format templates from the command line.
//
//	tfmt render "{s,-8}|{u32,x,f}" mask 255
//	tfmt check "{f,m}" "{u8,q}"
//	tfmt batch jobs.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
