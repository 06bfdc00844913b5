// Package main is the entry point of vidgrab.
package main

import (
	"github.com/samber/lo"
	"github.com/vidgrab/vidgrab/cmd"
	"github.com/vidgrab/vidgrab/config"
	"github.com/vidgrab/vidgrab/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
