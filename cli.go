//go:build cli
// +build cli

package main

import (
	_ "multirex.GO/custom"

	"multirex.GO/cmd"
	"multirex.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
