package main

import (
	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{Use: "interview-agent"}

	root.AddCommand(interviewCMD(), serveCMD())
	_ = root.Execute()
}
