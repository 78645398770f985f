package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/withoutsultang/Interview-agent-aivle/config"
	"github.com/withoutsultang/Interview-agent-aivle/internal/interview"
	"github.com/withoutsultang/Interview-agent-aivle/internal/loader"
	"github.com/withoutsultang/Interview-agent-aivle/internal/telemetry"
	"github.com/withoutsultang/Interview-agent-aivle/oracle"
)

func interviewCMD() *cobra.Command {
	var filePath string
	var cfgPath string
	var cmd = &cobra.Command{
		Use:   "interview",
		Short: "Run a terminal interview from a candidate document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)

			text, err := loader.Extract(filePath)
			if err != nil {
				return err
			}

			orc, err := oracle.New(cfg.LLM)
			if err != nil {
				return err
			}
			if cfg.Telemetry.Enabled {
				orc = telemetry.Oracle(orc)
			}

			ctx := cmd.Context()
			runner := interview.NewRunner(cfg.Interview, orc)
			st := runner.Begin(ctx, text)

			fmt.Println("--- Interview ready ---")
			fmt.Printf("Remaining topics: %v\n", st.RemainingTopics)

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 64*1024), 1024*1024)
			for {
				fmt.Println("\n[Question]")
				fmt.Println(st.CurrentQuestion)

				fmt.Println("\n[Your answer]:")
				if !scanner.Scan() {
					break
				}

				if runner.Submit(ctx, st, scanner.Text()) {
					break
				}
			}

			interview.RenderReport(os.Stdout, interview.BuildReport(st))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "candidate document (pdf, docx, txt, md, html)")
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
