package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/creditimpact/internal/content"
	"github.com/dshills/creditimpact/internal/render"
	"github.com/spf13/cobra"
)

type tipsFlags struct {
	contentName string
	contentFile string
	list        bool

	stdout io.Writer
}

func newTipsCmd() *cobra.Command {
	f := &tipsFlags{}

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Print general credit score tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.stdout = cmd.OutOrStdout()
			return runTips(f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.contentName, "content", content.DefaultName, "Built-in content set")
	flags.StringVar(&f.contentFile, "content-file", "", "Content YAML file (overrides --content)")
	flags.BoolVar(&f.list, "list", false, "List built-in content sets instead")

	return cmd
}

func runTips(f *tipsFlags) error {
	if f.stdout == nil {
		f.stdout = os.Stdout
	}

	if f.list {
		names, err := content.List()
		if err != nil {
			return fmt.Errorf("failed to list content: %w", err)
		}
		for _, n := range names {
			fmt.Fprintln(f.stdout, n)
		}
		return nil
	}

	var (
		cnt *content.Content
		err error
	)
	if f.contentFile != "" {
		cnt, err = content.Load(f.contentFile)
	} else {
		cnt, err = content.LoadBuiltin(f.contentName)
	}
	if err != nil {
		return exitError(3, "failed to load content: %v", err)
	}

	fmt.Fprintf(f.stdout, "%s\n\n", cnt.Title)
	if err := render.Tips(f.stdout, cnt.Tips); err != nil {
		return fmt.Errorf("failed to write tips: %w", err)
	}
	return nil
}
