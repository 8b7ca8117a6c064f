package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [dir]",
		Short: "Browse module files and view their samples and patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			s, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}
			if err := s.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer s.Fini()
			s.SetStyle(defaultStyle)
			s.Clear()

			return a.browse(s, dir)
		},
	}
}

// browse runs the browser on an initialised screen until the user quits
func (a *app) browse(s tcell.Screen, dir string) error {
	b, err := newBrowser(s, a.store, dir, a.logger)
	if err != nil {
		return err
	}
	b.run()
	return nil
}
