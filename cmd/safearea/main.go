// SPDX-License-Identifier: Unlicense OR MIT

// Command safearea simulates system insets on views described by scene
// files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/insetkit/safearea/edge"
	"github.com/insetkit/safearea/internal/preview"
	"github.com/insetkit/safearea/scene"
)

var (
	debug bool
	api   int
	rtl   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "safearea: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "safearea",
	Short: "Simulate system insets on edge-to-edge views",
	Long: `safearea loads a scene file describing a view tree with safe area
attributes, reports system insets to it and shows the resulting padding
and margins.

Examples:
  safearea apply phone.yaml            # Print spacing after each event
  safearea apply phone.yaml --api 29   # Use the legacy inset dispatch
  safearea preview phone.yaml          # Toggle keyboard, rotation and direction
  safearea edges "top|horizontal"      # Show an edge mask`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <scene>",
	Short: "Report the scene's insets and events and print the spacing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, d, err := load(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		d.Flush()
		fmt.Fprintln(out, preview.Render("initial", d))
		for _, e := range s.Events {
			if err := d.Play(e); err != nil {
				return fmt.Errorf("event %s: %w", e.Name, err)
			}
			fmt.Fprintln(out, preview.Render("event "+e.Name, d))
		}
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <scene>",
	Short: "Interactively change the scene's insets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, d, err := load(args[0])
		if err != nil {
			return err
		}
		return preview.Run(s, d)
	},
}

var edgesCmd = &cobra.Command{
	Use:   "edges <mask>",
	Short: "Parse an edge mask attribute",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := edge.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v (0x%02x)\n", m, uint8(m))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log inset dispatches")
	for _, c := range []*cobra.Command{applyCmd, previewCmd} {
		c.Flags().IntVar(&api, "api", 0, "override the scene's platform API level")
		c.Flags().BoolVar(&rtl, "rtl", false, "lay out right-to-left")
	}
	rootCmd.AddCommand(applyCmd, previewCmd, edgesCmd)
}

func load(path string) (*scene.Scene, *scene.Device, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if api > 0 {
		s.API = api
	}
	if rtl {
		s.Direction = "rtl"
	}
	d, err := s.Build(slog.Default())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build scene: %w", err)
	}
	return s, d, nil
}
