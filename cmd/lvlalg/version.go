// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set at build time: -ldflags "-X main.version=v0.3.0".
var version = "dev"

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func versionInfo() VersionInfo {
	return VersionInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show lvlalg version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo()
			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				b, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))

				return err
			}
			_, err := fmt.Fprintf(out, "lvlalg %s\nPlatform: %s\nGo: %s\n", info.Version, info.Platform, info.GoVersion)

			return err
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Output version info as JSON")

	return cmd
}
