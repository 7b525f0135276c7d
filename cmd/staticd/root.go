package main

import (
	"staticd/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "staticd",
	Short: "staticd - minimal static file server",
	Long: `staticd serves files from a content root over HTTP with conditional
caching (ETag/Last-Modified), content-type detection, and optional response
compression (gzip/deflate/brotli), plus JSON health and info endpoints.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("staticd version {{.Version}}\n")
}
