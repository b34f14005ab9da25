package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kontent-tools/slug-audit/server"
	"github.com/spf13/cobra"
)

var serveUsage = strings.TrimSpace(`
Serve the management-API duplicate search over HTTP.  POST a JSON body of
{environmentId, contentType, slugElement} to /api/find-duplicate-slugs and
get back the slugs that appear on more than one item of that type.  The
management key is read from MAPI_KEY.
`)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the duplicate search as an HTTP endpoint",
	Long:  serveUsage,
	Args:  cobra.ExactArgs(0),
	RunE:  runServe,
}

var ListenAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&ListenAddr, "listen-addr", ":8787", "address to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	if !Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(os.Getenv("MAPI_KEY"))

	fmt.Printf("Listening on %s...\n", ListenAddr)
	if err := srv.Run(ListenAddr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
