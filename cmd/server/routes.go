package main

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"frotaweb/pkg/server"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the registered HTTP routes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		srv, err := server.NewHTTPServer(context.Background(), &server.Config{Config: cfg})
		if err != nil {
			return err
		}

		routes := srv.Routes()
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path == routes[j].Path {
				return routes[i].Method < routes[j].Method
			}
			return routes[i].Path < routes[j].Path
		})

		out := cmd.OutOrStdout()
		for _, r := range routes {
			fmt.Fprintf(out, "%s %s\n", methodColor(r.Method).Sprintf("%-7s", r.Method), r.Path)
		}
		return nil
	},
}

func methodColor(method string) *color.Color {
	switch method {
	case http.MethodGet:
		return color.New(color.FgHiGreen)
	case http.MethodPost:
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgHiWhite)
	}
}
