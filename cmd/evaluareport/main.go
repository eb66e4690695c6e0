// evaluareport is the reporting companion of the Evaluapp UI: each
// subcommand issues one round of GETs against the exam API and prints a
// tabular summary, writing bar/pie charts as standalone HTML files.
package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"evaluapp/client"
	"evaluapp/services"
)

var (
	apiBase    string
	outDir     string
	apiTimeout time.Duration
)

func main() {
	root := &cobra.Command{
		Use:           "evaluareport",
		Short:         "Reports over the Evaluapp exam API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiBase, "api", "http://localhost:8080/api", "base URL of the exam API")
	root.PersistentFlags().StringVar(&outDir, "out", ".", "directory for generated chart files")
	root.PersistentFlags().DurationVar(&apiTimeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(
		examenesCmd(),
		preguntasCmd(),
		opcionesCmd(),
		resultadosCmd(),
		usuariosCmd(),
		realizarCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newAPI() *client.Client {
	return client.New(apiBase, apiTimeout)
}

func newReports() *services.ReportService {
	return services.NewReportService(newAPI())
}
