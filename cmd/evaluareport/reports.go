package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"evaluapp/models"
)

func examenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examenes",
		Short: "Exam summary with durations and per-creator counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, faults, err := newReports().Exams()
			if err != nil {
				return err
			}
			printFaults(faults)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Título", "Inicio", "Fin", "Duración (min)", "Preguntas"})
			for _, row := range summary.Rows {
				duration := "-"
				if row.HasDuration {
					duration = fmt.Sprintf("%.0f", row.DurationMin)
				}
				table.Append([]string{
					strconv.Itoa(row.Exam.ID),
					row.Exam.Title,
					row.Exam.StartDate,
					row.Exam.EndDate,
					duration,
					strconv.Itoa(len(row.Exam.QuestionIDs)),
				})
			}
			table.Render()

			if len(summary.ByCreator) > 0 {
				fmt.Println("\nExámenes por creador:")
				for _, creator := range sortedKeys(summary.ByCreator) {
					fmt.Printf("  %s: %d\n", creator, summary.ByCreator[creator])
				}
			} else {
				fmt.Println("\nNo hay información de creadores disponible")
			}

			labels := make([]string, 0, len(summary.Rows))
			values := make([]float64, 0, len(summary.Rows))
			for _, row := range summary.Rows {
				if !row.HasDuration {
					continue
				}
				labels = append(labels, row.Exam.Title)
				values = append(values, row.DurationMin)
			}
			return writeBarChart("examenes_duracion.html", "Duración de Exámenes (min)", labels, values)
		},
	}
}

func preguntasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preguntas",
		Short: "Question listing with per-exam counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, faults, err := newReports().Questions()
			if err != nil {
				return err
			}
			printFaults(faults)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Pregunta", "Examen"})
			for _, q := range summary.Questions {
				exam := "-"
				if q.Exam != nil {
					exam = q.Exam.Title
				}
				table.Append([]string{strconv.Itoa(q.ID), q.Text, exam})
			}
			table.Render()

			fmt.Println("\nNúmero de preguntas por examen:")
			labels, values := sortedCounts(summary.PerExam)
			for i, label := range labels {
				fmt.Printf("  %s: %.0f\n", label, values[i])
			}
			return writeBarChart("preguntas_por_examen.html", "Preguntas por examen", labels, values)
		},
	}
}

func opcionesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opciones",
		Short: "Option audit: counts per question and correctness problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			audit, faults, err := newReports().Options()
			if err != nil {
				return err
			}
			printFaults(faults)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Opción", "Correcta", "Pregunta"})
			for _, row := range audit.Rows {
				correct := ""
				if row.Option.IsCorrect {
					correct = "sí"
				}
				table.Append([]string{
					strconv.Itoa(row.Option.ID),
					row.Option.Text,
					correct,
					row.QuestionText,
				})
			}
			table.Render()

			if len(audit.Misconfigured) > 0 {
				fmt.Println("\nPreguntas con 0 o más de una opción correcta:")
				for _, qid := range audit.Misconfigured {
					fmt.Printf("  pregunta %d: %d correcta(s)\n", qid, audit.CorrectCount[qid])
				}
			} else {
				fmt.Println("\nTodas las preguntas tienen exactamente una opción correcta")
			}

			labels := make([]string, 0, len(audit.PerQuestion))
			values := make([]float64, 0, len(audit.PerQuestion))
			ids := make([]int, 0, len(audit.PerQuestion))
			for qid := range audit.PerQuestion {
				ids = append(ids, qid)
			}
			sort.Ints(ids)
			for _, qid := range ids {
				labels = append(labels, strconv.Itoa(qid))
				values = append(values, float64(audit.PerQuestion[qid]))
			}
			return writeBarChart("opciones_por_pregunta.html", "Cantidad de opciones por pregunta", labels, values)
		},
	}
}

func resultadosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resultados",
		Short: "Score averages per exam and per user",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, results, err := newReports().Results()
			if err != nil {
				return err
			}
			if summary.Count == 0 {
				fmt.Println("No hay resultados registrados")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Usuario", "Examen", "Puntaje", "Fecha"})
			for _, r := range results {
				user, exam := "-", "-"
				if r.User != nil {
					user = r.User.Email
				}
				if r.Exam != nil {
					exam = r.Exam.Title
				}
				table.Append([]string{user, exam, fmt.Sprintf("%.2f", r.Score), r.Date})
			}
			table.Render()

			fmt.Printf("\nTotal: %d  Promedio: %.2f  Mediana: %.2f  Mín: %.2f  Máx: %.2f\n",
				summary.Count, summary.Mean, summary.Median, summary.Min, summary.Max)

			fmt.Println("\nPromedio por examen:")
			for _, title := range sortedFloatKeys(summary.MeanByExam) {
				fmt.Printf("  %s: %.2f\n", title, summary.MeanByExam[title])
			}
			fmt.Println("\nPromedio por usuario:")
			for _, email := range sortedFloatKeys(summary.MeanByUser) {
				fmt.Printf("  %s: %.2f\n", email, summary.MeanByUser[email])
			}
			fmt.Printf("\n📈 Mejor promedio: %s con %.2f\n", summary.BestUser, summary.BestMean)
			fmt.Printf("📉 Peor promedio: %s con %.2f\n", summary.WorstUser, summary.WorstMean)

			labels := sortedFloatKeys(summary.MeanByExam)
			values := make([]float64, 0, len(labels))
			for _, title := range labels {
				values = append(values, summary.MeanByExam[title])
			}
			return writeBarChart("promedio_por_examen.html", "Promedio de puntaje por examen", labels, values)
		},
	}
}

func usuariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usuarios",
		Short: "User counts and percentages per role",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, faults, err := newReports().Users()
			if err != nil {
				return err
			}
			printFaults(faults)

			fmt.Println("Usuarios por rol:")
			labels, values := sortedCounts(summary.ByRole)
			for i, role := range labels {
				fmt.Printf("  %s: %.0f (%.2f%%)\n", role, values[i], summary.PercentByRole[role])
			}

			if err := writeBarChart("usuarios_por_rol.html", "Cantidad de usuarios por rol", labels, values); err != nil {
				return err
			}
			percents := make([]float64, 0, len(labels))
			for _, role := range labels {
				percents = append(percents, summary.PercentByRole[role])
			}
			return writePieChart("distribucion_roles.html", "Distribución de roles", labels, percents)
		},
	}
}

func printFaults(faults []models.Fault) {
	for _, f := range faults {
		fmt.Fprintf(os.Stderr, "warning: %s\n", f.Message)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFloatKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedCounts(m map[string]int) ([]string, []float64) {
	labels := sortedKeys(m)
	values := make([]float64, 0, len(labels))
	for _, label := range labels {
		values = append(values, float64(m[label]))
	}
	return labels, values
}
