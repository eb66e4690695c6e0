package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"evaluapp/services"
)

// realizarCmd runs the whole taking flow against a live API, answering every
// question with its first option. Useful as a smoke test after deployments.
func realizarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realizar",
		Short: "Take the first available exam end to end (smoke test)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewSessionService(newAPI())

			fmt.Println("Obteniendo exámenes disponibles...")
			exams, faults, err := svc.ListExams()
			if err != nil {
				return err
			}
			printFaults(faults)
			if len(exams) == 0 {
				fmt.Println("No hay exámenes disponibles")
				return nil
			}
			for i, e := range exams {
				fmt.Printf("%d. %s (ID: %d)\n", i+1, e.Title, e.ID)
			}

			exam := exams[0]
			fmt.Printf("\nSeleccionando examen: %s\n", exam.Title)
			state, err := svc.Start(exam.ID)
			if err != nil {
				return err
			}
			printFaults(state.Faults)
			if state.Status == services.StatusNoQuestions {
				fmt.Println("Este examen no tiene preguntas asignadas")
				return nil
			}

			for _, sq := range state.Questions {
				if !sq.Answerable {
					continue
				}
				// first option, like the original simulation
				if err := svc.Answer(state, sq.Question.ID, sq.Options[0].ID); err != nil {
					return err
				}
				fmt.Printf("- %s -> %s\n", sq.Question.Text, sq.Options[0].Text)
			}

			fmt.Println("\nEnviando resultados...")
			result, err := svc.Submit(state)
			if err != nil {
				return err
			}
			fmt.Printf("Examen realizado exitosamente (resultado %d)\n", result.ID)
			return nil
		},
	}
}
