package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"clinicdesk/internal/config"
	"clinicdesk/internal/db"
	"clinicdesk/internal/logger"
	"clinicdesk/internal/repository"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		doctor   doctorSeed
		patients bool
	)

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Insert a doctor account into the clinic database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.IsDev()).With().Str("component", "seed").Logger()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			gormDB, err := db.NewMySQL(ctx, cfg.DatabaseURL)
			if err != nil {
				log.Error().Err(err).Msg("database init failed")
				return err
			}
			if err := db.Migrate(gormDB, false); err != nil {
				log.Error().Err(err).Msg("migration failed")
				return err
			}

			s := &seeder{
				doctors:  repository.NewDoctorRepository(gormDB),
				patients: repository.NewPatientRepository(gormDB),
				log:      log,
				now:      time.Now,
			}
			created, err := s.seedDoctor(ctx, doctor)
			if err != nil {
				log.Error().Err(err).Msg("seed doctor failed")
				return err
			}
			if patients {
				if err := s.seedPatients(ctx, created); err != nil {
					log.Error().Err(err).Msg("seed patients failed")
					return err
				}
			}
			log.Info().Msg("seed completed")
			return nil
		},
	}

	cmd.Flags().StringVar(&doctor.Name, "name", "Dr. Sarah Johnson", "Doctor name")
	cmd.Flags().StringVar(&doctor.Email, "email", "doctor@clinic.com", "Login email")
	cmd.Flags().StringVar(&doctor.Password, "password", "password123", "Login password")
	cmd.Flags().StringVar(&doctor.Specialization, "specialization", "General Practice", "Specialization")
	cmd.Flags().StringVar(&doctor.Phone, "phone", "+1-555-0100", "Contact phone")
	cmd.Flags().BoolVar(&patients, "patients", false, "Also insert demo patients assigned to the doctor")
	return cmd
}
