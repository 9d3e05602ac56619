package main

import (
	"fmt"
	"time"

	"meetline-client/internal/realtime"

	"github.com/spf13/cobra"
)

func businessesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "businesses",
		Short: "List bookable businesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			businesses, err := a.booking.ListBusinesses(cmd.Context())
			if err != nil {
				return err
			}
			for _, b := range businesses {
				fmt.Printf("%-12s %s", b.ID, b.Name)
				if b.Rating > 0 {
					fmt.Printf("  (%.1f)", b.Rating)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func servicesCmd(a *app) *cobra.Command {
	var businessID string

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List services a business offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.booking.ListServices(cmd.Context(), businessID)
			if err != nil {
				return err
			}
			for _, s := range services {
				fmt.Printf("%-12s %-30s %3d min  %d.%02d %s\n",
					s.ID, s.Name, s.DurationMin, s.PriceCents/100, s.PriceCents%100, s.Currency)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&businessID, "business", "b", "", "business id")
	return cmd
}

func professionalsCmd(a *app) *cobra.Command {
	var businessID string

	cmd := &cobra.Command{
		Use:   "professionals",
		Short: "List the staff of a business",
		RunE: func(cmd *cobra.Command, args []string) error {
			pros, err := a.booking.ListProfessionals(cmd.Context(), businessID)
			if err != nil {
				return err
			}
			for _, p := range pros {
				fmt.Printf("%-12s %s  %s\n", p.ID, p.FullName, p.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&businessID, "business", "b", "", "business id")
	return cmd
}

func slotsCmd(a *app) *cobra.Command {
	var businessID, serviceID, date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show available time slots for a service",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}
			slots, err := a.booking.GetAvailability(cmd.Context(), businessID, serviceID, day)
			if err != nil {
				return err
			}
			for _, s := range slots {
				fmt.Printf("%s - %s  (%s)\n",
					s.Start.Format("15:04"), s.End.Format("15:04"), s.ProfessionalID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&businessID, "business", "b", "", "business id")
	cmd.Flags().StringVarP(&serviceID, "service", "s", "", "service id")
	cmd.Flags().StringVarP(&date, "date", "d", time.Now().Format("2006-01-02"), "day to query (YYYY-MM-DD)")
	return cmd
}

func bookCmd(a *app) *cobra.Command {
	var businessID, serviceID, professionalID, start, notes string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("invalid start %q, want RFC3339", start)
			}
			appt, err := a.booking.Book(cmd.Context(), businessID, serviceID, professionalID, at, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Booked %s at %s (status %s)\n",
				appt.ID, appt.Start.Format(time.RFC3339), appt.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&businessID, "business", "b", "", "business id")
	cmd.Flags().StringVarP(&serviceID, "service", "s", "", "service id")
	cmd.Flags().StringVar(&professionalID, "professional", "", "professional id (optional)")
	cmd.Flags().StringVar(&start, "start", "", "start time (RFC3339)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes for the business")
	return cmd
}

func cancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <appointment-id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.booking.Cancel(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Cancelled", args[0])
			return nil
		},
	}
}

func appointmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := a.booking.ListAppointments(cmd.Context())
			if err != nil {
				return err
			}
			for _, appt := range appts {
				fmt.Printf("%-12s %s  %-10s %s\n",
					appt.ID, appt.Start.Format("2006-01-02 15:04"), appt.Status, appt.BusinessID)
			}
			return nil
		},
	}
}

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream appointment status events",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub := realtime.NewSubscriber(a.cfg.WSURL, a.creds, a.logger)
			return sub.Listen(cmd.Context(), func(ev realtime.Event) {
				fmt.Printf("[%s] appointment %s is now %s\n",
					ev.Type, ev.Appointment.ID, ev.Appointment.Status)
			})
		},
	}
}
